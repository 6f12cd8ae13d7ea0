package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"thirdcoast.systems/rasterkernels/pkg/catalog"
)

func newDocCmd() *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Print the preset catalogue as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if html {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), catalog.HTML())
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), catalog.Markdown())
			return err
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "Render to sanitized HTML instead of markdown")
	return cmd
}
