package cli

import (
	"github.com/spf13/cobra"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

func newShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <name-or-code>",
		Short: "Show one kernel preset",
		Long: `Show a single preset, addressed by name (any case, '-' or '_') or code.

Examples:
  kernels show SOBEL_VERTICAL
  kernels show sobel-vertical -o yaml
  kernels show 18`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := kernels.Parse(args[0])
			if err != nil {
				return err
			}
			d := kernels.Describe(p)
			return writeDescriptors(cmd.OutOrStdout(), output, d, []kernels.Descriptor{d})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
