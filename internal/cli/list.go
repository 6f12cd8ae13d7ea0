package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

func newListCmd() *cobra.Command {
	var (
		output string
		family string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all kernel presets",
		Long: `List every predefined kernel preset in code order.

Examples:
  # List all presets
  kernels list

  # Only the gradient kernels, as JSON
  kernels list --family gradient -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := kernels.Catalog()
			if family != "" {
				f, ok := kernels.ParseFamily(family)
				if !ok {
					return fmt.Errorf("unknown family %q", family)
				}
				rows = rows[:0]
				for _, p := range kernels.InFamily(f) {
					rows = append(rows, kernels.Describe(p))
				}
			}
			return writeDescriptors(cmd.OutOrStdout(), output, rows, rows)
		},
	}

	addOutputFlag(cmd, &output)
	cmd.Flags().StringVar(&family, "family", "", "Only list presets of this family")
	return cmd
}
