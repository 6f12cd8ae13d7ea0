package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the kernels command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kernels",
		Short: "Look up convolution kernel presets",
		Long: `kernels prints the predefined convolution kernel presets and their
integer codes, as accepted by the raster convolution function.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newDocCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
