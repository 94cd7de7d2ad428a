package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the cardconv command tree.
func NewRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:          "cardconv",
		Short:        "Export the card classifier as a TensorFlow.js graph model",
		SilenceUsage: true,
	}
	c.PersistentFlags().Bool("debug", false, "Enable debug logging")
	c.AddCommand(
		newInspectCmd(),
		newStructureCmd(),
		newScaffoldCmd(),
		newVerifyCmd(),
	)
	return c
}
