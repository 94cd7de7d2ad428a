package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lucashald/card/pkg/export"
)

func newStructureCmd() *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "structure [MODEL]",
		Short: "Emit an empty graph-model artifact (no nodes, no weights)",
		Args:  requireMaxArgs(1, "structure", "[MODEL]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := probeModel(cmd, modelArg(args)); err != nil {
				return err
			}
			opts := export.Options{
				Logger:  newLogEntry(cmd),
				Printer: asPrinter(cmd),
			}
			if err := export.Structure(output, opts); err != nil {
				return err
			}
			cmd.Println("Basic conversion completed!")
			cmd.Println(color.YellowString("Note: this creates structure only and does not extract any weights"))
			return nil
		},
	}

	addOutputFlag(c.Flags(), &output)
	return c
}
