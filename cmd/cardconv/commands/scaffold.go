package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lucashald/card/pkg/export"
)

func newScaffoldCmd() *cobra.Command {
	var (
		output string
		seed   uint64
		scale  float64
	)

	c := &cobra.Command{
		Use:   "scaffold [MODEL]",
		Short: "Emit a graph-model artifact with placeholder random weights",
		Args:  requireMaxArgs(1, "scaffold", "[MODEL]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := probeModel(cmd, modelArg(args)); err != nil {
				return err
			}
			opts := export.Options{
				Seed:    seed,
				Scale:   scale,
				Logger:  newLogEntry(cmd),
				Printer: asPrinter(cmd),
			}
			if err := export.Scaffold(output, opts); err != nil {
				return err
			}
			cmd.Println(color.GreenString("Created TensorFlow.js model structure!"))
			cmd.Println(color.YellowString("Note: weights are random placeholders; predictions will be meaningless until real weights are extracted"))
			return nil
		},
	}

	addOutputFlag(c.Flags(), &output)
	c.Flags().Uint64Var(&seed, "seed", 0, "Seed for the placeholder weight generator (0 picks a random seed)")
	c.Flags().Float64Var(&scale, "scale", export.DefaultScale, "Standard deviation of the placeholder weight draws")
	return c
}
