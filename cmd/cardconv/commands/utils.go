package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lucashald/card/pkg/export"
	"github.com/lucashald/card/pkg/tflite"
)

const (
	// defaultModelPath is the source model probed by every procedure.
	defaultModelPath = "./assets/64x3-cards.tflite"
	// defaultOutputDir is where the artifact pair is written.
	defaultOutputDir = "./assets/cards_model"
)

// requireMaxArgs errors when a command receives more than max positional
// arguments.
func requireMaxArgs(max int, command, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > max {
			return fmt.Errorf(
				"'cardconv %s' accepts at most %d argument(s)\n\nUsage:  cardconv %s %s\n\nSee 'cardconv %s --help' for more information",
				command, max, command, usage, command,
			)
		}
		return nil
	}
}

// modelArg returns the model path argument, falling back to the fixed
// default path the tool ships with.
func modelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultModelPath
}

// addOutputFlag registers the shared --output flag.
func addOutputFlag(flags *pflag.FlagSet, output *string) {
	flags.StringVarP(output, "output", "o", defaultOutputDir, "Directory to write the artifact pair to")
}

// commandPrinter wraps a cobra.Command to implement export.StatusPrinter.
type commandPrinter struct {
	cmd *cobra.Command
}

// Printf implements StatusPrinter.Printf by delegating to cobra.Command.Printf.
func (cp *commandPrinter) Printf(format string, args ...any) {
	cp.cmd.Printf(format, args...)
}

// Println implements StatusPrinter.Println by delegating to cobra.Command.Println.
func (cp *commandPrinter) Println(args ...any) {
	cp.cmd.Println(args...)
}

// asPrinter wraps a cobra.Command to implement export.StatusPrinter.
func asPrinter(cmd *cobra.Command) export.StatusPrinter {
	return &commandPrinter{cmd: cmd}
}

// newLogEntry builds the logger passed to export procedures. Debug output
// goes to the command's error stream so artifact listings on stdout stay
// clean.
func newLogEntry(cmd *cobra.Command) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return logrus.NewEntry(log)
}

// probeModel opens the source model and prints its input and output tensor
// metadata. The result is informational only; export procedures do not
// consume it. A missing or malformed model aborts the run.
func probeModel(cmd *cobra.Command, path string) error {
	m, err := tflite.Open(path)
	if err != nil {
		return fmt.Errorf("unable to load model: %w", err)
	}
	g, err := m.Primary()
	if err != nil {
		return fmt.Errorf("unable to load model: %w", err)
	}

	in, err := g.Input(0)
	if err != nil {
		return fmt.Errorf("model has no input tensor: %w", err)
	}
	out, err := g.Output(0)
	if err != nil {
		return fmt.Errorf("model has no output tensor: %w", err)
	}

	cmd.Printf("Model info:\n")
	cmd.Printf("  Input:  %s %v (%s)\n", in.Name(), in.Shape(), in.Type())
	cmd.Printf("  Output: %s %v (%s)\n", out.Name(), out.Shape(), out.Type())
	return nil
}
