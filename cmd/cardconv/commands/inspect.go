package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lucashald/card/pkg/tflite"
)

func newInspectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "inspect [MODEL]",
		Short: "Print a TFLite model's input and output tensor metadata",
		Args:  requireMaxArgs(1, "inspect", "[MODEL]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectModel(cmd, modelArg(args))
		},
	}
	return c
}

func inspectModel(cmd *cobra.Command, path string) error {
	m, err := tflite.Open(path)
	if err != nil {
		return fmt.Errorf("unable to load model: %w", err)
	}

	cmd.Printf("Schema version: %d\n", m.Version())
	if desc := m.Description(); desc != "" {
		cmd.Printf("Description:    %s\n", desc)
	}
	cmd.Printf("Subgraphs:      %d\n", m.SubgraphsLen())

	g, err := m.Primary()
	if err != nil {
		return fmt.Errorf("unable to load model: %w", err)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Role", "Tensor", "Shape", "DType"})
	for i := 0; i < g.InputsLen(); i++ {
		t, err := g.Input(i)
		if err != nil {
			return err
		}
		table.Append(tensorRow("input", t))
	}
	for i := 0; i < g.OutputsLen(); i++ {
		t, err := g.Output(i)
		if err != nil {
			return err
		}
		table.Append(tensorRow("output", t))
	}
	table.Render()
	return nil
}

func tensorRow(role string, t *tflite.Tensor) []string {
	shape := ""
	for i, d := range t.Shape() {
		if i > 0 {
			shape += "x"
		}
		shape += strconv.Itoa(d)
	}
	return []string{role, t.Name(), shape, t.Type().String()}
}
