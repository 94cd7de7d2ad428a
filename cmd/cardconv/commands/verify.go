package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lucashald/card/pkg/graphmodel"
)

func newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify [DIR]",
		Short: "Check a graph-model artifact's manifest against its weight shards",
		Args:  requireMaxArgs(1, "verify", "[DIR]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultOutputDir
			if len(args) > 0 {
				dir = args[0]
			}
			return verifyArtifact(cmd, dir)
		},
	}
	return c
}

func verifyArtifact(cmd *cobra.Command, dir string) error {
	a, err := graphmodel.ReadArtifact(dir)
	if err != nil {
		return fmt.Errorf("artifact verification failed: %w", err)
	}

	cmd.Printf("Format:    %s\n", a.Descriptor.Format)
	cmd.Printf("Nodes:     %d\n", len(a.Descriptor.ModelTopology.Node))
	cmd.Printf("Tensors:   %d\n", len(a.Tensors))
	for _, t := range a.Tensors {
		cmd.Printf("  - %s %v (%d elements)\n", t.Name, t.Shape, len(t.Data))
	}

	// The scaffolded graph carries a known dangling reference; report it
	// rather than treating it as part of the contract.
	for _, in := range a.Descriptor.ModelTopology.DanglingInputs() {
		cmd.Println(color.YellowString("Warning: node input %q is not defined in the topology", in))
	}

	cmd.Println(color.GreenString("Manifest and shard data are consistent"))
	return nil
}
