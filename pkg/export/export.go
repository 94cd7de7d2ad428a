// Package export produces TensorFlow.js graph-model artifact pairs for the
// card classifier. Two procedures are provided: Structure emits an empty
// graph with no weights, Scaffold emits a hand-authored two-layer topology
// with randomly generated placeholder weights. Neither extracts anything
// from the source model; both are scaffolding for loader and pipeline
// testing.
package export

import (
	"fmt"
	"golang.org/x/exp/rand"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lucashald/card/pkg/graphmodel"
)

const (
	// ShardName is the single weight shard emitted by both procedures, and
	// the path declared by their manifests.
	ShardName = "group1-shard1of1.bin"

	generatedBy          = "cardconv"
	structureConvertedBy = "cardconv structure 1.0.0"
	scaffoldConvertedBy  = "cardconv scaffold 1.0.0"

	// DefaultScale is the standard deviation of the placeholder weight
	// draws.
	DefaultScale = 0.1
)

// StatusPrinter is the interface used to report written files and notes.
type StatusPrinter interface {
	Printf(format string, args ...any)
	Println(args ...any)
}

// noopPrinter silences procedure output if no printer is configured.
type noopPrinter struct{}

func (noopPrinter) Printf(format string, args ...any) {}
func (noopPrinter) Println(args ...any)               {}

// Options configures an export procedure.
type Options struct {
	// Seed seeds the placeholder weight generator. Zero selects a
	// time-based seed, so repeated runs produce different values.
	Seed uint64
	// Scale is the standard deviation of the weight draws. Zero selects
	// DefaultScale.
	Scale float64
	// Logger is the logger to use. May be nil.
	Logger *logrus.Entry
	// Printer receives the file listing and notes. May be nil.
	Printer StatusPrinter
}

func (o Options) printer() StatusPrinter {
	if o.Printer == nil {
		return noopPrinter{}
	}
	return o.Printer
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debugf(format, args...)
	}
}

// Structure writes an empty-graph artifact pair to dir: a descriptor with no
// nodes and an empty weights manifest entry, plus a zero-length shard at the
// declared path. The output is fully deterministic.
func Structure(dir string, opts Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	d := &graphmodel.Descriptor{
		Format:              graphmodel.FormatGraphModel,
		GeneratedBy:         generatedBy,
		ConvertedBy:         structureConvertedBy,
		UserDefinedMetadata: map[string]string{},
		ModelTopology: graphmodel.Topology{
			Node:     []graphmodel.Node{},
			Versions: graphmodel.Versions{Producer: 1},
		},
		WeightsManifest: []graphmodel.WeightsGroup{
			{Paths: []string{ShardName}, Weights: []graphmodel.WeightEntry{}},
		},
	}

	opts.logf("writing empty-graph descriptor to %s", dir)
	if err := graphmodel.WriteDescriptor(dir, d); err != nil {
		return err
	}
	if err := graphmodel.WriteWeightsFile(filepath.Join(dir, ShardName)); err != nil {
		return err
	}

	listFiles(dir, opts.printer())
	return nil
}

// Scaffold writes a placeholder-weights artifact pair to dir: the two-node
// card topology, the full signature, and the four architecture tensors
// filled with independent N(0, scale) draws, concatenated into the shard in
// manifest order. The descriptor is written before the shard; a failure in
// between leaves the inconsistent pair on disk.
func Scaffold(dir string, opts Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	d := &graphmodel.Descriptor{
		Format:      graphmodel.FormatGraphModel,
		GeneratedBy: generatedBy,
		ConvertedBy: scaffoldConvertedBy,
		Signature:   cardSignature(),
		UserDefinedMetadata: map[string]string{
			"inputShape":  fmt.Sprintf("[1,%d,%d,1]", inputHeight, inputWidth),
			"outputShape": fmt.Sprintf("[1,%d]", numClasses),
			"classes":     fmt.Sprintf("%d", numClasses),
		},
		ModelTopology: cardTopology(),
		WeightsManifest: []graphmodel.WeightsGroup{
			{Paths: []string{ShardName}, Weights: cardWeights},
		},
	}

	opts.logf("writing scaffold descriptor to %s", dir)
	if err := graphmodel.WriteDescriptor(dir, d); err != nil {
		return err
	}

	tensors := placeholderTensors(opts)
	if err := graphmodel.WriteWeightsFile(filepath.Join(dir, ShardName), tensors...); err != nil {
		return err
	}

	listFiles(dir, opts.printer())
	return nil
}

// placeholderTensors generates one flat row-major slice per cardWeights
// entry, in order.
func placeholderTensors(opts Options) [][]float32 {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	norm := distuv.Normal{Mu: 0, Sigma: scale, Src: rand.NewSource(seed)}

	tensors := make([][]float32, len(cardWeights))
	for i, w := range cardWeights {
		data := make([]float32, w.Elements())
		for j := range data {
			data[j] = float32(norm.Rand())
		}
		tensors[i] = data
	}
	return tensors
}

// listFiles prints the artifact directory contents with human-readable
// sizes.
func listFiles(dir string, printer StatusPrinter) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	printer.Println("Files created:")
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		printer.Printf("  - %s (%s)\n", e.Name(), units.HumanSize(float64(info.Size())))
	}
}
