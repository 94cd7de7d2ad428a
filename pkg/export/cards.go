package export

import "github.com/lucashald/card/pkg/graphmodel"

// Geometry of the 64x3 card classifier: 70x70 grayscale in, 52 card classes
// out. The scaffolded topology and weights are hard-coded to this one
// architecture.
const (
	inputHeight = 70
	inputWidth  = 70
	numClasses  = 52
)

// cardWeights lists the placeholder tensors in the exact order their data is
// concatenated into the shard. The manifest is generated from this same
// slice, so ordering and shape agreement hold by construction.
var cardWeights = []graphmodel.WeightEntry{
	{Name: "conv2d/kernel", Shape: []int{3, 3, 1, 32}, DType: graphmodel.DTypeFloat32},
	{Name: "conv2d/bias", Shape: []int{32}, DType: graphmodel.DTypeFloat32},
	{Name: "dense/kernel", Shape: []int{1152, numClasses}, DType: graphmodel.DTypeFloat32},
	{Name: "dense/bias", Shape: []int{numClasses}, DType: graphmodel.DTypeFloat32},
}

// cardTopology returns the two-node synthetic graph: a Placeholder input and
// an Identity output. The Identity reads from dense/BiasAdd, a node the
// sequence never defines; the dangling reference is part of the emitted
// artifact's shape and is left in place rather than repaired.
func cardTopology() graphmodel.Topology {
	inputShape := graphmodel.ShapeOf(1, inputHeight, inputWidth, 1)
	return graphmodel.Topology{
		Node: []graphmodel.Node{
			{
				Name: "input",
				Op:   "Placeholder",
				Attr: map[string]graphmodel.AttrValue{
					"dtype": {Type: "DT_FLOAT"},
					"shape": {Shape: &graphmodel.AttrShape{Shape: inputShape}},
				},
			},
			{
				Name:  "output",
				Op:    "Identity",
				Input: []string{"dense/BiasAdd"},
				Attr: map[string]graphmodel.AttrValue{
					"T": {Type: "DT_FLOAT"},
				},
			},
		},
		Versions: graphmodel.Versions{Producer: 1},
	}
}

// cardSignature returns the single-input, single-output signature of the
// classifier.
func cardSignature() graphmodel.Signature {
	return graphmodel.Signature{
		Inputs: map[string]graphmodel.TensorInfo{
			"input": {
				Name:        "input:0",
				DType:       "DT_FLOAT",
				TensorShape: graphmodel.ShapeOf(1, inputHeight, inputWidth, 1),
			},
		},
		Outputs: map[string]graphmodel.TensorInfo{
			"output": {
				Name:        "output:0",
				DType:       "DT_FLOAT",
				TensorShape: graphmodel.ShapeOf(1, numClasses),
			},
		},
	}
}
