// Package graphmodel defines the TensorFlow.js graph-model artifact pair: a
// JSON descriptor (model.json) and one or more binary weight shards holding
// the flat little-endian float32 concatenation of every tensor listed in the
// descriptor's weights manifest.
package graphmodel

import "strconv"

const (
	// FormatGraphModel is the descriptor format tag expected by TFJS loaders.
	FormatGraphModel = "graph-model"

	// DescriptorName is the fixed descriptor file name within an artifact
	// directory.
	DescriptorName = "model.json"

	// DTypeFloat32 is the only element type emitted by this tool.
	DTypeFloat32 = "float32"
)

// Descriptor is the top-level model.json record.
type Descriptor struct {
	Format              string            `json:"format"`
	GeneratedBy         string            `json:"generatedBy"`
	ConvertedBy         string            `json:"convertedBy"`
	Signature           Signature         `json:"signature"`
	UserDefinedMetadata map[string]string `json:"userDefinedMetadata"`
	ModelTopology       Topology          `json:"modelTopology"`
	WeightsManifest     []WeightsGroup    `json:"weightsManifest"`
}

// Signature names the model's input and output tensors. An empty Signature
// serializes as {}.
type Signature struct {
	Inputs  map[string]TensorInfo `json:"inputs,omitempty"`
	Outputs map[string]TensorInfo `json:"outputs,omitempty"`
}

// TensorInfo describes one signature tensor.
type TensorInfo struct {
	Name        string      `json:"name"`
	DType       string      `json:"dtype"`
	TensorShape TensorShape `json:"tensorShape"`
}

// TensorShape is an ordered list of dimension sizes. Sizes are serialized as
// strings, matching the proto3 JSON encoding of int64 used by TensorFlow.
type TensorShape struct {
	Dim []Dim `json:"dim"`
}

type Dim struct {
	Size string `json:"size"`
}

// ShapeOf builds a TensorShape from dimension sizes.
func ShapeOf(dims ...int) TensorShape {
	s := TensorShape{Dim: make([]Dim, len(dims))}
	for i, d := range dims {
		s.Dim[i] = Dim{Size: strconv.Itoa(d)}
	}
	return s
}

// Topology is the modelTopology record: an ordered node sequence plus a
// producer version stamp.
type Topology struct {
	Node     []Node   `json:"node"`
	Library  struct{} `json:"library"`
	Versions Versions `json:"versions"`
}

type Versions struct {
	Producer int `json:"producer"`
}

// Node is a single graph node descriptor.
type Node struct {
	Name  string               `json:"name"`
	Op    string               `json:"op"`
	Input []string             `json:"input,omitempty"`
	Attr  map[string]AttrValue `json:"attr,omitempty"`
}

// AttrValue is a node attribute. Exactly one field is set.
type AttrValue struct {
	Type  string     `json:"type,omitempty"`
	Shape *AttrShape `json:"shape,omitempty"`
}

// AttrShape wraps a TensorShape for shape-valued attributes, whose JSON
// nests the shape under a second "shape" key.
type AttrShape struct {
	Shape TensorShape `json:"shape"`
}

// WeightsGroup is one shard group of the weights manifest: the binary file
// paths and the tensors stored in them, in concatenation order.
type WeightsGroup struct {
	Paths   []string      `json:"paths"`
	Weights []WeightEntry `json:"weights"`
}

// WeightEntry maps a byte range of the group's concatenated data to a named
// tensor. Entries appear in the exact order their data appears in the shard.
type WeightEntry struct {
	Name  string `json:"name"`
	Shape []int  `json:"shape"`
	DType string `json:"dtype"`
}

// Elements returns the element count implied by the entry's shape.
func (e WeightEntry) Elements() int {
	n := 1
	for _, d := range e.Shape {
		n *= d
	}
	return n
}

// DanglingInputs returns the node input references that name no node in the
// topology. The scaffolded graph intentionally carries one (the Identity
// output reads from an undeclared dense/BiasAdd); readers should surface
// rather than repair it.
func (t Topology) DanglingInputs() []string {
	defined := make(map[string]struct{}, len(t.Node))
	for _, n := range t.Node {
		defined[n.Name] = struct{}{}
	}
	var dangling []string
	for _, n := range t.Node {
		for _, in := range n.Input {
			if _, ok := defined[in]; !ok {
				dangling = append(dangling, in)
			}
		}
	}
	return dangling
}
