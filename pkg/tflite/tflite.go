// Package tflite provides a minimal read-only view of the TFLite
// FlatBuffers container (schema v3). Only the fields needed to describe a
// model's input and output tensors are mapped; operators, buffers and
// quantization parameters are not exposed.
package tflite

import (
	"errors"
	"fmt"
	"os"

	flatbuffers "github.com/google/flatbuffers/go"
)

// fileIdentifier is the FlatBuffers file identifier for TFLite models,
// stored at bytes 4-8 of the file.
const fileIdentifier = "TFL3"

var (
	// ErrTruncated indicates the buffer is too short to hold a FlatBuffers
	// root table.
	ErrTruncated = errors.New("buffer too short for a TFLite model")
	// ErrNotTFLite indicates the buffer does not carry the TFL3 file
	// identifier.
	ErrNotTFLite = errors.New("not a TFLite model (missing TFL3 identifier)")
)

// Model is the root table of a TFLite file.
type Model struct {
	tab flatbuffers.Table
}

// Open reads and parses the TFLite model at path.
func Open(path string) (*Model, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse validates the file identifier and positions the root table. The
// returned Model retains buf.
func Parse(buf []byte) (*Model, error) {
	if len(buf) < 8 {
		return nil, ErrTruncated
	}
	if string(buf[4:8]) != fileIdentifier {
		return nil, ErrNotTFLite
	}
	m := &Model{}
	m.tab.Bytes = buf
	m.tab.Pos = flatbuffers.GetUOffsetT(buf)
	return m, nil
}

// Version returns the schema version declared by the model (3 for current
// files).
func (m *Model) Version() uint32 {
	if o := flatbuffers.UOffsetT(m.tab.Offset(4)); o != 0 {
		return m.tab.GetUint32(o + m.tab.Pos)
	}
	return 0
}

// Description returns the model's free-form description string.
func (m *Model) Description() string {
	if o := flatbuffers.UOffsetT(m.tab.Offset(10)); o != 0 {
		return string(m.tab.ByteVector(o + m.tab.Pos))
	}
	return ""
}

// SubgraphsLen returns the number of subgraphs in the model.
func (m *Model) SubgraphsLen() int {
	if o := flatbuffers.UOffsetT(m.tab.Offset(8)); o != 0 {
		return m.tab.VectorLen(o)
	}
	return 0
}

// Subgraph returns the i-th subgraph.
func (m *Model) Subgraph(i int) (*SubGraph, error) {
	o := flatbuffers.UOffsetT(m.tab.Offset(8))
	if o == 0 || i < 0 || i >= m.tab.VectorLen(o) {
		return nil, fmt.Errorf("subgraph %d out of range (model has %d)", i, m.SubgraphsLen())
	}
	a := m.tab.Vector(o)
	x := m.tab.Indirect(a + flatbuffers.UOffsetT(i)*flatbuffers.SizeUOffsetT)
	s := &SubGraph{}
	s.tab.Bytes = m.tab.Bytes
	s.tab.Pos = x
	return s, nil
}

// Primary returns the first subgraph, which holds the model's entry point.
func (m *Model) Primary() (*SubGraph, error) {
	return m.Subgraph(0)
}

// SubGraph is a single computation graph within a model.
type SubGraph struct {
	tab flatbuffers.Table
}

// Name returns the subgraph name, which may be empty.
func (s *SubGraph) Name() string {
	if o := flatbuffers.UOffsetT(s.tab.Offset(12)); o != 0 {
		return string(s.tab.ByteVector(o + s.tab.Pos))
	}
	return ""
}

// TensorsLen returns the number of tensors declared by the subgraph.
func (s *SubGraph) TensorsLen() int {
	if o := flatbuffers.UOffsetT(s.tab.Offset(4)); o != 0 {
		return s.tab.VectorLen(o)
	}
	return 0
}

// Tensor returns the i-th tensor of the subgraph.
func (s *SubGraph) Tensor(i int) (*Tensor, error) {
	o := flatbuffers.UOffsetT(s.tab.Offset(4))
	if o == 0 || i < 0 || i >= s.tab.VectorLen(o) {
		return nil, fmt.Errorf("tensor %d out of range (subgraph has %d)", i, s.TensorsLen())
	}
	a := s.tab.Vector(o)
	x := s.tab.Indirect(a + flatbuffers.UOffsetT(i)*flatbuffers.SizeUOffsetT)
	t := &Tensor{}
	t.tab.Bytes = s.tab.Bytes
	t.tab.Pos = x
	return t, nil
}

// InputsLen returns the number of input tensors.
func (s *SubGraph) InputsLen() int {
	if o := flatbuffers.UOffsetT(s.tab.Offset(6)); o != 0 {
		return s.tab.VectorLen(o)
	}
	return 0
}

// Input resolves the i-th input index to its tensor.
func (s *SubGraph) Input(i int) (*Tensor, error) {
	idx, err := s.indexAt(6, i, s.InputsLen(), "input")
	if err != nil {
		return nil, err
	}
	return s.Tensor(idx)
}

// OutputsLen returns the number of output tensors.
func (s *SubGraph) OutputsLen() int {
	if o := flatbuffers.UOffsetT(s.tab.Offset(8)); o != 0 {
		return s.tab.VectorLen(o)
	}
	return 0
}

// Output resolves the i-th output index to its tensor.
func (s *SubGraph) Output(i int) (*Tensor, error) {
	idx, err := s.indexAt(8, i, s.OutputsLen(), "output")
	if err != nil {
		return nil, err
	}
	return s.Tensor(idx)
}

// indexAt reads the i-th int32 from the index vector at the given vtable
// offset.
func (s *SubGraph) indexAt(vtable flatbuffers.VOffsetT, i, n int, role string) (int, error) {
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%s %d out of range (subgraph has %d)", role, i, n)
	}
	o := flatbuffers.UOffsetT(s.tab.Offset(vtable))
	a := s.tab.Vector(o)
	return int(s.tab.GetInt32(a + flatbuffers.UOffsetT(i)*flatbuffers.SizeInt32)), nil
}

// Tensor describes a single tensor's name, shape and element type.
type Tensor struct {
	tab flatbuffers.Table
}

// Name returns the tensor name.
func (t *Tensor) Name() string {
	if o := flatbuffers.UOffsetT(t.tab.Offset(10)); o != 0 {
		return string(t.tab.ByteVector(o + t.tab.Pos))
	}
	return ""
}

// Shape returns the declared dimension sizes. A nil result means the shape
// is unknown.
func (t *Tensor) Shape() []int {
	o := flatbuffers.UOffsetT(t.tab.Offset(4))
	if o == 0 {
		return nil
	}
	n := t.tab.VectorLen(o)
	a := t.tab.Vector(o)
	shape := make([]int, n)
	for i := range shape {
		shape[i] = int(t.tab.GetInt32(a + flatbuffers.UOffsetT(i)*flatbuffers.SizeInt32))
	}
	return shape
}

// Type returns the tensor's element type.
func (t *Tensor) Type() TensorType {
	if o := flatbuffers.UOffsetT(t.tab.Offset(6)); o != 0 {
		return TensorType(t.tab.GetByte(o + t.tab.Pos))
	}
	return TensorTypeFloat32
}
