package graphmodel

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var (
	// ErrSizeMismatch indicates the shard data does not match the byte length
	// implied by the manifest's shapes.
	ErrSizeMismatch = errors.New("weight data does not match manifest shapes")
	// ErrBadDType indicates a manifest entry declares an element type other
	// than float32.
	ErrBadDType = errors.New("unsupported weight dtype")
)

// NamedTensor is one weight tensor sliced out of a shard group.
type NamedTensor struct {
	Name  string
	Shape []int
	Data  []float32
}

// Artifact is a descriptor plus its decoded weight tensors, in manifest
// order.
type Artifact struct {
	Descriptor *Descriptor
	Tensors    []NamedTensor
}

// ReadDescriptor parses dir/model.json.
func ReadDescriptor(dir string) (*Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(dir, DescriptorName))
	if err != nil {
		return nil, err
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", DescriptorName, err)
	}
	return &d, nil
}

// ReadArtifact reads the descriptor and every shard group it declares,
// verifying the binding invariant between the two: each group's concatenated
// shard data must hold exactly 4 bytes per element declared by its manifest
// entries. On success the tensors are returned sliced in manifest order.
func ReadArtifact(dir string) (*Artifact, error) {
	d, err := ReadDescriptor(dir)
	if err != nil {
		return nil, err
	}

	a := &Artifact{Descriptor: d}
	for gi, group := range d.WeightsManifest {
		var data []byte
		for _, p := range group.Paths {
			shard, err := os.ReadFile(filepath.Join(dir, p))
			if err != nil {
				return nil, errors.Wrapf(err, "read shard for group %d", gi)
			}
			data = append(data, shard...)
		}

		elements := 0
		for _, w := range group.Weights {
			if w.DType != DTypeFloat32 {
				return nil, errors.Wrapf(ErrBadDType, "tensor %q is %s", w.Name, w.DType)
			}
			elements += w.Elements()
		}
		if len(data) != 4*elements {
			return nil, errors.Wrapf(ErrSizeMismatch,
				"group %d holds %d bytes, manifest declares %d elements (%d bytes)",
				gi, len(data), elements, 4*elements)
		}

		off := 0
		for _, w := range group.Weights {
			n := w.Elements()
			t := NamedTensor{Name: w.Name, Shape: w.Shape, Data: make([]float32, n)}
			for i := range t.Data {
				bits := binary.LittleEndian.Uint32(data[off+4*i:])
				t.Data[i] = math.Float32frombits(bits)
			}
			off += 4 * n
			a.Tensors = append(a.Tensors, t)
		}
	}
	return a, nil
}
