package graphmodel

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteDescriptor writes the descriptor as 2-space-indented JSON to
// dir/model.json, overwriting any previous run's output.
func WriteDescriptor(dir string, d *Descriptor) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal descriptor: %w", err)
	}
	path := filepath.Join(dir, DescriptorName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}
	return nil
}

// WriteWeights writes the flat little-endian float32 concatenation of the
// given tensors, in slice order. The caller is responsible for keeping this
// order in agreement with the weights manifest.
func WriteWeights(w io.Writer, tensors ...[]float32) error {
	for i, t := range tensors {
		if err := binary.Write(w, binary.LittleEndian, t); err != nil {
			return fmt.Errorf("write weight tensor %d: %w", i, err)
		}
	}
	return nil
}

// WriteWeightsFile writes the tensors to a shard file at path. An empty
// tensor list produces a zero-length file.
func WriteWeightsFile(path string, tensors ...[]float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create shard: %w", err)
	}
	if err := WriteWeights(f, tensors...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
