package tflite_test

import (
	"os"
	"path/filepath"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashald/card/pkg/tflite"
)

// buildTensor appends a Tensor table (slots: shape, type, buffer, name).
func buildTensor(b *flatbuffers.Builder, name string, shape []int32, ttype byte) flatbuffers.UOffsetT {
	nameOff := b.CreateString(name)
	b.StartVector(flatbuffers.SizeInt32, len(shape), flatbuffers.SizeInt32)
	for i := len(shape) - 1; i >= 0; i-- {
		b.PrependInt32(shape[i])
	}
	shapeOff := b.EndVector(len(shape))

	b.StartObject(4)
	b.PrependUOffsetTSlot(0, shapeOff, 0)
	b.PrependByteSlot(1, ttype, 0)
	b.PrependUOffsetTSlot(3, nameOff, 0)
	return b.EndObject()
}

// buildCardModel serializes a single-subgraph model shaped like the card
// classifier: one 1x70x70x1 float32 input, one 1x52 float32 output.
func buildCardModel() []byte {
	b := flatbuffers.NewBuilder(1024)

	input := buildTensor(b, "input_1", []int32{1, 70, 70, 1}, byte(tflite.TensorTypeFloat32))
	output := buildTensor(b, "Identity", []int32{1, 52}, byte(tflite.TensorTypeFloat32))

	b.StartVector(flatbuffers.SizeUOffsetT, 2, flatbuffers.SizeUOffsetT)
	b.PrependUOffsetT(output)
	b.PrependUOffsetT(input)
	tensors := b.EndVector(2)

	b.StartVector(flatbuffers.SizeInt32, 1, flatbuffers.SizeInt32)
	b.PrependInt32(0)
	inputs := b.EndVector(1)

	b.StartVector(flatbuffers.SizeInt32, 1, flatbuffers.SizeInt32)
	b.PrependInt32(1)
	outputs := b.EndVector(1)

	name := b.CreateString("main")

	// SubGraph slots: tensors, inputs, outputs, operators, name.
	b.StartObject(5)
	b.PrependUOffsetTSlot(0, tensors, 0)
	b.PrependUOffsetTSlot(1, inputs, 0)
	b.PrependUOffsetTSlot(2, outputs, 0)
	b.PrependUOffsetTSlot(4, name, 0)
	subgraph := b.EndObject()

	b.StartVector(flatbuffers.SizeUOffsetT, 1, flatbuffers.SizeUOffsetT)
	b.PrependUOffsetT(subgraph)
	subgraphs := b.EndVector(1)

	desc := b.CreateString("card classifier test fixture")

	// Model slots: version, operator_codes, subgraphs, description, buffers.
	b.StartObject(5)
	b.PrependUint32Slot(0, 3, 0)
	b.PrependUOffsetTSlot(2, subgraphs, 0)
	b.PrependUOffsetTSlot(3, desc, 0)
	model := b.EndObject()

	b.FinishWithFileIdentifier(model, []byte("TFL3"))
	return b.FinishedBytes()
}

func TestParse(t *testing.T) {
	m, err := tflite.Parse(buildCardModel())
	require.NoError(t, err)

	assert.Equal(t, uint32(3), m.Version())
	assert.Equal(t, "card classifier test fixture", m.Description())
	require.Equal(t, 1, m.SubgraphsLen())

	g, err := m.Primary()
	require.NoError(t, err)
	assert.Equal(t, "main", g.Name())
	assert.Equal(t, 2, g.TensorsLen())
	require.Equal(t, 1, g.InputsLen())
	require.Equal(t, 1, g.OutputsLen())

	in, err := g.Input(0)
	require.NoError(t, err)
	assert.Equal(t, "input_1", in.Name())
	assert.Equal(t, []int{1, 70, 70, 1}, in.Shape())
	assert.Equal(t, tflite.TensorTypeFloat32, in.Type())

	out, err := g.Output(0)
	require.NoError(t, err)
	assert.Equal(t, "Identity", out.Name())
	assert.Equal(t, []int{1, 52}, out.Shape())
	assert.Equal(t, tflite.TensorTypeFloat32, out.Type())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		wantErr error
	}{
		{
			name:    "empty buffer",
			buf:     nil,
			wantErr: tflite.ErrTruncated,
		},
		{
			name:    "short buffer",
			buf:     []byte{0, 0, 0},
			wantErr: tflite.ErrTruncated,
		},
		{
			name:    "wrong identifier",
			buf:     []byte{12, 0, 0, 0, 'G', 'G', 'U', 'F', 0, 0, 0, 0},
			wantErr: tflite.ErrNotTFLite,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tflite.Parse(tt.buf)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOutOfRange(t *testing.T) {
	m, err := tflite.Parse(buildCardModel())
	require.NoError(t, err)

	_, err = m.Subgraph(1)
	assert.Error(t, err)

	g, err := m.Primary()
	require.NoError(t, err)

	_, err = g.Input(1)
	assert.Error(t, err)
	_, err = g.Output(-1)
	assert.Error(t, err)
	_, err = g.Tensor(2)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.tflite")
	require.NoError(t, os.WriteFile(path, buildCardModel(), 0o644))

	m, err := tflite.Open(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), m.Version())

	_, err = tflite.Open(filepath.Join(dir, "missing.tflite"))
	assert.Error(t, err)
}

func TestTensorTypeNames(t *testing.T) {
	tests := []struct {
		ttype tflite.TensorType
		str   string
		dtype string
	}{
		{tflite.TensorTypeFloat32, "float32", "DT_FLOAT"},
		{tflite.TensorTypeUint8, "uint8", "DT_UINT8"},
		{tflite.TensorTypeInt32, "int32", "DT_INT32"},
		{tflite.TensorTypeInt8, "int8", "DT_INT8"},
		{tflite.TensorTypeFloat64, "float64", "DT_DOUBLE"},
		{tflite.TensorType(200), "unknown(200)", "DT_INVALID"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.ttype.String())
		assert.Equal(t, tt.dtype, tt.ttype.DType())
	}
}
