package tflite

import "fmt"

// TensorType is the element type of a tensor, matching the TensorType enum
// of the TFLite schema.
type TensorType byte

const (
	TensorTypeFloat32 TensorType = iota
	TensorTypeFloat16
	TensorTypeInt32
	TensorTypeUint8
	TensorTypeInt64
	TensorTypeString
	TensorTypeBool
	TensorTypeInt16
	TensorTypeComplex64
	TensorTypeInt8
	TensorTypeFloat64
)

func (t TensorType) String() string {
	switch t {
	case TensorTypeFloat32:
		return "float32"
	case TensorTypeFloat16:
		return "float16"
	case TensorTypeInt32:
		return "int32"
	case TensorTypeUint8:
		return "uint8"
	case TensorTypeInt64:
		return "int64"
	case TensorTypeString:
		return "string"
	case TensorTypeBool:
		return "bool"
	case TensorTypeInt16:
		return "int16"
	case TensorTypeComplex64:
		return "complex64"
	case TensorTypeInt8:
		return "int8"
	case TensorTypeFloat64:
		return "float64"
	}
	return fmt.Sprintf("unknown(%d)", byte(t))
}

// DType returns the TensorFlow DT_* name used by graph-model signatures.
func (t TensorType) DType() string {
	switch t {
	case TensorTypeFloat32:
		return "DT_FLOAT"
	case TensorTypeFloat16:
		return "DT_HALF"
	case TensorTypeInt32:
		return "DT_INT32"
	case TensorTypeUint8:
		return "DT_UINT8"
	case TensorTypeInt64:
		return "DT_INT64"
	case TensorTypeString:
		return "DT_STRING"
	case TensorTypeBool:
		return "DT_BOOL"
	case TensorTypeInt16:
		return "DT_INT16"
	case TensorTypeComplex64:
		return "DT_COMPLEX64"
	case TensorTypeInt8:
		return "DT_INT8"
	case TensorTypeFloat64:
		return "DT_DOUBLE"
	}
	return "DT_INVALID"
}
