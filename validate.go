package qml

import (
	"fmt"
	"reflect"
)

// shapeOf returns the dimensions of a nested sequence. Scalars have an empty
// shape. Ragged nesting has no shape and is rejected.
func shapeOf(v any) ([]int, error) {
	if v == nil {
		return nil, &TypeError{Context: "value", Value: v, Want: "a numeric scalar or sequence"}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []int{}, nil
	}
	n := rv.Len()
	if n == 0 {
		return []int{0}, nil
	}
	first, err := shapeOf(rv.Index(0).Interface())
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		inner, err := shapeOf(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		if !equalShape(inner, first) {
			return nil, &ShapeError{
				Context: fmt.Sprintf("element %d", i),
				Want:    first,
				Got:     inner,
				Exact:   true,
			}
		}
	}
	return append([]int{n}, first...), nil
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkShapeMax verifies got fits within bound: same rank, every dimension no
// larger than the bound's.
func checkShapeMax(got, bound []int, context string) error {
	if len(got) != len(bound) {
		return &ShapeError{Context: context, Want: bound, Got: got}
	}
	for i := range got {
		if got[i] > bound[i] {
			return &ShapeError{Context: context, Want: bound, Got: got}
		}
	}
	return nil
}

// checkShape verifies got matches want exactly.
func checkShape(got, want []int, context string) error {
	if !equalShape(got, want) {
		return &ShapeError{Context: context, Want: want, Got: got, Exact: true}
	}
	return nil
}

// checkIsInOptions verifies value is one of the supported options.
func checkIsInOptions(value string, options []string, field string) error {
	for _, o := range options {
		if o == value {
			return nil
		}
	}
	return &OptionError{Field: field, Value: value, Options: options}
}

// toFloat converts a numeric scalar to float64.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, &TypeError{Context: "element", Value: v, Want: "numeric"}
	}
}

// toFloats flattens a 1-D sequence into float64 values.
func toFloats(v any) ([]float64, error) {
	if fs, ok := v.([]float64); ok {
		out := make([]float64, len(fs))
		copy(out, fs)
		return out, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &TypeError{Context: "features", Value: v, Want: "a 1-D numeric sequence"}
	}
	out := make([]float64, rv.Len())
	for i := range out {
		f, err := toFloat(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
