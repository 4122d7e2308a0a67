package qml

import "fmt"

// AngleEmbedding encodes N features into the rotation angles of n qubits,
// where N ≤ n. The rotation axis selects RX, RY or RZ. Feature i becomes the
// angle of the rotation on wire i; when there are fewer features than wires,
// the remaining wires receive no operation.
//
// All validation happens before any operation is built: features must be a
// 1-D numeric sequence no longer than the register, and the axis must be one
// of X, Y, Z.
func AngleEmbedding(features any, wires *Wires, rotation Rotation) ([]Operation, error) {
	if wires == nil {
		return nil, &TypeError{Context: "wires", Value: nil, Want: "a wire register"}
	}

	shape, err := shapeOf(features)
	if err != nil {
		return nil, err
	}
	if err := checkShapeMax(shape, []int{wires.Len()}, "features"); err != nil {
		return nil, err
	}
	angles, err := toFloats(features)
	if err != nil {
		return nil, err
	}
	if err := checkIsInOptions(string(rotation), rotationOptions, "rotation"); err != nil {
		return nil, err
	}

	rows := make([][]float64, len(angles))
	for i, angle := range angles {
		rows[i] = []float64{angle}
	}
	return Broadcast(rotationGates[rotation], PatternSingle, wires, rows, WithStrictLength(false))
}

// BasisEmbedding prepares the computational basis state described by a binary
// feature vector: wires whose feature is 1 receive a PauliX, the rest are
// left alone. The vector length must equal the register length exactly.
func BasisEmbedding(features any, wires *Wires) ([]Operation, error) {
	if wires == nil {
		return nil, &TypeError{Context: "wires", Value: nil, Want: "a wire register"}
	}

	shape, err := shapeOf(features)
	if err != nil {
		return nil, err
	}
	if err := checkShape(shape, []int{wires.Len()}, "features"); err != nil {
		return nil, err
	}
	bits, err := toFloats(features)
	if err != nil {
		return nil, err
	}

	var ops []Operation
	for i, bit := range bits {
		if bit != 0 && bit != 1 {
			return nil, &OptionError{
				Field:   fmt.Sprintf("features[%d]", i),
				Value:   fmt.Sprintf("%v", bit),
				Options: []string{"0", "1"},
			}
		}
		if bit == 0 {
			continue
		}
		target, err := wires.Subset(i)
		if err != nil {
			return nil, err
		}
		op, err := PauliX.Build(nil, target)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
