// ops.go
package qml

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Gate describes one member of the fixed gate set: its parameter count, the
// number of wires it acts on, and its unitary matrix.
type Gate struct {
	Name      string
	NumParams int
	NumWires  int

	matrix func(params []float64) *mat.CDense
}

var (
	// RX rotates a single qubit about the X axis by the given angle.
	RX = Gate{Name: "RX", NumParams: 1, NumWires: 1, matrix: rxMatrix}

	// RY rotates a single qubit about the Y axis by the given angle.
	RY = Gate{Name: "RY", NumParams: 1, NumWires: 1, matrix: ryMatrix}

	// RZ rotates a single qubit about the Z axis by the given angle.
	RZ = Gate{Name: "RZ", NumParams: 1, NumWires: 1, matrix: rzMatrix}

	// PauliX is the bit flip.
	PauliX = Gate{Name: "PauliX", NumParams: 0, NumWires: 1, matrix: pauliXMatrix}

	// Hadamard puts a basis state into equal superposition.
	Hadamard = Gate{Name: "Hadamard", NumParams: 0, NumWires: 1, matrix: hadamardMatrix}

	// CNOT flips the second wire when the first is set.
	CNOT = Gate{Name: "CNOT", NumParams: 0, NumWires: 2, matrix: cnotMatrix}

	// CZ applies a phase flip when both wires are set.
	CZ = Gate{Name: "CZ", NumParams: 0, NumWires: 2, matrix: czMatrix}

	// CRX rotates the second wire about the X axis when the first is set.
	CRX = Gate{Name: "CRX", NumParams: 1, NumWires: 2, matrix: crxMatrix}
)

// Rotation selects the single-qubit rotation family used by embeddings.
type Rotation string

const (
	RotationX Rotation = "X"
	RotationY Rotation = "Y"
	RotationZ Rotation = "Z"
)

// rotationGates is the closed map from axis to gate. The legal axis set is
// exactly its key set.
var rotationGates = map[Rotation]Gate{
	RotationX: RX,
	RotationY: RY,
	RotationZ: RZ,
}

var rotationOptions = []string{string(RotationX), string(RotationY), string(RotationZ)}

// Build binds the gate to parameters and target wires, validating both.
func (g Gate) Build(params []float64, target *Wires) (Operation, error) {
	if len(params) != g.NumParams {
		return Operation{}, &ShapeError{
			Context: g.Name + " parameters",
			Want:    []int{g.NumParams},
			Got:     []int{len(params)},
			Exact:   true,
		}
	}
	if target.Len() != g.NumWires {
		return Operation{}, &ShapeError{
			Context: g.Name + " wires",
			Want:    []int{g.NumWires},
			Got:     []int{target.Len()},
			Exact:   true,
		}
	}
	bound := make([]float64, len(params))
	copy(bound, params)
	return Operation{Gate: g, Params: bound, Wires: target}, nil
}

// Matrix returns the gate's unitary for the given parameters.
func (g Gate) Matrix(params []float64) (*mat.CDense, error) {
	if len(params) != g.NumParams {
		return nil, &ShapeError{
			Context: g.Name + " parameters",
			Want:    []int{g.NumParams},
			Got:     []int{len(params)},
			Exact:   true,
		}
	}
	return g.matrix(params), nil
}

// Operation is one gate bound to parameters and target wires.
type Operation struct {
	Gate   Gate
	Params []float64
	Wires  *Wires
}

// Matrix returns the operation's unitary.
func (op Operation) Matrix() (*mat.CDense, error) {
	return op.Gate.Matrix(op.Params)
}

func (op Operation) String() string {
	if len(op.Params) == 0 {
		return fmt.Sprintf("%s(wires=%v)", op.Gate.Name, op.Wires.Labels())
	}
	return fmt.Sprintf("%s(%v, wires=%v)", op.Gate.Name, op.Params, op.Wires.Labels())
}

// RX = [cos(θ/2)    -i·sin(θ/2)]
//      [-i·sin(θ/2)  cos(θ/2)  ]
func rxMatrix(params []float64) *mat.CDense {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(0, -math.Sin(params[0]/2))
	return mat.NewCDense(2, 2, []complex128{c, s, s, c})
}

// RY = [cos(θ/2) -sin(θ/2)]
//      [sin(θ/2)  cos(θ/2)]
func ryMatrix(params []float64) *mat.CDense {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(math.Sin(params[0]/2), 0)
	return mat.NewCDense(2, 2, []complex128{c, -s, s, c})
}

// RZ = [e^{-iθ/2}  0       ]
//      [0          e^{iθ/2}]
func rzMatrix(params []float64) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		cmplx.Exp(complex(0, -params[0]/2)), 0,
		0, cmplx.Exp(complex(0, params[0]/2)),
	})
}

// X = [0 1]
//     [1 0]
func pauliXMatrix([]float64) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
}

// H = 1/√2 * [1  1]
//            [1 -1]
func hadamardMatrix([]float64) *mat.CDense {
	h := complex(1/math.Sqrt(2), 0)
	return mat.NewCDense(2, 2, []complex128{h, h, h, -h})
}

func cnotMatrix([]float64) *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

func czMatrix([]float64) *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	})
}

// CRX embeds RX(θ) in the subspace where the control wire is set.
func crxMatrix(params []float64) *mat.CDense {
	c := complex(math.Cos(params[0]/2), 0)
	s := complex(0, -math.Sin(params[0]/2))
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, c, s,
		0, 0, s, c,
	})
}
