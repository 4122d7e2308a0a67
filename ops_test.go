package qml

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRotationMatrices(t *testing.T) {
	Convey("Given the single-qubit rotation gates", t, func() {
		Convey("When the angle is zero", func() {
			m, err := RX.Matrix([]float64{0})

			Convey("Then RX is the identity", func() {
				So(err, ShouldBeNil)
				So(real(m.At(0, 0)), ShouldAlmostEqual, 1)
				So(real(m.At(1, 1)), ShouldAlmostEqual, 1)
				So(m.At(0, 1), ShouldEqual, complex(0, 0))
				So(m.At(1, 0), ShouldEqual, complex(0, 0))
			})
		})

		Convey("When rotating about X by pi", func() {
			m, err := RX.Matrix([]float64{math.Pi})

			Convey("Then the off-diagonal is -i", func() {
				So(err, ShouldBeNil)
				So(real(m.At(0, 0)), ShouldAlmostEqual, 0)
				So(imag(m.At(0, 1)), ShouldAlmostEqual, -1)
				So(imag(m.At(1, 0)), ShouldAlmostEqual, -1)
			})
		})

		Convey("When rotating about Y by pi/2", func() {
			m, err := RY.Matrix([]float64{math.Pi / 2})

			Convey("Then the entries are real with the expected signs", func() {
				h := math.Sqrt(2) / 2
				So(err, ShouldBeNil)
				So(real(m.At(0, 0)), ShouldAlmostEqual, h)
				So(real(m.At(0, 1)), ShouldAlmostEqual, -h)
				So(real(m.At(1, 0)), ShouldAlmostEqual, h)
				So(real(m.At(1, 1)), ShouldAlmostEqual, h)
				So(imag(m.At(0, 1)), ShouldAlmostEqual, 0)
			})
		})

		Convey("When rotating about Z by pi", func() {
			m, err := RZ.Matrix([]float64{math.Pi})

			Convey("Then the diagonal holds the phases -i and i", func() {
				So(err, ShouldBeNil)
				So(imag(m.At(0, 0)), ShouldAlmostEqual, -1)
				So(imag(m.At(1, 1)), ShouldAlmostEqual, 1)
				So(m.At(0, 1), ShouldEqual, complex(0, 0))
			})
		})
	})
}

func TestFixedGates(t *testing.T) {
	Convey("Given the parameterless gates", t, func() {
		Convey("Then PauliX swaps the basis states", func() {
			m, err := PauliX.Matrix(nil)
			So(err, ShouldBeNil)
			So(m.At(0, 1), ShouldEqual, complex(1, 0))
			So(m.At(1, 0), ShouldEqual, complex(1, 0))
			So(m.At(0, 0), ShouldEqual, complex(0, 0))
		})

		Convey("Then Hadamard has magnitude 1/sqrt(2) everywhere", func() {
			m, err := Hadamard.Matrix(nil)
			So(err, ShouldBeNil)
			h := 1 / math.Sqrt(2)
			So(real(m.At(0, 0)), ShouldAlmostEqual, h)
			So(real(m.At(0, 1)), ShouldAlmostEqual, h)
			So(real(m.At(1, 0)), ShouldAlmostEqual, h)
			So(real(m.At(1, 1)), ShouldAlmostEqual, -h)
		})

		Convey("Then CNOT flips the target only when the control is set", func() {
			m, err := CNOT.Matrix(nil)
			So(err, ShouldBeNil)
			So(m.At(0, 0), ShouldEqual, complex(1, 0))
			So(m.At(1, 1), ShouldEqual, complex(1, 0))
			So(m.At(2, 3), ShouldEqual, complex(1, 0))
			So(m.At(3, 2), ShouldEqual, complex(1, 0))
			So(m.At(2, 2), ShouldEqual, complex(0, 0))
		})

		Convey("Then CZ flips the phase of the |11> state", func() {
			m, err := CZ.Matrix(nil)
			So(err, ShouldBeNil)
			So(m.At(3, 3), ShouldEqual, complex(-1, 0))
			So(m.At(0, 0), ShouldEqual, complex(1, 0))
		})

		Convey("Then CRX rotates only the controlled subspace", func() {
			m, err := CRX.Matrix([]float64{math.Pi})
			So(err, ShouldBeNil)
			So(m.At(0, 0), ShouldEqual, complex(1, 0))
			So(m.At(1, 1), ShouldEqual, complex(1, 0))
			So(real(m.At(2, 2)), ShouldAlmostEqual, 0)
			So(imag(m.At(2, 3)), ShouldAlmostEqual, -1)
			So(imag(m.At(3, 2)), ShouldAlmostEqual, -1)
		})
	})
}

func TestGateBuild(t *testing.T) {
	Convey("Given a rotation gate", t, func() {
		wires := NewWireRange(1)

		Convey("When built with the right arity", func() {
			params := []float64{0.5}
			op, err := RX.Build(params, wires)

			Convey("Then the operation carries gate, params and wires", func() {
				So(err, ShouldBeNil)
				So(op.Gate.Name, ShouldEqual, "RX")
				So(op.Params, ShouldResemble, []float64{0.5})
				So(op.Wires.Labels(), ShouldResemble, []any{0})
			})

			Convey("Then the parameters are copied, not aliased", func() {
				params[0] = 99
				So(op.Params[0], ShouldAlmostEqual, 0.5)
			})

			Convey("Then the operation yields its gate's unitary", func() {
				got, err := op.Matrix()
				So(err, ShouldBeNil)

				want, err := RX.Matrix(op.Params)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, want)
			})
		})

		Convey("When built with the wrong parameter count", func() {
			_, err := RX.Build(nil, wires)

			Convey("Then it fails with a shape error", func() {
				var serr *ShapeError
				So(errors.As(err, &serr), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "RX parameters must be of shape [1]; got [0]")
			})
		})

		Convey("When built on the wrong number of wires", func() {
			_, err := RX.Build([]float64{0.5}, NewWireRange(2))

			Convey("Then it fails with a shape error", func() {
				var serr *ShapeError
				So(errors.As(err, &serr), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "RX wires")
			})
		})
	})

	Convey("Given a two-qubit gate", t, func() {
		Convey("When built on a single wire", func() {
			_, err := CNOT.Build(nil, NewWireRange(1))

			Convey("Then it fails with a shape error", func() {
				So(err.Error(), ShouldEqual, "CNOT wires must be of shape [2]; got [1]")
			})
		})
	})
}

func TestOperationString(t *testing.T) {
	Convey("Given built operations", t, func() {
		w := NewWireRange(2)

		Convey("Then parameterized gates print their angles", func() {
			single, _ := w.Subset(0)
			op, err := RY.Build([]float64{0.1}, single)
			So(err, ShouldBeNil)
			So(op.String(), ShouldEqual, "RY([0.1], wires=[0])")
		})

		Convey("Then parameterless gates print wires only", func() {
			op, err := CNOT.Build(nil, w)
			So(err, ShouldBeNil)
			So(op.String(), ShouldEqual, "CNOT(wires=[0 1])")
		})
	})
}
