package qml

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewWires(t *testing.T) {
	Convey("Given labels for a new wire register", t, func() {
		Convey("When building from ints and strings", func() {
			w, err := NewWires(0, 1, "aux")

			Convey("Then the register keeps them in order", func() {
				So(err, ShouldBeNil)
				So(w.Len(), ShouldEqual, 3)
				So(w.At(0), ShouldEqual, 0)
				So(w.At(1), ShouldEqual, 1)
				So(w.At(2), ShouldEqual, "aux")
			})
		})

		Convey("When labels arrive as mixed integer widths", func() {
			w, err := NewWires(int32(0), int64(1), uint8(2))

			Convey("Then they normalize to plain ints", func() {
				So(err, ShouldBeNil)
				So(w.At(0), ShouldEqual, 0)
				So(w.Contains(1), ShouldBeTrue)
				So(w.Contains(2), ShouldBeTrue)
			})
		})

		Convey("When a label repeats", func() {
			_, err := NewWires(0, 1, 0)

			Convey("Then construction fails with a wire error", func() {
				var werr *WireError
				So(errors.As(err, &werr), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "labels must be unique")
			})
		})

		Convey("When a label is neither an integer nor a string", func() {
			_, err := NewWires(0, 1.5)

			Convey("Then construction fails with a type error", func() {
				var terr *TypeError
				So(errors.As(err, &terr), ShouldBeTrue)
			})
		})
	})
}

func TestNewWireRange(t *testing.T) {
	Convey("Given a register size", t, func() {
		w := NewWireRange(4)

		Convey("Then the labels are consecutive ints from zero", func() {
			So(w.Len(), ShouldEqual, 4)
			So(w.Labels(), ShouldResemble, []any{0, 1, 2, 3})
		})

		Convey("Then lookups resolve by label", func() {
			i, ok := w.Index(2)
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, 2)

			_, ok = w.Index(9)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestWireSubset(t *testing.T) {
	Convey("Given a wire register", t, func() {
		w, err := NewWires("a", "b", "c", "d")
		So(err, ShouldBeNil)

		Convey("When selecting valid positions", func() {
			sub, err := w.Subset(2, 0)

			Convey("Then the subset keeps the requested order", func() {
				So(err, ShouldBeNil)
				So(sub.Labels(), ShouldResemble, []any{"c", "a"})
			})
		})

		Convey("When a position is out of range", func() {
			_, err := w.Subset(4)

			Convey("Then selection fails with a wire error", func() {
				var werr *WireError
				So(errors.As(err, &werr), ShouldBeTrue)
			})
		})
	})
}

func TestWiresEqual(t *testing.T) {
	Convey("Given two registers", t, func() {
		a, _ := NewWires(0, 1, "aux")
		b, _ := NewWires(0, 1, "aux")
		c, _ := NewWires(0, 1)

		Convey("Then equality follows labels and order", func() {
			So(a.Equal(b), ShouldBeTrue)
			So(a.Equal(c), ShouldBeFalse)
		})
	})
}

func TestWiresString(t *testing.T) {
	Convey("Given a register with mixed labels", t, func() {
		w, _ := NewWires(0, 1, "a")

		Convey("Then it formats as a bracketed label list", func() {
			So(w.String(), ShouldEqual, "Wires[0 1 a]")
		})
	})
}
