package qml

import (
	"fmt"
	"strings"
)

// Wires is an ordered register of unique wire labels. Labels are integers or
// strings; order is significant and preserved across every operation.
type Wires struct {
	labels []any
	index  map[any]int
}

// NewWires builds a register from the given labels. Integer kinds are
// normalized to int so that 0 and int64(0) name the same wire.
func NewWires(labels ...any) (*Wires, error) {
	w := &Wires{
		labels: make([]any, 0, len(labels)),
		index:  make(map[any]int, len(labels)),
	}
	for _, label := range labels {
		norm, err := normalizeLabel(label)
		if err != nil {
			return nil, err
		}
		if _, dup := w.index[norm]; dup {
			return nil, &WireError{Label: norm, Reason: "labels must be unique"}
		}
		w.index[norm] = len(w.labels)
		w.labels = append(w.labels, norm)
	}
	return w, nil
}

// NewWireRange builds the register [0, 1, ..., n-1].
func NewWireRange(n int) *Wires {
	labels := make([]any, n)
	for i := range labels {
		labels[i] = i
	}
	w, _ := NewWires(labels...)
	return w
}

// normalizeLabel collapses integer kinds to int and rejects anything that is
// not an integer or a string.
func normalizeLabel(label any) (any, error) {
	switch v := label.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case string:
		return v, nil
	default:
		return nil, &TypeError{Context: "wire label", Value: label, Want: "an integer or a string"}
	}
}

// Len returns the number of wires in the register.
func (w *Wires) Len() int {
	if w == nil {
		return 0
	}
	return len(w.labels)
}

// At returns the label at position i.
func (w *Wires) At(i int) any {
	return w.labels[i]
}

// Labels returns a copy of the ordered labels.
func (w *Wires) Labels() []any {
	out := make([]any, len(w.labels))
	copy(out, w.labels)
	return out
}

// Index returns the position of a label and whether it is present.
func (w *Wires) Index(label any) (int, bool) {
	norm, err := normalizeLabel(label)
	if err != nil {
		return 0, false
	}
	i, ok := w.index[norm]
	return i, ok
}

// Contains reports whether the register holds the label.
func (w *Wires) Contains(label any) bool {
	_, ok := w.Index(label)
	return ok
}

// Equal reports whether two registers hold the same labels in the same order.
func (w *Wires) Equal(other *Wires) bool {
	if w.Len() != other.Len() {
		return false
	}
	if w == nil {
		return true
	}
	for i, label := range w.labels {
		if other.labels[i] != label {
			return false
		}
	}
	return true
}

// Subset returns a new register holding the labels at the given positions,
// in the given order.
func (w *Wires) Subset(indices ...int) (*Wires, error) {
	labels := make([]any, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(w.labels) {
			return nil, &WireError{Label: i, Reason: fmt.Sprintf("index out of range [0, %d)", len(w.labels))}
		}
		labels = append(labels, w.labels[i])
	}
	return NewWires(labels...)
}

func (w *Wires) String() string {
	parts := make([]string, len(w.labels))
	for i, label := range w.labels {
		parts[i] = fmt.Sprintf("%v", label)
	}
	return "Wires[" + strings.Join(parts, " ") + "]"
}
