package qml

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMixedInterfaces signals that two interface tags were combined where a
// single shared tag is required.
var ErrMixedInterfaces = errors.New("mixed interfaces")

// UnknownInterfaceError reports an interface tag outside the supported set.
type UnknownInterfaceError struct {
	Interface Interface
}

func (e *UnknownInterfaceError) Error() string {
	return fmt.Sprintf("unknown interface %q", string(e.Interface))
}

// ShapeError reports a dimensionality or length violation. Want is an upper
// bound per dimension unless Exact is set.
type ShapeError struct {
	Context string
	Want    []int
	Got     []int
	Exact   bool
}

func (e *ShapeError) Error() string {
	if e.Exact {
		return fmt.Sprintf("%s must be of shape %v; got %v", e.Context, e.Want, e.Got)
	}
	return fmt.Sprintf("%s must be of shape %v or smaller; got %v", e.Context, e.Want, e.Got)
}

// TypeError reports a value of the wrong dynamic type.
type TypeError struct {
	Context string
	Value   any
	Want    string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s must be %s; got %v (%T)", e.Context, e.Want, e.Value, e.Value)
}

// OptionError reports an enumerated choice outside the supported options.
type OptionError struct {
	Field   string
	Value   string
	Options []string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("did not recognize option %q for %s; must be one of [%s]",
		e.Value, e.Field, strings.Join(e.Options, " "))
}

// WireError reports an invalid wire register construction.
type WireError struct {
	Label  any
	Reason string
}

func (e *WireError) Error() string {
	return fmt.Sprintf("wire %v: %s", e.Label, e.Reason)
}
