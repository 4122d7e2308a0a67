package qml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
	"gorgonia.org/tensor"
)

/*
Interface names the numeric backend a QNode produces results for. The set is
closed: every tag maps to reducer primitives through a static lookup table,
and anything outside the table is rejected up front rather than discovered
mid-evaluation.
*/
type Interface string

const (
	// InterfaceNone marks nodes returning plain Go numbers.
	InterfaceNone Interface = ""
	// InterfaceFloats marks nodes returning float64 values or slices,
	// optionally carrying dual numbers for derivative tracking.
	InterfaceFloats Interface = "floats"
	// InterfaceMat marks nodes returning gonum matrices or vectors.
	InterfaceMat Interface = "mat"
	// InterfaceTensor marks nodes returning gorgonia tensors.
	InterfaceTensor Interface = "tensor"
)

/*
ReduceFunc collapses the results of a collection evaluation into a single
value. Which concrete reducer applies is decided by the collection's
interface tag, once, before any node runs.
*/
type ReduceFunc func(results []any) (any, error)

type primitives struct {
	sum ReduceFunc
	dot func(a, b []any) (any, error)
}

var interfacePrimitives = map[Interface]primitives{
	InterfaceNone:   {sum: sumFloats, dot: dotFloats},
	InterfaceFloats: {sum: sumDualAware, dot: dotDualAware},
	InterfaceMat:    {sum: sumMat, dot: dotMat},
	InterfaceTensor: {sum: sumTensor, dot: dotTensor},
}

/*
SumFunc returns the summing reducer for an interface tag. Unknown tags return
an UnknownInterfaceError; there is no fallback.
*/
func SumFunc(iface Interface) (ReduceFunc, error) {
	p, ok := interfacePrimitives[iface]
	if !ok {
		return nil, &UnknownInterfaceError{Interface: iface}
	}
	return p.sum, nil
}

func dotFunc(iface Interface) (func(a, b []any) (any, error), error) {
	p, ok := interfacePrimitives[iface]
	if !ok {
		return nil, &UnknownInterfaceError{Interface: iface}
	}
	return p.dot, nil
}

/*
sumFloats adds plain numeric results. Scalar results contribute directly,
slice results contribute their element sum. An empty result set sums to 0.
*/
func sumFloats(results []any) (any, error) {
	total := 0.0
	for i, r := range results {
		switch v := r.(type) {
		case float64:
			total += v
		case []float64:
			total += floats.Sum(v)
		default:
			f, err := toFloat(v)
			if err != nil {
				return nil, &TypeError{
					Context: fmt.Sprintf("result %d", i),
					Value:   r,
					Want:    "a float64 or []float64",
				}
			}
			total += f
		}
	}
	return total, nil
}

/*
sumDualAware adds results that may carry derivative information as dual
numbers. Plain numbers contribute only to the real part. The sum is returned
as a dual.Number when at least one input was dual, as a float64 otherwise.
*/
func sumDualAware(results []any) (any, error) {
	var total dual.Number
	sawDual := false

	for i, r := range results {
		switch v := r.(type) {
		case dual.Number:
			total.Real += v.Real
			total.Emag += v.Emag
			sawDual = true
		case []dual.Number:
			for _, d := range v {
				total.Real += d.Real
				total.Emag += d.Emag
			}
			sawDual = true
		case float64:
			total.Real += v
		case []float64:
			total.Real += floats.Sum(v)
		default:
			f, err := toFloat(v)
			if err != nil {
				return nil, &TypeError{
					Context: fmt.Sprintf("result %d", i),
					Value:   r,
					Want:    "a dual.Number, float64 or a slice of either",
				}
			}
			total.Real += f
		}
	}

	if sawDual {
		return total, nil
	}
	return total.Real, nil
}

/*
sumMat adds matrix-backed results by summing every element of every matrix.
Vectors qualify as single-column matrices. An empty result set sums to 0.
*/
func sumMat(results []any) (any, error) {
	total := 0.0
	for i, r := range results {
		m, ok := r.(mat.Matrix)
		if !ok {
			return nil, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   r,
				Want:    "a gonum matrix",
			}
		}
		total += mat.Sum(m)
	}
	return total, nil
}

/*
sumTensor reduces every tensor result to a scalar and folds the scalars
together with tensor addition. Backend errors from the tensor package pass
through unchanged. An empty result set yields a scalar zero tensor.
*/
func sumTensor(results []any) (any, error) {
	var acc tensor.Tensor
	for i, r := range results {
		t, ok := r.(tensor.Tensor)
		if !ok {
			return nil, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   r,
				Want:    "a gorgonia tensor",
			}
		}
		reduced, err := tensor.Sum(t)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = reduced
			continue
		}
		summed, err := tensor.Add(acc, reduced)
		if err != nil {
			return nil, err
		}
		acc = summed
	}
	if acc == nil {
		return tensor.New(tensor.FromScalar(0.0)), nil
	}
	return acc, nil
}

func dotFloats(a, b []any) (any, error) {
	if len(a) != len(b) {
		return nil, &ShapeError{
			Context: "dot operands",
			Want:    []int{len(a)},
			Got:     []int{len(b)},
			Exact:   true,
		}
	}
	av, err := toFloatResults(a)
	if err != nil {
		return nil, err
	}
	bv, err := toFloatResults(b)
	if err != nil {
		return nil, err
	}
	return floats.Dot(av, bv), nil
}

/*
dotDualAware pairs results elementwise using dual-number multiplication,
(a+bε)(c+dε) = ac + (ad+bc)ε, so first derivatives survive the product.
Plain numbers are treated as duals with a zero derivative part.
*/
func dotDualAware(a, b []any) (any, error) {
	if len(a) != len(b) {
		return nil, &ShapeError{
			Context: "dot operands",
			Want:    []int{len(a)},
			Got:     []int{len(b)},
			Exact:   true,
		}
	}

	var total dual.Number
	sawDual := false
	for i := range a {
		x, xDual, err := toDual(a[i], i)
		if err != nil {
			return nil, err
		}
		y, yDual, err := toDual(b[i], i)
		if err != nil {
			return nil, err
		}
		sawDual = sawDual || xDual || yDual
		total.Real += x.Real * y.Real
		total.Emag += x.Real*y.Emag + x.Emag*y.Real
	}

	if sawDual {
		return total, nil
	}
	return total.Real, nil
}

/*
dotMat pairs matrix results. Vector pairs use the gonum dot product; general
matrix pairs use the Frobenius inner product, the elementwise product summed.
Dimension mismatches surface as shape errors before gonum would panic.
*/
func dotMat(a, b []any) (any, error) {
	if len(a) != len(b) {
		return nil, &ShapeError{
			Context: "dot operands",
			Want:    []int{len(a)},
			Got:     []int{len(b)},
			Exact:   true,
		}
	}

	total := 0.0
	for i := range a {
		x, ok := a[i].(mat.Matrix)
		if !ok {
			return nil, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   a[i],
				Want:    "a gonum matrix",
			}
		}
		y, ok := b[i].(mat.Matrix)
		if !ok {
			return nil, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   b[i],
				Want:    "a gonum matrix",
			}
		}

		if xv, xok := x.(mat.Vector); xok {
			if yv, yok := y.(mat.Vector); yok {
				if xv.Len() != yv.Len() {
					return nil, &ShapeError{
						Context: fmt.Sprintf("result %d", i),
						Want:    []int{xv.Len()},
						Got:     []int{yv.Len()},
						Exact:   true,
					}
				}
				total += mat.Dot(xv, yv)
				continue
			}
		}

		xr, xc := x.Dims()
		yr, yc := y.Dims()
		if xr != yr || xc != yc {
			return nil, &ShapeError{
				Context: fmt.Sprintf("result %d", i),
				Want:    []int{xr, xc},
				Got:     []int{yr, yc},
				Exact:   true,
			}
		}
		var prod mat.Dense
		prod.MulElem(x, y)
		total += mat.Sum(&prod)
	}
	return total, nil
}

/*
dotTensor pairs tensor results with the tensor dot product and folds the
partial products together with tensor addition. Backend errors pass through
unchanged. Empty operands yield a scalar zero tensor.
*/
func dotTensor(a, b []any) (any, error) {
	if len(a) != len(b) {
		return nil, &ShapeError{
			Context: "dot operands",
			Want:    []int{len(a)},
			Got:     []int{len(b)},
			Exact:   true,
		}
	}

	var acc tensor.Tensor
	for i := range a {
		x, ok := a[i].(tensor.Tensor)
		if !ok {
			return nil, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   a[i],
				Want:    "a gorgonia tensor",
			}
		}
		y, ok := b[i].(tensor.Tensor)
		if !ok {
			return nil, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   b[i],
				Want:    "a gorgonia tensor",
			}
		}
		prod, err := tensor.Dot(x, y)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = prod
			continue
		}
		summed, err := tensor.Add(acc, prod)
		if err != nil {
			return nil, err
		}
		acc = summed
	}
	if acc == nil {
		return tensor.New(tensor.FromScalar(0.0)), nil
	}
	return acc, nil
}

func toFloatResults(results []any) ([]float64, error) {
	out := make([]float64, len(results))
	for i, r := range results {
		f, err := toFloat(r)
		if err != nil {
			return nil, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   r,
				Want:    "a number",
			}
		}
		out[i] = f
	}
	return out, nil
}

func toDual(v any, i int) (dual.Number, bool, error) {
	switch x := v.(type) {
	case dual.Number:
		return x, true, nil
	case float64:
		return dual.Number{Real: x}, false, nil
	default:
		f, err := toFloat(v)
		if err != nil {
			return dual.Number{}, false, &TypeError{
				Context: fmt.Sprintf("result %d", i),
				Value:   v,
				Want:    "a dual.Number or a number",
			}
		}
		return dual.Number{Real: f}, false, nil
	}
}
