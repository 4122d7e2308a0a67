package qml

import (
	"context"
	"fmt"
)

/*
EvalFunc is a deferred computation over one or more collections. Calling it
evaluates the underlying qnodes with the given parameters and reduces their
results. Nothing is cached between calls; every call re-runs every qnode.
*/
type EvalFunc func(ctx context.Context, params []float64) (any, error)

/*
Apply binds a reducer to a collection without evaluating anything. The
returned function evaluates the collection and hands all results, in append
order, to the reducer.
*/
func Apply(reduce ReduceFunc, c *Collection) EvalFunc {
	return func(ctx context.Context, params []float64) (any, error) {
		results, err := c.Evaluate(ctx, params)
		if err != nil {
			return nil, err
		}
		return reduce(results)
	}
}

/*
Sum returns a deferred sum over the collection. The reducer is picked from
the collection's interface tag once, up front, so an unknown tag fails here
rather than on the first call.
*/
func Sum(c *Collection) (EvalFunc, error) {
	if c == nil {
		return nil, &TypeError{Context: "collection", Value: nil, Want: "a collection"}
	}
	sum, err := SumFunc(c.Interface())
	if err != nil {
		return nil, err
	}
	return Apply(sum, c), nil
}

/*
Dot returns a deferred dot product of two collections. Both are evaluated on
the same parameters and their result vectors are paired elementwise, so the
collections must share one interface tag.
*/
func Dot(x, y *Collection) (EvalFunc, error) {
	if x == nil || y == nil {
		return nil, &TypeError{Context: "collection", Value: nil, Want: "a collection"}
	}
	if x.Interface() != y.Interface() {
		return nil, fmt.Errorf("%w: %q and %q",
			ErrMixedInterfaces, x.Interface(), y.Interface())
	}
	dot, err := dotFunc(x.Interface())
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, params []float64) (any, error) {
		xr, err := x.Evaluate(ctx, params)
		if err != nil {
			return nil, err
		}
		yr, err := y.Evaluate(ctx, params)
		if err != nil {
			return nil, err
		}
		return dot(xr, yr)
	}, nil
}
