package qml

// QNode represents a single parameterized computation bound to a backend
type QNode struct {
	ID        string
	Interface Interface
	Fn        func(params []float64) (any, error)
}

// QNodeOption is a function type for configuring qnodes
type QNodeOption func(*QNode)

// WithInterface tags a qnode with the backend its results belong to.
func WithInterface(iface Interface) QNodeOption {
	return func(q *QNode) {
		q.Interface = iface
	}
}

// NewQNode wraps fn as a qnode. Without options the node carries the plain
// interface and its results are treated as ordinary numbers.
func NewQNode(id string, fn func(params []float64) (any, error), opts ...QNodeOption) *QNode {
	q := &QNode{
		ID: id,
		Fn: fn,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}
