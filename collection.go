// collection.go
package qml

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Collection holds a sequence of qnodes that share one numeric backend and are
evaluated together on the same parameters. The first node appended fixes the
collection's interface; every later node must carry the same tag.
*/
type Collection struct {
	mu      sync.RWMutex
	nodes   []*QNode
	iface   Interface
	config  *Config
	metrics *EvalMetrics
}

// CollectionOption is a function type for configuring collections
type CollectionOption func(*Collection)

// WithWorkers sets how many goroutines Evaluate may use.
func WithWorkers(n int) CollectionOption {
	return func(c *Collection) {
		c.config.Workers = n
	}
}

// WithEvalTimeout bounds a single Evaluate call.
func WithEvalTimeout(d time.Duration) CollectionOption {
	return func(c *Collection) {
		c.config.EvalTimeout = d
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) CollectionOption {
	return func(c *Collection) {
		if config != nil {
			c.config = config
		}
	}
}

// NewCollection creates an empty collection
func NewCollection(opts ...CollectionOption) *Collection {
	c := &Collection{
		nodes:   make([]*QNode, 0),
		config:  NewConfig(),
		metrics: newEvalMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

/*
Append adds a qnode to the collection. The first qnode decides the
collection's interface; appending a qnode with a different tag fails with
ErrMixedInterfaces so that backend mismatches surface at build time instead
of mid-evaluation.
*/
func (c *Collection) Append(q *QNode) error {
	if q == nil || q.Fn == nil {
		return &TypeError{Context: "qnode", Value: q, Want: "a qnode with a callable Fn"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.nodes) == 0 {
		c.iface = q.Interface
	} else if q.Interface != c.iface {
		return fmt.Errorf("%w: collection uses %q, qnode %s uses %q",
			ErrMixedInterfaces, c.iface, q.ID, q.Interface)
	}

	c.nodes = append(c.nodes, q)
	return nil
}

// Extend appends several qnodes, stopping at the first rejection.
func (c *Collection) Extend(nodes ...*QNode) error {
	for _, q := range nodes {
		if err := c.Append(q); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of qnodes in the collection.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.nodes)
}

// Interface returns the backend tag the collection is locked to.
func (c *Collection) Interface() Interface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.iface
}

// Metrics exposes the collection's evaluation metrics.
func (c *Collection) Metrics() *EvalMetrics {
	return c.metrics
}

/*
Evaluate runs every qnode on the given parameters and returns their results
in append order. Evaluation is sequential unless the collection is configured
with more than one worker, in which case the qnodes run concurrently and the
results are gathered back into order. Either way the first failure, taken in
append order, aborts the call.
*/
func (c *Collection) Evaluate(ctx context.Context, params []float64) ([]any, error) {
	c.mu.RLock()
	nodes := make([]*QNode, len(c.nodes))
	copy(nodes, c.nodes)
	c.mu.RUnlock()

	startTime := time.Now()

	if timeout := c.evalTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var results []any
	var err error
	if workers := c.workerCount(); workers > 1 && len(nodes) > 1 {
		results, err = evalParallel(ctx, nodes, params, workers)
	} else {
		results, err = evalSequential(ctx, nodes, params)
	}

	c.metrics.recordEval(startTime, len(nodes), err)
	return results, err
}

func evalSequential(ctx context.Context, nodes []*QNode, params []float64) ([]any, error) {
	results := make([]any, len(nodes))
	for i, node := range nodes {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("evaluating qnode %s: %w", node.ID, ctx.Err())
		default:
		}

		r, err := node.Fn(params)
		if err != nil {
			return nil, fmt.Errorf("evaluating qnode %s: %w", node.ID, err)
		}
		results[i] = r
	}
	return results, nil
}

func evalParallel(ctx context.Context, nodes []*QNode, params []float64, workers int) ([]any, error) {
	errnie.Info(
		"Evaluate - %d qnodes across %d workers",
		len(nodes),
		workers,
	)

	if workers > len(nodes) {
		workers = len(nodes)
	}

	results := make([]any, len(nodes))
	errs := make([]error, len(nodes))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					errs[i] = ctx.Err()
					continue
				default:
				}
				results[i], errs[i] = nodes[i].Fn(params)
			}
		}()
	}

feed:
	for i := range nodes {
		select {
		case jobs <- i:
		case <-ctx.Done():
			// Indices past this point were never handed to a worker.
			for j := i; j < len(nodes); j++ {
				errs[j] = ctx.Err()
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// Report the first failure in append order so concurrent runs stay
	// deterministic from the caller's point of view.
	for i, err := range errs {
		if err != nil {
			log.Printf("QNode %s failed: %v", nodes[i].ID, err)
			return nil, fmt.Errorf("evaluating qnode %s: %w", nodes[i].ID, err)
		}
	}
	return results, nil
}

func (c *Collection) workerCount() int {
	if c.config != nil && c.config.Workers > 1 {
		return c.config.Workers
	}
	return 1
}

func (c *Collection) evalTimeout() time.Duration {
	if c.config != nil {
		return c.config.EvalTimeout
	}
	return 0
}
