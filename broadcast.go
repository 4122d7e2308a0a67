package qml

// Pattern selects how Broadcast groups the wires an operation sequence acts
// on. Group order follows wire order.
type Pattern string

const (
	// PatternSingle forms one group per wire.
	PatternSingle Pattern = "single"

	// PatternDouble forms non-overlapping pairs: (0,1), (2,3), ...
	PatternDouble Pattern = "double"

	// PatternChain forms overlapping pairs: (0,1), (1,2), ...
	PatternChain Pattern = "chain"

	// PatternRing is chain plus the wrap-around pair (n-1, 0). Two wires
	// degenerate to a single pair.
	PatternRing Pattern = "ring"
)

var patternOptions = []string{
	string(PatternSingle),
	string(PatternDouble),
	string(PatternChain),
	string(PatternRing),
}

type broadcastConfig struct {
	strictLength bool
}

// BroadcastOption configures one Broadcast call.
type BroadcastOption func(*broadcastConfig)

// WithStrictLength toggles the check that exactly one parameter row exists
// per wire group. With strict off, fewer rows than groups is legal and the
// excess groups receive no operation. Strict is the default.
func WithStrictLength(strict bool) BroadcastOption {
	return func(c *broadcastConfig) {
		c.strictLength = strict
	}
}

// wireGroups returns the ordered wire groups selected by a pattern.
func wireGroups(pattern Pattern, wires *Wires) ([]*Wires, error) {
	n := wires.Len()
	var groups []*Wires

	pair := func(i, j int) error {
		g, err := wires.Subset(i, j)
		if err != nil {
			return err
		}
		groups = append(groups, g)
		return nil
	}

	switch pattern {
	case PatternSingle:
		for i := 0; i < n; i++ {
			g, err := wires.Subset(i)
			if err != nil {
				return nil, err
			}
			groups = append(groups, g)
		}
	case PatternDouble:
		for i := 0; i+1 < n; i += 2 {
			if err := pair(i, i+1); err != nil {
				return nil, err
			}
		}
	case PatternChain:
		for i := 0; i+1 < n; i++ {
			if err := pair(i, i+1); err != nil {
				return nil, err
			}
		}
	case PatternRing:
		switch {
		case n < 2:
		case n == 2:
			if err := pair(0, 1); err != nil {
				return nil, err
			}
		default:
			for i := 0; i < n; i++ {
				if err := pair(i, (i+1)%n); err != nil {
					return nil, err
				}
			}
		}
	default:
		return nil, &OptionError{Field: "pattern", Value: string(pattern), Options: patternOptions}
	}
	return groups, nil
}

// Broadcast applies a gate across the wire groups selected by pattern, one
// parameter row per group, and returns the resulting operation sequence.
// A nil params is legal for parameterless gates and yields one operation per
// group. Any validation failure inside gate construction propagates
// unchanged, in strict and lenient mode alike.
func Broadcast(g Gate, pattern Pattern, wires *Wires, params [][]float64, opts ...BroadcastOption) ([]Operation, error) {
	if wires == nil {
		return nil, &TypeError{Context: "wires", Value: nil, Want: "a wire register"}
	}

	cfg := broadcastConfig{strictLength: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	groups, err := wireGroups(pattern, wires)
	if err != nil {
		return nil, err
	}

	if params == nil && g.NumParams == 0 {
		params = make([][]float64, len(groups))
	}

	if cfg.strictLength {
		if len(params) != len(groups) {
			return nil, &ShapeError{
				Context: "parameters",
				Want:    []int{len(groups)},
				Got:     []int{len(params)},
				Exact:   true,
			}
		}
	} else if len(params) > len(groups) {
		return nil, &ShapeError{
			Context: "parameters",
			Want:    []int{len(groups)},
			Got:     []int{len(params)},
		}
	}

	ops := make([]Operation, 0, len(params))
	for i, row := range params {
		op, err := g.Build(row, groups[i])
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
