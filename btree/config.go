package btree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	// MinDegree is the lower occupancy bound for every node except the root
	// and value nodes.
	MinDegree = 2
	// MaxDegree is the occupancy at which a node is split. It is never
	// observable between operations; settled nodes hold at most MaxDegree-1
	// children.
	MaxDegree = 4
)

// LessFunc determines how keys of type K are ordered. It has to implement a
// strict total order: two keys a and b are considered equal if neither
// less(a, b) nor less(b, a) holds.
type LessFunc[K any] func(a, b K) bool

// Less returns a default LessFunc that uses the '<' operator for types that
// support it.
func Less[K constraints.Ordered]() LessFunc[K] {
	return func(a, b K) bool { return a < b }
}

// Config configures a tree.
type Config[K any] struct {
	// Less orders the keys of the tree.
	Less LessFunc[K]
}

func (cfg Config[K]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: less function is required", ErrInvalidConfig)
	}
	return nil
}
