package expr

import (
	"fmt"

	"github.com/katalvlaran/exprad/manifold"
)

// node is the unit of the expression graph. Nodes are immutable after
// construction and shared freely between parents; a parent can only be
// built from already-complete children, which rules out cycles
// structurally.
type node[T manifold.Value] interface {
	// keys adds every variable key this sub-expression (transitively)
	// depends on into set.
	keys(set map[Key]struct{})

	// value computes the value alone, with no derivative bookkeeping.
	// It must agree exactly with the value component of augmented.
	value(vals Values) (T, error)

	// augmented computes the value together with the full per-variable
	// Jacobian map.
	augmented(vals Values) (*Augmented[T], error)
}

// constantNode holds one fixed value, independent of Values.
type constantNode[T manifold.Value] struct {
	constant T
}

func (n *constantNode[T]) keys(map[Key]struct{}) {}

func (n *constantNode[T]) value(Values) (T, error) {
	return n.constant, nil
}

func (n *constantNode[T]) augmented(Values) (*Augmented[T], error) {
	return constantAugmented(n.constant), nil
}

// leafNode binds one variable key; its value is a typed lookup in Values.
type leafNode[T manifold.Value] struct {
	key Key
}

func (n *leafNode[T]) keys(set map[Key]struct{}) {
	set[n.key] = struct{}{}
}

func (n *leafNode[T]) value(vals Values) (T, error) {
	var zero T

	// 1) Presence check: absent key is a distinct failure.
	raw, ok := vals.At(n.key)
	if !ok {
		return zero, fmt.Errorf("expr: leaf %d: %w", n.key, ErrKeyNotFound)
	}

	// 2) Typed assertion: present but wrongly typed is the other failure.
	t, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("expr: leaf %d holds %T: %w", n.key, raw, ErrTypeMismatch)
	}

	return t, nil
}

func (n *leafNode[T]) augmented(vals Values) (*Augmented[T], error) {
	t, err := n.value(vals)
	if err != nil {
		return nil, err
	}

	return leafAugmented(t, n.key), nil
}

// invalidNode records a construction defect (nil function, zero-value
// child) and reports it at evaluation time instead of evaluating a
// half-built graph.
type invalidNode[T manifold.Value] struct {
	err error
}

func (n *invalidNode[T]) keys(map[Key]struct{}) {}

func (n *invalidNode[T]) value(Values) (T, error) {
	var zero T

	return zero, n.err
}

func (n *invalidNode[T]) augmented(Values) (*Augmented[T], error) {
	return nil, n.err
}
