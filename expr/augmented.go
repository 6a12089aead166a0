package expr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exprad/manifold"
)

// Augmented pairs a computed value with the Jacobian of that value with
// respect to every variable it depends on, all at the current
// linearization point. An Augmented is built fresh on every evaluation,
// is never cached, and must not be mutated by callers.
type Augmented[T manifold.Value] struct {
	value     T
	jacobians JacobianMap
}

// chainTerm is one argument's contribution to a function node's result:
// the local Jacobian of the function with respect to that argument, and
// the argument's own per-variable Jacobian map. A nil local Jacobian marks
// a constant argument, which contributes nothing.
type chainTerm struct {
	local     *mat.Dense
	jacobians JacobianMap
}

// constantAugmented builds an Augmented that depends on no variable.
func constantAugmented[T manifold.Value](t T) *Augmented[T] {
	return &Augmented[T]{value: t, jacobians: JacobianMap{}}
}

// leafAugmented builds an Augmented for a value bound directly to one
// variable: its Jacobian map is {key: Identity(Dim(t))}.
func leafAugmented[T manifold.Value](t T, key Key) *Augmented[T] {
	return &Augmented[T]{
		value:     t,
		jacobians: JacobianMap{key: identity(t.Dim())},
	}
}

// chainAugmented builds an Augmented for a function node's result by
// folding every argument's chain term into one map. All terms fold
// symmetrically; the final block under each key is the SUM over all
// contributing arguments of local·upstream, so fold order cannot affect
// the result.
func chainAugmented[T manifold.Value](t T, terms ...chainTerm) *Augmented[T] {
	a := constantAugmented(t)
	var term chainTerm
	for _, term = range terms {
		a.jacobians.accumulate(term.local, term.jacobians)
	}

	return a
}

// Value returns the computed value.
func (a *Augmented[T]) Value() T { return a.value }

// Jacobians returns the per-variable derivative map. The map is owned by
// the Augmented; callers must treat it as read-only.
func (a *Augmented[T]) Jacobians() JacobianMap { return a.jacobians }

// Constant reports whether the value depends on no variable at all.
// Complexity: O(1).
func (a *Augmented[T]) Constant() bool { return len(a.jacobians) == 0 }
