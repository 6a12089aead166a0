package expr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exprad/manifold"
)

// ternaryNode applies a function to three argument sub-expressions. All
// three chain terms fold symmetrically into the result map – no argument's
// contribution is ever skipped, and fold order cannot change the sums.
type ternaryNode[T, A1, A2, A3 manifold.Value] struct {
	fn   TernaryFunc[T, A1, A2, A3]
	arg1 node[A1]
	arg2 node[A2]
	arg3 node[A3]
}

func (n *ternaryNode[T, A1, A2, A3]) keys(set map[Key]struct{}) {
	n.arg1.keys(set)
	n.arg2.keys(set)
	n.arg3.keys(set)
}

func (n *ternaryNode[T, A1, A2, A3]) value(vals Values) (T, error) {
	var zero T

	a1, err := n.arg1.value(vals)
	if err != nil {
		return zero, err
	}
	a2, err := n.arg2.value(vals)
	if err != nil {
		return zero, err
	}
	a3, err := n.arg3.value(vals)
	if err != nil {
		return zero, err
	}

	return n.fn(a1, a2, a3, nil, nil, nil), nil
}

func (n *ternaryNode[T, A1, A2, A3]) augmented(vals Values) (*Augmented[T], error) {
	// 1) Pull all three arguments' values and Jacobian maps.
	arg1, err := n.arg1.augmented(vals)
	if err != nil {
		return nil, err
	}
	arg2, err := n.arg2.augmented(vals)
	if err != nil {
		return nil, err
	}
	arg3, err := n.arg3.augmented(vals)
	if err != nil {
		return nil, err
	}

	// 2) Request local Jacobians only for non-constant arguments.
	var h1, h2, h3 *mat.Dense
	if !arg1.Constant() {
		h1 = new(mat.Dense)
	}
	if !arg2.Constant() {
		h2 = new(mat.Dense)
	}
	if !arg3.Constant() {
		h3 = new(mat.Dense)
	}

	// 3) Evaluate once, then fold all three chain terms.
	t := n.fn(arg1.Value(), arg2.Value(), arg3.Value(), h1, h2, h3)

	return chainAugmented(t,
		chainTerm{h1, arg1.Jacobians()},
		chainTerm{h2, arg2.Jacobians()},
		chainTerm{h3, arg3.Jacobians()},
	), nil
}
