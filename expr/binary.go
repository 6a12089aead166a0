package expr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exprad/manifold"
)

// binaryNode applies a function to two argument sub-expressions. Each
// argument independently produces a local Jacobian only if it is
// non-constant; both arguments' maps fold into one result map, summing
// where they reach the same variable.
type binaryNode[T, A1, A2 manifold.Value] struct {
	fn   BinaryFunc[T, A1, A2]
	arg1 node[A1]
	arg2 node[A2]
}

func (n *binaryNode[T, A1, A2]) keys(set map[Key]struct{}) {
	n.arg1.keys(set)
	n.arg2.keys(set)
}

func (n *binaryNode[T, A1, A2]) value(vals Values) (T, error) {
	var zero T

	a1, err := n.arg1.value(vals)
	if err != nil {
		return zero, err
	}
	a2, err := n.arg2.value(vals)
	if err != nil {
		return zero, err
	}

	return n.fn(a1, a2, nil, nil), nil
}

func (n *binaryNode[T, A1, A2]) augmented(vals Values) (*Augmented[T], error) {
	// 1) Pull both arguments' values and Jacobian maps.
	arg1, err := n.arg1.augmented(vals)
	if err != nil {
		return nil, err
	}
	arg2, err := n.arg2.augmented(vals)
	if err != nil {
		return nil, err
	}

	// 2) Request local Jacobians only for non-constant arguments.
	var h1, h2 *mat.Dense
	if !arg1.Constant() {
		h1 = new(mat.Dense)
	}
	if !arg2.Constant() {
		h2 = new(mat.Dense)
	}

	// 3) Evaluate once, then fold both chain terms.
	t := n.fn(arg1.Value(), arg2.Value(), h1, h2)

	return chainAugmented(t,
		chainTerm{h1, arg1.Jacobians()},
		chainTerm{h2, arg2.Jacobians()},
	), nil
}
