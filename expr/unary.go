package expr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exprad/manifold"
)

// unaryNode applies a function to one argument sub-expression.
type unaryNode[T, A manifold.Value] struct {
	fn  UnaryFunc[T, A]
	arg node[A]
}

func (n *unaryNode[T, A]) keys(set map[Key]struct{}) {
	n.arg.keys(set)
}

func (n *unaryNode[T, A]) value(vals Values) (T, error) {
	a, err := n.arg.value(vals)
	if err != nil {
		var zero T

		return zero, err
	}

	return n.fn(a, nil), nil
}

func (n *unaryNode[T, A]) augmented(vals Values) (*Augmented[T], error) {
	// 1) Pull the argument's value and Jacobian map.
	arg, err := n.arg.augmented(vals)
	if err != nil {
		return nil, err
	}

	// 2) Request a local Jacobian only if the argument actually depends
	// on variables; a constant argument cannot contribute a derivative.
	var h *mat.Dense
	if !arg.Constant() {
		h = new(mat.Dense)
	}

	// 3) Evaluate and fold the chain rule.
	t := n.fn(arg.Value(), h)

	return chainAugmented(t, chainTerm{h, arg.Jacobians()}), nil
}
