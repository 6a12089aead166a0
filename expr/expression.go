package expr

import (
	"slices"

	"github.com/katalvlaran/exprad/manifold"
)

// Expression is a value-semantic handle over a shared, immutable node.
// Copying an Expression copies the node reference, not the node, so
// handles are cheap to pass around and a sub-expression may serve as an
// argument to any number of parents. The zero value is an invalid
// expression: Keys() returns nil and evaluation fails with
// ErrNilExpression.
type Expression[T manifold.Value] struct {
	root node[T]
}

// Constant builds an expression holding one fixed value, independent of
// any variable.
// Complexity: O(1).
func Constant[T manifold.Value](t T) Expression[T] {
	return Expression[T]{root: &constantNode[T]{constant: t}}
}

// Leaf builds an expression bound to one variable key. Its value is the
// typed lookup of key at evaluation time; its Jacobian with respect to
// key is the identity.
// Complexity: O(1).
func Leaf[T manifold.Value](key Key) Expression[T] {
	return Expression[T]{root: &leafNode[T]{key: key}}
}

// Unary builds an expression applying fn to one argument expression.
// A nil fn or a zero-value argument yields an expression whose evaluation
// fails with ErrNilFunction or ErrNilExpression respectively.
// Complexity: O(1).
func Unary[T, A manifold.Value](fn UnaryFunc[T, A], arg Expression[A]) Expression[T] {
	if fn == nil {
		return Expression[T]{root: &invalidNode[T]{err: ErrNilFunction}}
	} else if arg.root == nil {
		return Expression[T]{root: &invalidNode[T]{err: ErrNilExpression}}
	}

	return Expression[T]{root: &unaryNode[T, A]{fn: fn, arg: arg.root}}
}

// Binary builds an expression applying fn to two argument expressions.
// Nil-function and zero-value-argument defects are detected as in Unary.
// Complexity: O(1).
func Binary[T, A1, A2 manifold.Value](
	fn BinaryFunc[T, A1, A2],
	arg1 Expression[A1],
	arg2 Expression[A2],
) Expression[T] {
	if fn == nil {
		return Expression[T]{root: &invalidNode[T]{err: ErrNilFunction}}
	} else if arg1.root == nil || arg2.root == nil {
		return Expression[T]{root: &invalidNode[T]{err: ErrNilExpression}}
	}

	return Expression[T]{root: &binaryNode[T, A1, A2]{fn: fn, arg1: arg1.root, arg2: arg2.root}}
}

// Ternary builds an expression applying fn to three argument expressions.
// Nil-function and zero-value-argument defects are detected as in Unary.
// Complexity: O(1).
func Ternary[T, A1, A2, A3 manifold.Value](
	fn TernaryFunc[T, A1, A2, A3],
	arg1 Expression[A1],
	arg2 Expression[A2],
	arg3 Expression[A3],
) Expression[T] {
	if fn == nil {
		return Expression[T]{root: &invalidNode[T]{err: ErrNilFunction}}
	} else if arg1.root == nil || arg2.root == nil || arg3.root == nil {
		return Expression[T]{root: &invalidNode[T]{err: ErrNilExpression}}
	}

	return Expression[T]{root: &ternaryNode[T, A1, A2, A3]{
		fn:   fn,
		arg1: arg1.root,
		arg2: arg2.root,
		arg3: arg3.root,
	}}
}

// Keys returns the sorted set of variable keys this expression
// (transitively) depends on. Shared sub-expressions contribute each key
// once. A zero-value expression returns nil.
// Complexity: O(N + K·log K) for N nodes and K distinct keys.
func (e Expression[T]) Keys() []Key {
	if e.root == nil {
		return nil
	}

	set := make(map[Key]struct{})
	e.root.keys(set)

	out := make([]Key, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// Value evaluates just the value against vals, with no derivative
// bookkeeping. It agrees exactly with Augmented(vals).Value().
// Complexity: O(N) node visits plus the wrapped functions' own cost.
func (e Expression[T]) Value(vals Values) (T, error) {
	if e.root == nil {
		var zero T

		return zero, ErrNilExpression
	}

	return e.root.value(vals)
}

// Augmented evaluates the value together with the Jacobian of that value
// with respect to every variable the expression depends on. The result is
// freshly allocated on every call; nothing is cached or mutated, so
// concurrent calls on a shared expression are safe while vals is
// read-only.
// Complexity: O(N) node visits plus one dense multiply per
// (node, dependent-variable) pair.
func (e Expression[T]) Augmented(vals Values) (*Augmented[T], error) {
	if e.root == nil {
		return nil, ErrNilExpression
	}

	return e.root.augmented(vals)
}
