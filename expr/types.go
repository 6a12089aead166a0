// SPDX-License-Identifier: MIT
// Package expr: central types, function signatures, and sentinel errors.
//
// This file declares Key, the Values lookup contract, the wrapped-function
// shapes for Unary/Binary/Ternary nodes, and the package error set.
package expr

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exprad/manifold"
)

// Sentinel errors for expression construction and evaluation.
var (
	// ErrKeyNotFound indicates a Leaf's key is absent from the Values
	// store supplied at evaluation time.
	ErrKeyNotFound = errors.New("expr: variable not found in values")

	// ErrTypeMismatch indicates a Leaf's key is present in the Values
	// store but bound to a value of a different type than the Leaf expects.
	ErrTypeMismatch = errors.New("expr: variable bound to a different type")

	// ErrNilExpression indicates a zero-value Expression (one that was
	// never constructed) was evaluated or used as a child of a function
	// node.
	ErrNilExpression = errors.New("expr: expression has no node")

	// ErrNilFunction indicates a Unary/Binary/Ternary node was built with
	// a nil function.
	ErrNilFunction = errors.New("expr: wrapped function is nil")
)

// Key is an opaque identifier of one optimization variable. Keys are
// ordered and hashable; the package uses them purely as map keys and for
// deterministic sorting of key sets.
type Key uint64

// Values is the lookup contract the evaluator requires from the external
// variable store: fetch the current value bound to a key, reporting
// presence. Typed assertion happens inside the Leaf, which distinguishes
// ErrKeyNotFound from ErrTypeMismatch.
//
// Implementations must be read-only for the duration of an evaluation;
// the evaluator never mutates the store.
type Values interface {
	// At returns the value bound to key and whether the key is present.
	At(key Key) (any, bool)
}

// UnaryFunc computes a T from one argument. If h is non-nil the function
// must fill it with the Dim(T)×Dim(A) partial derivative ∂T/∂a evaluated
// at a, in local coordinates; if h is nil it must skip that work but still
// return the correct value.
type UnaryFunc[T, A manifold.Value] func(a A, h *mat.Dense) T

// BinaryFunc computes a T from two arguments, with one optional Jacobian
// output slot per argument. Slot semantics match UnaryFunc.
type BinaryFunc[T, A1, A2 manifold.Value] func(a1 A1, a2 A2, h1, h2 *mat.Dense) T

// TernaryFunc computes a T from three arguments, with one optional
// Jacobian output slot per argument. Slot semantics match UnaryFunc.
type TernaryFunc[T, A1, A2, A3 manifold.Value] func(a1 A1, a2 A2, a3 A3, h1, h2, h3 *mat.Dense) T
