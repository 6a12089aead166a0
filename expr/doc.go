// Package expr implements typed expression graphs with forward propagation
// of both values and Jacobians: build an expression over named variables,
// evaluate it against a variable store, and receive the value together
// with the derivative of that value with respect to every variable the
// expression depends on – in a single traversal.
//
// The building blocks:
//
//   - Leaf(key)          – a variable, looked up in Values at evaluation
//   - Constant(t)        – a fixed value, independent of Values
//   - Unary / Binary /   – a function of one, two or three sub-expressions,
//     Ternary              with one optional Jacobian output slot per argument
//
// Expressions are value-semantic handles over immutable, shared nodes:
// copying an Expression is cheap, a sub-expression may be an argument of
// any number of parents (the graph is a DAG), and cycles are impossible by
// construction because a parent can only be built from already-complete
// children.
//
// Evaluation:
//
//	Value(vals)     – just the value, no derivative bookkeeping
//	Augmented(vals) – the value plus a JacobianMap: per-variable derivative
//	                  blocks, chain rule applied, contributions reaching the
//	                  same variable through different argument paths summed
//	Keys()          – the sorted set of variables the expression depends on
//
// Wrapped functions receive one *mat.Dense output slot per argument; a nil
// slot means the caller cannot use that partial derivative and the
// function must skip computing it. The evaluator passes nil exactly when
// the corresponding argument sub-expression is constant, so derivative
// work is never done where it cannot matter.
//
// Errors (sentinel, errors.Is-matchable):
//
//	– ErrKeyNotFound   – a Leaf's variable is absent from Values
//	– ErrTypeMismatch  – a Leaf's variable is bound to a different type
//	– ErrNilExpression – a zero-value Expression was evaluated or composed
//	– ErrNilFunction   – a function node was built with a nil function
//
// All are unrecoverable structural errors: evaluation fails immediately
// and returns no partial result.
//
// Complexity: one evaluation visits each node once; Augmented additionally
// pays one dense multiply per (node, dependent-variable) pair. Nothing is
// cached across calls, nothing is mutated, so concurrent evaluations of a
// shared expression are safe as long as the Values store is read-only for
// their duration.
package expr
