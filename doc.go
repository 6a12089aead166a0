// Package exprad is an expression-graph automatic-differentiation engine
// for nonlinear least-squares optimization on factor graphs.
//
// 🚀 What is exprad?
//
//	A small, pure-Go library that lets you write an error function as a
//	composition of typed expressions over named optimization variables,
//	then evaluate its value AND its Jacobian with respect to every
//	variable it depends on – in one traversal, with the chain rule
//	applied for you:
//		• expr/     – Expression handles, the node hierarchy, Augmented
//		  values (value + per-variable Jacobian map)
//		• manifold/ – concrete manifold value types: Scalar, Vec3, Unit3,
//		  Rot2, with retraction and local coordinates
//		• values/   – a map-backed variable store addressed by opaque keys
//		• numderiv/ – finite-difference Jacobians for verifying analytic
//		  derivatives
//
// ✨ Why choose exprad?
//
//   - One traversal – value and all Jacobians together, no repeated passes
//   - Lazy derivatives – constant sub-expressions never trigger matrix work
//   - Shared variables just work – contributions reaching the same variable
//     through different argument paths are summed, as the chain rule demands
//   - Immutable graphs – expressions are freely shareable across goroutines
//
// Quick sketch of a calibration error, measured − (s·d + b):
//
//	s := expr.Leaf[manifold.Scalar](1)
//	d := expr.Leaf[manifold.Unit3](2)
//	e := expr.Ternary(errFn, s, d, expr.Constant(bias))
//	a, err := e.Augmented(vals) // a.Value() and a.Jacobians()
//
// Dive into the per-package docs for the evaluation contract, the error
// taxonomy, and worked examples.
//
//	go get github.com/katalvlaran/exprad
package exprad
