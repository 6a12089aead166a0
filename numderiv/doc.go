// Package numderiv computes finite-difference Jacobians of functions
// between manifold types, for verifying analytic derivatives.
//
// The Jacobian of f: A → T at a point a is computed in local coordinates
// on both sides: the input is perturbed through A's Retract, the output
// difference is measured through T's Local, and the central-difference
// rule of gonum.org/v1/gonum/diff/fd does the rest. The result is a dense
// Dim(T)×Dim(A) matrix – the same shape and convention as the Jacobian
// blocks produced by the expr package, so the two can be compared entry
// by entry.
//
// This is a testing aid: it evaluates f 2·Dim(A) times per call and is
// accurate to roughly the square of the step (default 1e-5), good enough
// to confirm an analytic Jacobian to ~1e-7 on well-scaled problems.
package numderiv
