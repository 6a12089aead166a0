// Package manifold provides the value types that flow through exprad
// expressions: plain Euclidean types (Scalar, Vec3) and curved ones
// (Unit3, Rot2), all sharing one small contract.
//
// Every type reports its tangent-space dimension via Dim(), and moves on
// its manifold via Retract (apply a tangent-space perturbation) and Local
// (recover the tangent-space perturbation between two nearby points).
// Derivatives everywhere in exprad are expressed in these local
// coordinates: a Jacobian block of a T-valued function with respect to an
// A-valued argument is a Dim(T)×Dim(A) dense matrix.
//
// Types:
//
//	– Scalar  dim 1   float64 on the real line
//	– Vec3    dim 3   3-vector, Retract/Local are plain add/subtract
//	– Unit3   dim 2   unit direction on S², perturbed in its tangent basis
//	– Rot2    dim 1   planar rotation, perturbed by angle increment
//
// Conventions:
//
//   - Retract(delta) requires len(delta) == Dim(); anything else is a
//     programmer error and panics, matching slice-bounds behavior.
//   - Local is the first-order inverse of Retract: for small delta,
//     m.Local(m.Retract(delta)) ≈ delta. For Euclidean types the inverse
//     is exact; for Unit3 it holds to first order, which is all
//     finite-difference verification needs.
//   - Jacobian-producing helpers (Rot2.Rotate, Rot2.Unrotate) take
//     optional *mat.Dense output slots; a nil slot skips that partial
//     derivative entirely.
package manifold
