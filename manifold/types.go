// Package manifold: shared interfaces for manifold-valued types.
//
// This file declares the two contracts the rest of the module builds on:
// Value (the minimal "has a dimension" view the AD core needs) and
// Manifold (Value plus movement in local coordinates, needed for
// numerical differentiation).
package manifold

import "errors"

// ErrZeroDirection indicates an attempt to build a Unit3 from a vector
// with (near-)zero norm, which has no defined direction.
var ErrZeroDirection = errors.New("manifold: direction vector has zero norm")

// Value is the minimal contract the AD core requires of a type flowing
// through an expression: a fixed tangent-space dimension used to size
// identity and zero Jacobian blocks.
type Value interface {
	// Dim returns the tangent-space dimension of the type.
	Dim() int
}

// Manifold extends Value with movement in local coordinates. M is the
// implementing type itself (a self-referential constraint), so Retract
// returns the concrete type, not an interface.
type Manifold[M any] interface {
	Value

	// Retract applies a tangent-space perturbation delta (len == Dim())
	// and returns the perturbed point on the manifold.
	Retract(delta []float64) M

	// Local returns the tangent-space perturbation that carries the
	// receiver onto other, to first order: m.Retract(m.Local(o)) ≈ o.
	Local(other M) []float64
}
