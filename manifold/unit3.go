package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// unitNormEps is the norm below which a vector has no usable direction.
const unitNormEps = 1e-12

// Unit3 is a unit direction on the sphere S², a two-dimensional manifold.
// The point is stored as a unit 3-vector; perturbations live in the
// two-dimensional tangent plane spanned by Basis().
//
// Invariant: the stored point always has unit norm; Unit3 values are only
// produced by NewUnit3, FromVec3, and Retract, all of which normalize.
type Unit3 struct {
	p Vec3 // unit-norm point on the sphere
}

// NewUnit3 builds a unit direction from the raw components (x, y, z),
// normalizing them. Returns ErrZeroDirection when the norm is (near) zero.
// Complexity: O(1).
func NewUnit3(x, y, z float64) (Unit3, error) {
	return FromVec3(Vec3{x, y, z})
}

// FromVec3 builds a unit direction by normalizing v.
// Returns ErrZeroDirection when the norm is (near) zero.
// Complexity: O(1).
func FromVec3(v Vec3) (Unit3, error) {
	n := v.Norm()
	if n < unitNormEps {
		return Unit3{}, ErrZeroDirection
	}

	return Unit3{p: v.Scale(1 / n)}, nil
}

// Point returns the direction as a unit 3-vector.
func (u Unit3) Point() Vec3 { return u.p }

// Dim returns 2, the dimension of the tangent plane.
// Complexity: O(1).
func (u Unit3) Dim() int { return 2 }

// Basis returns a deterministic orthonormal basis of the tangent plane at
// u, as a 3×2 matrix whose columns are the two basis directions. The first
// column is built by crossing the point with the coordinate axis it is
// least aligned with, the second completes the right-handed frame.
// Complexity: O(1).
func (u Unit3) Basis() *mat.Dense {
	// Pick the coordinate axis least aligned with the point, so the cross
	// product below is well conditioned.
	axis := Vec3{1, 0, 0}
	ax, ay, az := math.Abs(u.p[0]), math.Abs(u.p[1]), math.Abs(u.p[2])
	if ay <= ax && ay <= az {
		axis = Vec3{0, 1, 0}
	} else if az <= ax && az <= ay {
		axis = Vec3{0, 0, 1}
	}

	// First tangent direction: orthogonal to the point by construction.
	b1 := u.p.Cross(axis)
	b1 = b1.Scale(1 / b1.Norm())
	// Second tangent direction: completes the orthonormal frame; already
	// unit norm since p ⟂ b1 and both are unit.
	b2 := u.p.Cross(b1)

	return mat.NewDense(3, 2, []float64{
		b1[0], b2[0],
		b1[1], b2[1],
		b1[2], b2[2],
	})
}

// Retract perturbs u by the tangent coordinates delta (len 2), moving the
// point by delta[0]·b1 + delta[1]·b2 and renormalizing onto the sphere.
// Complexity: O(1).
func (u Unit3) Retract(delta []float64) Unit3 {
	b := u.Basis()
	step := Vec3{
		b.At(0, 0)*delta[0] + b.At(0, 1)*delta[1],
		b.At(1, 0)*delta[0] + b.At(1, 1)*delta[1],
		b.At(2, 0)*delta[0] + b.At(2, 1)*delta[1],
	}
	moved, err := FromVec3(u.p.Add(step))
	if err != nil {
		// Unreachable for tangent steps of norm < 1: the radial component
		// of p + step is always 1.
		panic(err)
	}

	return moved
}

// Local projects other − u onto the tangent basis at u. This is the
// first-order inverse of Retract, accurate for nearby directions, which is
// the regime numerical differentiation operates in.
// Complexity: O(1).
func (u Unit3) Local(other Unit3) []float64 {
	b := u.Basis()
	d := other.p.Sub(u.p)

	return []float64{
		b.At(0, 0)*d[0] + b.At(1, 0)*d[1] + b.At(2, 0)*d[2],
		b.At(0, 1)*d[0] + b.At(1, 1)*d[1] + b.At(2, 1)*d[2],
	}
}
