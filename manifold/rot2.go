package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rot2 is a planar rotation about the z-axis, a one-dimensional manifold
// parameterized by its angle. Stored as (cos θ, sin θ) so Rotate and
// Unrotate never re-evaluate trigonometry.
type Rot2 struct {
	c, s float64 // cos θ, sin θ
}

// NewRot2 builds a rotation by theta radians about the z-axis.
// Complexity: O(1).
func NewRot2(theta float64) Rot2 {
	return Rot2{c: math.Cos(theta), s: math.Sin(theta)}
}

// Theta returns the rotation angle in (−π, π].
func (r Rot2) Theta() float64 { return math.Atan2(r.s, r.c) }

// Dim returns 1.
// Complexity: O(1).
func (r Rot2) Dim() int { return 1 }

// Retract returns the rotation advanced by the angle increment delta[0].
// Complexity: O(1).
func (r Rot2) Retract(delta []float64) Rot2 {
	return NewRot2(r.Theta() + delta[0])
}

// Local returns the angle increment carrying r onto other, wrapped to
// (−π, π].
// Complexity: O(1).
func (r Rot2) Local(other Rot2) []float64 {
	d := other.Theta() - r.Theta()
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}

	return []float64{d}
}

// Rotate applies r to v, rotating about the z-axis. When h1 is non-nil it
// is filled with the 3×1 partial derivative with respect to the angle;
// when h2 is non-nil it is filled with the 3×3 partial with respect to v.
// A nil slot skips that computation.
// Complexity: O(1).
func (r Rot2) Rotate(v Vec3, h1, h2 *mat.Dense) Vec3 {
	w := Vec3{r.c*v[0] - r.s*v[1], r.s*v[0] + r.c*v[1], v[2]}
	if h1 != nil {
		// ∂(Rv)/∂θ = R'v
		h1.ReuseAs(3, 1)
		h1.Set(0, 0, -r.s*v[0]-r.c*v[1])
		h1.Set(1, 0, r.c*v[0]-r.s*v[1])
		h1.Set(2, 0, 0)
	}
	if h2 != nil {
		// ∂(Rv)/∂v = R
		h2.ReuseAs(3, 3)
		h2.Copy(mat.NewDense(3, 3, []float64{
			r.c, -r.s, 0,
			r.s, r.c, 0,
			0, 0, 1,
		}))
	}

	return w
}

// Unrotate applies the inverse rotation r⁻¹ to v. Jacobian slots follow
// the same convention as Rotate: h1 is 3×1 with respect to the angle, h2
// is 3×3 with respect to v, nil skips.
// Complexity: O(1).
func (r Rot2) Unrotate(v Vec3, h1, h2 *mat.Dense) Vec3 {
	w := Vec3{r.c*v[0] + r.s*v[1], -r.s*v[0] + r.c*v[1], v[2]}
	if h1 != nil {
		// ∂(Rᵀv)/∂θ = (Rᵀ)'v
		h1.ReuseAs(3, 1)
		h1.Set(0, 0, -r.s*v[0]+r.c*v[1])
		h1.Set(1, 0, -r.c*v[0]-r.s*v[1])
		h1.Set(2, 0, 0)
	}
	if h2 != nil {
		// ∂(Rᵀv)/∂v = Rᵀ
		h2.ReuseAs(3, 3)
		h2.Copy(mat.NewDense(3, 3, []float64{
			r.c, r.s, 0,
			-r.s, r.c, 0,
			0, 0, 1,
		}))
	}

	return w
}
