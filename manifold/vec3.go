package manifold

import "math"

// Vec3 is a 3-vector treated as a flat (Euclidean) manifold of dimension 3.
// Retract and Local are component-wise addition and subtraction.
type Vec3 [3]float64

// Dim returns 3.
// Complexity: O(1).
func (v Vec3) Dim() int { return 3 }

// Retract returns v shifted component-wise by delta.
// Complexity: O(1).
func (v Vec3) Retract(delta []float64) Vec3 {
	return Vec3{v[0] + delta[0], v[1] + delta[1], v[2] + delta[2]}
}

// Local returns the component-wise difference other − v.
// Complexity: O(1).
func (v Vec3) Local(other Vec3) []float64 {
	return []float64{other[0] - v[0], other[1] - v[1], other[2] - v[2]}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns c·v.
func (v Vec3) Scale(c float64) Vec3 {
	return Vec3{c * v[0], c * v[1], c * v[2]}
}

// Dot returns the inner product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm returns the Euclidean norm of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}
