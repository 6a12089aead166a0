package manifold

// Scalar is a one-dimensional manifold value: a point on the real line.
// Retract and Local are plain addition and subtraction.
type Scalar float64

// Dim returns 1.
// Complexity: O(1).
func (s Scalar) Dim() int { return 1 }

// Retract returns s shifted by delta[0].
// Complexity: O(1).
func (s Scalar) Retract(delta []float64) Scalar {
	return s + Scalar(delta[0])
}

// Local returns the one-element perturbation carrying s onto other.
// Complexity: O(1).
func (s Scalar) Local(other Scalar) []float64 {
	return []float64{float64(other - s)}
}
