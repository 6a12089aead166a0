package numderiv

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exprad/manifold"
)

// DefaultStep is the perturbation magnitude used in local coordinates.
// Central differences at this step resolve derivatives to ~1e-10 absolute
// on unit-scaled problems.
const DefaultStep = 1e-5

// Jacobian computes the Dim(T)×Dim(A) finite-difference Jacobian of f at
// a, in local coordinates: entry (i, j) is the sensitivity of the i-th
// local output coordinate to the j-th local input coordinate.
//
// f is evaluated 2·Dim(A) times (central differences). The base value
// f(a) anchors the output's Local chart.
// Complexity: O(Dim(A)) evaluations of f.
func Jacobian[T manifold.Manifold[T], A manifold.Manifold[A]](f func(A) T, a A) *mat.Dense {
	base := f(a)
	rows, cols := base.Dim(), a.Dim()

	dst := mat.NewDense(rows, cols, nil)
	fd.Jacobian(dst, func(y, x []float64) {
		copy(y, base.Local(f(a.Retract(x))))
	}, make([]float64, cols), &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    DefaultStep,
	})

	return dst
}
