// Chain-rule correctness against finite differences, and summation of
// derivative contributions that reach one variable through several
// argument paths.
package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/exprad/expr"
	"github.com/katalvlaran/exprad/manifold"
	"github.com/katalvlaran/exprad/numderiv"
)

const jacTol = 1e-7

// sinScalar wraps math.Sin as a unary expression function.
func sinScalar(a manifold.Scalar, h *mat.Dense) manifold.Scalar {
	if h != nil {
		h.ReuseAs(1, 1)
		h.Set(0, 0, math.Cos(float64(a)))
	}

	return manifold.Scalar(math.Sin(float64(a)))
}

// scaleVec computes s·v with both partials.
func scaleVec(s manifold.Scalar, v manifold.Vec3, h1, h2 *mat.Dense) manifold.Vec3 {
	if h1 != nil {
		h1.ReuseAs(3, 1)
		h1.Set(0, 0, v[0])
		h1.Set(1, 0, v[1])
		h1.Set(2, 0, v[2])
	}
	if h2 != nil {
		c := float64(s)
		h2.ReuseAs(3, 3)
		h2.Copy(mat.NewDense(3, 3, []float64{
			c, 0, 0,
			0, c, 0,
			0, 0, c,
		}))
	}

	return v.Scale(float64(s))
}

func TestUnary_ChainRule_AgainstFiniteDifferences(t *testing.T) {
	// g(x) = sin(3x): analytic chain through two unary nodes versus a
	// numerical derivative of the composed function of the variable.
	const x0 = 0.7
	vals := dictWith(t, map[expr.Key]any{1: manifold.Scalar(x0)})
	g := expr.Unary(sinScalar, expr.Unary(scaleBy(3), expr.Leaf[manifold.Scalar](1)))

	a, err := g.Augmented(vals)
	require.NoError(t, err)
	require.Equal(t, []expr.Key{1}, g.Keys())

	want := numderiv.Jacobian(func(x manifold.Scalar) manifold.Scalar {
		return manifold.Scalar(math.Sin(3 * float64(x)))
	}, manifold.Scalar(x0))
	require.True(t, mat.EqualApprox(a.Jacobians()[1], want, jacTol),
		"analytic %v vs numerical %v", mat.Formatted(a.Jacobians()[1]), mat.Formatted(want))
}

func TestBinary_ChainRule_VectorValued(t *testing.T) {
	// e(s, v) = s·v: one scalar and one vector variable, checked per
	// variable against finite differences.
	s0, v0 := manifold.Scalar(2.5), manifold.Vec3{1, -2, 0.5}
	vals := dictWith(t, map[expr.Key]any{1: s0, 2: v0})

	e := expr.Binary(scaleVec, expr.Leaf[manifold.Scalar](1), expr.Leaf[manifold.Vec3](2))
	a, err := e.Augmented(vals)
	require.NoError(t, err)
	require.Len(t, a.Jacobians(), 2)

	wantS := numderiv.Jacobian(func(s manifold.Scalar) manifold.Vec3 {
		return v0.Scale(float64(s))
	}, s0)
	require.True(t, mat.EqualApprox(a.Jacobians()[1], wantS, jacTol))

	wantV := numderiv.Jacobian(func(v manifold.Vec3) manifold.Vec3 {
		return v.Scale(float64(s0))
	}, v0)
	require.True(t, mat.EqualApprox(a.Jacobians()[2], wantV, jacTol))
}

func TestBinary_PathSummation(t *testing.T) {
	// sum = x + 2x: the key is reachable through both argument slots, so
	// its total derivative is the SUM of the per-path contributions.
	vals := dictWith(t, map[expr.Key]any{1: manifold.Scalar(4)})
	x := expr.Leaf[manifold.Scalar](1)
	double := expr.Unary(scaleBy(2), x)

	both, err := expr.Binary(addScalars, x, double).Augmented(vals)
	require.NoError(t, err)

	// Each single-path variant isolates one argument slot.
	left, err := expr.Binary(addScalars, x, expr.Constant(manifold.Scalar(0))).Augmented(vals)
	require.NoError(t, err)
	right, err := expr.Binary(addScalars, expr.Constant(manifold.Scalar(0)), double).Augmented(vals)
	require.NoError(t, err)

	sum := left.Jacobians()[1].At(0, 0) + right.Jacobians()[1].At(0, 0)
	require.Equal(t, sum, both.Jacobians()[1].At(0, 0))
	require.Equal(t, 3.0, both.Jacobians()[1].At(0, 0))
}

func TestTernary_AllThreePathsFolded(t *testing.T) {
	// f(x, 2x, 3x) = x + 2x + 3x: every argument slot depends on the same
	// key, and every slot's contribution must appear in the total. A merge
	// that dropped any one slot would read 3, 4, or 5 instead of 6.
	vals := dictWith(t, map[expr.Key]any{1: manifold.Scalar(1.25)})
	x := expr.Leaf[manifold.Scalar](1)

	a, err := expr.Ternary(sumScalars, x, expr.Unary(scaleBy(2), x), expr.Unary(scaleBy(3), x)).Augmented(vals)
	require.NoError(t, err)
	require.Equal(t, manifold.Scalar(6*1.25), a.Value())
	require.Len(t, a.Jacobians(), 1)
	require.Equal(t, 6.0, a.Jacobians()[1].At(0, 0))
}

func TestTernary_ChainRule_AgainstFiniteDifferences(t *testing.T) {
	// Full composed check of the ternary fold: g(x) = x + sin(2x) + 3x.
	const x0 = 0.3
	vals := dictWith(t, map[expr.Key]any{1: manifold.Scalar(x0)})
	x := expr.Leaf[manifold.Scalar](1)

	g := expr.Ternary(sumScalars,
		x,
		expr.Unary(sinScalar, expr.Unary(scaleBy(2), x)),
		expr.Unary(scaleBy(3), x),
	)
	a, err := g.Augmented(vals)
	require.NoError(t, err)

	want := numderiv.Jacobian(func(v manifold.Scalar) manifold.Scalar {
		return v + manifold.Scalar(math.Sin(2*float64(v))) + 3*v
	}, manifold.Scalar(x0))
	require.True(t, mat.EqualApprox(a.Jacobians()[1], want, jacTol))
}
