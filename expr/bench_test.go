package expr_test

import (
	"testing"

	"github.com/katalvlaran/exprad/expr"
	"github.com/katalvlaran/exprad/manifold"
	"github.com/katalvlaran/exprad/values"
)

// chainDepth controls the length of the unary chain in the benchmarks.
const chainDepth = 16

func buildChain(b *testing.B) (expr.Expression[manifold.Scalar], *values.Dict) {
	b.Helper()
	e := expr.Leaf[manifold.Scalar](1)
	for i := 0; i < chainDepth; i++ {
		e = expr.Unary(scaleBy(1.01), e)
	}
	vals := values.NewDict()
	if err := vals.Insert(1, manifold.Scalar(1)); err != nil {
		b.Fatal(err)
	}

	return e, vals
}

func BenchmarkValue_UnaryChain(b *testing.B) {
	e, vals := buildChain(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Value(vals); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAugmented_UnaryChain(b *testing.B) {
	e, vals := buildChain(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Augmented(vals); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAugmented_SharedVariableTree(b *testing.B) {
	x := expr.Leaf[manifold.Scalar](1)
	e := expr.Ternary(sumScalars, x, expr.Unary(scaleBy(2), x), expr.Unary(scaleBy(3), x))
	vals := values.NewDict()
	if err := vals.Insert(1, manifold.Scalar(2)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Augmented(vals); err != nil {
			b.Fatal(err)
		}
	}
}
