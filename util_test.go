package epicycle

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxComparer(eps float64) cmp.Option {
	return cmp.Options{
		cmp.Comparer(func(a, b Complex) bool {
			return a.Sub(b).Magnitude() <= eps
		}),
		cmp.Comparer(func(a, b curve.Point) bool {
			return a.Distance(b) <= eps
		}),
		cmp.Comparer(func(a, b float64) bool {
			return a-b <= eps && b-a <= eps
		}),
	}
}

func randomSignal(r *rand.Rand, n int) []Complex {
	out := make([]Complex, n)
	for i := range out {
		out[i] = Cx(r.Float64()*200-100, r.Float64()*200-100)
	}
	return out
}
