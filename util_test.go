package geom3

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a relative tolerance of fraction and an absolute
// tolerance of margin, whichever is larger.
func approx(fraction, margin float64) cmp.Option {
	return cmpopts.EquateApprox(fraction, margin)
}

func assertNear(t *testing.T, got, want Point, epsilon float32) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func randFloat(r *rand.Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

func randVec(r *rand.Rand) Vec3 {
	return Vec(randFloat(r, -10, 10), randFloat(r, -10, 10), randFloat(r, -10, 10))
}

func randPoint(r *rand.Rand) Point {
	return Point(randVec(r))
}

func randMat(r *rand.Rand) Mat4 {
	var m Mat4
	for i := range 4 {
		for j := range 4 {
			m[i][j] = randFloat(r, -1, 1)
		}
	}
	return m
}
