package geom3

import (
	"math"
	"testing"
)

func TestBuilderCells(t *testing.T) {
	diff(t, Mat4{
		{2, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 1},
	}, Scale(2, 3, 4))

	diff(t, Mat4{
		{1, 0, 0, 5},
		{0, 1, 0, 6},
		{0, 0, 1, 7},
		{0, 0, 0, 1},
	}, Translate(Vec(5, 6, 7)))

	diff(t, Mat4{
		{0, -1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}, RotateZ(math.Pi/2), approx(0, 1e-6))

	diff(t, Mat4{
		{1, 0, 0, 0},
		{0, 0, -1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}, RotateX(math.Pi/2), approx(0, 1e-6))

	diff(t, Mat4{
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 0, 1},
	}, RotateY(math.Pi/2), approx(0, 1e-6))

	for _, m := range []Mat4{RotateX(0), RotateY(0), RotateZ(0), Scale(1, 1, 1), Translate(Vec3{})} {
		diff(t, Identity, m)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	r := newRand()
	for range 1000 {
		p := randPoint(r)
		v := randVec(r)
		got := p.Transform(Translate(v)).Transform(Translate(v.Negate()))
		assertNear(t, got, p, 1e-5)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	r := newRand()
	for range 100 {
		p := randPoint(r)
		th := randFloat(r, -math.Pi, math.Pi)
		l := Vec3(p).Length()
		for _, m := range []Mat4{RotateX(th), RotateY(th), RotateZ(th)} {
			got := Vec3(m.Apply(p)).Length()
			diff(t, l, got, approx(1e-5, 1e-5))
		}
	}
}

func TestPerspective(t *testing.T) {
	const (
		fov    = 90
		aspect = 2
		near   = 1
		far    = 10
	)
	m := Perspective(fov, aspect, near, far)

	// tan(45°) = 1
	diff(t, Mat4{
		{0.5, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -11.0 / 9, -20.0 / 9},
		{0, 0, -1, 0},
	}, m, approx(1e-6, 1e-6))

	assertNear(t, m.Apply(Pt(0, 0, -near)), Pt(0, 0, -1), 1e-5)
	assertNear(t, m.Apply(Pt(0, 0, -far)), Pt(0, 0, 1), 1e-5)

	// A point at the edge of the frustum maps to the edge of clip space.
	assertNear(t, m.Apply(Pt(4, 2, -2)), Pt(1, 1, 1.0/9), 1e-5)
}

func TestDegRad(t *testing.T) {
	diff(t, float32(math.Pi), DegToRad(180), approx(1e-6, 0))
	diff(t, float32(90), RadToDeg(math.Pi/2), approx(1e-6, 0))
}
