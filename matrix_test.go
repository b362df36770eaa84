package geom3

import (
	"math"
	"testing"
)

func TestMat4Identity(t *testing.T) {
	var m Mat4
	m.SetIdentity()
	diff(t, Identity, m)

	r := newRand()
	for range 100 {
		p := randPoint(r)
		if got := Identity.Apply(p); got != p {
			t.Fatalf("identity mapped %s to %s", p, got)
		}
	}
}

func TestMat4MulAssociative(t *testing.T) {
	r := newRand()
	for range 100 {
		a, b, c := randMat(r), randMat(r), randMat(r)
		diff(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), approx(1e-5, 1e-5))
	}
}

func TestMat4MulOrder(t *testing.T) {
	const epsilon = 1e-5
	p := Pt(1, 0, 0)

	// 1,0,0 -> scale(2) = 2,0,0 -> rotate 90 = 0,2,0 -> translate 1,1,0 -> 1,3,0
	m := Translate(Vec(1, 1, 0)).Mul(RotateZ(math.Pi / 2)).Mul(Scale(2, 2, 2))
	assertNear(t, m.Apply(p), Pt(1, 3, 0), epsilon)

	m = Scale(2, 2, 2).Then(RotateZ(math.Pi / 2)).Then(Translate(Vec(1, 1, 0)))
	assertNear(t, m.Apply(p), Pt(1, 3, 0), epsilon)

	m = Scale(2, 2, 2).ThenRotateZ(math.Pi / 2).ThenTranslate(Vec(1, 1, 0))
	assertNear(t, m.Apply(p), Pt(1, 3, 0), epsilon)

	// The other way around translates first.
	m = Scale(2, 2, 2).Mul(Translate(Vec(1, 1, 0)))
	assertNear(t, m.Apply(p), Pt(4, 2, 0), epsilon)
	assertNear(t, Translate(Vec(1, 1, 0)).ThenScale(2, 2, 2).Apply(p), Pt(4, 2, 0), epsilon)

	m = Identity
	m.MulInPlace(Translate(Vec(0, 0, 5)))
	m.MulInPlace(Scale(3, 3, 3))
	assertNear(t, m.Apply(Pt(1, 1, 1)), Pt(3, 3, 8), epsilon)
}

func TestMat4Apply(t *testing.T) {
	const epsilon = 1e-5
	p := Pt(3, 4, 5)

	assertNear(t, p.Transform(Scale(2, 3, 4)), Pt(6, 12, 20), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6, 7))), Pt(8, 10, 12), epsilon)
	assertNear(t, Pt(1, 0, 0).Transform(RotateZ(math.Pi/2)), Pt(0, 1, 0), epsilon)
	assertNear(t, Pt(0, 1, 0).Transform(RotateX(math.Pi/2)), Pt(0, 0, 1), epsilon)
	assertNear(t, Pt(0, 0, 1).Transform(RotateY(math.Pi/2)), Pt(1, 0, 0), epsilon)

	// w = 2 divides every coordinate.
	m := Identity
	m[3][3] = 2
	assertNear(t, m.Apply(p), Pt(1.5, 2, 2.5), epsilon)

	// w = 0 skips the divide.
	m = Identity
	m[3][3] = 0
	if got := m.Apply(p); got != p {
		t.Errorf("got %s, want %s", got, p)
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Mat4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	want := Mat4{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}
	orig := m
	diff(t, want, m.Transpose())
	diff(t, orig, m)

	r := newRand()
	for range 100 {
		m := randMat(r)
		diff(t, m, m.Transpose().Transpose())
	}
}

func TestMat4Accessors(t *testing.T) {
	rows := [4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	var m Mat4
	m.SetRows(rows)
	diff(t, rows, m.Rows())
	diff(t, NewMat4(rows), m)

	want := [16]float32{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}
	diff(t, want, m.ColumnMajor())

	diff(t, Vec(4, 8, 12), m.Translation())
}

func TestMat4NaNInf(t *testing.T) {
	if Identity.IsNaN() || Identity.IsInf() {
		t.Error("identity reported as NaN or Inf")
	}
	m := Identity
	m[2][1] = float32(math.NaN())
	if !m.IsNaN() {
		t.Error("expected NaN")
	}
	m = Identity
	m[0][3] = float32(math.Inf(-1))
	if !m.IsInf() {
		t.Error("expected Inf")
	}
}
