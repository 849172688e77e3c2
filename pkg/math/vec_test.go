package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3MulElem(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.MulElem(b)
	want := Vec3{4, 10, 18}
	if got != want {
		t.Errorf("Vec3.MulElem() = %v, want %v", got, want)
	}
}

func TestVec3Exp(t *testing.T) {
	got := Vec3{0, 0, 0}.Exp()
	want := Vec3{1, 1, 1}
	if got != want {
		t.Errorf("Vec3.Exp() = %v, want %v", got, want)
	}
}

func TestVec3PowScalar(t *testing.T) {
	got := Vec3{1, 4, 9}.PowScalar(0.5)
	for i, v := range []float32{1, 2, 3} {
		c := [3]float32{got.X, got.Y, got.Z}[i]
		if c < v-1e-5 || c > v+1e-5 {
			t.Errorf("Vec3.PowScalar(0.5) component %d = %v, want %v", i, c, v)
		}
	}
}

func TestVec3AddScalar(t *testing.T) {
	got := Vec3{1, 2, 3}.AddScalar(1)
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Vec3.AddScalar() = %v, want %v", got, want)
	}
}
