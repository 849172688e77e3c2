package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Perspective(1.2, 1.5, 0.1, 1000)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestPerspectiveDepthColumn(t *testing.T) {
	m := Perspective(1.2, 1.5, 0.1, 1000)
	if m[11] != -1 {
		t.Errorf("perspective w column: got %f, want -1", m[11])
	}
	if m[15] != 0 {
		t.Errorf("perspective corner: got %f, want 0", m[15])
	}
}

func TestLookAtOriginIsRotationOnly(t *testing.T) {
	m := LookAt(Vec3{}, Vec3{Z: -1}, Vec3{Y: 1})
	// No translation when the eye sits at the origin
	if m[12] != 0 || m[13] != 0 || m[14] != 0 {
		t.Errorf("expected zero translation, got (%f, %f, %f)", m[12], m[13], m[14])
	}
}
