package camera

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestForwardIsUnitLength(t *testing.T) {
	c := New(900, 620)
	c.Look(250, -120, 1)
	l := c.forward.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("forward length = %v, want ~1", l)
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(900, 620)
	c.Look(0, -1e9, 1)
	if c.Vertical > math32.Pi/2 {
		t.Errorf("pitch %v exceeds pi/2", c.Vertical)
	}
	c.Look(0, 1e9, 1)
	if c.Vertical < -math32.Pi/2 {
		t.Errorf("pitch %v below -pi/2", c.Vertical)
	}
}

func TestWalkMovesOnHorizontalPlane(t *testing.T) {
	c := New(900, 620)
	c.Look(0, -500, 1) // look up a bit
	c.Walk(0, 0, 1, 10)
	if c.Position.Y != 0 {
		t.Errorf("forward walk should stay level, got Y=%v", c.Position.Y)
	}
	if c.Position.Length() == 0 {
		t.Error("walk did not move the camera")
	}
}
