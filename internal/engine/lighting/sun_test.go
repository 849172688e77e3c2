package lighting

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSunDirectionUnitLength(t *testing.T) {
	for _, pitch := range []float32{-1.2, 0, 0.4, 1.5} {
		for _, yaw := range []float32{0, 1, 3, 6} {
			l := SunDirection(pitch, yaw).Length()
			if l < 0.999 || l > 1.001 {
				t.Errorf("SunDirection(%v, %v).Length() = %v, want ~1", pitch, yaw, l)
			}
		}
	}
}

func TestSunDirectionAxes(t *testing.T) {
	up := SunDirection(math32.Pi/2, 0)
	if up.Y < 0.999 {
		t.Errorf("pitch pi/2 should point straight up, got %+v", up)
	}

	horizon := SunDirection(0, 0)
	if horizon.Z < 0.999 || math32.Abs(horizon.Y) > 1e-6 {
		t.Errorf("pitch 0 should point at +Z on the horizon, got %+v", horizon)
	}
}
