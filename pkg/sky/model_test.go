package sky

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydome/pkg/math"
)

func TestBezierEndpoints(t *testing.T) {
	// Bernstein basis collapses to the boundary control points at t=0 and
	// t=1. Checked against real table rows, not synthetic ones.
	for channel := 0; channel < 3; channel++ {
		cp := controlPoints(&datasetRGB[channel][0][3], 0)
		assert.Equal(t, cp[0], bezier5(cp, 0))
		assert.Equal(t, cp[5], bezier5(cp, 1))

		rad := datasetRGBRad[channel][1][7]
		assert.Equal(t, rad[0], bezier5(rad, 0))
		assert.Equal(t, rad[5], bezier5(rad, 1))
	}
}

func TestBlendCollapsesOnIntegerTurbidity(t *testing.T) {
	// At turbidity 3.0 the fractional band weight is zero, so the adjacent
	// band must not contribute at all.
	const albedo = 0.3
	elevK := elevationParam(0.7)

	got := blendCoefficient(1, 2, 3.0, albedo, elevK)

	band := 2 // zero-based band for turbidity 3
	a0 := bezier5(controlPoints(&datasetRGB[1][0][band], 2), elevK)
	a1 := bezier5(controlPoints(&datasetRGB[1][1][band], 2), elevK)
	want := a0*(1-albedo) + a1*albedo

	assert.InDelta(t, want, got, 1e-6)
}

func TestBlendAlbedoExtremes(t *testing.T) {
	// Albedo 0 and 1 must reduce to pure single-table lookups.
	elevK := elevationParam(0.4)

	for _, tc := range []struct {
		albedo float32
		table  int
	}{
		{0, 0},
		{1, 1},
	} {
		got := blendCoefficient(0, 4, 6.0, tc.albedo, elevK)
		want := bezier5(controlPoints(&datasetRGB[0][tc.table][5], 4), elevK)
		assert.InDelta(t, want, got, 1e-6, "albedo %v", tc.albedo)
	}
}

func TestBlendDegeneratesAtMaxTurbidity(t *testing.T) {
	// At turbidity 10 both bands are band 10; the bilinear blend must
	// collapse without a special case.
	elevK := elevationParam(0.2)
	got := blendRadiance(2, 10.0, 0.5, elevK)
	a0 := bezier5(datasetRGBRad[2][0][9], elevK)
	a1 := bezier5(datasetRGBRad[2][1][9], elevK)
	assert.InDelta(t, (a0+a1)/2, got, 1e-5)
}

func TestRadianceFiniteOverGeometricDomain(t *testing.T) {
	// Regression test for the horizon epsilon guard: no table row may
	// produce NaN or Inf anywhere in the valid view/sun geometry.
	cosThetas := []float32{0, 0.25, 0.5, 0.75, 1}
	cosGammas := []float32{-1, -0.5, 0, 0.5, 1}

	for channel := 0; channel < 3; channel++ {
		for a := 0; a < 2; a++ {
			for band := 0; band < 10; band++ {
				for k := 0; k < 6; k++ {
					p := paramsFromRow(&datasetRGB[channel][a][band][k])
					for _, ct := range cosThetas {
						for _, cg := range cosGammas {
							v := Radiance(ct, math32.Acos(cg), cg, p)
							if !finite(v.X) || !finite(v.Y) || !finite(v.Z) {
								t.Fatalf("non-finite radiance %v for row [%d][%d][%d][%d] ct=%v cg=%v",
									v, channel, a, band, k, ct, cg)
							}
						}
					}
				}
			}
		}
	}
}

func TestDayNightScaleContinuity(t *testing.T) {
	// The triangular fold must not jump at any wrap boundary.
	const delta = 1e-3
	for _, amount := range []float32{1, -1, 2, -2} {
		lo := dayNightScale((amount - delta) * halfPi)
		hi := dayNightScale((amount + delta) * halfPi)
		assert.InDelta(t, lo, hi, 0.01, "fold at sunAmount=%v", amount)
	}
}

func TestDayNightScaleRange(t *testing.T) {
	// Over real sun heights the multiplier stays inside the dusk..day band
	// and peaks with the sun overhead.
	noon := dayNightScale(1)
	midnight := dayNightScale(-1)
	assert.Greater(t, noon, dayNightScale(0))
	assert.Greater(t, dayNightScale(0), midnight)
	assert.InDelta(t, 0.6+0.45*2/math32.Pi, noon, 1e-5)
}

func TestSunThetaClampsBelowHorizon(t *testing.T) {
	assert.InDelta(t, 0, SunTheta(math.Vec3{Y: 1}), 1e-6)
	assert.InDelta(t, halfPi, SunTheta(math.Vec3{Y: 0}), 1e-6)
	assert.InDelta(t, halfPi, SunTheta(math.Vec3{X: 0.6, Y: -0.8}), 1e-6)
}

func TestSolveZenithFixture(t *testing.T) {
	// Canonical regression fixture: sun at zenith, turbidity 4, uniform
	// albedo 0.1. Values are pinned against the current dataset revision.
	p := Solve(math.Vec3{Y: 1}, 4.0, [3]float32{0.1, 0.1, 0.1})

	wantA := [3]float32{-1.088, -1.066667, -1.0496}
	wantZ := [3]float32{0.9014831, 1.2234410, 1.6097909}

	require.InEpsilon(t, wantA[0], p.A.X, 1e-4)
	require.InEpsilon(t, wantA[1], p.A.Y, 1e-4)
	require.InEpsilon(t, wantA[2], p.A.Z, 1e-4)

	require.InEpsilon(t, wantZ[0], p.Z.X, 1e-4)
	require.InEpsilon(t, wantZ[1], p.Z.Y, 1e-4)
	require.InEpsilon(t, wantZ[2], p.Z.Z, 1e-4)

	for _, z := range []float32{p.Z.X, p.Z.Y, p.Z.Z} {
		require.True(t, finite(z))
		require.Greater(t, z, float32(0))
	}
}

func TestLuminanceDecreasesTowardHorizon(t *testing.T) {
	// Lowering the sun from zenith to the horizon must dim the sky
	// monotonically, and the horizon itself must not blow up.
	prev := float32(math32.Inf(1))
	for deg := 0; deg <= 90; deg += 5 {
		theta := float32(deg) * math32.Pi / 180
		dir := math.Vec3{X: math32.Sin(theta), Y: math32.Cos(theta)}
		p := Solve(dir, 4.0, [3]float32{0.1, 0.1, 0.1})

		sunward := Radiance(math32.Cos(theta), 0, 1, p).MulElem(p.Z)
		lum := sunward.Dot(lumaWeights)
		require.True(t, finite(lum), "theta=%d", deg)
		require.Less(t, lum, prev, "luminance must decrease, theta=%d", deg)
		prev = lum
	}
}

func TestUniformsLayout(t *testing.T) {
	p := Params{
		A: math.Vec3{X: 1, Y: 2, Z: 3},
		Z: math.Vec3{X: 7, Y: 8, Z: 9},
	}
	u := p.Uniforms()
	assert.Equal(t, float32(1), u[0])
	assert.Equal(t, float32(3), u[2])
	assert.Equal(t, float32(7), u[27])
	assert.Equal(t, float32(9), u[29])
}

// paramsFromRow spreads one table row across all three channels so the
// radiance sweep exercises every stored coefficient combination.
func paramsFromRow(row *[9]float32) Params {
	splat := func(col int) math.Vec3 {
		v := row[col]
		return math.Vec3{X: v, Y: v, Z: v}
	}
	return Params{
		A: splat(0), B: splat(1), C: splat(2),
		D: splat(3), E: splat(4), F: splat(5),
		G: splat(6), H: splat(8), I: splat(7),
	}
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
