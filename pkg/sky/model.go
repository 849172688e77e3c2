// Package sky implements the Hosek-Wilkie analytic sky radiance model.
//
// Solving for a sun direction produces nine blended model coefficients per
// color channel plus a normalized radiance scale, interpolated from the
// precomputed tables in dataset.go with quintic Bezier splines over sun
// elevation and bilinear blending over turbidity and ground albedo. The
// result is a compact parameter block a fragment shader evaluates per pixel.
package sky

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/skydome/pkg/math"
)

const halfPi = math32.Pi / 2

// horizonEpsilon keeps the gradient exponent finite as the view direction
// approaches the horizon (cosTheta -> 0).
const horizonEpsilon = 0.01

// lumaWeights are the sRGB luminance weights used to normalize brightness.
var lumaWeights = math.Vec3{X: 0.2126, Y: 0.7152, Z: 0.0722}

// slotOrder maps the logical coefficients A..I to the table's storage
// columns. The published tables store the last two slots as I,H rather than
// H,I; the swap is confined to this lookup.
var slotOrder = [9]int{0, 1, 2, 3, 4, 5, 6, 8, 7}

// Params holds the solved model coefficients A..I and the normalized
// radiance scale Z, one component per color channel.
type Params struct {
	A, B, C, D, E, F, G, H, I math.Vec3
	Z                         math.Vec3
}

// Uniforms flattens the parameter block into the ten-vector layout the sky
// shader consumes: A through I followed by Z.
func (p *Params) Uniforms() [30]float32 {
	var out [30]float32
	for i, v := range [10]math.Vec3{p.A, p.B, p.C, p.D, p.E, p.F, p.G, p.H, p.I, p.Z} {
		out[i*3+0] = v.X
		out[i*3+1] = v.Y
		out[i*3+2] = v.Z
	}
	return out
}

// Solve computes the sky parameter block for a unit sun direction.
// Turbidity must be within the tabulated [1,10] range and albedo components
// within [0,1]; both are the caller's configuration, not per-frame input.
// Sun directions below the horizon are clamped to the horizon for the
// coefficient fit, while the raw height still drives the day/night falloff.
func Solve(sunDir math.Vec3, turbidity float32, albedo [3]float32) Params {
	theta := SunTheta(sunDir)
	p := solveCoefficients(theta, turbidity, albedo)
	normalizeRadiance(&p, theta)
	p.Z = p.Z.Scale(dayNightScale(sunDir.Y))
	return p
}

// SunTheta returns the sun's zenith angle in [0, pi/2], clamping
// below-horizon directions rather than extrapolating the tables.
func SunTheta(sunDir math.Vec3) float32 {
	return math32.Acos(clamp(sunDir.Y, 0, 1))
}

// Radiance evaluates the closed-form sky radiance for a view direction,
// given its zenith cosine, the angle gamma to the sun, and the cosine of
// that angle. All arithmetic is per color channel. Values grow large but
// stay finite near grazing geometry; callers must not treat that as an
// error.
func Radiance(cosTheta, gamma, cosGamma float32, p Params) math.Vec3 {
	cg2 := cosGamma * cosGamma
	denom := p.H.MulElem(p.H).Sub(p.H.Scale(2 * cosGamma)).AddScalar(1).PowScalar(1.5)
	chi := math.Vec3{
		X: (1 + cg2) / denom.X,
		Y: (1 + cg2) / denom.Y,
		Z: (1 + cg2) / denom.Z,
	}

	gradient := p.A.MulElem(p.B.Scale(1 / (cosTheta + horizonEpsilon)).Exp()).AddScalar(1)
	sunTerm := p.C.
		Add(p.D.MulElem(p.E.Scale(gamma).Exp())).
		Add(p.F.Scale(cg2)).
		Add(p.G.MulElem(chi)).
		Add(p.I.Scale(math32.Sqrt(math32.Max(0, cosTheta))))

	return gradient.MulElem(sunTerm)
}

// solveCoefficients interpolates the nine model coefficients and the raw
// radiance scale for each color channel.
func solveCoefficients(sunTheta, turbidity float32, albedo [3]float32) Params {
	elevK := elevationParam(sunTheta)

	var slots [10][3]float32
	for c := 0; c < 3; c++ {
		for logical, col := range slotOrder {
			slots[logical][c] = blendCoefficient(c, col, turbidity, albedo[c], elevK)
		}
		slots[9][c] = blendRadiance(c, turbidity, albedo[c], elevK)
	}

	return Params{
		A: vec3From(slots[0]),
		B: vec3From(slots[1]),
		C: vec3From(slots[2]),
		D: vec3From(slots[3]),
		E: vec3From(slots[4]),
		F: vec3From(slots[5]),
		G: vec3From(slots[6]),
		H: vec3From(slots[7]),
		I: vec3From(slots[8]),
		Z: vec3From(slots[9]),
	}
}

// normalizeRadiance rescales Z so the assembled model hits a stable target
// brightness regardless of turbidity and albedo: the radiance toward the
// sun at its own elevation, weighted by rawZ, is forced to unit luminance.
func normalizeRadiance(p *Params, sunTheta float32) {
	sunward := Radiance(math32.Cos(sunTheta), 0, 1, *p).MulElem(p.Z)
	p.Z = p.Z.Scale(1 / sunward.Dot(lumaWeights))
}

// dayNightScale maps the sun's height above the horizon to a brightness
// multiplier, fading day through dusk into night without discontinuities.
// The triangular folding is kept exactly as shipped; the >2 branch is not
// reachable for unit sun directions but stays until the curve is revisited.
func dayNightScale(sunY float32) float32 {
	amount := math32.Mod(sunY/halfPi, 4)
	if amount > 2 {
		amount = 0
	}
	if amount > 1 {
		amount = 2 - amount
	} else if amount < -1 {
		amount = -2 - amount
	}
	return 0.6 + 0.45*amount
}

// elevationParam warps the sun's zenith angle into the spline parameter.
// The tables are fit against elevation^(1/3), sampling densest at the
// horizon where the sky changes fastest.
func elevationParam(sunTheta float32) float32 {
	return math32.Pow(math32.Max(0, 1-sunTheta/halfPi), 1.0/3.0)
}

// blendCoefficient interpolates one coefficient column for one channel.
func blendCoefficient(channel, col int, turbidity, albedo, elevK float32) float32 {
	return blendTables(turbidity, albedo, func(a, band int) float32 {
		return bezier5(controlPoints(&datasetRGB[channel][a][band], col), elevK)
	})
}

// blendRadiance interpolates the raw radiance scale for one channel.
func blendRadiance(channel int, turbidity, albedo, elevK float32) float32 {
	return blendTables(turbidity, albedo, func(a, band int) float32 {
		return bezier5(datasetRGBRad[channel][a][band], elevK)
	})
}

// blendTables bilinearly combines the two albedo extremes and the two
// turbidity bands bracketing the requested turbidity. corner evaluates one
// (albedo extreme, turbidity band) table cell; band is zero-based. At
// turbidity 10 both bands coincide and the blend degenerates gracefully.
func blendTables(turbidity, albedo float32, corner func(a, band int) float32) float32 {
	t0 := clampInt(int(turbidity), 1, 10)
	t1 := t0 + 1
	if t1 > 10 {
		t1 = 10
	}
	tk := clamp(turbidity-float32(t0), 0, 1)

	a0t0 := corner(0, t0-1)
	a1t0 := corner(1, t0-1)
	a0t1 := corner(0, t1-1)
	a1t1 := corner(1, t1-1)

	return a0t0*(1-albedo)*(1-tk) +
		a1t0*albedo*(1-tk) +
		a0t1*(1-albedo)*tk +
		a1t1*albedo*tk
}

// bezier5 evaluates a degree-5 Bernstein blend of six control points at t.
// t is expected in [0,1]; out-of-range values extrapolate the polynomial.
func bezier5(p [6]float32, t float32) float32 {
	it := 1 - t
	return it*it*it*it*it*p[0] +
		5*it*it*it*it*t*p[1] +
		10*it*it*it*t*t*p[2] +
		10*it*it*t*t*t*p[3] +
		5*it*t*t*t*t*p[4] +
		t*t*t*t*t*p[5]
}

// controlPoints gathers one coefficient column across the six control
// points of a table cell.
func controlPoints(cell *[6][9]float32, col int) [6]float32 {
	var out [6]float32
	for k := range out {
		out[k] = cell[k][col]
	}
	return out
}

func vec3From(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
