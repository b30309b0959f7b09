package velocity

import (
	"math"

	"github.com/san-kum/bowshock/internal/params"
	"github.com/san-kum/bowshock/internal/units"
)

// Quadrature and guard constants for the limb-brightening weight. The
// sample count and midpoint placement are part of the model's numeric
// contract: changing them changes output values.
const (
	// LimbSamples is the number of midpoint-rule samples over
	// phi in (-pi/2, pi/2).
	LimbSamples = 80

	// edgeXi saturates the azimuthal average and limb weight at the
	// aperture edge.
	edgeXi = 0.999

	// centerXi zeroes the azimuthal average near the aperture center,
	// where the closed form divides by |xi|.
	centerXi = 0.001

	// uniformP treats the emissivity index as exactly zero, where the
	// general integral is ill-conditioned and the weight is identically 1.
	uniformP = 0.01

	// chordFloor keeps the emissivity finite where the LOS chord
	// vanishes.
	chordFloor = 0.01
)

// WakeBaseline is the wake line-of-sight velocity (Eq 3):
// v_star * (1 - 1/chi) * sin(i). Positive; consumers negate it for the
// receding sign convention.
func WakeBaseline(vStar, chi, incDeg float64) float64 {
	return vStar * (1.0 - 1.0/chi) * math.Sin(units.DegToRad(incDeg))
}

// Tangential is the post-shock tangential velocity along the shell
// (Eq 1). Theta in radians.
func Tangential(theta, vStar float64) float64 {
	return vStar * math.Sin(theta)
}

// AzimuthalAverage is the ring-averaged projection factor <cos phi>
// (Eq 6) at normalized position xi = x / R_ring:
//
//	<cos phi>(xi) = xi/sqrt(1-xi^2) * asinh(sqrt(1-xi^2)/|xi|)
//
// Saturates to 1 at |xi| >= 0.999 and to 0 at |xi| < 0.001; both limits
// are exact contract values, not tolerances.
func AzimuthalAverage(xi float64) float64 {
	if math.Abs(xi) >= edgeXi {
		return 1.0
	}
	if math.Abs(xi) < centerXi {
		return 0.0
	}
	root := math.Sqrt(1.0 - xi*xi)
	return xi / root * math.Asinh(root/math.Abs(xi))
}

// LimbWeight is the emissivity-weighted projection factor W_p(xi)
// (Eq 7) for limb-brightened shell emission with emissivity index p.
//
// |xi| >= 0.999 and |p| < 0.01 short-circuit to exactly 1. Otherwise the
// ratio sum(eps*cos phi)/sum(eps) is accumulated over LimbSamples
// midpoint samples of phi in (-pi/2, pi/2), with the chord length
// floored at 0.01 and a fallback to 1 when the denominator underflows.
func LimbWeight(xi, p float64) float64 {
	if math.Abs(xi) >= edgeXi {
		return 1.0
	}
	if math.Abs(p) < uniformP {
		return 1.0
	}

	dphi := math.Pi / float64(LimbSamples)
	num, den := 0.0, 0.0
	for k := 0; k < LimbSamples; k++ {
		phi := -math.Pi/2.0 + (float64(k)+0.5)*dphi
		sp, cp := math.Sin(phi), math.Cos(phi)
		d := math.Sqrt(xi*xi*cp*cp + sp*sp)
		if d < chordFloor {
			d = chordFloor
		}
		eps := math.Pow(d, -p)
		num += eps * cp
		den += eps
	}
	if den < 1e-10 {
		return 1.0
	}
	return num / den
}

// PV is the modeled line-of-sight velocity at projected position x kpc
// (Eq 8). Outside the aperture (|x| >= R_ring) the model is pure wake
// baseline; inside, the shell projection term is added using the
// configured half-opening angle and inclination. Negative means
// receding.
func PV(x float64, snap params.Snapshot) float64 {
	base := WakeBaseline(snap.VStar, snap.Chi, snap.Inclination)
	xi := x / snap.RingRadius
	if math.Abs(xi) >= 1.0 {
		return -base
	}
	theta := units.DegToRad(snap.ThetaHalf)
	inc := units.DegToRad(snap.Inclination)
	shell := snap.VStar * math.Sin(theta) * math.Cos(theta) * math.Cos(inc) *
		AzimuthalAverage(xi) * LimbWeight(xi, snap.EmissivityP)
	return -base + shell
}

// Point is one sample of the PV curve: projected position in kpc,
// modeled LOS velocity in km/s.
type Point struct {
	X float64
	V float64
}

// DefaultCurvePoints is the default PV curve resolution (n intervals,
// n+1 samples).
const DefaultCurvePoints = 200

// Curve samples the PV model over the fixed domain [-R_ring, +R_ring]
// at n+1 points. The domain tracks the aperture, unlike the wake and
// shock curves whose domain tracks r_star.
func Curve(snap params.Snapshot, n int) []Point {
	if n < 1 {
		n = DefaultCurvePoints
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		x := -snap.RingRadius + 2.0*snap.RingRadius*float64(i)/float64(n)
		pts[i] = Point{X: x, V: PV(x, snap)}
	}
	return pts
}
