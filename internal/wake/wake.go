package wake

import (
	"math"

	"github.com/san-kum/bowshock/internal/params"
)

// Velocity is the delayed-mixing wake velocity (Eq 19) at distance r kpc
// from the host galaxy:
//
//	v(r) = v0 * exp(-max(0, (r_star - r) - dr_delay) / l_mix)
//
// Gas closer to the apex than the delay distance keeps its full shocked
// velocity v0; beyond it, mixing relaxes the velocity exponentially.
// A zero mixing length degenerates to a step function, which callers
// accept as the limiting behavior.
func Velocity(r float64, snap params.Snapshot) float64 {
	behind := (snap.RStar - r) - snap.DelayDist
	if behind < 0 {
		behind = 0
	}
	return snap.V0 * math.Exp(-behind/snap.MixLength)
}

// ShockVelocity is the decelerating shock-front velocity (Eq 13):
//
//	v_s(r) = v_star * (1 + 2*(r_star - r)/R_c)^(-1/2)
//
// Ahead of the apex (r > r_star) the model does not apply and v_star is
// returned unchanged. A non-positive power base cannot occur for sane
// parameters but is guarded to 0 rather than producing NaN.
func ShockVelocity(r float64, snap params.Snapshot) float64 {
	if r > snap.RStar {
		return snap.VStar
	}
	base := 1.0 + 2.0*(snap.RStar-r)/snap.Curvature
	if base <= 0 {
		return 0
	}
	return snap.VStar / math.Sqrt(base)
}

// Point is one sample of a wake or shock profile: distance from the
// host in kpc, velocity in km/s.
type Point struct {
	R float64
	V float64
}

// DefaultCurvePoints is the default profile resolution (n intervals,
// n+1 samples).
const DefaultCurvePoints = 300

// Curve samples the wake velocity over [0, r_star] at n+1 points.
func Curve(snap params.Snapshot, n int) []Point {
	return sample(snap, n, Velocity)
}

// ShockCurve samples the shock-front velocity over [0, r_star] at n+1
// points.
func ShockCurve(snap params.Snapshot, n int) []Point {
	return sample(snap, n, ShockVelocity)
}

func sample(snap params.Snapshot, n int, f func(float64, params.Snapshot) float64) []Point {
	if n < 1 {
		n = DefaultCurvePoints
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		r := snap.RStar * float64(i) / float64(n)
		pts[i] = Point{R: r, V: f(r, snap)}
	}
	return pts
}
