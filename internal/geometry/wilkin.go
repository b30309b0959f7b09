package geometry

import "math"

// thetaEps clamps the polar angle away from both singularities of the
// Wilkin closed form. At theta <= thetaEps the physical limit is the
// standoff radius itself; at theta >= pi-thetaEps the shape is evaluated
// at the clamped angle instead of computing cot(pi). The far-tail clamp
// affects only extreme-angle rendering and is applied consistently
// everywhere the shape is sampled.
const thetaEps = 1e-4

// apexEps is the radius below which a point counts as inside the shock
// regardless of angle, avoiding the polar-coordinate singularity at the
// origin.
const apexEps = 1e-6

// ShockRadius evaluates the Wilkin (1996) thin-shell bow-shock shape
//
//	R(theta) = R0 * csc(theta) * sqrt(3*(1 - theta*cot(theta)))
//
// for theta in (0, pi), with theta measured from the direction of motion.
// The apex limit R(0) = R0 is returned directly, and a negative radicand
// from roundoff near the apex falls back to R0 rather than NaN.
func ShockRadius(theta, r0 float64) float64 {
	if theta <= thetaEps {
		return r0
	}
	if theta >= math.Pi-thetaEps {
		theta = math.Pi - thetaEps
	}
	s := 3.0 * (1.0 - theta*math.Cos(theta)/math.Sin(theta))
	if s < 0 {
		return r0
	}
	return r0 / math.Sin(theta) * math.Sqrt(s)
}

// StandoffRadius derives the standoff radius from the radius of
// curvature at the apex. Single authoritative definition: every R0 in
// the program comes from here or from params.Snapshot.Standoff, which
// applies the same 2/3 factor.
func StandoffRadius(rc float64) float64 {
	return 2.0 / 3.0 * rc
}

// ParabolicApprox is the near-apex approximation R ~ sqrt(2*Rc*|dr|),
// cheap enough for per-particle collision checks where the full Wilkin
// evaluation is too costly.
func ParabolicApprox(dr, rc float64) float64 {
	return math.Sqrt(2.0 * rc * math.Abs(dr))
}

// InsideShock reports whether a point in the BH rest frame (BH at the
// origin, motion along +Z) lies within the shock surface.
func InsideShock(p Vec3, r0 float64) bool {
	r := p.Norm()
	if r < apexEps {
		return true
	}
	theta := math.Acos(p.Z / r)
	return r <= ShockRadius(theta, r0)
}
