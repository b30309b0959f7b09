package energetics

import (
	"math"

	"github.com/san-kum/bowshock/internal/params"
	"github.com/san-kum/bowshock/internal/units"
	"github.com/san-kum/bowshock/internal/velocity"
)

// soundSpeedCoeff folds gamma=5/3 and mu=0.6 into c_s = 0.013*sqrt(T)
// km/s for an ideal CGM plasma.
const soundSpeedCoeff = 0.013

// SoundSpeed returns the ambient sound speed in km/s for a CGM
// temperature in Kelvin.
func SoundSpeed(tK float64) float64 {
	return soundSpeedCoeff * math.Sqrt(tK)
}

// MachNumber is the BH space velocity over the local sound speed.
func MachNumber(vStarKms, tK float64) float64 {
	return vStarKms / SoundSpeed(tK)
}

// WakeAge is the time in Myr for the BH to have traveled the observed
// wake length at its inclination-corrected space velocity.
func WakeAge(snap params.Snapshot) float64 {
	lengthM := units.KpcToM(snap.WakeLength)
	vM := units.KmsToMs(snap.VStar) * math.Cos(units.DegToRad(snap.Inclination))
	return units.SecToMyr(lengthM / vM)
}

// MassEstimate is the momentum-balance lower bound on the BH mass
// (Eq 23), M >= 2*eps*rho*v*pi*R0^2*t_wake, in solar masses. It is a
// lower bound, not a measurement.
func MassEstimate(snap params.Snapshot) float64 {
	r0M := units.KpcToM(snap.Standoff())
	vM := units.KmsToMs(snap.VStar)
	tS := units.MyrToSec(WakeAge(snap))
	massKg := 2.0 * snap.Epsilon * snap.RhoExt * vM * math.Pi * r0M * r0M * tS
	return units.KgToSolar(massKg)
}

// Dashboard is the flat derived-scalar record shown in the UI. All
// fields come from one parameter snapshot, so any displayed combination
// is mutually consistent.
type Dashboard struct {
	Standoff      float64 // kpc
	SoundSpeed    float64 // km/s
	Mach          float64
	WakeAge       float64 // Myr
	MassEstimate  float64 // solar masses
	ShockVelApex  float64 // km/s
	WakeLOS       float64 // km/s
	LightFraction float64
}

// Compute aggregates every derived quantity from a single snapshot.
// Evaluation order matters: R0 first, then sound speed and Mach, then
// the age, then the mass estimate that uses both R0 and the age. The
// shock at the apex moves with the BH, so its velocity there is v_star.
func Compute(snap params.Snapshot) Dashboard {
	r0 := snap.Standoff()
	cs := SoundSpeed(snap.TCGM)
	mach := snap.VStar / cs
	age := WakeAge(snap)
	mass := MassEstimate(snap)
	baseline := velocity.WakeBaseline(snap.VStar, snap.Chi, snap.Inclination)

	return Dashboard{
		Standoff:      r0,
		SoundSpeed:    cs,
		Mach:          mach,
		WakeAge:       age,
		MassEstimate:  mass,
		ShockVelApex:  snap.VStar,
		WakeLOS:       -baseline,
		LightFraction: snap.VStar / units.LightKms,
	}
}
