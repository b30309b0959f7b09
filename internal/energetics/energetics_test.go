package energetics

import (
	"math"
	"testing"

	"github.com/san-kum/bowshock/internal/geometry"
	"github.com/san-kum/bowshock/internal/params"
	"github.com/san-kum/bowshock/internal/units"
	"github.com/san-kum/bowshock/internal/velocity"
)

func TestSoundSpeed(t *testing.T) {
	// 0.013 * sqrt(1e6) = 13 km/s.
	if got := SoundSpeed(1e6); math.Abs(got-13.0) > 1e-9 {
		t.Errorf("SoundSpeed(1e6) = %f, want 13", got)
	}
}

func TestMachNumber(t *testing.T) {
	got := MachNumber(954, 1e6)
	if math.Abs(got-954.0/13.0) > 1e-9 {
		t.Errorf("Mach = %f, want %f", got, 954.0/13.0)
	}
	if got < 73 || got > 74 {
		t.Errorf("Mach = %f, expected ~73.4", got)
	}
}

func TestWakeAge(t *testing.T) {
	snap := params.Defaults()
	got := WakeAge(snap)

	lengthM := units.KpcToM(snap.WakeLength)
	vM := units.KmsToMs(snap.VStar) * math.Cos(units.DegToRad(snap.Inclination))
	want := units.SecToMyr(lengthM / vM)

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("WakeAge = %f, want %f", got, want)
	}
	// 62 kpc at ~834 km/s is several tens of Myr.
	if got < 50 || got > 100 {
		t.Errorf("WakeAge = %f Myr, outside plausible range", got)
	}
}

func TestMassEstimate(t *testing.T) {
	snap := params.Defaults()
	got := MassEstimate(snap)

	if got <= 0 {
		t.Fatalf("mass estimate %e not positive", got)
	}
	// Momentum balance with the fiducial parameters lands around 1e6
	// solar masses; anything outside a decade of that means broken
	// unit handling.
	if got < 1e5 || got > 1e8 {
		t.Errorf("mass estimate %e Msun outside plausible range", got)
	}

	// Linear in the coupling efficiency.
	half := snap
	half.Epsilon = 0.5
	if math.Abs(MassEstimate(half)-got/2) > got*1e-12 {
		t.Error("mass estimate not linear in epsilon")
	}
}

func TestMassEstimateUsesDerivedStandoff(t *testing.T) {
	// Doubling R_c quadruples R0^2 and therefore the mass.
	snap := params.Defaults()
	base := MassEstimate(snap)
	snap.Curvature *= 2
	if math.Abs(MassEstimate(snap)-4*base) > base*1e-9 {
		t.Error("mass estimate does not scale as R0^2")
	}
}

func TestComputeDeterministic(t *testing.T) {
	snap := params.Defaults()
	a, b := Compute(snap), Compute(snap)
	if a != b {
		t.Errorf("dashboard not bit-identical across calls: %+v vs %+v", a, b)
	}
}

func TestComputeFields(t *testing.T) {
	snap := params.Defaults()
	d := Compute(snap)

	if d.Standoff != 1.2 {
		t.Errorf("standoff = %f, want exactly 1.2", d.Standoff)
	}
	if d.ShockVelApex != snap.VStar {
		t.Errorf("shock at apex = %f, want v_star", d.ShockVelApex)
	}
	wantLOS := -velocity.WakeBaseline(snap.VStar, snap.Chi, snap.Inclination)
	if d.WakeLOS != wantLOS {
		t.Errorf("wake LOS = %f, want %f", d.WakeLOS, wantLOS)
	}
	if d.WakeLOS > -300 || d.WakeLOS < -315 {
		t.Errorf("wake LOS = %f, expected ~ -308 (receding)", d.WakeLOS)
	}
	if math.Abs(d.LightFraction-snap.VStar/units.LightKms) > 1e-15 {
		t.Errorf("light fraction = %f", d.LightFraction)
	}
	if d.MassEstimate != MassEstimate(snap) || d.WakeAge != WakeAge(snap) {
		t.Error("dashboard disagrees with the standalone scalar functions")
	}
}

func TestStandoffCrossConsistency(t *testing.T) {
	// The snapshot derivation and the geometry derivation must agree
	// for every curvature radius: R0 is never stored, always derived.
	for rc := 0.5; rc <= 5.0; rc += 0.25 {
		snap := params.Defaults()
		snap.Curvature = rc
		if snap.Standoff() != geometry.StandoffRadius(rc) {
			t.Fatalf("standoff derivations diverge at R_c=%f", rc)
		}
		if Compute(snap).Standoff != geometry.StandoffRadius(rc) {
			t.Fatalf("dashboard standoff diverges at R_c=%f", rc)
		}
	}
}
