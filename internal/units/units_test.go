package units

import (
	"math"
	"testing"
)

func TestAngleConversions(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %f", got)
	}
	if got := RadToDeg(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("RadToDeg(pi/2) = %f", got)
	}
}

func TestRoundTrips(t *testing.T) {
	tests := []struct {
		name     string
		fwd, rev func(float64) float64
		val      float64
	}{
		{"kpc", KpcToM, MToKpc, 62.0},
		{"velocity", KmsToMs, MsToKms, 954.0},
		{"mass", SolarToKg, KgToSolar, 2e7},
		{"time", MyrToSec, SecToMyr, 73.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rev(tt.fwd(tt.val))
			if math.Abs(got-tt.val) > tt.val*1e-12 {
				t.Errorf("round trip %f -> %f", tt.val, got)
			}
		})
	}
}

func TestNaNPropagates(t *testing.T) {
	if !math.IsNaN(KpcToM(math.NaN())) {
		t.Error("conversions must propagate NaN, not mask it")
	}
}
