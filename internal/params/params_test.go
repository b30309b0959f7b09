package params

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	snap := Defaults()
	if snap.VStar != 954 || snap.Inclination != 29 || snap.Chi != 3.0 {
		t.Errorf("unexpected defaults: %+v", snap)
	}
	if snap.RStar != 62 || snap.WakeLength != 62 || snap.TCGM != 1e6 {
		t.Errorf("unexpected environment defaults: %+v", snap)
	}
}

func TestStandoffDerived(t *testing.T) {
	snap := Defaults()
	if snap.Standoff() != 1.2 {
		t.Errorf("Standoff() = %f, want exactly 1.2", snap.Standoff())
	}

	snap.Curvature = 3.0
	if snap.Standoff() != 2.0 {
		t.Errorf("Standoff() = %f, want 2.0 after R_c change", snap.Standoff())
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	snap := Defaults()
	for _, name := range Names {
		orig, err := snap.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		updated, err := snap.Set(name, orig)
		if err != nil {
			t.Fatalf("Set(%s): %v", name, err)
		}
		got, _ := updated.Get(name)
		if got != orig {
			t.Errorf("%s: round trip %f -> %f", name, orig, got)
		}
	}
}

func TestSetClampsToBounds(t *testing.T) {
	snap := Defaults()

	s, err := snap.Set("v_star", 1e9)
	if err != nil {
		t.Fatal(err)
	}
	if s.VStar != Bounds["v_star"].Max {
		t.Errorf("v_star = %f, want clamped to %f", s.VStar, Bounds["v_star"].Max)
	}

	s, _ = snap.Set("v0", 0)
	if s.V0 != Bounds["v0"].Max {
		t.Errorf("v0 = %f, want clamped to %f", s.V0, Bounds["v0"].Max)
	}
}

func TestSetUnknown(t *testing.T) {
	snap := Defaults()
	if _, err := snap.Set("warp_factor", 9); err == nil {
		t.Error("expected error for unknown param")
	}
	if _, err := snap.Get("warp_factor"); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestValueSemantics(t *testing.T) {
	snap := Defaults()
	modified, _ := snap.Set("chi", 4.0)
	if snap.Chi != DefaultChi {
		t.Error("Set mutated the receiver; Snapshot must be a value type")
	}
	if modified.Chi != 4.0 {
		t.Error("Set did not apply to the returned copy")
	}
}

func TestEveryNameHasBounds(t *testing.T) {
	for _, name := range Names {
		if _, ok := Bounds[name]; !ok {
			t.Errorf("slider param %s has no bounds", name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	snap := Defaults()
	snap.VStar = 1200
	snap.Curvature = 2.5

	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := Save(path, snap); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != snap {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", snap, loaded)
	}
	if math.Abs(loaded.Standoff()-2.0/3.0*2.5) > 1e-12 {
		t.Errorf("derived standoff wrong after load: %f", loaded.Standoff())
	}
}

func TestPresets(t *testing.T) {
	if _, ok := GetPreset("paper"); !ok {
		t.Fatal("paper preset missing")
	}
	if _, ok := GetPreset("nope"); ok {
		t.Fatal("unexpected preset")
	}

	uniform, _ := GetPreset("uniform")
	if uniform.EmissivityP != 0 {
		t.Errorf("uniform preset p = %f, want 0", uniform.EmissivityP)
	}

	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets incomplete")
	}
}
