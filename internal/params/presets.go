package params

// Presets are named parameter sets reachable from the CLI and the TUI.
// Each is a full Snapshot so selecting one replaces the whole state.
var Presets = map[string]Snapshot{
	// Fiducial model from the paper.
	"paper": Defaults(),

	// Nearly edge-on view: LOS projection dominated by the wake term.
	"edge-on": func() Snapshot {
		s := Defaults()
		s.Inclination = 72.0
		return s
	}(),

	// Fast runaway with a tight shock.
	"fast": func() Snapshot {
		s := Defaults()
		s.VStar = 1500.0
		s.Curvature = 0.9
		s.ThetaHalf = 40.0
		return s
	}(),

	// Uniform shell emissivity: limb weight collapses to 1 everywhere.
	"uniform": func() Snapshot {
		s := Defaults()
		s.EmissivityP = 0.0
		return s
	}(),
}

func GetPreset(name string) (Snapshot, bool) {
	s, ok := Presets[name]
	return s, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
