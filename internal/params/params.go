package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default parameter values from the paper's fiducial model.
const (
	DefaultVStar       = 954.0    // km/s
	DefaultInclination = 29.0     // deg
	DefaultChi         = 3.0      // compression ratio
	DefaultThetaHalf   = 53.0     // deg, shock half-opening angle
	DefaultEmissivityP = 1.0      // emissivity power-law index
	DefaultRingRadius  = 2.0      // kpc, PV aperture
	DefaultV0          = -301.0   // km/s, peak wake velocity (negative = receding)
	DefaultDelayDist   = 16.0     // kpc
	DefaultMixLength   = 26.0     // kpc
	DefaultCurvature   = 1.8      // kpc, shock radius of curvature
	DefaultRStar       = 62.0     // kpc, host-to-BH distance
	DefaultWakeLength  = 62.0     // kpc
	DefaultTCGM        = 1e6      // K
	DefaultRhoExt      = 1.67e-25 // kg/m^3
	DefaultEpsilon     = 1.0      // momentum-coupling efficiency
)

// Snapshot is a complete, self-contained parameter set for the physics
// layer. It is passed by value everywhere: a computation that receives a
// Snapshot reads one consistent state no matter what the UI does meanwhile.
//
// Units at this boundary: angles in degrees, distances in kpc, velocities
// in km/s, temperature in Kelvin, density in kg/m^3.
type Snapshot struct {
	VStar       float64 `yaml:"v_star"`
	Inclination float64 `yaml:"inclination"`
	Chi         float64 `yaml:"chi"`
	ThetaHalf   float64 `yaml:"theta"`
	EmissivityP float64 `yaml:"p"`
	RingRadius  float64 `yaml:"r_ring"`
	V0          float64 `yaml:"v0"`
	DelayDist   float64 `yaml:"dr_delay"`
	MixLength   float64 `yaml:"l_mix"`
	Curvature   float64 `yaml:"r_c"`
	RStar       float64 `yaml:"r_star"`
	WakeLength  float64 `yaml:"wake_length"`
	TCGM        float64 `yaml:"t_cgm"`
	RhoExt      float64 `yaml:"rho_ext"`
	Epsilon     float64 `yaml:"epsilon"`
}

func Defaults() Snapshot {
	return Snapshot{
		VStar:       DefaultVStar,
		Inclination: DefaultInclination,
		Chi:         DefaultChi,
		ThetaHalf:   DefaultThetaHalf,
		EmissivityP: DefaultEmissivityP,
		RingRadius:  DefaultRingRadius,
		V0:          DefaultV0,
		DelayDist:   DefaultDelayDist,
		MixLength:   DefaultMixLength,
		Curvature:   DefaultCurvature,
		RStar:       DefaultRStar,
		WakeLength:  DefaultWakeLength,
		TCGM:        DefaultTCGM,
		RhoExt:      DefaultRhoExt,
		Epsilon:     DefaultEpsilon,
	}
}

// Standoff is the single authoritative derivation of the standoff radius
// from the radius of curvature. Nothing stores R0; every consumer derives
// it here so the two can never diverge.
func (s Snapshot) Standoff() float64 {
	return 2.0 / 3.0 * s.Curvature
}

// Bound describes the slider range and nudge step for one parameter.
type Bound struct {
	Min, Max, Step float64
}

// Names lists the adjustable parameters in display order. The fixed
// environment parameters (r_star, wake_length, t_cgm, rho_ext, epsilon)
// are deliberately absent: they change via config file, not sliders.
var Names = []string{
	"v_star", "inclination", "chi", "theta", "p",
	"r_ring", "v0", "dr_delay", "l_mix", "r_c",
}

var Bounds = map[string]Bound{
	"v_star":      {400, 1600, 10},
	"inclination": {15, 75, 1},
	"chi":         {2.0, 4.0, 0.05},
	"theta":       {30, 80, 1},
	"p":           {0.2, 3.0, 0.05},
	"r_ring":      {0.5, 4.0, 0.1},
	"v0":          {-600, -50, 5},
	"dr_delay":    {0, 40, 1},
	"l_mix":       {5, 60, 1},
	"r_c":         {0.5, 5.0, 0.1},
}

func (s Snapshot) Get(name string) (float64, error) {
	switch name {
	case "v_star":
		return s.VStar, nil
	case "inclination":
		return s.Inclination, nil
	case "chi":
		return s.Chi, nil
	case "theta":
		return s.ThetaHalf, nil
	case "p":
		return s.EmissivityP, nil
	case "r_ring":
		return s.RingRadius, nil
	case "v0":
		return s.V0, nil
	case "dr_delay":
		return s.DelayDist, nil
	case "l_mix":
		return s.MixLength, nil
	case "r_c":
		return s.Curvature, nil
	case "r_star":
		return s.RStar, nil
	case "wake_length":
		return s.WakeLength, nil
	case "t_cgm":
		return s.TCGM, nil
	case "rho_ext":
		return s.RhoExt, nil
	case "epsilon":
		return s.Epsilon, nil
	}
	return 0, fmt.Errorf("unknown param: %s", name)
}

// Set returns a copy with the named parameter replaced, clamped to its
// slider bounds when bounds exist for it.
func (s Snapshot) Set(name string, value float64) (Snapshot, error) {
	if b, ok := Bounds[name]; ok {
		if value < b.Min {
			value = b.Min
		}
		if value > b.Max {
			value = b.Max
		}
	}
	switch name {
	case "v_star":
		s.VStar = value
	case "inclination":
		s.Inclination = value
	case "chi":
		s.Chi = value
	case "theta":
		s.ThetaHalf = value
	case "p":
		s.EmissivityP = value
	case "r_ring":
		s.RingRadius = value
	case "v0":
		s.V0 = value
	case "dr_delay":
		s.DelayDist = value
	case "l_mix":
		s.MixLength = value
	case "r_c":
		s.Curvature = value
	case "r_star":
		s.RStar = value
	case "wake_length":
		s.WakeLength = value
	case "t_cgm":
		s.TCGM = value
	case "rho_ext":
		s.RhoExt = value
	case "epsilon":
		s.Epsilon = value
	default:
		return s, fmt.Errorf("unknown param: %s", name)
	}
	return s, nil
}

func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Defaults()
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func Save(path string, snap Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
