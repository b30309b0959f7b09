// Package fit tunes wake-model parameters against observed data by
// exhaustive grid search. The search space is small (three parameters,
// tens of steps each) so brute force beats anything cleverer here.
package fit

import (
	"math"

	"github.com/san-kum/bowshock/internal/obsdata"
	"github.com/san-kum/bowshock/internal/params"
	"github.com/san-kum/bowshock/internal/wake"
)

// Range is an inclusive parameter sweep with Steps+1 samples.
type Range struct {
	Min, Max float64
	Steps    int
}

func (r Range) value(i int) float64 {
	if r.Steps < 1 {
		return r.Min
	}
	return r.Min + (r.Max-r.Min)*float64(i)/float64(r.Steps)
}

// Result is the best grid point found and its goodness of fit.
type Result struct {
	Snapshot params.Snapshot
	Chi2     float64
	// Reduced is chi2 over (points - 3 free parameters), when defined.
	Reduced float64
}

// Chi2 is the error-weighted squared residual of the wake model against
// a dataset. Points with no stated error get unit weight.
func Chi2(snap params.Snapshot, ds *obsdata.Dataset) float64 {
	sum := 0.0
	for _, p := range ds.Points {
		model := wake.Velocity(p.Pos(), snap)
		sigma := p.VErr
		if sigma <= 0 {
			sigma = 1.0
		}
		d := (p.V - model) / sigma
		sum += d * d
	}
	return sum
}

// WakeGrid sweeps (v0, dr_delay, l_mix) over the given ranges, holding
// every other parameter at its value in base, and returns the snapshot
// minimizing Chi2.
func WakeGrid(base params.Snapshot, ds *obsdata.Dataset, v0, delay, mix Range) Result {
	best := Result{Snapshot: base, Chi2: math.Inf(1)}

	for i := 0; i <= v0.Steps; i++ {
		for j := 0; j <= delay.Steps; j++ {
			for k := 0; k <= mix.Steps; k++ {
				snap := base
				snap.V0 = v0.value(i)
				snap.DelayDist = delay.value(j)
				snap.MixLength = mix.value(k)
				if snap.MixLength <= 0 {
					continue
				}
				c := Chi2(snap, ds)
				if c < best.Chi2 {
					best.Snapshot = snap
					best.Chi2 = c
				}
			}
		}
	}

	if dof := len(ds.Points) - 3; dof > 0 {
		best.Reduced = best.Chi2 / float64(dof)
	}
	return best
}

// DefaultRanges spans the slider bounds of the three wake parameters at
// a resolution that keeps the full sweep under ~100k model evaluations.
func DefaultRanges() (v0, delay, mix Range) {
	v0 = Range{Min: params.Bounds["v0"].Min, Max: params.Bounds["v0"].Max, Steps: 40}
	delay = Range{Min: params.Bounds["dr_delay"].Min, Max: params.Bounds["dr_delay"].Max, Steps: 40}
	mix = Range{Min: params.Bounds["l_mix"].Min, Max: params.Bounds["l_mix"].Max, Steps: 40}
	return v0, delay, mix
}
