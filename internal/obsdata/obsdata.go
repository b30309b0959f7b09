// Package obsdata loads digitized observed-data fixtures for overlay
// against model curves. The physics packages never read files; only the
// CLI and the fitter go through this loader.
package obsdata

import (
	"encoding/json"
	"errors"
	"os"
)

var ErrNoPoints = errors.New("obsdata: fixture contains no points")

// Point is one digitized measurement. PV fixtures use the x field
// (projected position, kpc); wake fixtures use r (distance from the
// host, kpc). Velocities in km/s.
type Point struct {
	X    float64 `json:"x,omitempty"`
	R    float64 `json:"r,omitempty"`
	V    float64 `json:"v"`
	VErr float64 `json:"v_err"`
}

// Pos returns whichever position coordinate the fixture carries.
func (p Point) Pos() float64 {
	if p.X != 0 {
		return p.X
	}
	return p.R
}

type Dataset struct {
	Points []Point `json:"points"`
}

func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	if len(ds.Points) == 0 {
		return nil, ErrNoPoints
	}
	return &ds, nil
}
