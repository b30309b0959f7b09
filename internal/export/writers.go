package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/bowshock/internal/energetics"
	"github.com/san-kum/bowshock/internal/geometry"
)

// CurveCSV writes a curve as two labeled columns.
func CurveCSV(w io.Writer, xLabel, yLabel string, points []XY) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{xLabel, yLabel}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// MeshOBJ writes a triangulated shock surface as Wavefront OBJ with
// vertex normals. Indices convert from 0-based to OBJ's 1-based.
func MeshOBJ(w io.Writer, m geometry.Mesh) error {
	var sb strings.Builder
	sb.WriteString("# bowshock shell surface\n")

	for _, p := range m.Positions {
		fmt.Fprintf(&sb, "v %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(&sb, "vn %.6f %.6f %.6f\n", n.X, n.Y, n.Z)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(&sb, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// dashboardJSON fixes the exported field names independently of the Go
// struct, so renames inside energetics cannot silently change the
// output format.
type dashboardJSON struct {
	StandoffKpc   float64 `json:"standoff_kpc"`
	SoundSpeedKms float64 `json:"sound_speed_kms"`
	Mach          float64 `json:"mach"`
	WakeAgeMyr    float64 `json:"wake_age_myr"`
	MassMsun      float64 `json:"mass_msun"`
	ShockApexKms  float64 `json:"shock_apex_kms"`
	WakeLOSKms    float64 `json:"wake_los_kms"`
	LightFraction float64 `json:"light_fraction"`
}

// DashboardJSON writes the derived-scalar snapshot as indented JSON.
func DashboardJSON(w io.Writer, d energetics.Dashboard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dashboardJSON{
		StandoffKpc:   d.Standoff,
		SoundSpeedKms: d.SoundSpeed,
		Mach:          d.Mach,
		WakeAgeMyr:    d.WakeAge,
		MassMsun:      d.MassEstimate,
		ShockApexKms:  d.ShockVelApex,
		WakeLOSKms:    d.WakeLOS,
		LightFraction: d.LightFraction,
	})
}
