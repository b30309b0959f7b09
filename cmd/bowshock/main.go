package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bowshock/internal/energetics"
	"github.com/san-kum/bowshock/internal/export"
	"github.com/san-kum/bowshock/internal/fit"
	"github.com/san-kum/bowshock/internal/geometry"
	"github.com/san-kum/bowshock/internal/obsdata"
	"github.com/san-kum/bowshock/internal/params"
	"github.com/san-kum/bowshock/internal/velocity"
	"github.com/san-kum/bowshock/internal/viz"
	"github.com/san-kum/bowshock/internal/wake"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	dataFile   string
	points     int
	nTheta     int
	nPhi       int
	outFile    string
	// parameter override flags
	vStar     float64
	incDeg    float64
	chi       float64
	thetaDeg  float64
	emissP    float64
	ringR     float64
	v0        float64
	delayDist float64
	mixLen    float64
	curvR     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bowshock",
		Short: "runaway black hole bow shock and wake lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}
			return viz.Run(snap)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "parameter file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named parameter preset")
	rootCmd.PersistentFlags().Float64Var(&vStar, "v-star", params.DefaultVStar, "BH space velocity [km/s]")
	rootCmd.PersistentFlags().Float64Var(&incDeg, "inclination", params.DefaultInclination, "inclination angle [deg]")
	rootCmd.PersistentFlags().Float64Var(&chi, "chi", params.DefaultChi, "compression ratio")
	rootCmd.PersistentFlags().Float64Var(&thetaDeg, "theta", params.DefaultThetaHalf, "shock half-opening angle [deg]")
	rootCmd.PersistentFlags().Float64Var(&emissP, "p", params.DefaultEmissivityP, "emissivity power-law index")
	rootCmd.PersistentFlags().Float64Var(&ringR, "r-ring", params.DefaultRingRadius, "PV aperture radius [kpc]")
	rootCmd.PersistentFlags().Float64Var(&v0, "v0", params.DefaultV0, "peak wake velocity [km/s]")
	rootCmd.PersistentFlags().Float64Var(&delayDist, "dr-delay", params.DefaultDelayDist, "mixing delay distance [kpc]")
	rootCmd.PersistentFlags().Float64Var(&mixLen, "l-mix", params.DefaultMixLength, "mixing length [kpc]")
	rootCmd.PersistentFlags().Float64Var(&curvR, "r-c", params.DefaultCurvature, "shock radius of curvature [kpc]")

	dashCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "print derived quantities",
		RunE:  runDashboard,
	}

	pvCmd := &cobra.Command{
		Use:   "pv",
		Short: "plot the position-velocity model curve",
		RunE:  runPV,
	}
	pvCmd.Flags().IntVar(&points, "points", velocity.DefaultCurvePoints, "curve intervals")
	pvCmd.Flags().StringVar(&dataFile, "data", "", "observed PV fixture (json) for residuals")

	wakeCmd := &cobra.Command{
		Use:   "wake",
		Short: "plot the delayed-mixing wake velocity profile",
		RunE:  runWake,
	}
	wakeCmd.Flags().IntVar(&points, "points", wake.DefaultCurvePoints, "curve intervals")
	wakeCmd.Flags().StringVar(&dataFile, "data", "", "observed wake fixture (json) for residuals")

	shockCmd := &cobra.Command{
		Use:   "shock",
		Short: "plot the shock-front velocity profile",
		RunE:  runShock,
	}
	shockCmd.Flags().IntVar(&points, "points", wake.DefaultCurvePoints, "curve intervals")

	surfaceCmd := &cobra.Command{
		Use:   "surface",
		Short: "export the shell surface mesh as wavefront OBJ",
		RunE:  runSurface,
	}
	surfaceCmd.Flags().IntVar(&nTheta, "ntheta", 80, "polar grid resolution")
	surfaceCmd.Flags().IntVar(&nPhi, "nphi", 64, "azimuthal grid resolution")
	surfaceCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "grid-search wake parameters against observed data",
		RunE:  runFit,
	}
	fitCmd.Flags().StringVar(&dataFile, "data", "", "observed wake fixture (json)")
	fitCmd.MarkFlagRequired("data")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range params.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:       "export-csv [pv|wake|shock]",
		Short:     "write a model curve as CSV to stdout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"pv", "wake", "shock"},
		RunE:      runExportCSV,
	}
	exportCSVCmd.Flags().IntVar(&points, "points", 0, "curve intervals (0 = per-curve default)")

	exportSVGCmd := &cobra.Command{
		Use:       "export-svg [pv|wake|shock]",
		Short:     "write a model curve as SVG to stdout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"pv", "wake", "shock"},
		RunE:      runExportSVG,
	}
	exportSVGCmd.Flags().IntVar(&points, "points", 0, "curve intervals (0 = per-curve default)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "write the dashboard snapshot as JSON to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}
			return export.DashboardJSON(os.Stdout, energetics.Compute(snap))
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save [path]",
		Short: "write the effective parameter set to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd)
			if err != nil {
				return err
			}
			return params.Save(args[0], snap)
		},
	}

	rootCmd.AddCommand(dashCmd, pvCmd, wakeCmd, shockCmd, surfaceCmd, fitCmd,
		presetsCmd, exportCSVCmd, exportSVGCmd, exportJSONCmd, saveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSnapshot resolves the effective parameter set: defaults, then
// preset, then config file, then any explicitly set CLI flags.
func loadSnapshot(cmd *cobra.Command) (params.Snapshot, error) {
	snap := params.Defaults()

	if preset != "" {
		p, ok := params.GetPreset(preset)
		if !ok {
			return snap, fmt.Errorf("unknown preset: %s (available: %v)", preset, params.ListPresets())
		}
		snap = p
	}

	if configFile != "" {
		loaded, err := params.Load(configFile)
		if err != nil {
			return snap, fmt.Errorf("failed to load config: %w", err)
		}
		snap = loaded
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag string
		name string
		val  *float64
	}{
		{"v-star", "v_star", &vStar},
		{"inclination", "inclination", &incDeg},
		{"chi", "chi", &chi},
		{"theta", "theta", &thetaDeg},
		{"p", "p", &emissP},
		{"r-ring", "r_ring", &ringR},
		{"v0", "v0", &v0},
		{"dr-delay", "dr_delay", &delayDist},
		{"l-mix", "l_mix", &mixLen},
		{"r-c", "r_c", &curvR},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			var err error
			snap, err = snap.Set(o.name, *o.val)
			if err != nil {
				return snap, err
			}
		}
	}
	return snap, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	d := energetics.Compute(snap)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "standoff radius R0\t%.2f kpc\n", d.Standoff)
	fmt.Fprintf(w, "sound speed\t%.1f km/s\n", d.SoundSpeed)
	fmt.Fprintf(w, "mach number\t%.1f\n", d.Mach)
	fmt.Fprintf(w, "wake age\t%.1f Myr\n", d.WakeAge)
	fmt.Fprintf(w, "BH mass estimate\t%.2e Msun\n", d.MassEstimate)
	fmt.Fprintf(w, "shock velocity at apex\t%.0f km/s\n", d.ShockVelApex)
	fmt.Fprintf(w, "wake LOS velocity\t%.1f km/s\n", d.WakeLOS)
	fmt.Fprintf(w, "v / c\t%.4f\n", d.LightFraction)
	return w.Flush()
}

func runPV(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	pts := velocity.Curve(snap, points)
	data := make([]float64, len(pts))
	for i, p := range pts {
		data[i] = p.V
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(14), asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("modeled LOS velocity [km/s], x ∈ [%+.1f, %+.1f] kpc", -snap.RingRadius, snap.RingRadius))))

	if dataFile != "" {
		ds, err := obsdata.Load(dataFile)
		if err != nil {
			return err
		}
		printResiduals(ds, func(pos float64) float64 { return velocity.PV(pos, snap) })
	}
	return nil
}

func runWake(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	pts := wake.Curve(snap, points)
	data := make([]float64, len(pts))
	for i, p := range pts {
		data[i] = p.V
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(14), asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("wake velocity [km/s], r ∈ [0, %.0f] kpc", snap.RStar))))

	if dataFile != "" {
		ds, err := obsdata.Load(dataFile)
		if err != nil {
			return err
		}
		printResiduals(ds, func(pos float64) float64 { return wake.Velocity(pos, snap) })
	}
	return nil
}

func runShock(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	pts := wake.ShockCurve(snap, points)
	data := make([]float64, len(pts))
	for i, p := range pts {
		data[i] = p.V
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(14), asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("shock-front velocity [km/s], r ∈ [0, %.0f] kpc", snap.RStar))))
	return nil
}

func runSurface(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	mesh := geometry.SurfaceSample(snap.Standoff(), nTheta, nPhi)

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := export.MeshOBJ(out, mesh); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Printf("wrote %d vertices, %d triangles to %s\n",
			len(mesh.Positions), len(mesh.Indices)/3, outFile)
	}
	return nil
}

func runFit(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	ds, err := obsdata.Load(dataFile)
	if err != nil {
		return err
	}

	v0Range, delayRange, mixRange := fit.DefaultRanges()
	result := fit.WakeGrid(snap, ds, v0Range, delayRange, mixRange)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "v0\t%.1f km/s\n", result.Snapshot.V0)
	fmt.Fprintf(w, "dr_delay\t%.1f kpc\n", result.Snapshot.DelayDist)
	fmt.Fprintf(w, "l_mix\t%.1f kpc\n", result.Snapshot.MixLength)
	fmt.Fprintf(w, "chi2\t%.3f\n", result.Chi2)
	if result.Reduced > 0 {
		fmt.Fprintf(w, "reduced chi2\t%.3f\n", result.Reduced)
	}
	return w.Flush()
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	xLabel, pts := curveFor(args[0], snap)
	return export.CurveCSV(os.Stdout, xLabel, "v_kms", pts)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	_, pts := curveFor(args[0], snap)
	fmt.Println(export.CurveSVG(pts, 800, 400, "#00ff00"))
	return nil
}

func curveFor(kind string, snap params.Snapshot) (string, []export.XY) {
	switch kind {
	case "pv":
		src := velocity.Curve(snap, points)
		pts := make([]export.XY, len(src))
		for i, p := range src {
			pts[i] = export.XY{X: p.X, Y: p.V}
		}
		return "x_kpc", pts
	case "wake":
		src := wake.Curve(snap, points)
		pts := make([]export.XY, len(src))
		for i, p := range src {
			pts[i] = export.XY{X: p.R, Y: p.V}
		}
		return "r_kpc", pts
	default:
		src := wake.ShockCurve(snap, points)
		pts := make([]export.XY, len(src))
		for i, p := range src {
			pts[i] = export.XY{X: p.R, Y: p.V}
		}
		return "r_kpc", pts
	}
}

func printResiduals(ds *obsdata.Dataset, model func(float64) float64) {
	sum, sumSq := 0.0, 0.0
	for _, p := range ds.Points {
		r := p.V - model(p.Pos())
		sum += r
		sumSq += r * r
	}
	n := float64(len(ds.Points))
	rms := math.Sqrt(sumSq / n)
	fmt.Printf("\n%d observed points: mean residual %+.1f km/s, rms %.1f km/s\n",
		len(ds.Points), sum/n, rms)
}
