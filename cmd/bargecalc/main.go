// Command bargecalc computes hydrostatic stability and ITTC-1957
// resistance/power figures for the RC cargo barge, from the command
// line or through an interactive dashboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/acuellar/bargecalc/internal/analysis"
	"github.com/acuellar/bargecalc/internal/config"
	"github.com/acuellar/bargecalc/internal/flotation"
	"github.com/acuellar/bargecalc/internal/report"
	"github.com/acuellar/bargecalc/internal/resistance"
	"github.com/acuellar/bargecalc/internal/stability"
	"github.com/acuellar/bargecalc/internal/tui"
)

var (
	// Hull geometry
	totalLength float64
	beam        float64
	height      float64
	bowLength   float64
	draft       float64
	// Masses
	hullMass      float64
	hullCG        float64
	electronicsKg float64
	electronicsCG float64
	cargoMass     float64
	cargoCG       float64
	// Resistance
	formFactor float64
	efficiency float64
	velocity   float64
	vMin       float64
	vMax       float64
	samples    int
	powerLimit float64
	// Stability
	gmThreshold float64
	draftLimit  float64
	loadOffset  float64
	loadMass    float64
	// Environment
	seawater bool
	// I/O
	configFile string
	preset     string
	outDir     string
	verbose    bool

	logger *log.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bargecalc",
		Short: "hydrostatics and ITTC-1957 resistance for the RC cargo barge",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger = log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")
	addHullFlags(rootCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "run the full analysis and print the report",
		RunE:  runAnalyze,
	}
	addMassFlags(analyzeCmd)
	addResistanceFlags(analyzeCmd)
	addStabilityFlags(analyzeCmd)

	geometryCmd := &cobra.Command{
		Use:   "geometry",
		Short: "hydrostatic properties at a draft",
		RunE:  runGeometry,
	}
	geometryCmd.Flags().Float64Var(&draft, "draft", 0.055, "draft (m)")

	flotationCmd := &cobra.Command{
		Use:   "flotation",
		Short: "equilibrium draft and flotation check",
		RunE:  runFlotation,
	}
	addMassFlags(flotationCmd)
	flotationCmd.Flags().Float64Var(&draftLimit, "draft-limit", config.DefaultDraftLimit, "operating draft limit (m)")

	stabilityCmd := &cobra.Command{
		Use:   "stability",
		Short: "metacentric stability at the equilibrium draft",
		RunE:  runStability,
	}
	addMassFlags(stabilityCmd)
	addStabilityFlags(stabilityCmd)
	stabilityCmd.Flags().Float64Var(&loadMass, "load", 1.0, "offset load mass (kg)")
	stabilityCmd.Flags().Float64Var(&loadOffset, "offset", 0.05, "lateral load offset (m)")

	resistanceCmd := &cobra.Command{
		Use:   "resistance",
		Short: "resistance breakdown at one velocity",
		RunE:  runResistance,
	}
	addMassFlags(resistanceCmd)
	addResistanceFlags(resistanceCmd)
	resistanceCmd.Flags().Float64Var(&velocity, "velocity", 0.5, "velocity (m/s)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "resistance/power sweep over a velocity range",
		RunE:  runSweep,
	}
	addMassFlags(sweepCmd)
	addResistanceFlags(sweepCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write report files (txt, json, csv, svg)",
		RunE:  runExport,
	}
	addMassFlags(exportCmd)
	addResistanceFlags(exportCmd)
	addStabilityFlags(exportCmd)
	exportCmd.Flags().StringVar(&outDir, "out", "analysis_results", "output directory")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive dashboard (same as running with no subcommand)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(analyzeCmd, geometryCmd, flotationCmd, stabilityCmd,
		resistanceCmd, sweepCmd, exportCmd, tuiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addHullFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Float64Var(&totalLength, "length", 0.45, "total waterline length (m)")
	cmd.PersistentFlags().Float64Var(&beam, "beam", 0.172, "beam (m)")
	cmd.PersistentFlags().Float64Var(&height, "height", 0.156, "hull height (m)")
	cmd.PersistentFlags().Float64Var(&bowLength, "bow", 0.05, "pyramidal bow length (m)")
	cmd.PersistentFlags().BoolVar(&seawater, "seawater", false, "use sea water properties")
}

func addMassFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&hullMass, "hull-mass", 1.2, "hull mass (kg)")
	cmd.Flags().Float64Var(&hullCG, "hull-cg", 0.04, "hull CG height (m)")
	cmd.Flags().Float64Var(&electronicsKg, "electronics-mass", 1.0, "electronics mass (kg)")
	cmd.Flags().Float64Var(&electronicsCG, "electronics-cg", 0.03, "electronics CG height (m)")
	cmd.Flags().Float64Var(&cargoMass, "cargo", 2.5, "cargo mass (kg)")
	cmd.Flags().Float64Var(&cargoCG, "cargo-cg", 0.06, "cargo CG height (m)")
}

func addResistanceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&formFactor, "form-factor", config.DefaultFormFactor, "form factor k")
	cmd.Flags().Float64Var(&efficiency, "efficiency", config.DefaultEfficiency, "total propulsive efficiency")
	cmd.Flags().Float64Var(&vMin, "v-min", config.DefaultVelocityMin, "sweep minimum velocity (m/s)")
	cmd.Flags().Float64Var(&vMax, "v-max", config.DefaultVelocityMax, "sweep maximum velocity (m/s)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sweep sample count")
	cmd.Flags().Float64Var(&powerLimit, "power-limit", config.DefaultPowerLimit, "shaft power limit (W)")
}

func addStabilityFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gmThreshold, "gm-threshold", config.DefaultGMThreshold, "GM stability threshold (m)")
	cmd.Flags().Float64Var(&draftLimit, "draft-limit", config.DefaultDraftLimit, "operating draft limit (m)")
}

// loadConfig resolves precedence the way the original suite did:
// defaults, then preset, then config file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (see: bargecalc presets)", preset)
		}
		cfg = p
		logger.Debug("loaded preset", "name", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config file", "path", configFile)
	}

	flagOverrides(cmd, cfg)
	if seawater {
		cfg.Fluid.Density = 1025.0
		cfg.Fluid.KinematicViscosity = 1.188e-6
	}
	return cfg, nil
}

func flagOverrides(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) || cmd.InheritedFlags().Changed(name) {
			apply()
		}
	}
	set("length", func() { cfg.Hull.TotalLength = totalLength })
	set("beam", func() { cfg.Hull.Beam = beam })
	set("height", func() { cfg.Hull.Height = height })
	set("bow", func() { cfg.Hull.BowLength = bowLength })
	set("hull-mass", func() { cfg.Masses.Hull.Mass = hullMass })
	set("hull-cg", func() { cfg.Masses.Hull.CGHeight = hullCG })
	set("electronics-mass", func() { cfg.Masses.Electronics.Mass = electronicsKg })
	set("electronics-cg", func() { cfg.Masses.Electronics.CGHeight = electronicsCG })
	set("cargo", func() { cfg.Masses.Cargo.Mass = cargoMass })
	set("cargo-cg", func() { cfg.Masses.Cargo.CGHeight = cargoCG })
	set("form-factor", func() { cfg.Resistance.FormFactor = formFactor })
	set("efficiency", func() { cfg.Resistance.Efficiency = efficiency })
	set("v-min", func() { cfg.Resistance.VelocityMin = vMin })
	set("v-max", func() { cfg.Resistance.VelocityMax = vMax })
	set("samples", func() { cfg.Resistance.Samples = samples })
	set("power-limit", func() { cfg.Resistance.PowerLimit = powerLimit })
	set("gm-threshold", func() { cfg.Stability.GMThreshold = gmThreshold })
	set("draft-limit", func() { cfg.Stability.DraftLimit = draftLimit })
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Debug("running analysis", "cargo", cfg.Masses.Cargo.Mass, "total", cfg.Masses.TotalMass())

	rep, err := analysis.Run(cfg.AnalysisInput())
	if err != nil {
		return err
	}
	fmt.Print(report.Text(rep))
	return nil
}

func runGeometry(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Hull.Compute(draft)
	if err != nil {
		return err
	}
	cb, err := cfg.Hull.BlockCoefficient(draft)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "draft\t%.3f m\n", g.Draft)
	fmt.Fprintf(w, "submerged volume\t%.6f m³\n", g.SubmergedVolume)
	fmt.Fprintf(w, "displacement\t%.3f kg\n", g.SubmergedVolume*cfg.Fluid.Density)
	fmt.Fprintf(w, "wetted area\t%.6f m²\n", g.WettedArea)
	fmt.Fprintf(w, "waterplane area\t%.6f m²\n", g.WaterplaneArea)
	fmt.Fprintf(w, "KB\t%.2f cm\n", g.KB*100)
	fmt.Fprintf(w, "block coefficient\t%.3f\n", cb)
	fmt.Fprintf(w, "waterplane coefficient\t%.3f\n", cfg.Hull.WaterplaneCoefficient())
	fmt.Fprintf(w, "structural mass\t%.3f kg\n", cfg.Hull.StructuralMass(cfg.Material))
	return w.Flush()
}

func runFlotation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fl, err := flotation.Solve(cfg.Hull, cfg.Masses, cfg.Fluid, cfg.Stability.DraftLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "total mass\t%.2f kg\n", cfg.Masses.TotalMass())
	fmt.Fprintf(w, "required draft\t%.2f cm\n", fl.RequiredDraft*100)
	fmt.Fprintf(w, "equilibrium draft\t%.2f cm\n", fl.EquilibriumDraft*100)
	fmt.Fprintf(w, "buoyant force\t%.2f N\n", fl.BuoyantForce)
	fmt.Fprintf(w, "weight force\t%.2f N\n", fl.WeightForce)
	fmt.Fprintf(w, "net force\t%+.2f N\n", fl.NetForce)
	fmt.Fprintf(w, "floating\t%v (limit %.1f cm)\n", fl.IsFloating, fl.DraftLimit*100)
	fmt.Fprintf(w, "load margin\t%.2f kg\n", fl.MaxAdditionalLoad)
	return w.Flush()
}

func runStability(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := stability.Analyze(cfg.Hull, cfg.Masses, cfg.Fluid, stability.Options{
		GMThreshold: cfg.Stability.GMThreshold,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "draft\t%.2f cm\n", st.Draft*100)
	fmt.Fprintf(w, "KB\t%.2f cm\n", st.KB*100)
	fmt.Fprintf(w, "BM\t%.2f cm\n", st.BM*100)
	fmt.Fprintf(w, "KG\t%.2f cm\n", st.KG*100)
	fmt.Fprintf(w, "GM\t%.2f cm\n", st.GM*100)
	fmt.Fprintf(w, "rating\t%s\n", st.Rating)
	fmt.Fprintf(w, "max safe heel\t%.0f°\n", st.MaxSafeHeel())
	fmt.Fprintf(w, "heel (%.1f kg @ %.0f cm)\t%.2f°\n", loadMass, loadOffset*100, st.HeelAngle(loadMass, loadOffset))
	if err := w.Flush(); err != nil {
		return err
	}

	maxCargo := 2 * cfg.Masses.Cargo.Mass
	if maxCargo <= 0 {
		maxCargo = 4.0
	}
	curve, err := stability.GMCurve(cfg.Hull, cfg.Masses, cfg.Fluid, 0, maxCargo, 17)
	if err != nil {
		return err
	}
	data := make([]float64, len(curve))
	for i, pt := range curve {
		data[i] = pt.GM * 100
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("GM (cm) vs cargo, 0–%.1f kg", maxCargo)),
	))
	return nil
}

func runResistance(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	calc, err := calculatorFor(cfg)
	if err != nil {
		return err
	}
	pt, err := calc.Compute(velocity)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "velocity\t%.2f m/s\n", pt.Velocity)
	fmt.Fprintf(w, "reynolds\t%.3e\n", pt.Reynolds)
	fmt.Fprintf(w, "froude\t%.3f\n", pt.Froude)
	fmt.Fprintf(w, "Cf (ITTC-1957)\t%.6f\n", pt.FrictionCoefficient)
	fmt.Fprintf(w, "friction Rf\t%.3f N\n", pt.FrictionResistance)
	fmt.Fprintf(w, "viscous Rv\t%.3f N\n", pt.ViscousResistance)
	fmt.Fprintf(w, "wave Rw\t%.3f N\n", pt.WaveResistance)
	fmt.Fprintf(w, "air Ra\t%.3f N\n", pt.AirResistance)
	fmt.Fprintf(w, "total RT\t%.3f N\n", pt.TotalResistance)
	fmt.Fprintf(w, "effective power\t%.3f W\n", pt.EffectivePower)
	fmt.Fprintf(w, "shaft power\t%.3f W\n", pt.ShaftPower)
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rep, err := analysis.Run(cfg.AnalysisInput())
	if err != nil {
		return err
	}

	fmt.Print(report.CurveTable(rep))
	fmt.Println()

	data := make([]float64, len(rep.Curve))
	for i, pt := range rep.Curve {
		data[i] = pt.TotalResistance
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total resistance (N) vs velocity"),
	))
	fmt.Println()
	for i, pt := range rep.Curve {
		data[i] = pt.ShaftPower
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("shaft power (W) vs velocity"),
	))

	if opt, ok := rep.Curve.OptimalVelocity(); ok {
		fmt.Printf("\noptimal velocity (min RT/V): %.2f m/s\n", opt.Velocity)
	}
	if cfg.Resistance.PowerLimit > 0 {
		if pt, ok := rep.Curve.MaxVelocityUnder(cfg.Resistance.PowerLimit); ok {
			fmt.Printf("max velocity under %.0f W shaft: %.2f m/s\n", cfg.Resistance.PowerLimit, pt.Velocity)
		} else {
			fmt.Printf("no sampled velocity fits under %.0f W shaft power\n", cfg.Resistance.PowerLimit)
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rep, err := analysis.Run(cfg.AnalysisInput())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	stamp := rep.GeneratedAt.Format("20060102_150405")

	files := map[string]func(f *os.File) error{
		"analysis_report_" + stamp + ".txt": func(f *os.File) error {
			_, err := f.WriteString(report.Text(rep))
			return err
		},
		"analysis_" + stamp + ".json": func(f *os.File) error {
			return report.WriteJSON(f, rep)
		},
		"resistance_" + stamp + ".csv": func(f *os.File) error {
			return report.WriteCSV(f, rep)
		},
		"resistance_" + stamp + ".svg": func(f *os.File) error {
			_, err := f.WriteString(report.CurveSVG(curveSeries(rep.Curve), 800, 500))
			return err
		},
	}

	for name, write := range files {
		path := filepath.Join(outDir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := write(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("wrote " + path)
	}
	return nil
}

func curveSeries(curve resistance.Curve) map[string][]report.XY {
	total := make([]report.XY, len(curve))
	viscous := make([]report.XY, len(curve))
	wave := make([]report.XY, len(curve))
	for i, pt := range curve {
		total[i] = report.XY{X: pt.Velocity, Y: pt.TotalResistance}
		viscous[i] = report.XY{X: pt.Velocity, Y: pt.ViscousResistance}
		wave[i] = report.XY{X: pt.Velocity, Y: pt.WaveResistance}
	}
	return map[string][]report.XY{
		"total (N)":   total,
		"viscous (N)": viscous,
		"wave (N)":    wave,
	}
}

func calculatorFor(cfg *config.Config) (*resistance.Calculator, error) {
	fl, err := flotation.Solve(cfg.Hull, cfg.Masses, cfg.Fluid, cfg.Stability.DraftLimit)
	if err != nil {
		return nil, err
	}
	return resistance.New(cfg.Hull, cfg.Fluid, fl.EquilibriumDraft,
		cfg.Resistance.FormFactor, cfg.Resistance.Efficiency)
}
