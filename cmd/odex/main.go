package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kestrel-sim/odex"
	"github.com/kestrel-sim/odex/internal/config"
	"github.com/kestrel-sim/odex/internal/demo"
	"github.com/kestrel-sim/odex/internal/report"
	"github.com/kestrel-sim/odex/internal/tui"
)

var (
	dataDir    string
	order      int
	cores      int
	parallel   bool
	dt         float64
	duration   float64
	theta      float64
	omega      float64
	rate       float64
	x0, y0, z0 float64
	configFile string
	preset     string
	watch      bool
)

// main wires up the odex CLI: run a demo system through the
// extrapolator, inspect saved runs, and poke at the partitioner
// directly.
func main() {
	rootCmd := &cobra.Command{
		Use:   "odex",
		Short: "parallel extrapolation integrator lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odex", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a demo system and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegration,
	}
	runCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "extrapolation order")
	runCmd.Flags().IntVar(&cores, "cores", config.DefaultCores, "worker count")
	runCmd.Flags().BoolVar(&parallel, "parallel", true, "use the worker pool")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "macro-step size")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "integration duration")
	runCmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle (pendulum)")
	runCmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity (pendulum)")
	runCmd.Flags().Float64Var(&rate, "rate", 1.0, "growth rate (scalar)")
	runCmd.Flags().Float64Var(&x0, "x", 1.0, "initial x (lorenz)")
	runCmd.Flags().Float64Var(&y0, "y", 0.0, "initial y (lorenz)")
	runCmd.Flags().Float64Var(&z0, "z", 0.0, "initial z (lorenz)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&watch, "watch", false, "show a live progress view while running")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's state trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as a single JSON document",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "compare the extrapolator against fixed-step RK4",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}
	benchCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "extrapolation order")
	benchCmd.Flags().IntVar(&cores, "cores", config.DefaultCores, "worker count")
	benchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "macro-step size")
	benchCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "integration duration")

	partitionCmd := &cobra.Command{
		Use:   "partition",
		Short: "print the static bin-packing for a scheme's sub-integration steps",
		RunE:  showPartition,
	}
	partitionCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "extrapolation order")
	partitionCmd.Flags().IntVar(&cores, "cores", config.DefaultCores, "worker count")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "inspect or save a run configuration",
	}
	configShowCmd := &cobra.Command{
		Use:   "show [model] [preset]",
		Short: "print a preset's configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset(args[0], args[1])
			if cfg == nil {
				return fmt.Errorf("unknown preset %s/%s", args[0], args[1])
			}
			fmt.Printf("%+v\n", *cfg)
			return nil
		},
	}
	configSaveCmd := &cobra.Command{
		Use:   "save [model] [preset] [path]",
		Short: "write a preset's configuration to a YAML file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset(args[0], args[1])
			if cfg == nil {
				return fmt.Errorf("unknown preset %s/%s", args[0], args[1])
			}
			return config.Save(args[2], cfg)
		},
	}
	configCmd.AddCommand(configShowCmd, configSaveCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportJSONCmd, benchCmd, partitionCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demoSystem resolves a model name to its System, default initial
// state (overridden by flags where applicable), and optional energy
// source for drift tracking.
func demoSystem(model string) (odex.System, odex.Vector, report.EnergySource, error) {
	switch model {
	case "scalar":
		return &demo.Scalar{Rate: rate}, odex.Vector{1.0}, nil, nil
	case "lorenz":
		return demo.NewLorenz(), odex.Vector{x0, y0, z0}, nil, nil
	case "vanderpol":
		return demo.NewVanDerPol(), odex.Vector{2.0, 0.0}, nil, nil
	case "robertson":
		return demo.NewRobertson(), odex.Vector{1.0, 0.0, 0.0}, nil, nil
	case "pendulum":
		p := demo.NewPendulum()
		return p, odex.Vector{theta, omega}, energyAdapter{p}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown model: %s", model)
	}
}

type energyAdapter struct{ p *demo.Pendulum }

func (e energyAdapter) Energy(y []float64) float64 { return e.p.Energy(odex.Vector(y)) }

func runIntegration(cmd *cobra.Command, args []string) error {
	model := args[0]

	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		order, cores, parallel = cfg.Order, cfg.Cores, cfg.Parallel
		dt, duration = cfg.Dt, cfg.Duration
		theta, omega = cfg.InitState.Theta, cfg.InitState.Omega
		rate = cfg.InitState.Rate
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("order") {
			order = cfg.Order
		}
		if !cmd.Flags().Changed("cores") {
			cores = cfg.Cores
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			duration = cfg.Duration
		}
		if !cmd.Flags().Changed("theta") {
			theta = cfg.InitState.Theta
		}
		if !cmd.Flags().Changed("omega") {
			omega = cfg.InitState.Omega
		}
	}

	sys, y0state, energySrc, err := demoSystem(model)
	if err != nil {
		return err
	}

	scheme, err := odex.Lookup(order, cores)
	if err != nil {
		return err
	}

	st := report.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	n := int(duration / dt)

	extr := odex.NewExtrapolator(sys, scheme, parallel)
	defer extr.Close()

	times := make([]float64, 0, n+1)
	states := make([][]float64, 0, n+1)
	drift := (*report.EnergyDrift)(nil)
	if energySrc != nil {
		drift = report.NewEnergyDrift(energySrc)
	}

	var prog *tea.Program
	var stream chan tea.Msg
	var progDone chan struct{}
	if watch {
		stream = make(chan tea.Msg, 8)
		prog = tui.NewProgram(model, order, cores, float64(scheme.ISBn), parallel, stream)
		progDone = make(chan struct{})
		go func() {
			prog.Run()
			close(progDone)
		}()
	}

	record := func(t float64, y odex.State) {
		v := y.(odex.Vector)
		times = append(times, t)
		row := make([]float64, len(v))
		copy(row, v)
		states = append(states, row)
		if drift != nil {
			drift.Observe(row)
		}
		if stream != nil {
			stream <- tui.StepMsg{Step: len(times) - 1, Total: n, Time: t, Norm: odex.Vector(row).Norm()}
		}
	}
	record(0, y0state)

	start := time.Now()
	final, runErr := extr.Run(y0state, 0, dt, n, record)
	elapsed := time.Since(start)
	if stream != nil {
		close(stream)
		<-progDone
	}
	if runErr != nil {
		return runErr
	}

	metrics := map[string]float64{}
	if drift != nil {
		metrics["energy_drift"] = drift.MaxDrift()
	}

	runID, err := st.Save(&report.Run{
		Model: model, Order: order, Cores: cores, Parallel: parallel,
		Dt: dt, Duration: duration, ISBn: float64(scheme.ISBn),
		Times: times, States: states, Metrics: metrics,
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(states))
	fmt.Printf("final state: %v\n", final)
	for name, val := range metrics {
		fmt.Printf("%s: %.6g\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := report.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tORDER\tCORES\tPARALLEL\tDT\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%g\t%g\n", r.ID, r.Model, r.Order, r.Cores, r.Parallel, r.Dt, r.Duration)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := report.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s  order: %d  cores: %d  ISBn: %.4f\n\n", meta.Model, meta.Order, meta.Cores, meta.ISBn)

	return report.PlotStates(meta.Model, states, 6)
}

func exportRunJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := report.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	return report.ExportJSONStdout(&report.Run{
		Model: meta.Model, Order: meta.Order, Cores: meta.Cores, Parallel: meta.Parallel,
		Dt: meta.Dt, Duration: meta.Duration, ISBn: meta.ISBn,
		Times: times, States: states, Metrics: meta.Metrics,
	})
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]
	sys, y0state, _, err := demoSystem(model)
	if err != nil {
		return err
	}

	scheme, err := odex.Lookup(order, cores)
	if err != nil {
		return err
	}
	n := int(duration / dt)

	extr := odex.NewExtrapolator(sys, scheme, true)
	defer extr.Close()

	start := time.Now()
	extrFinal, err := extr.Run(y0state, 0, dt, n, nil)
	if err != nil {
		return err
	}
	extrElapsed := time.Since(start)

	sys2, _, _, _ := demoSystem(model)
	rk4 := demo.RK4{}
	start = time.Now()
	rk4Final := rk4.Run(sys2, y0state, 0, dt, n, nil)
	rk4Elapsed := time.Since(start)

	fmt.Printf("odex order=%d cores=%d: %v  final=%v\n", order, cores, extrElapsed, extrFinal)
	fmt.Printf("rk4:                   %v  final=%v\n", rk4Elapsed, rk4Final)
	return nil
}

func showPartition(cmd *cobra.Command, args []string) error {
	scheme, err := odex.Lookup(order, cores)
	if err != nil {
		return err
	}
	bins := odex.Partition(scheme.Steps)

	fmt.Printf("order=%d cores=%d ISBn=%.4f steps=%v\n", order, cores, scheme.ISBn, scheme.Steps)
	fmt.Printf("partitioned into %d bins:\n", len(bins))
	for i, bin := range bins {
		fmt.Printf("  worker %d: %v\n", i, bin)
	}
	report.PlotBinHeights(bins)
	return nil
}
