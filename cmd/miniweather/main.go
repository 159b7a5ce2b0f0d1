package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fluidkit/miniweather/internal/config"
	"github.com/fluidkit/miniweather/internal/driver"
	"github.com/fluidkit/miniweather/internal/monitor"
	"github.com/fluidkit/miniweather/internal/output"
	"github.com/fluidkit/miniweather/internal/runstore"
)

var (
	dataDir    string
	nx         int
	nz         int
	simTime    float64
	outputFreq float64
	scenarioIn string
	ranks      int
	outPath    string
	useMonitor bool
	configFile string
	preset     string

	log = logrus.New()
)

// main registers the run/list/inspect subcommands and executes the root
// command, exiting non-zero if execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "miniweather",
		Short: "2D compressible, stratified fluid dynamics simulator",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".miniweather", "run store directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation to completion",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&nx, "nx", 0, "global cell count in x (overrides config/preset)")
	runCmd.Flags().IntVar(&nz, "nz", 0, "global cell count in z (overrides config/preset)")
	runCmd.Flags().Float64Var(&simTime, "sim-time", 0, "simulated duration in seconds")
	runCmd.Flags().Float64Var(&outputFreq, "output-freq", 0, "output cadence in seconds (<0 disables output)")
	runCmd.Flags().StringVar(&scenarioIn, "scenario", "", "scenario name or data_spec number")
	runCmd.Flags().IntVar(&ranks, "ranks", 0, "number of simulated ranks")
	runCmd.Flags().StringVar(&outPath, "out", "", "NetCDF output file path (empty disables output)")
	runCmd.Flags().BoolVar(&useMonitor, "monitor", false, "show the live conservation dashboard")
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML config file path")
	runCmd.Flags().StringVar(&preset, "preset", "", "named preset, e.g. thermal/quick")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list completed runs",
		RunE:  listRuns,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [run_id]",
		Short: "show a completed run's metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, inspectCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runSimulation resolves a Config from preset, config file, and CLI
// flags (in increasing precedence order, matching the teacher's
// runSimulation), then runs it to completion and records the result in
// the run store.
func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		scenarioName, presetName, err := splitPreset(preset)
		if err != nil {
			return err
		}
		p := config.GetPreset(scenarioName, presetName)
		if p == nil {
			return fmt.Errorf("unknown preset: %s", preset)
		}
		copied := *p
		cfg = &copied
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			log.Errorf("failed to load config: %v", err)
			return err
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("nx") {
		cfg.NxGlob = nx
	}
	if cmd.Flags().Changed("nz") {
		cfg.NzGlob = nz
	}
	if cmd.Flags().Changed("sim-time") {
		cfg.SimTime = simTime
	}
	if cmd.Flags().Changed("output-freq") {
		cfg.OutputFreq = outputFreq
	}
	if cmd.Flags().Changed("ranks") {
		cfg.Ranks = ranks
	}
	if cmd.Flags().Changed("monitor") {
		cfg.Monitor = useMonitor
	}
	if cmd.Flags().Changed("scenario") {
		ds, err := config.ParseDataSpec(scenarioIn)
		if err != nil {
			log.Errorf("invalid scenario: %v", err)
			return err
		}
		cfg.DataSpec = ds
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputPath = outPath
	}

	if err := cfg.Validate(); err != nil {
		log.Errorf("invalid configuration: %v", err)
		return err
	}

	st := runstore.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	opts := driver.Options{Log: log}

	var writer *output.Writer
	if cfg.OutputPath != "" {
		w, err := output.New(cfg.OutputPath, cfg.NzGlob, cfg.NxGlob)
		if err != nil {
			log.Errorf("failed to open output file: %v", err)
			return err
		}
		writer = w
		opts.Writer = writer
		defer func() {
			if writer != nil {
				writer.Close()
			}
		}()
	}

	var dash *monitor.Dashboard
	if cfg.Monitor && isatty.IsTerminal(os.Stdout.Fd()) {
		dash = monitor.New(scenarioLabel(cfg.DataSpec))
		opts.Dashboard = dash
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := dash.Run(ctx); err != nil {
				log.Warnf("dashboard exited: %v", err)
			}
		}()
	} else if cfg.Monitor {
		log.Infof("stdout is not a terminal; skipping live dashboard")
	}

	result, err := driver.RunWithOptions(context.Background(), cfg, opts)
	if err != nil {
		return err
	}

	if writer != nil {
		if err := writer.Close(); err != nil {
			log.Errorf("failed to close output file: %v", err)
			return err
		}
		writer = nil // avoid the deferred double-close
	}

	meta := runstore.RunMetadata{
		Scenario:    scenarioLabel(cfg.DataSpec),
		Timestamp:   time.Now(),
		NxGlob:      cfg.NxGlob,
		NzGlob:      cfg.NzGlob,
		Ranks:       cfg.Ranks,
		SimTime:     cfg.SimTime,
		Dt:          result.Dt,
		Steps:       result.Steps,
		DMass:       result.DMass,
		DTE:         result.DTE,
		WallSeconds: result.WallSeconds,
		OutputPath:  cfg.OutputPath,
	}
	runID, err := st.Save(meta)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)

	return nil
}

func splitPreset(preset string) (scenarioName, presetName string, err error) {
	for i := len(preset) - 1; i >= 0; i-- {
		if preset[i] == '/' {
			return preset[:i], preset[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("preset must be of the form scenario/name, got %q", preset)
}

func scenarioLabel(dataSpec int) string {
	names := map[int]string{1: "collision", 2: "thermal", 3: "gravity_waves", 5: "density_current", 6: "injection"}
	if n, ok := names[dataSpec]; ok {
		return n
	}
	return fmt.Sprintf("data_spec_%d", dataSpec)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := runstore.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tGRID\tRANKS\tSTEPS\tD_MASS\tD_TE")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%.3e\t%.3e\n",
			r.ID, r.Scenario, r.NxGlob, r.NzGlob, r.Ranks, r.Steps, r.DMass, r.DTE)
	}
	return w.Flush()
}

func inspectRun(cmd *cobra.Command, args []string) error {
	st := runstore.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("id:          %s\n", meta.ID)
	fmt.Printf("scenario:    %s\n", meta.Scenario)
	fmt.Printf("grid:        %d x %d\n", meta.NxGlob, meta.NzGlob)
	fmt.Printf("ranks:       %d\n", meta.Ranks)
	fmt.Printf("sim_time:    %f\n", meta.SimTime)
	fmt.Printf("dt:          %f\n", meta.Dt)
	fmt.Printf("steps:       %d\n", meta.Steps)
	fmt.Printf("d_mass:      %e\n", meta.DMass)
	fmt.Printf("d_te:        %e\n", meta.DTE)
	fmt.Printf("wall time:   %fs\n", meta.WallSeconds)
	if meta.OutputPath != "" {
		fmt.Printf("output:      %s\n", meta.OutputPath)
	}
	return nil
}
