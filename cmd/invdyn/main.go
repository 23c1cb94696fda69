package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/invdyn/internal/analysis"
	"github.com/san-kum/invdyn/internal/config"
	"github.com/san-kum/invdyn/internal/inventory"
	"github.com/san-kum/invdyn/internal/mdp"
	"github.com/san-kum/invdyn/internal/storage"
	"github.com/san-kum/invdyn/internal/viz"
)

var (
	dataDir  string
	logLevel string
	theme    string
	logger   *log.Logger

	scenario scenarioFlags
	save     bool
	show     bool

	sweepMin     float64
	sweepMax     float64
	sweepSteps   int
	sweepWorkers int

	showState  int
	showAction int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "invdyn",
		Short:         "inventory mdp dynamics builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      time.Kitchen,
				Prefix:          "invdyn",
				Level:           level,
			})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".invdyn", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.Themes[0].Name, "color theme")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "build dynamics and print a summary",
		Args:  cobra.NoArgs,
		RunE:  buildDynamics,
	}
	scenario.register(buildCmd)
	buildCmd.Flags().BoolVar(&save, "save", false, "save the table to the data directory")
	buildCmd.Flags().BoolVar(&show, "show", false, "print every pair")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show the outcomes of saved pairs",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&showState, "state", 0, "only show this state")
	showCmd.Flags().IntVar(&showAction, "action", 0, "only show this action")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot retained mass and demand distribution",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run dynamics to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run dynamics to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			families := config.ListFamilies()
			if len(args) > 0 {
				families = []string{args[0]}
			}
			for _, family := range families {
				presets := config.ListPresets(family)
				if len(presets) == 0 {
					fmt.Printf("no presets for family: %s\n", family)
					continue
				}
				fmt.Printf("presets for %s:\n", family)
				for _, p := range presets {
					fmt.Printf("  %s/%s\n", family, p)
				}
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "summarise truncation across a grid of demand rates",
		Args:  cobra.NoArgs,
		RunE:  sweepRates,
	}
	scenario.register(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepMin, "mu-min", 0.5, "smallest demand rate")
	sweepCmd.Flags().Float64Var(&sweepMax, "mu-max", 10, "largest demand rate")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 20, "number of demand rates")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "concurrent builds")

	browseCmd := &cobra.Command{
		Use:   "browse [run_id]",
		Short: "browse a saved run, or a freshly built table, interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  browse,
	}
	scenario.register(browseCmd)

	rootCmd.AddCommand(buildCmd, listCmd, showCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, sweepCmd, browseCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger != nil {
			logger.Error("command failed", "err", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func styles() viz.Styles {
	return viz.NewStyles(viz.GetTheme(theme))
}

func build(cfg *config.Config) (mdp.Dynamics, error) {
	start := time.Now()
	dyn, err := inventory.Build(cfg.StateSpace(), cfg.ActionSpace(), cfg.Params())
	if err != nil {
		return nil, err
	}
	logger.Debug("built dynamics",
		"states", cfg.StateSpace(),
		"actions", cfg.ActionSpace(),
		"pairs", len(dyn),
		"outcomes", dyn.NumOutcomes(),
		"elapsed", time.Since(start))
	return dyn, nil
}

func buildDynamics(cmd *cobra.Command, args []string) error {
	cfg, err := scenario.resolve(cmd)
	if err != nil {
		return err
	}

	dyn, err := build(cfg)
	if err != nil {
		return err
	}

	st := styles()
	title := fmt.Sprintf("%s  mu=%g h=%g p=%g  states %s  actions %s",
		cfg.Name, cfg.Mu, cfg.Holding, cfg.Penalty, cfg.StateSpace(), cfg.ActionSpace())
	fmt.Println(viz.RenderSummary(st, title, analysis.Summarize(dyn)))

	if show {
		for _, pair := range dyn.Pairs() {
			fmt.Println()
			fmt.Println(viz.RenderPair(st, pair, dyn[pair]))
		}
	}

	if save {
		store := storage.New(dataDir).WithLogger(logger)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(cfg, dyn)
		if err != nil {
			return err
		}
		logger.Info("saved run", "id", runID, "dir", dataDir)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir).WithLogger(logger)
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTATES\tACTIONS\tMU\tH\tP\tPAIRS\tMIN RETAINED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%g\t%g\t%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Config.StateSpace(),
			run.Config.ActionSpace(),
			run.Config.Mu,
			run.Config.Holding,
			run.Config.Penalty,
			run.Summary.Pairs,
			run.Summary.MinRetained,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, mdp.Dynamics, error) {
	store := storage.New(dataDir).WithLogger(logger)
	meta, err := store.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	dyn, err := store.LoadDynamics(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, dyn, nil
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, dyn, err := loadRun(args[0])
	if err != nil {
		return err
	}

	st := styles()
	filterState := cmd.Flags().Changed("state")
	filterAction := cmd.Flags().Changed("action")

	shown := 0
	for _, pair := range dyn.Pairs() {
		if filterState && pair.State != showState {
			continue
		}
		if filterAction && pair.Action != showAction {
			continue
		}
		if shown > 0 {
			fmt.Println()
		}
		fmt.Println(viz.RenderPair(st, pair, dyn[pair]))
		shown++
	}

	if shown == 0 {
		return fmt.Errorf("no admissible pairs in %s match the filter", meta.ID)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, dyn, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if len(dyn) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pairs: %d\n\n", len(dyn))

	fmt.Println(viz.PlotRetained(analysis.Truncation(dyn)))
	fmt.Println()

	cfg := meta.Config
	fmt.Println(viz.PlotDemand(cfg.Mu, inventory.MaxDemand(cfg.MaxState, cfg.MinState)))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, dyn, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, dyn)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, dyn, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(&meta.Config, dyn)
}

func sweepRates(cmd *cobra.Command, args []string) error {
	cfg, err := scenario.resolve(cmd)
	if err != nil {
		return err
	}

	points, err := analysis.Sweep(cmd.Context(), logger,
		cfg.StateSpace(), cfg.ActionSpace(), cfg.Params(),
		sweepMin, sweepMax, sweepSteps, sweepWorkers)
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotSweep(points))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MU\tPAIRS\tOUTCOMES\tMIN RETAINED\tWORST\tMEAN DROPPED")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.6f\t%s\t%.6f\n",
			strconv.FormatFloat(p.Mu, 'g', 4, 64),
			p.Summary.Pairs,
			p.Summary.Outcomes,
			p.Summary.MinRetained,
			p.Summary.Worst,
			p.Summary.MeanDropped,
		)
	}
	return w.Flush()
}

func browse(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		meta, dyn, err := loadRun(args[0])
		if err != nil {
			return err
		}
		return viz.RunBrowser(meta.ID, dyn, viz.GetTheme(theme))
	}

	cfg, err := scenario.resolve(cmd)
	if err != nil {
		return err
	}
	dyn, err := build(cfg)
	if err != nil {
		return err
	}
	return viz.RunBrowser(cfg.Name, dyn, viz.GetTheme(theme))
}
