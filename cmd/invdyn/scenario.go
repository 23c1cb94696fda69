package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/invdyn/internal/config"
)

// scenarioFlags holds the flags shared by every command that builds a table.
type scenarioFlags struct {
	configFile string
	preset     string
	name       string
	minState   int
	maxState   int
	minAction  int
	maxAction  int
	mu         float64
	holding    float64
	penalty    float64
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configFile, "config", "", "config file path (yaml or hcl)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "use preset configuration (family/name)")
	cmd.Flags().StringVar(&f.name, "name", "", "scenario name")
	cmd.Flags().IntVar(&f.minState, "min-state", config.DefaultMinState, "lowest inventory level (truncation floor)")
	cmd.Flags().IntVar(&f.maxState, "max-state", config.DefaultMaxState, "highest inventory level")
	cmd.Flags().IntVar(&f.minAction, "min-action", config.DefaultMinAction, "smallest order quantity")
	cmd.Flags().IntVar(&f.maxAction, "max-action", config.DefaultMaxAction, "largest order quantity")
	cmd.Flags().Float64Var(&f.mu, "mu", config.DefaultMu, "poisson demand rate")
	cmd.Flags().Float64Var(&f.holding, "holding", config.DefaultHolding, "unit holding cost")
	cmd.Flags().Float64Var(&f.penalty, "penalty", config.DefaultPenalty, "unit backlog penalty cost")
}

// resolve layers defaults, then a preset or config file, then any flags
// set explicitly on the command line.
func (f *scenarioFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	switch {
	case f.preset != "" && f.configFile != "":
		return nil, fmt.Errorf("--preset and --config are mutually exclusive")
	case f.preset != "":
		family, name, ok := strings.Cut(f.preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be family/name, got %q", f.preset)
		}
		cfg = config.GetPreset(family, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets(family))
		}
	case f.configFile != "":
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Name = f.name
	}
	if flags.Changed("min-state") {
		cfg.MinState = f.minState
	}
	if flags.Changed("max-state") {
		cfg.MaxState = f.maxState
	}
	if flags.Changed("min-action") {
		cfg.MinAction = f.minAction
	}
	if flags.Changed("max-action") {
		cfg.MaxAction = f.maxAction
	}
	if flags.Changed("mu") {
		cfg.Mu = f.mu
	}
	if flags.Changed("holding") {
		cfg.Holding = f.holding
	}
	if flags.Changed("penalty") {
		cfg.Penalty = f.penalty
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
