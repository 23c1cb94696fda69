package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/invdyn/internal/inventory"
	"github.com/san-kum/invdyn/internal/mdp"
)

const (
	DefaultMinState  = 0
	DefaultMaxState  = 5
	DefaultMinAction = 0
	DefaultMaxAction = 3
	DefaultMu        = 2.0
	DefaultHolding   = 1.0
	DefaultPenalty   = 9.0
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one inventory scenario. State and action bounds are
// inclusive.
type Config struct {
	Name      string  `json:"name" yaml:"name" hcl:"name,optional"`
	MinState  int     `json:"min_state" yaml:"min_state" hcl:"min_state,optional"`
	MaxState  int     `json:"max_state" yaml:"max_state" hcl:"max_state,optional"`
	MinAction int     `json:"min_action" yaml:"min_action" hcl:"min_action,optional"`
	MaxAction int     `json:"max_action" yaml:"max_action" hcl:"max_action,optional"`
	Mu        float64 `json:"mu" yaml:"mu" hcl:"mu,optional"`
	Holding   float64 `json:"holding_cost" yaml:"holding_cost" hcl:"holding_cost,optional"`
	Penalty   float64 `json:"penalty_cost" yaml:"penalty_cost" hcl:"penalty_cost,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:      "default",
		MinState:  DefaultMinState,
		MaxState:  DefaultMaxState,
		MinAction: DefaultMinAction,
		MaxAction: DefaultMaxAction,
		Mu:        DefaultMu,
		Holding:   DefaultHolding,
		Penalty:   DefaultPenalty,
	}
}

// Load reads a YAML file, or an HCL file when the extension is .hcl.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return loadHCL(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadHCL(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.MaxState < c.MinState {
		return fmt.Errorf("%w: max_state %d below min_state %d", ErrInvalidConfig, c.MaxState, c.MinState)
	}
	if c.MaxAction < c.MinAction {
		return fmt.Errorf("%w: max_action %d below min_action %d", ErrInvalidConfig, c.MaxAction, c.MinAction)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) StateSpace() mdp.Space {
	return mdp.Interval(c.MinState, c.MaxState)
}

func (c *Config) ActionSpace() mdp.Space {
	return mdp.Interval(c.MinAction, c.MaxAction)
}

// Params uses the lower state bound as the truncation floor.
func (c *Config) Params() inventory.Params {
	return inventory.Params{
		MinState: c.MinState,
		Mu:       c.Mu,
		Holding:  c.Holding,
		Penalty:  c.Penalty,
	}
}
