package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/driftgate/driftgate/schema"
)

// Default values for configuration.
const (
	DefaultGitTimeout  = 60 * time.Second
	DefaultHistoryFile = "analysis_history.json"
)

// Config holds the runtime configuration for an audit.
// This struct remains the "final, validated" config.
type Config struct {
	RepoURL          string // Repository URL or local path, as given
	RepoPath         string // Resolved local workspace (set after acquisition)
	RequirementsPath string
	GuidelinesPath   string

	Mode      schema.AnalysisMode
	Threshold float64
	JSONFile  string // Optional path for the gate's JSON summary

	MaxCommits  int
	BaseRef     string // Explicit base override for range selection
	HeadRef     string // Explicit head override for range selection
	HistoryFile string
	GitTimeout  time.Duration

	TotalBudget   int // Snapshot total character budget
	PerFileBudget int // Snapshot per-file character budget

	Output     schema.OutputMode
	OutputFile string
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	HistoryFile string `mapstructure:"history-file"`
	MaxCommits  int    `mapstructure:"max-commits"`
	GitTimeout  string `mapstructure:"git-timeout"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Color       string `mapstructure:"color"`
	Width       int    `mapstructure:"width"`

	// --- Fields from gateCmd.Flags() ---
	Repo         string  `mapstructure:"repo"`
	Requirements string  `mapstructure:"requirements"`
	Guidelines   string  `mapstructure:"guidelines"`
	Mode         string  `mapstructure:"mode"`
	Threshold    float64 `mapstructure:"threshold"`
	JSONFile     string  `mapstructure:"json"`
	BaseRef      string  `mapstructure:"base-ref"`
	HeadRef      string  `mapstructure:"head-ref"`

	// --- Fields from snapshotCmd.Flags() ---
	TotalBudget   int `mapstructure:"total-budget"`
	PerFileBudget int `mapstructure:"per-file-budget"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processMode(cfg, input); err != nil {
		return err
	}
	if err := processBudgets(cfg, input); err != nil {
		return err
	}
	return processTimeout(cfg, input)
}

// validateSimpleInputs processes and validates all non-mode fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.RepoURL = strings.TrimSpace(input.Repo)
	if cfg.RepoURL == "" {
		cfg.RepoURL = input.RepoPathStr
	}
	cfg.RequirementsPath = input.Requirements
	cfg.GuidelinesPath = input.Guidelines
	cfg.JSONFile = input.JSONFile
	cfg.OutputFile = input.OutputFile
	cfg.BaseRef = strings.TrimSpace(input.BaseRef)
	cfg.HeadRef = strings.TrimSpace(input.HeadRef)
	cfg.Width = input.Width

	cfg.HistoryFile = input.HistoryFile
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = DefaultHistoryFile
	}

	if input.Threshold < 0 || input.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100 (received %.1f)", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	if input.MaxCommits <= 0 || input.MaxCommits > 1000 {
		return fmt.Errorf("max-commits must be between 1 and 1000 (received %d)", input.MaxCommits)
	}
	cfg.MaxCommits = input.MaxCommits

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, parquet", input.Output)
	}
	return nil
}

// processMode validates the analysis mode.
func processMode(cfg *Config, input *ConfigRawInput) error {
	cfg.Mode = schema.AnalysisMode(strings.ToLower(input.Mode))
	if cfg.Mode == "" {
		cfg.Mode = schema.StandardMode
	}
	if _, ok := schema.ValidAnalysisModes[cfg.Mode]; !ok {
		return fmt.Errorf("invalid mode '%s'. must be standard or evaluation", input.Mode)
	}
	return nil
}

// processBudgets validates the snapshot budgets.
func processBudgets(cfg *Config, input *ConfigRawInput) error {
	cfg.TotalBudget = input.TotalBudget
	if cfg.TotalBudget == 0 {
		cfg.TotalBudget = schema.SnapshotTotalBudget
	}
	cfg.PerFileBudget = input.PerFileBudget
	if cfg.PerFileBudget == 0 {
		cfg.PerFileBudget = schema.SnapshotPerFileBudget
	}
	if cfg.TotalBudget < 0 || cfg.PerFileBudget < 0 {
		return fmt.Errorf("snapshot budgets cannot be negative")
	}
	if cfg.PerFileBudget > cfg.TotalBudget {
		return fmt.Errorf("per-file budget (%d) cannot exceed total budget (%d)", cfg.PerFileBudget, cfg.TotalBudget)
	}
	return nil
}

// processTimeout parses the git process timeout.
func processTimeout(cfg *Config, input *ConfigRawInput) error {
	if input.GitTimeout == "" {
		cfg.GitTimeout = DefaultGitTimeout
		return nil
	}
	d, err := time.ParseDuration(input.GitTimeout)
	if err != nil {
		return fmt.Errorf("invalid git-timeout '%s': %w", input.GitTimeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("git-timeout must be positive (received %s)", d)
	}
	cfg.GitTimeout = d
	return nil
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
