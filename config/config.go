package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete toolkit configuration
type Config struct {
	Account   AccountConfig   `json:"account" yaml:"account"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Backtest  BacktestConfig  `json:"backtest" yaml:"backtest"`
	Screening ScreeningConfig `json:"screening" yaml:"screening"`
}

// AccountConfig contains portfolio initialization parameters
type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Cash     float64 `json:"cash" yaml:"cash"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type            string `json:"type" yaml:"type"` // "csv" or "sqlite"
	FillsFile       string `json:"fills_file,omitempty" yaml:"fills_file,omitempty"`
	TradesFile      string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	ValuationsFile  string `json:"valuations_file,omitempty" yaml:"valuations_file,omitempty"`
	DBPath          string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// BacktestConfig contains backtest run parameters
type BacktestConfig struct {
	Dataset       string `json:"dataset" yaml:"dataset"` // quote CSV path
	CloseEnd      bool   `json:"close_end" yaml:"close_end"`
	SnapshotEvery int    `json:"snapshot_every,omitempty" yaml:"snapshot_every,omitempty"`
}

// ScreeningConfig contains ticker screening thresholds
type ScreeningConfig struct {
	MinScore         float64 `json:"min_score" yaml:"min_score"`
	MinTradesPerYear float64 `json:"min_trades_per_year" yaml:"min_trades_per_year"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Cash <= 0 {
		return fmt.Errorf("account.cash must be positive")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && (c.Journal.FillsFile == "" || c.Journal.TradesFile == "" || c.Journal.ValuationsFile == "") {
		return fmt.Errorf("journal fills_file, trades_file and valuations_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	if c.Backtest.SnapshotEvery < 0 {
		return fmt.Errorf("backtest.snapshot_every must not be negative")
	}
	if c.Screening.MinTradesPerYear < 0 {
		return fmt.Errorf("screening.min_trades_per_year must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
			Cash:     100000,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./qf.sqlite",
		},
		Backtest: BacktestConfig{
			Dataset:  "./quotes.csv",
			CloseEnd: true,
		},
		Screening: ScreeningConfig{
			MinScore:         1.0,
			MinTradesPerYear: 4.0,
		},
	}
}
