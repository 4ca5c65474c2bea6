// Package config loads and validates the replay configuration from YAML or
// JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete replay configuration.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	Balance float64 `json:"balance" yaml:"balance"`
}

// StrategyConfig contains the mean-reversion rule parameters.
type StrategyConfig struct {
	StakeAmount    float64 `json:"stake_amount" yaml:"stake_amount"`
	SMAPeriod      int     `json:"sma_period" yaml:"sma_period"`
	RSIPeriod      int     `json:"rsi_period" yaml:"rsi_period"`
	EntryThreshold float64 `json:"entry_threshold" yaml:"entry_threshold"`
	ExitThreshold  float64 `json:"exit_threshold" yaml:"exit_threshold"`
}

// JournalConfig selects an optional persistent journal sink.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, choosing the format by extension.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
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

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Strategy.StakeAmount <= 0 {
		return fmt.Errorf("strategy.stake_amount must be positive")
	}
	if c.Strategy.SMAPeriod <= 0 {
		return fmt.Errorf("strategy.sma_period must be positive")
	}
	if c.Strategy.RSIPeriod <= 0 {
		return fmt.Errorf("strategy.rsi_period must be positive")
	}
	if c.Strategy.EntryThreshold < 0 || c.Strategy.EntryThreshold > 100 {
		return fmt.Errorf("strategy.entry_threshold must be within [0,100]")
	}
	if c.Strategy.ExitThreshold < 0 || c.Strategy.ExitThreshold > 100 {
		return fmt.Errorf("strategy.exit_threshold must be within [0,100]")
	}
	if c.Strategy.EntryThreshold >= c.Strategy.ExitThreshold {
		return fmt.Errorf("strategy.entry_threshold must be below exit_threshold")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TradesFile == "" {
			return fmt.Errorf("journal.trades_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with the standard RSI(30/70) setup.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Balance: 10_000,
		},
		Strategy: StrategyConfig{
			StakeAmount:    10,
			SMAPeriod:      14,
			RSIPeriod:      14,
			EntryThreshold: 30,
			ExitThreshold:  70,
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}
