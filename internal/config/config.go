// Package config loads deployment-tunable settings from an optional YAML
// file. The extraction core never reads this: resolved values are passed to
// it as explicit parameters.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chaiwat-s/onepage/internal/calendar"
)

// Config holds the settings a deployment may override.
type Config struct {
	// FiscalStartMonth is the month the fiscal year begins, as an English
	// month name. Thai government fiscal years start in October.
	FiscalStartMonth string `yaml:"fiscal_start_month"`
	// PdftotextPath overrides the pdftotext binary used for PDF decoding.
	PdftotextPath string `yaml:"pdftotext_path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{FiscalStartMonth: "october"}
}

// Load reads the YAML configuration at path. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if _, err := cfg.StartMonth(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// StartMonth resolves FiscalStartMonth to a calendar month.
func (c Config) StartMonth() (time.Month, error) {
	if c.FiscalStartMonth == "" {
		return time.October, nil
	}
	m, ok := calendar.MonthIndex(c.FiscalStartMonth)
	if !ok {
		return 0, fmt.Errorf("unknown fiscal start month %q", c.FiscalStartMonth)
	}
	return time.Month(m), nil
}
