package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"NavChart/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Funds            []model.FundSpec `yaml:"funds"`
	AlternativeFunds []model.FundSpec `yaml:"alternative_funds"`
	UseAlternative   *bool            `yaml:"use_alternative"`
	Fetch            struct {
		PageSize       int `yaml:"page_size"`
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"fetch"`
	Chart struct {
		MarginRatio float64 `yaml:"margin_ratio"`
		Width       string  `yaml:"width"`
		Height      string  `yaml:"height"`
	} `yaml:"chart"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

// Exchange-traded fund codes, primary set.
var defaultFunds = []model.FundSpec{
	{Name: "CSI 300", Code: "510310"},
	{Name: "CSI 500", Code: "510500"},
	{Name: "CSI Dividend", Code: "515180"},
	{Name: "CSI National Defense", Code: "512670"},
	{Name: "CSI Military", Code: "512660"},
	{Name: "Semiconductor", Code: "159995"},
	{Name: "Robotics", Code: "562500"},
	{Name: "Artificial Intelligence", Code: "515980"},
	{Name: "5G", Code: "515050"},
	{Name: "Cloud Computing", Code: "516510"},
	{Name: "Hang Seng Index", Code: "159920"},
	{Name: "S&P 500", Code: "513500"},
}

// Over-the-counter mirror funds tracking the same indices.
var defaultAlternativeFunds = []model.FundSpec{
	{Name: "CSI 300", Code: "007339"},
	{Name: "CSI 500", Code: "070039"},
	{Name: "CSI Dividend", Code: "100032"},
	{Name: "CSI National Defense", Code: "012041"},
	{Name: "CSI Military", Code: "002199"},
	{Name: "Semiconductor", Code: "008887"},
	{Name: "Robotics", Code: "014881"},
	{Name: "Artificial Intelligence", Code: "008082"},
	{Name: "5G", Code: "008086"},
	{Name: "Cloud Computing", Code: "017854"},
	{Name: "Hang Seng Index", Code: "164705"},
	{Name: "S&P 500", Code: "050025"},
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.PageSize = n
		}
	}

	// Defaults
	if len(cfg.Funds) == 0 {
		cfg.Funds = append([]model.FundSpec(nil), defaultFunds...)
	}
	if len(cfg.AlternativeFunds) == 0 {
		cfg.AlternativeFunds = append([]model.FundSpec(nil), defaultAlternativeFunds...)
	}
	if cfg.UseAlternative == nil {
		t := true
		cfg.UseAlternative = &t
	}
	if cfg.Fetch.PageSize == 0 {
		cfg.Fetch.PageSize = 60
	}
	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 10
	}
	if cfg.Chart.MarginRatio == 0 {
		cfg.Chart.MarginRatio = 0.08
	}
	if cfg.Chart.Width == "" {
		cfg.Chart.Width = "1400px"
	}
	if cfg.Chart.Height == "" {
		cfg.Chart.Height = "700px"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}

	return cfg, nil
}

// Timeout returns the configured fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// ActiveFunds returns the fund set selected by use_alternative.
func (c *Config) ActiveFunds() []model.FundSpec {
	if c.UseAlternative != nil && *c.UseAlternative {
		return c.AlternativeFunds
	}
	return c.Funds
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.ActiveFunds()) == 0 {
		return fmt.Errorf("at least one fund is required")
	}
	for _, f := range c.ActiveFunds() {
		if f.Code == "" {
			return fmt.Errorf("fund %q: code is required", f.Name)
		}
	}
	if c.Fetch.PageSize <= 0 {
		return fmt.Errorf("fetch.page_size must be positive")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be positive")
	}
	if c.Chart.MarginRatio <= 0 || c.Chart.MarginRatio >= 1 {
		return fmt.Errorf("chart.margin_ratio must be in (0, 1)")
	}
	return nil
}
