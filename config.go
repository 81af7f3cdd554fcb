package totalreturn

import (
	"fmt"
	"os"

	"github.com/etnz/totalreturn/date"
	"gopkg.in/yaml.v3"
)

// Config is the batch-query description read from a YAML file:
//
//	stocks: ["600519", "000001"]
//	start_date: 2023-06-19
//	end_date: 2024-06-18   # optional, defaults to the previous trading day
//	names:                 # optional static name table, presentation only
//	  "600519": 贵州茅台
//	output_dir: output
type Config struct {
	Stocks    []string          `yaml:"stocks"`
	StartDate string            `yaml:"start_date"`
	EndDate   string            `yaml:"end_date"`
	Names     map[string]string `yaml:"names"`
	OutputDir string            `yaml:"output_dir"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	if len(cfg.Stocks) == 0 {
		return cfg, fmt.Errorf("config %q: no stocks configured", path)
	}
	if _, _, err := cfg.Window(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Window parses the configured date range. The end date is the zero Date
// when absent.
func (c Config) Window() (start, end date.Date, err error) {
	if c.StartDate == "" {
		return start, end, fmt.Errorf("start_date is required")
	}
	if start, err = date.Parse(c.StartDate); err != nil {
		return start, end, err
	}
	if c.EndDate != "" {
		if end, err = date.Parse(c.EndDate); err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}

// Requests expands the config into one pipeline request per stock.
func (c Config) Requests() ([]Request, error) {
	start, end, err := c.Window()
	if err != nil {
		return nil, err
	}
	reqs := make([]Request, 0, len(c.Stocks))
	for _, code := range c.Stocks {
		reqs = append(reqs, Request{Symbol: code, Start: start, End: end})
	}
	return reqs, nil
}
