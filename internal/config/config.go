package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"loan-amortization/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk loan file shape (YAML).
type Config struct {
	// Optional: load loan defaults from a separate YAML (e.g. a lender's standard product).
	// Values set in Loan override the ones from DefaultsFile.
	DefaultsFile string     `yaml:"defaults_file"`
	Loan         LoanConfig `yaml:"loan"`
}

// LoanConfig describes one loan. TermMonths wins over TermYears when both are set.
type LoanConfig struct {
	Name              string  `yaml:"name"`
	Principal         float64 `yaml:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent"`
	TermYears         int     `yaml:"term_years"`
	TermMonths        int     `yaml:"term_months"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.DefaultsFile != "" {
		defaultsPath := c.DefaultsFile
		if !filepath.IsAbs(defaultsPath) {
			// Relative to the config file first, then to the working directory.
			cand := filepath.Join(filepath.Dir(path), defaultsPath)
			if _, err := os.Stat(cand); err == nil {
				defaultsPath = cand
			}
		}
		loaded, err := loadLoanFile(defaultsPath)
		if err != nil {
			return nil, err
		}
		c.Loan = MergeLoan(loaded, c.Loan)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Loan.ToTerms(); err != nil {
		return fmt.Errorf("loan config invalid: %w", err)
	}
	return nil
}

// TermPeriods is the number of monthly payments the config describes.
func (l LoanConfig) TermPeriods() int {
	if l.TermMonths != 0 {
		return l.TermMonths
	}
	return l.TermYears * model.PeriodsPerYear
}

func (l LoanConfig) ToTerms() (model.LoanTerms, error) {
	return model.NewLoanTerms(l.Principal, l.AnnualRatePercent, l.TermPeriods())
}

type loanFileWrapper struct {
	Loan LoanConfig `yaml:"loan"`
}

func loadLoanFile(path string) (LoanConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return LoanConfig{}, err
	}
	var w loanFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return LoanConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Loan, nil
}

// MergeLoan overlays non-zero fields from override onto base.
// A zero rate cannot override a non-zero default.
func MergeLoan(base, override LoanConfig) LoanConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Principal != 0 {
		out.Principal = override.Principal
	}
	if override.AnnualRatePercent != 0 {
		out.AnnualRatePercent = override.AnnualRatePercent
	}
	if override.TermYears != 0 {
		out.TermYears = override.TermYears
		out.TermMonths = 0
	}
	if override.TermMonths != 0 {
		out.TermMonths = override.TermMonths
	}
	return out
}
