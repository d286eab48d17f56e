package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"

	"loan-amortization/internal/model"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	is := is.New(t)

	path := writeFile(t, t.TempDir(), "loan.yaml", `
loan:
  name: car
  principal: 1200
  annual_rate_percent: 12
  term_years: 1
`)
	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.Loan.Name, "car")

	terms, err := cfg.Loan.ToTerms()
	is.NoErr(err)
	is.Equal(terms, model.LoanTerms{Principal: 1200, AnnualRatePercent: 12, TermPeriods: 12})
}

func TestLoad_DefaultsFileMerged(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	writeFile(t, dir, "mortgage.yaml", `
loan:
  name: standard mortgage
  annual_rate_percent: 6.5
  term_years: 30
`)
	path := writeFile(t, dir, "loan.yaml", `
defaults_file: mortgage.yaml
loan:
  principal: 350000
  term_months: 180
`)
	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.Loan.Name, "standard mortgage")
	is.Equal(cfg.Loan.Principal, 350000.0)
	is.Equal(cfg.Loan.AnnualRatePercent, 6.5)
	is.Equal(cfg.Loan.TermPeriods(), 180)
}

func TestLoad_Invalid(t *testing.T) {
	is := is.New(t)

	path := writeFile(t, t.TempDir(), "loan.yaml", `
loan:
  principal: 1000
  annual_rate_percent: 5
`)
	_, err := Load(path)
	is.True(errors.Is(err, model.ErrInvalidInput))

	bad := writeFile(t, t.TempDir(), "bad.yaml", "loan: [")
	_, err = Load(bad)
	is.True(err != nil)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestMergeLoan(t *testing.T) {
	is := is.New(t)

	base := LoanConfig{Name: "base", Principal: 100, AnnualRatePercent: 5, TermMonths: 24}
	out := MergeLoan(base, LoanConfig{TermYears: 3})
	is.Equal(out.TermPeriods(), 36)
	is.Equal(out.Name, "base")
	is.Equal(out.AnnualRatePercent, 5.0)

	out = MergeLoan(base, LoanConfig{Principal: 200, AnnualRatePercent: 7})
	is.Equal(out.Principal, 200.0)
	is.Equal(out.AnnualRatePercent, 7.0)
	is.Equal(out.TermPeriods(), 24)
}

func TestFromEnv(t *testing.T) {
	is := is.New(t)

	t.Setenv("API_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("SCHEDULE_TTL", "15m")

	cfg, err := FromEnv()
	is.NoErr(err)
	is.Equal(cfg.Port, "9090")
	is.Equal(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"})
	is.Equal(cfg.StoreBackend, StoreRedis)
	is.Equal(cfg.ScheduleTTL, 15*time.Minute)
	is.True(!cfg.Production())
}

func TestFromEnv_Errors(t *testing.T) {
	is := is.New(t)

	t.Setenv("STORE_BACKEND", "postgres")
	_, err := FromEnv()
	is.True(err != nil)

	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("SCHEDULE_TTL", "soon")
	_, err = FromEnv()
	is.True(err != nil)
}
