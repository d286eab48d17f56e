package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"loan-amortization/internal/amortization"
	"loan-amortization/internal/analysis"
	"loan-amortization/internal/config"
	"loan-amortization/internal/logging"
	"loan-amortization/internal/report"
)

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), logrus.InfoLevel, os.Stderr)

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "schedule":
		err = cmdSchedule(os.Args[2:], os.Stdout, log)
	case "compare":
		err = cmdCompare(os.Args[2:], os.Stdout)
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Error(os.Args[1] + " failed")
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli schedule --config examples/loan.yaml [--out results/schedule.csv]")
	fmt.Fprintln(w, "  cli compare --principal 200000 --rate 6.5 --terms 10,15,30")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "notes:")
	fmt.Fprintln(w, "  - schedule prints the text report, or writes CSV when --out is set")
	fmt.Fprintln(w, "  - compare ranks term lengths (years) by total interest")
}

func cmdSchedule(args []string, out io.Writer, log logrus.FieldLogger) error {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML loan file")
	outPath := fs.String("out", "", "Optional: write schedule CSV to this path instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath == "" {
		return fmt.Errorf("--config is required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	terms, err := cfg.Loan.ToTerms()
	if err != nil {
		return err
	}

	res, err := amortization.New().Run(terms)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"loan":    cfg.Loan.Name,
		"periods": terms.TermPeriods,
	}).Debug("schedule computed")

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			return err
		}
		if err := amortization.WriteScheduleCSVFile(*outPath, res.Schedule); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %d rows to %s\n", len(res.Schedule), *outPath)
	} else if err := report.WriteText(out, res.Schedule); err != nil {
		return err
	}
	return report.WriteSummary(out, res)
}

func cmdCompare(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	principal := fs.Float64("principal", 0, "Amount borrowed")
	rate := fs.Float64("rate", 0, "Annual interest rate in percent")
	termsFlag := fs.String("terms", "10,15,20,30", "Comma-separated term lengths in years")
	if err := fs.Parse(args); err != nil {
		return err
	}

	years, err := splitInts(*termsFlag)
	if err != nil {
		return err
	}
	options, err := analysis.CompareTerms(*principal, *rate, years)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-4s %-6s %-8s %-14s %-16s %-16s\n", "rank", "years", "months", "payment", "total_paid", "total_interest")
	for i, o := range options {
		fmt.Fprintf(out, "%-4d %-6d %-8d %-14s %-16s %-16s\n",
			i+1,
			o.TermYears,
			o.TermPeriods,
			report.FormatCurrency(o.Payment),
			report.FormatCurrency(o.TotalPaid),
			report.FormatCurrency(o.TotalInterest),
		)
	}
	return nil
}

func splitInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid term %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
