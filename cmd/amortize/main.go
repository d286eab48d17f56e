// Command amortize prompts for a loan and prints its monthly amortization schedule.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"loan-amortization/internal/amortization"
	"loan-amortization/internal/logging"
	"loan-amortization/internal/model"
	"loan-amortization/internal/prompt"
	"loan-amortization/internal/report"
)

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), logrus.WarnLevel, os.Stderr)
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, log))
}

func run(in io.Reader, out, errOut io.Writer, log logrus.FieldLogger) int {
	terms, err := prompt.ReadLoanTerms(prompt.New(in, out))
	if err != nil {
		return fail(errOut, log, err)
	}

	res, err := amortization.New().Run(terms)
	if err != nil {
		return fail(errOut, log, err)
	}
	log.WithFields(logrus.Fields{
		"principal": terms.Principal,
		"rate":      terms.AnnualRatePercent,
		"periods":   terms.TermPeriods,
	}).Debug("schedule computed")

	w := bufio.NewWriter(out)
	if err := report.WriteText(w, res.Schedule); err != nil {
		return fail(errOut, log, err)
	}
	if err := w.Flush(); err != nil {
		return fail(errOut, log, err)
	}
	return 0
}

func fail(errOut io.Writer, log logrus.FieldLogger, err error) int {
	var parseErr *prompt.InputParseError
	switch {
	case errors.As(err, &parseErr):
		log.WithField("field", parseErr.Field).Debug("input rejected")
	case errors.Is(err, model.ErrInvalidInput):
		log.Debug("loan terms rejected")
	default:
		log.WithError(err).Error("amortize failed")
	}
	fmt.Fprintf(errOut, "Error: %v\n", err)
	return 1
}
