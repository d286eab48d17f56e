// Package prompt reads loan terms interactively, one line per value.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"loan-amortization/internal/model"
)

const (
	PrincipalPrompt = "Enter the principal amount:"
	RatePrompt      = "Enter the annual interest rate (in %):"
	TermPrompt      = "Enter the loan term in years:"
)

// InputParseError reports a prompted line that could not be read or parsed.
type InputParseError struct {
	Field string
	Input string
	Err   error
}

func (e *InputParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("could not read %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("could not parse %s from %q: %v", e.Field, e.Input, e.Err)
}

func (e *InputParseError) Unwrap() error { return e.Err }

// Prompter writes a prompt and reads the answer from the next input line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question on its own line and returns the trimmed answer.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprintln(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) AskFloat(question, field string) (float64, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return 0, &InputParseError{Field: field, Err: err}
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, &InputParseError{Field: field, Input: answer, Err: unwrapNum(err)}
	}
	return v, nil
}

func (p *Prompter) AskUint(question, field string) (uint64, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return 0, &InputParseError{Field: field, Err: err}
	}
	v, err := strconv.ParseUint(answer, 10, 64)
	if err != nil {
		return 0, &InputParseError{Field: field, Input: answer, Err: unwrapNum(err)}
	}
	return v, nil
}

// ReadLoanTerms asks for principal, annual rate and term in years, in that
// order. Terms are returned unvalidated; the engine decides what it accepts.
func ReadLoanTerms(p *Prompter) (model.LoanTerms, error) {
	principal, err := p.AskFloat(PrincipalPrompt, "principal")
	if err != nil {
		return model.LoanTerms{}, err
	}
	rate, err := p.AskFloat(RatePrompt, "annual interest rate")
	if err != nil {
		return model.LoanTerms{}, err
	}
	years, err := p.AskUint(TermPrompt, "loan term")
	if err != nil {
		return model.LoanTerms{}, err
	}
	if years > math.MaxInt/model.PeriodsPerYear {
		return model.LoanTerms{}, &InputParseError{
			Field: "loan term",
			Input: strconv.FormatUint(years, 10),
			Err:   strconv.ErrRange,
		}
	}
	return model.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: rate,
		TermPeriods:       int(years) * model.PeriodsPerYear,
	}, nil
}

// unwrapNum drops the strconv.NumError wrapper, whose message repeats the input.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
