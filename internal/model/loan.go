package model

import (
	"errors"
	"fmt"
	"math"
)

// PeriodsPerYear is the number of payment periods in one year. Only monthly
// schedules are supported.
const PeriodsPerYear = 12

// ErrInvalidInput is returned (wrapped) when loan terms cannot produce a schedule.
var ErrInvalidInput = errors.New("invalid input")

// LoanTerms defines the inputs of a fixed-rate loan.
// Units:
// - Principal: currency units borrowed
// - AnnualRatePercent: nominal annual rate in percent (5.0 means 5%)
// - TermPeriods: number of monthly payments
type LoanTerms struct {
	Principal         float64
	AnnualRatePercent float64
	TermPeriods       int
}

// NewLoanTerms builds validated loan terms.
func NewLoanTerms(principal, annualRatePercent float64, termPeriods int) (LoanTerms, error) {
	t := LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermPeriods:       termPeriods,
	}
	if err := t.Validate(); err != nil {
		return LoanTerms{}, err
	}
	return t, nil
}

func (t LoanTerms) Validate() error {
	if math.IsNaN(t.Principal) || math.IsInf(t.Principal, 0) || t.Principal <= 0 {
		return fmt.Errorf("%w: principal must be > 0, got %v", ErrInvalidInput, t.Principal)
	}
	if math.IsNaN(t.AnnualRatePercent) || math.IsInf(t.AnnualRatePercent, 0) || t.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: annual rate must be >= 0, got %v", ErrInvalidInput, t.AnnualRatePercent)
	}
	if t.TermPeriods <= 0 {
		return fmt.Errorf("%w: term must be at least 1 period, got %d", ErrInvalidInput, t.TermPeriods)
	}
	return nil
}

// PeriodicRate is the interest rate applied per payment period as a fraction.
func (t LoanTerms) PeriodicRate() float64 {
	return t.AnnualRatePercent / PeriodsPerYear / 100
}

// PaymentRecord captures one period of a schedule.
// Principal + Interest == Total; RemainingBalance is the balance after the payment.
type PaymentRecord struct {
	Period           int
	Principal        float64
	Interest         float64
	Total            float64
	RemainingBalance float64
}

// Schedule is the ordered list of payments, one per period starting at 1.
type Schedule []PaymentRecord

// TotalInterest sums the interest components of every record.
func (s Schedule) TotalInterest() float64 {
	sum := 0.0
	for _, r := range s {
		sum += r.Interest
	}
	return sum
}

// TotalPaid sums the payments of every record.
func (s Schedule) TotalPaid() float64 {
	sum := 0.0
	for _, r := range s {
		sum += r.Total
	}
	return sum
}
