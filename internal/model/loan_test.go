package model

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestNewLoanTerms(t *testing.T) {
	is := is.New(t)

	terms, err := NewLoanTerms(1200, 12, 12)
	is.NoErr(err)
	is.Equal(terms.PeriodicRate(), 0.01)

	_, err = NewLoanTerms(1200, 12, 0)
	is.True(errors.Is(err, ErrInvalidInput))
}

func TestScheduleTotals(t *testing.T) {
	is := is.New(t)

	s := Schedule{
		{Period: 1, Principal: 90, Interest: 10, Total: 100, RemainingBalance: 110},
		{Period: 2, Principal: 95, Interest: 5, Total: 100, RemainingBalance: 15},
	}
	is.Equal(s.TotalInterest(), 15.0)
	is.Equal(s.TotalPaid(), 200.0)
	is.Equal(Schedule(nil).TotalPaid(), 0.0)
}
