package analysis

import (
	"fmt"
	"sort"

	"loan-amortization/internal/amortization"
	"loan-amortization/internal/model"
)

// TermOption summarizes one candidate term for the same principal and rate.
type TermOption struct {
	TermYears     int
	TermPeriods   int
	Payment       float64
	TotalPaid     float64
	TotalInterest float64
}

// CompareTerms runs the engine once per term (in years) and sorts the options
// ascending by total interest, then by monthly payment.
func CompareTerms(principal, annualRatePercent float64, termYears []int) ([]TermOption, error) {
	if len(termYears) == 0 {
		return nil, fmt.Errorf("%w: at least one term is required", model.ErrInvalidInput)
	}

	engine := amortization.New()
	out := make([]TermOption, 0, len(termYears))
	for _, years := range termYears {
		terms, err := model.NewLoanTerms(principal, annualRatePercent, years*model.PeriodsPerYear)
		if err != nil {
			return nil, fmt.Errorf("term %d years: %w", years, err)
		}
		res, err := engine.Run(terms)
		if err != nil {
			return nil, fmt.Errorf("term %d years: %w", years, err)
		}
		out = append(out, TermOption{
			TermYears:     years,
			TermPeriods:   terms.TermPeriods,
			Payment:       res.Payment,
			TotalPaid:     res.TotalPaid,
			TotalInterest: res.TotalInterest,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalInterest != out[j].TotalInterest {
			return out[i].TotalInterest < out[j].TotalInterest
		}
		return out[i].Payment < out[j].Payment
	})
	return out, nil
}
