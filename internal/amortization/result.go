package amortization

import "loan-amortization/internal/model"

// Result is a computed schedule plus the totals derived from it.
type Result struct {
	Terms    model.LoanTerms
	Schedule model.Schedule

	Payment       float64
	TotalPaid     float64
	TotalInterest float64
}
