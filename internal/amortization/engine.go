package amortization

import (
	"math"

	"loan-amortization/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run computes the schedule for terms and aggregates its totals.
func (e *Engine) Run(terms model.LoanTerms) (*Result, error) {
	schedule, err := ComputeSchedule(terms.Principal, terms.AnnualRatePercent, terms.TermPeriods)
	if err != nil {
		return nil, err
	}
	return &Result{
		Terms:         terms,
		Schedule:      schedule,
		Payment:       schedule[0].Total,
		TotalPaid:     schedule.TotalPaid(),
		TotalInterest: schedule.TotalInterest(),
	}, nil
}

// ComputeSchedule returns one record per period for a fixed-rate loan.
//
// Balances carry full float64 precision from one period to the next; the final
// remaining balance is approximately, not exactly, zero.
func ComputeSchedule(principal, annualRatePercent float64, termPeriods int) (model.Schedule, error) {
	terms, err := model.NewLoanTerms(principal, annualRatePercent, termPeriods)
	if err != nil {
		return nil, err
	}

	r := terms.PeriodicRate()
	payment := Payment(terms)

	schedule := make(model.Schedule, 0, termPeriods)
	balance := principal
	for k := 1; k <= termPeriods; k++ {
		interest := balance * r
		principalPart := payment - interest
		balance -= principalPart

		schedule = append(schedule, model.PaymentRecord{
			Period:           k,
			Principal:        principalPart,
			Interest:         interest,
			Total:            payment,
			RemainingBalance: balance,
		})
	}
	return schedule, nil
}

// Payment is the fixed periodic payment that retires terms.Principal in
// exactly terms.TermPeriods payments. terms must be valid.
func Payment(terms model.LoanTerms) float64 {
	r := terms.PeriodicRate()
	if r == 0 {
		return terms.Principal / float64(terms.TermPeriods)
	}
	growth := math.Pow(1+r, float64(terms.TermPeriods))
	if math.IsInf(growth, 1) {
		// growth/(growth-1) tends to 1
		return terms.Principal * r
	}
	return terms.Principal * r * growth / (growth - 1)
}
