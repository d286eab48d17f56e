// Package report renders schedules for people. The amortization engine never
// formats its own records.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"loan-amortization/internal/amortization"
	"loan-amortization/internal/model"
)

const Header = "Amortization Schedule:"

// FormatCurrency formats amount as dollars rounded to 2 decimals.
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// WriteRecord writes one payment block followed by a blank line.
func WriteRecord(w io.Writer, r model.PaymentRecord) error {
	_, err := fmt.Fprintf(w,
		"Payment %d:\n\tPrincipal: %s\n\tInterest: %s\n\tTotal: %s\n\tRemaining Balance: %s\n\n",
		r.Period,
		FormatCurrency(r.Principal),
		FormatCurrency(r.Interest),
		FormatCurrency(r.Total),
		FormatCurrency(r.RemainingBalance),
	)
	return err
}

// WriteText writes the header and every record of schedule.
func WriteText(w io.Writer, schedule model.Schedule) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for _, r := range schedule {
		if err := WriteRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes a one-line totals summary of res.
func WriteSummary(w io.Writer, res *amortization.Result) error {
	_, err := fmt.Fprintf(w, "Payments=%d Monthly=%s Total paid=%s Total interest=%s\n",
		len(res.Schedule),
		FormatCurrency(res.Payment),
		FormatCurrency(res.TotalPaid),
		FormatCurrency(res.TotalInterest),
	)
	return err
}
