package models

import "time"

// ScheduleResponse represents a computed (and stored) schedule
type ScheduleResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Summary   ScheduleSummary `json:"summary"`
	Schedule  []PaymentRow    `json:"schedule,omitempty"`
}

// ScheduleSummary contains aggregated schedule results
type ScheduleSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermPeriods       int     `json:"term_periods"`
	Payment           float64 `json:"payment"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// PaymentRow represents one period of a schedule
type PaymentRow struct {
	Period           int     `json:"period"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	Total            float64 `json:"total"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// CompareResponse represents the ranked result of a term comparison
type CompareResponse struct {
	Options []TermOption `json:"options"`
}

// TermOption contains results for one term length
type TermOption struct {
	Rank          int     `json:"rank"`
	TermYears     int     `json:"term_years"`
	TermPeriods   int     `json:"term_periods"`
	Payment       float64 `json:"payment"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
