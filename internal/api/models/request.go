package models

// ScheduleRequest represents the request body for computing a schedule.
// TermMonths wins over TermYears when both are set.
type ScheduleRequest struct {
	Name              string   `json:"name,omitempty" binding:"max=120"`
	Principal         *float64 `json:"principal" binding:"required,gt=0,lte=1000000000000"`
	AnnualRatePercent *float64 `json:"annual_rate_percent" binding:"required,gte=0,lte=1000"`
	TermYears         int      `json:"term_years,omitempty" binding:"gte=0,lte=100"`
	TermMonths        int      `json:"term_months,omitempty" binding:"gte=0,lte=1200"`
	IncludeSchedule   bool     `json:"include_schedule,omitempty"` // default: false
}

// CompareRequest represents a request to compare several term lengths
type CompareRequest struct {
	Principal         *float64 `json:"principal" binding:"required,gt=0,lte=1000000000000"`
	AnnualRatePercent *float64 `json:"annual_rate_percent" binding:"required,gte=0,lte=1000"`
	TermYears         []int    `json:"term_years" binding:"required,min=1,max=20,dive,gte=1,lte=100"`
}
