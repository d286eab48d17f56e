package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"loan-amortization/internal/amortization"
	"loan-amortization/internal/analysis"
	"loan-amortization/internal/api/models"
	"loan-amortization/internal/model"
	"loan-amortization/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ScheduleHandler handles schedule-related requests
type ScheduleHandler struct {
	engine *amortization.Engine
	store  store.Store
	log    logrus.FieldLogger
	now    func() time.Time
	newID  func() string
}

// NewScheduleHandler creates a new schedule handler backed by st
func NewScheduleHandler(st store.Store, log logrus.FieldLogger) *ScheduleHandler {
	return &ScheduleHandler{
		engine: amortization.New(),
		store:  st,
		log:    log,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

// CreateSchedule handles POST /api/v1/schedule
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	terms := model.LoanTerms{
		Principal:         *req.Principal,
		AnnualRatePercent: *req.AnnualRatePercent,
		TermPeriods:       req.TermYears * model.PeriodsPerYear,
	}
	if req.TermMonths != 0 {
		terms.TermPeriods = req.TermMonths
	}

	result, err := h.engine.Run(terms)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	entry := &store.Entry{
		ID:        h.newID(),
		Name:      req.Name,
		Terms:     terms,
		Schedule:  result.Schedule,
		CreatedAt: h.now().UTC(),
	}
	if err := h.store.Set(c.Request.Context(), entry); err != nil {
		h.log.WithError(err).WithField("id", entry.ID).Error("failed to store schedule")
		respondError(c, http.StatusServiceUnavailable, "STORE_ERROR", "schedule could not be stored")
		return
	}

	h.log.WithFields(logrus.Fields{
		"id":      entry.ID,
		"periods": terms.TermPeriods,
	}).Debug("schedule computed")

	c.JSON(http.StatusCreated, buildResponse(entry, result, req.IncludeSchedule))
}

// GetSchedule handles GET /api/v1/schedule/:id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, buildResponse(entry, resultFromEntry(entry), true))
}

// GetScheduleCSV handles GET /api/v1/schedule/:id/csv
func (h *ScheduleHandler) GetScheduleCSV(c *gin.Context) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "schedule-"+entry.ID+".csv"))
	c.Status(http.StatusOK)
	if err := amortization.WriteScheduleCSV(c.Writer, entry.Schedule); err != nil {
		h.log.WithError(err).WithField("id", entry.ID).Warn("failed to write schedule csv")
	}
}

// CompareTerms handles POST /api/v1/schedule/compare
func (h *ScheduleHandler) CompareTerms(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	options, err := analysis.CompareTerms(*req.Principal, *req.AnnualRatePercent, req.TermYears)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	out := make([]models.TermOption, 0, len(options))
	for i, o := range options {
		out = append(out, models.TermOption{
			Rank:          i + 1,
			TermYears:     o.TermYears,
			TermPeriods:   o.TermPeriods,
			Payment:       o.Payment,
			TotalPaid:     o.TotalPaid,
			TotalInterest: o.TotalInterest,
		})
	}
	c.JSON(http.StatusOK, models.CompareResponse{Options: out})
}

// Helper methods

func (h *ScheduleHandler) lookup(c *gin.Context) (*store.Entry, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "schedule not found")
		return nil, false
	}
	entry, ok, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.log.WithError(err).WithField("id", id).Error("failed to load schedule")
		respondError(c, http.StatusServiceUnavailable, "STORE_ERROR", "schedule could not be loaded")
		return nil, false
	}
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "schedule not found or expired")
		return nil, false
	}
	return entry, true
}

func resultFromEntry(entry *store.Entry) *amortization.Result {
	res := &amortization.Result{
		Terms:         entry.Terms,
		Schedule:      entry.Schedule,
		TotalPaid:     entry.Schedule.TotalPaid(),
		TotalInterest: entry.Schedule.TotalInterest(),
	}
	if len(entry.Schedule) > 0 {
		res.Payment = entry.Schedule[0].Total
	}
	return res
}

func buildResponse(entry *store.Entry, result *amortization.Result, includeSchedule bool) models.ScheduleResponse {
	response := models.ScheduleResponse{
		ID:        entry.ID,
		Name:      entry.Name,
		Status:    "completed",
		CreatedAt: entry.CreatedAt,
		Summary: models.ScheduleSummary{
			Principal:         result.Terms.Principal,
			AnnualRatePercent: result.Terms.AnnualRatePercent,
			TermPeriods:       result.Terms.TermPeriods,
			Payment:           result.Payment,
			TotalPaid:         result.TotalPaid,
			TotalInterest:     result.TotalInterest,
		},
	}
	if includeSchedule {
		response.Schedule = convertSchedule(result.Schedule)
	}
	return response
}

func convertSchedule(schedule model.Schedule) []models.PaymentRow {
	rows := make([]models.PaymentRow, len(schedule))
	for i, r := range schedule {
		rows[i] = models.PaymentRow{
			Period:           r.Period,
			Principal:        r.Principal,
			Interest:         r.Interest,
			Total:            r.Total,
			RemainingBalance: r.RemainingBalance,
		}
	}
	return rows
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
