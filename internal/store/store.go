// Package store keeps computed schedules for later retrieval by ID.
package store

import (
	"context"
	"time"

	"loan-amortization/internal/model"
)

// Entry is a stored schedule together with the terms that produced it.
type Entry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Terms     model.LoanTerms `json:"terms"`
	Schedule  model.Schedule  `json:"schedule"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store saves entries for a bounded time. Get reports found=false for missing
// or expired IDs; err is reserved for backend failures.
type Store interface {
	Get(ctx context.Context, id string) (*Entry, bool, error)
	Set(ctx context.Context, entry *Entry) error
}
