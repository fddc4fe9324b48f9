package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusProcessing RequestStatus = "processing"
	StatusCompleted  RequestStatus = "completed"
	StatusFailed     RequestStatus = "failed"
)

// ProcessRequest tracks one outbound submission.
type ProcessRequest struct {
	ID          string
	Action      Action
	Status      RequestStatus
	Err         error
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func NewProcessRequest(action Action) *ProcessRequest {
	return &ProcessRequest{
		ID:        uuid.New().String(),
		Action:    action,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}

// Start marks the request as sent.
func (r *ProcessRequest) Start() {
	r.Status = StatusProcessing
}

// Complete marks the request as finished successfully.
func (r *ProcessRequest) Complete() {
	r.Status = StatusCompleted
	now := time.Now()
	r.CompletedAt = &now
}

// Fail marks the request as failed and records err.
func (r *ProcessRequest) Fail(err error) {
	r.Status = StatusFailed
	r.Err = err
	now := time.Now()
	r.CompletedAt = &now
}

// Duration returns how long the request took, or zero while it is in flight.
func (r *ProcessRequest) Duration() time.Duration {
	if r.CompletedAt == nil {
		return 0
	}
	return r.CompletedAt.Sub(r.CreatedAt)
}

// StatusIcon returns an emoji icon representing the request status
func (r *ProcessRequest) StatusIcon() string {
	switch r.Status {
	case StatusPending:
		return "⏳"
	case StatusProcessing:
		return "🔄"
	case StatusCompleted:
		return "✅"
	case StatusFailed:
		return "❌"
	default:
		return "📄"
	}
}
