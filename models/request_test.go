package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewProcessRequest(t *testing.T) {
	req := NewProcessRequest(ActionTranslate)

	if _, err := uuid.Parse(req.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", req.ID, err)
	}
	if req.Action != ActionTranslate {
		t.Errorf("expected ActionTranslate, got %s", req.Action)
	}
	if req.Status != StatusPending {
		t.Errorf("expected StatusPending, got %s", req.Status)
	}
	if req.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if req.Duration() != 0 {
		t.Errorf("expected zero duration while in flight, got %v", req.Duration())
	}
}

func TestProcessRequest_UniqueIDs(t *testing.T) {
	a := NewProcessRequest(ActionExtract)
	b := NewProcessRequest(ActionExtract)
	if a.ID == b.ID {
		t.Error("expected distinct request IDs")
	}
}

func TestProcessRequest_Complete(t *testing.T) {
	req := NewProcessRequest(ActionExtract)
	req.Start()
	if req.Status != StatusProcessing {
		t.Errorf("expected StatusProcessing, got %s", req.Status)
	}

	req.Complete()

	if req.Status != StatusCompleted {
		t.Errorf("expected StatusCompleted, got %s", req.Status)
	}
	if req.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be set")
	}
	if req.Duration() < 0 {
		t.Errorf("negative duration %v", req.Duration())
	}
	if req.StatusIcon() != "✅" {
		t.Errorf("StatusIcon() = %q", req.StatusIcon())
	}
}

func TestProcessRequest_Fail(t *testing.T) {
	req := NewProcessRequest(ActionExtract)
	req.Start()

	testErr := errors.New("connection refused")
	req.Fail(testErr)

	if req.Status != StatusFailed {
		t.Errorf("expected StatusFailed, got %s", req.Status)
	}
	if !errors.Is(req.Err, testErr) {
		t.Errorf("expected Err to be %v, got %v", testErr, req.Err)
	}
	if req.StatusIcon() != "❌" {
		t.Errorf("StatusIcon() = %q", req.StatusIcon())
	}
}
