package models

import (
	"errors"

	"ocr-translator/internal/config"
	"ocr-translator/internal/processing"
)

// ErrNoInput is returned when a submission has no text, file or pasted image.
var ErrNoInput = errors.New(config.MessageNoInput)

// Action selects what the processing endpoint does with a submission.
type Action string

const (
	ActionExtract   Action = processing.OptionOCR
	ActionTranslate Action = processing.OptionTranslate
)

// Label returns the name shown in the action selector.
func (a Action) Label() string {
	switch a {
	case ActionTranslate:
		return "Translate"
	default:
		return "OCR Extract"
	}
}

// ActionFromLabel is the inverse of Label. Unknown labels map to ActionExtract.
func ActionFromLabel(label string) Action {
	if label == ActionTranslate.Label() {
		return ActionTranslate
	}
	return ActionExtract
}

// Actions lists the selectable actions in display order.
func Actions() []Action {
	return []Action{ActionExtract, ActionTranslate}
}

// SubmissionState is everything the form holds between submissions.
type SubmissionState struct {
	Text        string
	File        *Attachment
	PastedImage *Attachment

	Action     Action
	SourceLang string
	TargetLang string

	Result        string
	ResultVisible bool
}

// NewSubmissionState returns the initial form state.
func NewSubmissionState() SubmissionState {
	return SubmissionState{
		Action:     ActionExtract,
		SourceLang: config.DefaultSourceLang,
		TargetLang: config.DefaultTargetLang,
	}
}

// HasInput reports whether at least one of text, file or pasted image is present.
func (s SubmissionState) HasInput() bool {
	return s.Text != "" || !s.File.IsEmpty() || !s.PastedImage.IsEmpty()
}

// Validate returns ErrNoInput when the state cannot be submitted.
func (s SubmissionState) Validate() error {
	if !s.HasInput() {
		return ErrNoInput
	}
	return nil
}

// ClearInputs resets the inputs and languages. Action and result are kept.
func (s *SubmissionState) ClearInputs() {
	s.Text = ""
	s.File = nil
	s.PastedImage = nil
	s.SourceLang = config.DefaultSourceLang
	s.TargetLang = config.DefaultTargetLang
}

// Clone returns a copy that shares no attachment pointers with s.
func (s SubmissionState) Clone() SubmissionState {
	s.File = s.File.Clone()
	s.PastedImage = s.PastedImage.Clone()
	return s
}
