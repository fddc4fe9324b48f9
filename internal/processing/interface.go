// Package processing defines the contract between the form and whatever turns
// a submission into a result: the remote HTTP endpoint or the local loopback.
package processing

import (
	"context"
	"errors"
)

// Option values understood by the processing endpoint.
const (
	OptionOCR       = "ocr"
	OptionTranslate = "translate"
)

var (
	// ErrInvalidOption is returned for an option other than ocr or translate.
	ErrInvalidOption = errors.New("invalid option")

	// ErrNoContent is returned when a request has neither text nor a file.
	ErrNoContent = errors.New("no text or file provided")
)

// File is a single uploaded file.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

// Request is one unit of work for a Processor.
type Request struct {
	// ID correlates the request across client and server logs.
	ID string

	Option string
	Text   string

	// File is nil when nothing was attached.
	File *File

	// SourceLang and TargetLang are only meaningful for OptionTranslate.
	SourceLang string
	TargetLang string
}

// HasContent reports whether the request carries text or a non-empty file.
func (r Request) HasContent() bool {
	return r.Text != "" || (r.File != nil && len(r.File.Data) > 0)
}

// Validate checks the option and that there is something to process.
func (r Request) Validate() error {
	if !r.HasContent() {
		return ErrNoContent
	}
	if r.Option != OptionOCR && r.Option != OptionTranslate {
		return ErrInvalidOption
	}
	return nil
}

// Processor turns a Request into a result string.
type Processor interface {
	Process(ctx context.Context, req Request) (string, error)
}
