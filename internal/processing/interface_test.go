package processing

import (
	"errors"
	"testing"
)

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"text ocr", Request{Option: OptionOCR, Text: "hi"}, nil},
		{"file translate", Request{Option: OptionTranslate, File: &File{Name: "a.png", Data: []byte{1}}}, nil},
		{"empty file", Request{Option: OptionOCR, File: &File{Name: "a.png"}}, ErrNoContent},
		{"nothing", Request{Option: OptionOCR}, ErrNoContent},
		{"bad option", Request{Option: "summarize", Text: "hi"}, ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
