package server

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"
	"unicode"

	"ocr-translator/internal/config"
	"ocr-translator/internal/processing"
	"ocr-translator/internal/text"
	"ocr-translator/services"
)

const (
	noContentResult = "No content to process"
	noTextResult    = "No text to translate"
)

// LoopbackProcessor answers requests locally without any OCR or translation model.
// OCR echoes text or describes the uploaded file. Translate returns the text
// unchanged when the languages match and tags it with the language pair otherwise.
type LoopbackProcessor struct{}

var _ processing.Processor = LoopbackProcessor{}

// NewLoopbackProcessor creates a loopback processor
func NewLoopbackProcessor() LoopbackProcessor {
	return LoopbackProcessor{}
}

// Process implements processing.Processor
func (p LoopbackProcessor) Process(ctx context.Context, req processing.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch req.Option {
	case processing.OptionOCR:
		return p.extract(req)
	case processing.OptionTranslate:
		return p.translate(req)
	default:
		return "", fmt.Errorf("%w: %q", processing.ErrInvalidOption, req.Option)
	}
}

func (p LoopbackProcessor) extract(req processing.Request) (string, error) {
	if req.Text != "" {
		return req.Text, nil
	}
	if req.File == nil || len(req.File.Data) == 0 {
		return noContentResult, nil
	}
	return describeFile(req.File)
}

func (p LoopbackProcessor) translate(req processing.Request) (string, error) {
	input := req.Text
	if req.File != nil && len(req.File.Data) > 0 {
		described, err := describeFile(req.File)
		if err != nil {
			return "", err
		}
		input = described
	}
	if input == "" {
		return noTextResult, nil
	}

	source := req.SourceLang
	if source == "" || source == config.AutoDetectLang {
		source = detectLanguage(input)
	}
	if !text.IsValidTargetLanguage(source) {
		source = config.DefaultTargetLang
	}

	target := req.TargetLang
	if target == "" {
		target = config.DefaultTargetLang
	}
	if !text.IsValidTargetLanguage(target) {
		return "", fmt.Errorf("unsupported target language %q", target)
	}

	if source == target {
		return input, nil
	}
	return fmt.Sprintf("[%s→%s] %s", source, target, input), nil
}

// describeFile stands in for text extraction: images report their dimensions.
func describeFile(f *processing.File) (string, error) {
	mimeType := services.DetectMimeType(f.Name, f.MimeType, f.Data)
	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Sprintf("Received %s (%s, %d bytes)", f.Name, mimeType, len(f.Data)), nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(f.Data))
	if err != nil {
		return "", fmt.Errorf("invalid image %s: %w", f.Name, err)
	}
	return fmt.Sprintf("Received %s image %s (%dx%d)", format, f.Name, cfg.Width, cfg.Height), nil
}

// detectLanguage recognises Devanagari as Hindi and falls back to English.
func detectLanguage(s string) string {
	for _, r := range s {
		if unicode.Is(unicode.Devanagari, r) {
			return "hi"
		}
	}
	return config.DefaultTargetLang
}
