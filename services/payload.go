package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"ocr-translator/internal/config"
	"ocr-translator/internal/processing"
	"ocr-translator/models"
)

// BuildRequest turns a form snapshot into a processing request.
// An explicit file takes precedence over a pasted image; the pasted image is
// re-encoded as PNG and sent as pasted-image.png. Languages are only carried
// for translation.
func BuildRequest(state models.SubmissionState, requestID string) (processing.Request, error) {
	req := processing.Request{
		ID:     requestID,
		Option: string(state.Action),
		Text:   state.Text,
	}
	if req.Option == "" {
		req.Option = processing.OptionOCR
	}

	switch {
	case !state.File.IsEmpty():
		req.File = &processing.File{
			Name:     state.File.Name,
			MimeType: DetectMimeType(state.File.Name, state.File.MimeType, state.File.Data),
			Data:     state.File.Data,
		}
	case !state.PastedImage.IsEmpty():
		data, err := EncodePNG(state.PastedImage.Data)
		if err != nil {
			return processing.Request{}, fmt.Errorf("failed to prepare pasted image: %w", err)
		}
		req.File = &processing.File{
			Name:     config.PastedImageName,
			MimeType: mimePNG,
			Data:     data,
		}
	}

	if state.Action == models.ActionTranslate {
		req.SourceLang = state.SourceLang
		req.TargetLang = state.TargetLang
	}

	return req, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// EncodeMultipart writes req as multipart/form-data and returns the body and its content type.
func EncodeMultipart(req processing.Request) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField(config.FieldText, req.Text); err != nil {
		return nil, "", fmt.Errorf("failed to write text field: %w", err)
	}

	if req.File != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			config.FieldFile, quoteEscaper.Replace(req.File.Name)))
		contentType := req.File.MimeType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(req.File.Data); err != nil {
			return nil, "", fmt.Errorf("failed to copy file: %w", err)
		}
	}

	if err := writer.WriteField(config.FieldOption, req.Option); err != nil {
		return nil, "", fmt.Errorf("failed to write option field: %w", err)
	}
	if req.Option == processing.OptionTranslate {
		if err := writer.WriteField(config.FieldSourceLang, req.SourceLang); err != nil {
			return nil, "", fmt.Errorf("failed to write source language field: %w", err)
		}
		if err := writer.WriteField(config.FieldTargetLang, req.TargetLang); err != nil {
			return nil, "", fmt.Errorf("failed to write target language field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}
