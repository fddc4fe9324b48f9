package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
	"ocr-translator/internal/processing"
	"ocr-translator/internal/text"
)

// Error messages returned to clients, matching what the desktop form expects.
const (
	MessageMissingInput  = "Please provide either text or a file"
	MessageInvalidOption = "Invalid option"
)

// ProcessHandler serves the /process endpoint
type ProcessHandler struct {
	processor processing.Processor
	log       *logger.Logger
}

// NewProcessHandler creates a handler backed by processor
func NewProcessHandler(processor processing.Processor, log *logger.Logger) *ProcessHandler {
	return &ProcessHandler{
		processor: processor,
		log:       log,
	}
}

// Process handles a multipart submission and answers {"result": ...} or {"error": ...}
func (h *ProcessHandler) Process(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxUploadBytes)

	req := processing.Request{
		ID:         GetRequestID(c),
		Text:       c.PostForm(config.FieldText),
		Option:     c.DefaultPostForm(config.FieldOption, processing.OptionOCR),
		SourceLang: c.DefaultPostForm(config.FieldSourceLang, config.DefaultSourceLang),
		TargetLang: c.DefaultPostForm(config.FieldTargetLang, config.DefaultTargetLang),
	}

	file, err := readFormFile(c)
	if err != nil {
		h.log.Warn("Request %s: %v", req.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.File = file

	fileName := ""
	if file != nil {
		fileName = file.Name
	}
	h.log.Info("Request %s: text=%q file=%q option=%s source=%s target=%s",
		req.ID, text.Preview(req.Text, config.LogPreviewLength), fileName, req.Option, req.SourceLang, req.TargetLang)

	if err := req.Validate(); err != nil {
		switch {
		case errors.Is(err, processing.ErrNoContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": MessageMissingInput})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": MessageInvalidOption})
		}
		return
	}

	result, err := h.processor.Process(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Request %s failed: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Request %s processed, result length: %d", req.ID, len(result))
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Health reports liveness
func (h *ProcessHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// readFormFile returns the uploaded file, or nil when the form has none.
func readFormFile(c *gin.Context) (*processing.File, error) {
	header, err := c.FormFile(config.FieldFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid upload: %w", err)
	}
	return readPart(header)
}

func readPart(header *multipart.FileHeader) (*processing.File, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
	}

	return &processing.File{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
