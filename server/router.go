// Package server is a local stand-in for the processing backend. It speaks the
// same multipart /process contract as the real service so the desktop form can
// be exercised without OCR or translation models.
package server

import (
	"github.com/gin-gonic/gin"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
	"ocr-translator/internal/processing"
)

// NewRouter wires the middleware chain and routes around processor.
func NewRouter(processor processing.Processor, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = config.MaxUploadBytes

	router.Use(RequestID())
	router.Use(Recovery(log))
	router.Use(RequestLogger(log))
	router.Use(CORS())

	h := NewProcessHandler(processor, log)
	router.POST(config.ProcessPath, h.Process)
	router.GET(config.HealthPath, h.Health)

	return router
}
