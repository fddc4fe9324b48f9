package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
)

const requestIDKey = "request_id"

type contextKey string

// RequestIDContextKey holds the request id on the request context.
const RequestIDContextKey contextKey = "request_id"

// RequestID reuses the client's X-Request-ID or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(config.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(config.RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)

		ctx := context.WithValue(c.Request.Context(), RequestIDContextKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID gets the request ID from gin context
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		return requestID.(string)
	}
	return ""
}

// RequestLogger logs every request once it completes, at a level chosen by status.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		format := "%s %s -> %d in %dms (client=%s id=%s)"
		args := []interface{}{
			c.Request.Method, path, status,
			time.Since(start).Milliseconds(), c.ClientIP(), GetRequestID(c),
		}

		switch {
		case status >= 500:
			log.Error(format, args...)
		case status >= 400:
			log.Warn(format, args...)
		default:
			log.Info(format, args...)
		}
	}
}

// Recovery turns a handler panic into a 500 JSON error.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log.Error("panic recovered: %v (id=%s %s %s)\n%s",
					err, requestID, c.Request.Method, c.Request.URL.Path, debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": requestID,
				})
			}
		}()

		c.Next()
	}
}

// CORS allows browser clients on other origins to post to the server.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With, "+config.RequestIDHeader)
		h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		h.Set("Access-Control-Expose-Headers", config.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
