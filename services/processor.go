package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ocr-translator/internal/config"
	httpclient "ocr-translator/internal/http"
	"ocr-translator/internal/logger"
	"ocr-translator/internal/processing"
	"ocr-translator/internal/text"
)

// APIError is returned when the processing endpoint answers with a non-2xx status.
type APIError struct {
	StatusCode int
	// Message is the "error" field of the response body, if any.
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("processing endpoint error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("processing endpoint error (status %d): %s", e.StatusCode, text.Preview(e.Body, 200))
}

// ProcessorClient sends submissions to the remote processing endpoint as multipart POSTs.
type ProcessorClient struct {
	endpoint string
	client   *http.Client
}

// NewProcessorClient creates a client for endpoint. A nil client uses the shared pooled client.
func NewProcessorClient(endpoint string, client *http.Client) *ProcessorClient {
	if client == nil {
		client = httpclient.ProcessorClient
	}
	return &ProcessorClient{
		endpoint: endpoint,
		client:   client,
	}
}

// Endpoint returns the URL requests are sent to.
func (c *ProcessorClient) Endpoint() string {
	return c.endpoint
}

// Process performs exactly one POST and returns the "result" field of the response.
func (c *ProcessorClient) Process(ctx context.Context, req processing.Request) (string, error) {
	body, contentType, err := EncodeMultipart(req)
	if err != nil {
		return "", err
	}

	fileName := ""
	if req.File != nil {
		fileName = req.File.Name
	}
	logger.LogInfo("Processing request %s: option=%s file=%q text=%q",
		req.ID, req.Option, fileName, text.Preview(req.Text, config.LogPreviewLength))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	if req.ID != "" {
		httpReq.Header.Set(config.RequestIDHeader, req.ID)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("processing request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed struct {
		Result *string `json:"result"`
		Error  string  `json:"error"`
	}
	decodeErr := json.Unmarshal(respBody, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		if decodeErr == nil {
			apiErr.Message = parsed.Error
		}
		return "", apiErr
	}

	if decodeErr != nil {
		return "", fmt.Errorf("failed to parse response: %w", decodeErr)
	}
	if parsed.Result == nil {
		return "", fmt.Errorf("response has no result field")
	}

	logger.LogDebug("Request %s completed: %d bytes of result", req.ID, len(*parsed.Result))
	return *parsed.Result, nil
}
