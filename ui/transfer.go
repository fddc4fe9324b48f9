package ui

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"ocr-translator/internal/config"
	"ocr-translator/models"
)

var errMalformedDataURI = errors.New("malformed data URI")

// maxTransferBytes caps what a dropped or pasted file may hold.
var maxTransferBytes int64 = config.MaxUploadBytes

// clipboardItems turns clipboard text into transfer items. fyne's clipboard is
// text-only, so images arrive as data: URIs, file:// URIs or absolute paths,
// one per line. Other lines are ignored.
func clipboardItems(content string) []models.TransferItem {
	var items []models.TransferItem
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "data:"):
			item, err := dataURIItem(line)
			if err != nil {
				continue
			}
			items = append(items, item)
		case strings.HasPrefix(line, "file://"):
			uri, err := storage.ParseURI(line)
			if err != nil {
				continue
			}
			items = append(items, uriItem(uri))
		case filepath.IsAbs(line):
			items = append(items, uriItem(storage.NewFileURI(line)))
		}
	}
	return items
}

// droppedItems wraps URIs dropped onto the window.
func droppedItems(uris []fyne.URI) []models.TransferItem {
	items := make([]models.TransferItem, 0, len(uris))
	for _, uri := range uris {
		items = append(items, uriItem(uri))
	}
	return items
}

func uriItem(uri fyne.URI) models.TransferItem {
	return models.TransferItem{
		Name:     uri.Name(),
		MimeType: uri.MimeType(),
		URI:      uri.String(),
		Read: func() ([]byte, error) {
			r, err := storage.Reader(uri)
			if err != nil {
				return nil, err
			}
			defer r.Close()

			data, err := io.ReadAll(io.LimitReader(r, maxTransferBytes+1))
			if err != nil {
				return nil, err
			}
			if int64(len(data)) > maxTransferBytes {
				return nil, fmt.Errorf("%s is larger than %d MB", uri.Name(), maxTransferBytes>>20)
			}
			return data, nil
		},
	}
}

// dataURIItem decodes "data:[<mime>][;base64],<payload>".
func dataURIItem(s string) (models.TransferItem, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return models.TransferItem{}, errMalformedDataURI
	}

	params := strings.Split(header, ";")
	mimeType := params[0]
	isBase64 := false
	for _, p := range params[1:] {
		if p == "base64" {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return models.TransferItem{}, fmt.Errorf("%w: %v", errMalformedDataURI, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return models.TransferItem{}, fmt.Errorf("%w: %v", errMalformedDataURI, err)
		}
		data = []byte(unescaped)
	}

	return models.TransferItem{
		MimeType: mimeType,
		Read:     func() ([]byte, error) { return data, nil },
	}, nil
}
