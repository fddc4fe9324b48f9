package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	// Decoders for formats commonly found on the clipboard or dragged from a browser.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"ocr-translator/internal/config"
	"ocr-translator/models"
)

const mimePNG = "image/png"

// EncodePNG converts image bytes in any registered format to PNG.
// PNG input is returned unchanged.
func EncodePNG(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}
	if http.DetectContentType(data) == mimePNG {
		return data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode %s as png: %w", format, err)
	}
	return buf.Bytes(), nil
}

// DetectMimeType resolves the MIME type of a transfer item: the declared type
// unless it is empty or generic, then the file extension, then the content.
func DetectMimeType(name, declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if ext := filepath.Ext(name); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			// Drop parameters such as "; charset=utf-8".
			if i := strings.IndexByte(byExt, ';'); i >= 0 {
				byExt = strings.TrimSpace(byExt[:i])
			}
			return byExt
		}
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return "application/octet-stream"
}

// DataURI returns a base64 data: URI for the given content.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FirstImage returns the first image among the items as an attachment.
// Items are inspected in order; non-images are skipped. Returns nil when none is an image.
func FirstImage(items []models.TransferItem) (*models.Attachment, error) {
	for _, item := range items {
		if item.Read == nil {
			continue
		}

		declared := DetectMimeType(item.Name, item.MimeType, nil)
		known := declared != "application/octet-stream"
		if known && !strings.HasPrefix(declared, "image/") {
			continue
		}

		data, err := item.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", itemName(item), err)
		}
		mimeType := declared
		if !known {
			mimeType = http.DetectContentType(data)
		}
		if !strings.HasPrefix(mimeType, "image/") || len(data) == 0 {
			continue
		}

		uri := item.URI
		if !strings.HasPrefix(uri, "file://") {
			uri = DataURI(mimeType, data)
		}

		return &models.Attachment{
			Name:     itemName(item),
			MimeType: mimeType,
			URI:      uri,
			Data:     data,
		}, nil
	}
	return nil, nil
}

func itemName(item models.TransferItem) string {
	if item.Name != "" {
		return item.Name
	}
	return config.PastedImageName
}
