package services

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"ocr-translator/models"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})
	return img
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func gifBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, testImage(), nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestEncodePNG_PassesThroughPNG(t *testing.T) {
	in := pngBytes(t)

	out, err := EncodePNG(in)
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Error("PNG input should be returned unchanged")
	}
}

func TestEncodePNG_ConvertsGIF(t *testing.T) {
	out, err := EncodePNG(gifBytes(t))
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if got := http.DetectContentType(out); got != "image/png" {
		t.Errorf("output type = %q, want image/png", got)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v, want 2x2", img.Bounds())
	}
}

func TestEncodePNG_Errors(t *testing.T) {
	if _, err := EncodePNG(nil); err == nil {
		t.Error("expected error for empty data")
	}
	if _, err := EncodePNG([]byte("definitely not an image")); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		declared string
		data     []byte
		want     string
	}{
		{"declared wins", "x.bin", "image/jpeg", nil, "image/jpeg"},
		{"extension", "scan.png", "", nil, "image/png"},
		{"generic declared falls to extension", "scan.png", "application/octet-stream", nil, "image/png"},
		{"sniffed", "", "", pngBytes(t), "image/png"},
		{"unknown", "", "", nil, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMimeType(tt.fileName, tt.declared, tt.data); got != tt.want {
				t.Errorf("DetectMimeType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func staticItem(name, mimeType string, data []byte) models.TransferItem {
	return models.TransferItem{
		Name:     name,
		MimeType: mimeType,
		Read:     func() ([]byte, error) { return data, nil },
	}
}

func TestFirstImage_SkipsNonImages(t *testing.T) {
	data := pngBytes(t)
	textRead := false
	items := []models.TransferItem{
		{
			Name:     "notes.txt",
			MimeType: "text/plain",
			Read: func() ([]byte, error) {
				textRead = true
				return []byte("hello"), nil
			},
		},
		staticItem("first.png", "image/png", data),
		staticItem("second.gif", "image/gif", gifBytes(t)),
	}

	img, err := FirstImage(items)
	if err != nil {
		t.Fatalf("FirstImage() error = %v", err)
	}
	if img == nil {
		t.Fatal("expected an image")
	}
	if img.Name != "first.png" {
		t.Errorf("Name = %q, want first.png (only the first image is used)", img.Name)
	}
	if !strings.HasPrefix(img.URI, "data:image/png;base64,") {
		t.Errorf("URI = %q, want data URI", img.URI[:min(len(img.URI), 40)])
	}
	if textRead {
		t.Error("non-image item with a declared type should not be read")
	}
}

func TestFirstImage_SniffsUntypedItem(t *testing.T) {
	img, err := FirstImage([]models.TransferItem{staticItem("", "", pngBytes(t))})
	if err != nil {
		t.Fatal(err)
	}
	if img == nil || img.MimeType != "image/png" {
		t.Fatalf("img = %+v, want sniffed image/png", img)
	}
	if img.Name != "pasted-image.png" {
		t.Errorf("Name = %q, want placeholder name", img.Name)
	}
}

func TestFirstImage_KeepsFileURI(t *testing.T) {
	item := staticItem("photo.png", "image/png", pngBytes(t))
	item.URI = "file:///tmp/photo.png"

	img, err := FirstImage([]models.TransferItem{item})
	if err != nil {
		t.Fatal(err)
	}
	if img.URI != "file:///tmp/photo.png" {
		t.Errorf("URI = %q, want file URI", img.URI)
	}
}

func TestFirstImage_NoImages(t *testing.T) {
	img, err := FirstImage([]models.TransferItem{
		staticItem("a.txt", "text/plain", []byte("a")),
		staticItem("", "", []byte("just text")),
	})
	if err != nil {
		t.Fatal(err)
	}
	if img != nil {
		t.Errorf("expected nil, got %+v", img)
	}
}

func TestFirstImage_ReadError(t *testing.T) {
	readErr := errors.New("permission denied")
	_, err := FirstImage([]models.TransferItem{{
		Name:     "locked.png",
		MimeType: "image/png",
		Read:     func() ([]byte, error) { return nil, readErr },
	}})
	if !errors.Is(err, readErr) {
		t.Errorf("error = %v, want wrapping %v", err, readErr)
	}
}
