package ui

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"

	"ocr-translator/services"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func writePNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, pngBytes(t), 0644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestClipboardItems_DataURI(t *testing.T) {
	data := pngBytes(t)
	items := clipboardItems("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))

	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].MimeType != "image/png" || items[0].Name != "" {
		t.Errorf("item = %+v", items[0])
	}
	got, err := items[0].Read()
	if err != nil || !bytes.Equal(got, data) {
		t.Errorf("Read() = %d bytes, %v", len(got), err)
	}
}

func TestClipboardItems_PlainDataURI(t *testing.T) {
	items := clipboardItems("data:text/plain,hello%20world")
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	got, _ := items[0].Read()
	if string(got) != "hello world" {
		t.Errorf("Read() = %q", got)
	}
}

func TestClipboardItems_IgnoresText(t *testing.T) {
	for _, content := range []string{"", "hello", "relative/path.png", "data:image/png;base64", "data:image/png;base64,!!!"} {
		if items := clipboardItems(content); len(items) != 0 {
			t.Errorf("clipboardItems(%q) = %d items, want 0", content, len(items))
		}
	}
}

func TestClipboardItems_Paths(t *testing.T) {
	test.NewTempApp(t)
	path := writePNG(t)

	items := clipboardItems("some text\n" + path + "\n" + storage.NewFileURI(path).String())
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	for _, item := range items {
		if item.Name != "scan.png" || item.MimeType != "image/png" {
			t.Errorf("item = %+v", item)
		}
		data, err := item.Read()
		if err != nil || len(data) == 0 {
			t.Errorf("Read() = %d bytes, %v", len(data), err)
		}
	}
}

func TestDroppedItems(t *testing.T) {
	test.NewTempApp(t)
	path := writePNG(t)

	items := droppedItems([]fyne.URI{storage.NewFileURI(path)})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].URI != "file://"+filepath.ToSlash(path) {
		t.Errorf("URI = %q", items[0].URI)
	}
}

func TestDroppedItems_RejectsOversizeFile(t *testing.T) {
	test.NewTempApp(t)
	path := writePNG(t)
	data := pngBytes(t)

	saved := maxTransferBytes
	t.Cleanup(func() { maxTransferBytes = saved })
	maxTransferBytes = int64(len(data)) - 1

	items := droppedItems([]fyne.URI{storage.NewFileURI(path)})
	if _, err := items[0].Read(); err == nil {
		t.Fatal("expected an error for a file over the limit")
	}

	img, err := services.FirstImage(items)
	if err == nil || img != nil {
		t.Errorf("FirstImage() = %v, %v; want the size error and no image", img, err)
	}
}

func TestDroppedItems_ReadsFileAtLimit(t *testing.T) {
	test.NewTempApp(t)
	path := writePNG(t)
	data := pngBytes(t)

	saved := maxTransferBytes
	t.Cleanup(func() { maxTransferBytes = saved })
	maxTransferBytes = int64(len(data))

	items := droppedItems([]fyne.URI{storage.NewFileURI(path)})
	got, err := items[0].Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("read %d bytes, want the whole %d-byte file", len(got), len(data))
	}
}
