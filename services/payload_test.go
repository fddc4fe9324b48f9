package services

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"

	"ocr-translator/internal/processing"
	"ocr-translator/models"
)

// parsedForm is a decoded multipart body.
type parsedForm struct {
	fields   map[string]string
	fileName string
	fileType string
	fileData []byte
	hasFile  bool
}

func parseMultipart(t *testing.T, body []byte, contentType string) parsedForm {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("bad content type %q: %v", contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}

	form := parsedForm{fields: map[string]string{}}
	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart() error = %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			form.hasFile = true
			form.fileName = part.FileName()
			form.fileType = part.Header.Get("Content-Type")
			form.fileData = data
			continue
		}
		form.fields[part.FormName()] = string(data)
	}
	return form
}

func TestBuildRequest_OCROmitsLanguages(t *testing.T) {
	state := models.NewSubmissionState()
	state.Text = "hello"
	state.SourceLang = "fr"

	req, err := BuildRequest(state, "id-1")
	if err != nil {
		t.Fatal(err)
	}
	if req.Option != "ocr" {
		t.Errorf("Option = %q, want ocr", req.Option)
	}
	if req.SourceLang != "" || req.TargetLang != "" {
		t.Errorf("languages = %q/%q, want empty for ocr", req.SourceLang, req.TargetLang)
	}
	if req.ID != "id-1" {
		t.Errorf("ID = %q", req.ID)
	}
}

func TestBuildRequest_FileWinsOverPastedImage(t *testing.T) {
	state := models.NewSubmissionState()
	state.File = &models.Attachment{Name: "doc.pdf", MimeType: "application/pdf", Data: []byte("%PDF")}
	state.PastedImage = &models.Attachment{Name: "clip.png", MimeType: "image/png", Data: pngBytes(t)}

	req, err := BuildRequest(state, "")
	if err != nil {
		t.Fatal(err)
	}
	if req.File == nil || req.File.Name != "doc.pdf" {
		t.Fatalf("File = %+v, want doc.pdf", req.File)
	}
	if req.File.MimeType != "application/pdf" {
		t.Errorf("MimeType = %q", req.File.MimeType)
	}
}

func TestBuildRequest_PastedImageBecomesPNG(t *testing.T) {
	state := models.NewSubmissionState()
	state.PastedImage = &models.Attachment{Name: "clip.gif", MimeType: "image/gif", Data: gifBytes(t)}

	req, err := BuildRequest(state, "")
	if err != nil {
		t.Fatal(err)
	}
	if req.File == nil {
		t.Fatal("expected pasted image as file")
	}
	if req.File.Name != "pasted-image.png" {
		t.Errorf("Name = %q, want pasted-image.png", req.File.Name)
	}
	if req.File.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", req.File.MimeType)
	}
	if http.DetectContentType(req.File.Data) != "image/png" {
		t.Error("pasted image data was not re-encoded as PNG")
	}
}

func TestBuildRequest_UndecodablePastedImage(t *testing.T) {
	state := models.NewSubmissionState()
	state.PastedImage = &models.Attachment{Name: "x.png", MimeType: "image/png", Data: []byte("garbage")}

	if _, err := BuildRequest(state, ""); err == nil {
		t.Error("expected error for undecodable pasted image")
	}
}

func TestEncodeMultipart_Translate(t *testing.T) {
	req := processing.Request{
		Option:     processing.OptionTranslate,
		Text:       "hello",
		SourceLang: "auto",
		TargetLang: "hi",
	}

	body, contentType, err := EncodeMultipart(req)
	if err != nil {
		t.Fatal(err)
	}
	form := parseMultipart(t, body.Bytes(), contentType)

	want := map[string]string{
		"text":        "hello",
		"option":      "translate",
		"source_lang": "auto",
		"target_lang": "hi",
	}
	for k, v := range want {
		if form.fields[k] != v {
			t.Errorf("field %s = %q, want %q", k, form.fields[k], v)
		}
	}
	if form.hasFile {
		t.Error("unexpected file part")
	}
}

func TestEncodeMultipart_OCRWithFile(t *testing.T) {
	req := processing.Request{
		Option: processing.OptionOCR,
		File:   &processing.File{Name: `scan "1".png`, MimeType: "image/png", Data: []byte{1, 2, 3}},
	}

	body, contentType, err := EncodeMultipart(req)
	if err != nil {
		t.Fatal(err)
	}
	form := parseMultipart(t, body.Bytes(), contentType)

	if text, ok := form.fields["text"]; !ok || text != "" {
		t.Errorf("text field = %q (present %v), want present and empty", text, ok)
	}
	if form.fields["option"] != "ocr" {
		t.Errorf("option = %q, want ocr", form.fields["option"])
	}
	if _, ok := form.fields["source_lang"]; ok {
		t.Error("source_lang must be omitted for ocr")
	}
	if _, ok := form.fields["target_lang"]; ok {
		t.Error("target_lang must be omitted for ocr")
	}
	if form.fileName != `scan "1".png` {
		t.Errorf("file name = %q", form.fileName)
	}
	if form.fileType != "image/png" {
		t.Errorf("file type = %q", form.fileType)
	}
	if !bytes.Equal(form.fileData, []byte{1, 2, 3}) {
		t.Errorf("file data = %v", form.fileData)
	}
}
