package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func uploadRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/products/upload-image", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadHandler_StoresFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(dir, "http://localhost:3000/", zerolog.Nop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(uploadRequest(t, "file", "photo.png", "pngbytes"), rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.URL, "http://localhost:3000/uploads/") || !strings.HasSuffix(resp.URL, ".png") {
		t.Fatalf("unexpected url %q", resp.URL)
	}

	// The file must exist on disk under the returned name.
	name := filepath.Base(resp.URL)
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "pngbytes" {
		t.Fatalf("stored content = %q", data)
	}
}

func TestUploadHandler_MissingFileField(t *testing.T) {
	h := NewUploadHandler(t.TempDir(), "http://localhost:3000", zerolog.Nop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(uploadRequest(t, "image", "photo.png", "pngbytes"), rec)

	err := h.Upload(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong field name, got %v", err)
	}
}

func TestUploadHandler_UnsupportedExtension(t *testing.T) {
	h := NewUploadHandler(t.TempDir(), "http://localhost:3000", zerolog.Nop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(uploadRequest(t, "file", "script.sh", "#!/bin/sh"), rec)

	err := h.Upload(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported type, got %v", err)
	}
}
