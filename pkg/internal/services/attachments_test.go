package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestSaveUpload(t *testing.T) {
	viper.Set("uploads.path", "/uploads")
	Fs = afero.NewMemMapFs()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "kitten.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte("not really a png")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/posts", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	header := req.MultipartForm.File["image"][0]
	rel, err := SaveUpload(header)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	if !strings.HasPrefix(rel, "posts/") || !strings.HasSuffix(rel, ".png") {
		t.Errorf("stored path = %q, want posts/<uuid>.png", rel)
	}

	data, err := afero.ReadFile(Fs, "/uploads/"+rel)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "not really a png" {
		t.Errorf("stored content = %q", data)
	}
}
