package services

import (
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Fs is swapped for an in-memory filesystem in tests.
var Fs = afero.NewOsFs()

const uploadNamespace = "posts"

// SaveUpload persists an uploaded image under the posts namespace and returns
// the path to store on the record. The original file name is discarded.
func SaveUpload(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	rel := filepath.Join(uploadNamespace, name)
	full := filepath.Join(viper.GetString("uploads.path"), rel)

	if err := Fs.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}

	dst, err := Fs.Create(full)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return rel, nil
}
