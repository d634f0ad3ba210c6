package file

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrTypeNotAllowed  = errors.New("file type is not allowed")
	ErrMissingFile     = errors.New("no file provided")
	ErrInvalidFileName = errors.New("invalid file name")
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var documentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain":                   true,
	"application/zip":              true,
	"application/x-rar-compressed": true,
}

func allowedImage(contentType string) bool {
	return imageTypes[normalizeContentType(contentType)]
}

func allowedFile(contentType string) bool {
	ct := normalizeContentType(contentType)
	return imageTypes[ct] || documentTypes[ct]
}

func normalizeContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// buildFileName produces a collision-free name keeping the original extension.
func buildFileName(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if strings.ContainsAny(ext, "/\\") {
		return "", ErrInvalidFileName
	}
	return uuid.NewString() + ext, nil
}
