package file

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedImage(t *testing.T) {
	assert.True(t, allowedImage("image/png"))
	assert.True(t, allowedImage("IMAGE/JPEG"))
	assert.True(t, allowedImage("image/webp; charset=binary"))
	assert.False(t, allowedImage("image/svg+xml"))
	assert.False(t, allowedImage("application/pdf"))
	assert.False(t, allowedImage(""))
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, allowedFile("application/pdf"))
	assert.True(t, allowedFile("application/zip"))
	assert.True(t, allowedFile("text/plain"))
	assert.True(t, allowedFile("image/gif"))
	assert.False(t, allowedFile("application/x-msdownload"))
	assert.False(t, allowedFile("text/html"))
}

func TestBuildFileName(t *testing.T) {
	name, err := buildFileName(&multipart.FileHeader{Filename: "photo.PNG"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Len(t, name, 36+len(".png"))

	other, err := buildFileName(&multipart.FileHeader{Filename: "photo.PNG"})
	require.NoError(t, err)
	assert.NotEqual(t, name, other)

	noExt, err := buildFileName(&multipart.FileHeader{Filename: "README"})
	require.NoError(t, err)
	assert.Len(t, noExt, 36)
}

func TestBuildFileNameRejectsPathTricks(t *testing.T) {
	_, err := buildFileName(&multipart.FileHeader{Filename: `evil.d\passwd`})
	assert.ErrorIs(t, err, ErrInvalidFileName)
}
