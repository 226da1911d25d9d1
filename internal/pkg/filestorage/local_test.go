package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/photos", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestSave_StoresFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := storage.Save(uploadHeader(t, "fest.jpg", "jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	stored := filepath.Join(dir, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestSave_UniqueNamesForSameFilename(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	first, err := storage.Save(uploadHeader(t, "fest.jpg", "a"))
	require.NoError(t, err)
	second, err := storage.Save(uploadHeader(t, "fest.jpg", "b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDelete_RemovesStoredFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	url, err := storage.Save(uploadHeader(t, "fest.png", "png-bytes"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_UnknownPathIgnored(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("http://localhost:8080/uploads/never-existed.jpg"))
}
