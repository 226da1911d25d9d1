package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rajni12071985-debug/pragati/internal/pkg/logger"
)

// LocalStorage saves uploaded photos to the local filesystem. Stored files
// are served back under the /uploads static route.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new LocalStorage instance. basePath is the
// directory on disk; baseURL is the public prefix prepended to returned paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Save stores an uploaded file under a collision-free name and returns the
// public URL path to reach it.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.NewString() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}

	logger.Debug().Str("filename", fileHeader.Filename).Str("stored", uniqueFilename).Msg("File stored")
	return ls.baseURL + "/" + uniqueFilename, nil
}

// Delete removes a stored file given the public URL path Save returned.
// Unknown paths are ignored.
func (ls *LocalStorage) Delete(fileURL string) error {
	name := filepath.Base(fileURL)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(ls.basePath, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}

// BasePath returns the directory stored files live in
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
