// Package storage persists uploaded job-card photos on the local
// filesystem under random names.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"jobdesk/internal/application/jobcard/usecases"
	"jobdesk/internal/shared/errors"
)

const (
	minUploadSize       = 100 // reject empty or truncated files
	fileNameRandomBytes = 16
)

// allowedImageMIMETypes maps content-detected MIME types to the stored
// extension. Detection happens on the bytes, never the client headers.
var allowedImageMIMETypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type LocalFileStore struct {
	uploadDir string
	maxSize   int64
}

func NewLocalFileStore(uploadDir string, maxSize int64) *LocalFileStore {
	return &LocalFileStore{
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

// Save writes the upload under a random hex name and returns where it
// landed together with the detected content type.
func (s *LocalFileStore) Save(ctx context.Context, fileHeader *multipart.FileHeader) (*usecases.StoredFile, error) {
	if fileHeader.Size > s.maxSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file %s exceeds the upload size limit", fileHeader.Filename))
	}
	if fileHeader.Size < minUploadSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file %s is too small or empty", fileHeader.Filename))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.NewStorageError("failed to open uploaded file", err.Error())
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, errors.NewStorageError("failed to read uploaded file", err.Error())
	}
	if int64(len(content)) > s.maxSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file %s exceeds the upload size limit", fileHeader.Filename))
	}

	detected := mimetype.Detect(content)
	ext, allowed := allowedImageMIMETypes[detected.String()]
	if !allowed {
		return nil, errors.NewValidationError(
			fmt.Sprintf("file %s is not an allowed image type", fileHeader.Filename),
			"only PNG, JPG, GIF and WEBP files are accepted",
		)
	}

	if err := os.MkdirAll(s.uploadDir, 0750); err != nil {
		return nil, errors.NewStorageError("failed to create upload directory", err.Error())
	}

	name, err := randomFileName(ext)
	if err != nil {
		return nil, errors.NewStorageError("failed to generate file name", err.Error())
	}

	path := filepath.Join(s.uploadDir, name)
	if err := os.WriteFile(path, content, 0640); err != nil {
		return nil, errors.NewStorageError("failed to write uploaded file", err.Error())
	}

	return &usecases.StoredFile{
		Path:         path,
		OriginalName: fileHeader.Filename,
		ContentType:  detected.String(),
		Size:         int64(len(content)),
	}, nil
}

// Remove deletes a stored file. A path that is already gone is treated
// as success so repeated deletes stay idempotent.
func (s *LocalFileStore) Remove(ctx context.Context, path string) error {
	if err := s.checkPath(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewStorageError("failed to remove file", err.Error())
	}
	return nil
}

// checkPath refuses paths outside the upload directory.
func (s *LocalFileStore) checkPath(path string) error {
	absDir, err := filepath.Abs(s.uploadDir)
	if err != nil {
		return errors.NewStorageError("failed to resolve upload directory", err.Error())
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.NewStorageError("failed to resolve file path", err.Error())
	}
	if absPath != absDir && !strings.HasPrefix(absPath, absDir+string(os.PathSeparator)) {
		return errors.NewStorageError("file path escapes the upload directory", path)
	}
	return nil
}

func randomFileName(ext string) (string, error) {
	buf := make([]byte, fileNameRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + ext, nil
}
