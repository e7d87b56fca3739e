package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type UploadService interface {
	ReadResume(file *multipart.FileHeader) ([]byte, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ReadResume validates an uploaded résumé and returns its bytes.
func (s *uploadService) ReadResume(file *multipart.FileHeader) ([]byte, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: please upload your resume (PDF format)", models.ErrInvalidInput)
	}

	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("%w: invalid file extension %q, only .pdf is accepted", models.ErrInvalidInput, ext)
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: resume too large, max size is %d bytes", models.ErrInvalidInput, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, nil
}
