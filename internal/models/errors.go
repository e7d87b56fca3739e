package models

import "errors"

var (
	// ErrInvalidInput covers submissions rejected before extraction starts.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExtraction is returned when the uploaded bytes cannot be read as a PDF.
	ErrExtraction = errors.New("text extraction failed")
	// ErrStorage is returned when a history record cannot be written or read.
	ErrStorage = errors.New("storage error")
)
