package parser

import "errors"

var (
	// ErrSourceNotFound is returned when the resume source path does not exist.
	ErrSourceNotFound = errors.New("resume source not found")
	// ErrReadFailed is returned when the source exists but cannot be decoded as a PDF.
	ErrReadFailed = errors.New("failed to read resume PDF")
	// ErrModelUnavailable is returned at construction time when the language
	// model cannot be loaded. It is fatal for the pipeline, not per-document.
	ErrModelUnavailable = errors.New("language model unavailable")
)
