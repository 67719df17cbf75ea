package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type TextExtractor interface {
	ExtractText(filePath string) (string, error)
	ExtractTextFromReader(r io.ReaderAt, size int64) (string, error)
}

type pdfTextExtractor struct{}

func NewPDFTextExtractor() TextExtractor {
	return &pdfTextExtractor{}
}

// ExtractText implements TextExtractor.
func (e *pdfTextExtractor) ExtractText(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, filePath)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", ErrReadFailed, filePath, err)
	}
	defer f.Close()

	return extractPages(r), nil
}

// ExtractTextFromReader implements TextExtractor.
func (e *pdfTextExtractor) ExtractTextFromReader(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return extractPages(reader), nil
}

// extractPages concatenates the plain text of every page in page order.
// Pages without extractable text (scanned images, render-only pages) are
// skipped rather than treated as errors, so a well-formed but text-free
// document yields an empty string.
func extractPages(r *pdf.Reader) string {
	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String()
}
