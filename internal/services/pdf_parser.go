package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
}

type pdfParserService struct {
	timeout time.Duration
}

// NewPDFParserService returns a parser that gives up after timeout.
// A zero timeout waits for the pdf package indefinitely.
func NewPDFParserService(timeout time.Duration) PDFParserService {
	return &pdfParserService{
		timeout: timeout,
	}
}

// ExtractText concatenates the text of every page in order and lowercases it.
// A PDF without extractable text (a scanned image, say) yields "" and no error.
// Any page that fails to parse fails the whole extraction.
func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", models.ErrExtraction)
	}

	return runWithTimeout(p.timeout, func() (string, error) {
		return readPages(bytes.NewReader(data), int64(len(data)))
	})
}

type extraction struct {
	text string
	err  error
}

// runWithTimeout stops waiting for fn after timeout. The pdf package cannot be
// interrupted, so fn keeps running in the background until it returns.
func runWithTimeout(timeout time.Duration, fn func() (string, error)) (string, error) {
	if timeout <= 0 {
		return fn()
	}

	done := make(chan extraction, 1)
	go func() {
		text, err := fn()
		done <- extraction{text: text, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		return res.text, res.err
	case <-timer.C:
		return "", fmt.Errorf("%w: timed out after %s", models.ErrExtraction, timeout)
	}
}

func readPages(src *bytes.Reader, size int64) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", models.ErrExtraction, r)
		}
	}()

	r, err := pdf.NewReader(src, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExtraction, err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", models.ErrExtraction, pageIndex, err)
		}

		textBuilder.WriteString(pageText)
	}

	return strings.ToLower(textBuilder.String()), nil
}
