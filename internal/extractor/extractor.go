// Package extractor converts uploaded PDF bytes into plain text.
package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"cv-parser-api/internal/logging"
	"cv-parser-api/pkg/utils"
)

// ExtractText persists the uploaded bytes to a uniquely named temporary file,
// reads the document back page by page and returns the concatenated text.
// Page texts are joined with no separator. An empty result is valid: scanned
// PDFs carry no extractable text.
//
// The temporary file is removed on every exit path. Any failure from the
// underlying PDF reader, including panics on malformed input, is surfaced as
// an extraction error carrying the original message.
func ExtractText(data []byte) (text string, err error) {
	logger := logging.GetGlobalLogger()

	tmpFile, err := os.CreateTemp("", "cv-upload-*.pdf")
	if err != nil {
		return "", utils.NewExtractionError(fmt.Sprintf("failed to create temporary file: %v", err))
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return "", utils.NewExtractionError(fmt.Sprintf("failed to persist upload: %v", err))
	}
	if err := tmpFile.Close(); err != nil {
		return "", utils.NewExtractionError(fmt.Sprintf("failed to persist upload: %v", err))
	}

	// The pdf package panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			logger.Error("PDF reader panicked", map[string]interface{}{"panic": fmt.Sprintf("%v", r)})
			text = ""
			err = utils.NewExtractionError(fmt.Sprintf("%v", r))
		}
	}()

	f, reader, err := pdf.Open(tmpPath)
	if err != nil {
		return "", utils.NewExtractionError(err.Error())
	}
	defer f.Close()

	totalPages := reader.NumPage()
	if totalPages == 0 {
		return "", utils.NewExtractionError("document has no pages")
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", utils.NewExtractionError(fmt.Sprintf("page %d: %v", pageNum, err))
		}
		sb.WriteString(pageText)
	}

	logger.Debug("Extracted text from PDF", map[string]interface{}{
		"pages":       totalPages,
		"text_length": sb.Len(),
	})

	return sb.String(), nil
}
