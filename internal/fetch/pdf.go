// Package fetch - pdf.go extracts plain text from PDF resumes.
package fetch

import (
	"bytes"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// PDFText extracts the plain text from a PDF file on disk.
func PDFText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{URL: path, Message: "failed to read PDF file", Cause: err}
	}
	return PDFTextFromBytes(path, data)
}

// PDFTextFromBytes extracts plain text from an in-memory PDF payload.
func PDFTextFromBytes(name string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{URL: name, Message: "failed to parse PDF", Cause: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &Error{URL: name, Message: "failed to extract PDF text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &Error{URL: name, Message: "failed to read PDF text", Cause: err}
	}

	return buf.String(), nil
}
