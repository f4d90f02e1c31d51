// Package docfile builds and reads the word-processor documents the app
// exchanges with users: generated SOPs go out as DOCX attachments/downloads,
// uploaded CVs come in as PDF or DOCX and are reduced to plain text.
package docfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// ContentType is the MIME type for DOCX downloads and attachments
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ErrUnsupportedFormat is returned for uploads that are neither PDF nor DOCX
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Build renders text into a DOCX document, one paragraph per line
func Build(text string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		doc.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExtractText extracts plain text from the file at path, dispatching on the
// file extension. Only .pdf and .docx are accepted.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDF concatenates page texts with newline separators. Pages that
// yield no extractable text contribute an empty string, never an error.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if !p.V.IsNull() {
			if text, err := p.GetPlainText(nil); err == nil {
				sb.WriteString(text)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDOCX concatenates paragraph texts with newline separators
func extractDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", err
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			lines = append(lines, p.String())
		}
	}
	return strings.Join(lines, "\n"), nil
}
