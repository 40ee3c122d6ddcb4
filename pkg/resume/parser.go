package resume

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/artem13815/prepai/pkg/apperr"
)

const MaxUploadBytes = 10 << 20

var pdfMagic = []byte("%PDF")

// CheckPDF accepts a file named *.pdf or sent as application/pdf, and only if
// the content starts with the PDF signature.
func CheckPDF(filename, contentType string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ext != ".pdf" && !strings.HasPrefix(ct, "application/pdf") {
		return apperr.Validation("only PDF files are allowed")
	}
	if len(data) == 0 {
		return apperr.Validation("uploaded file is empty")
	}
	if len(data) > MaxUploadBytes {
		return apperr.Validation("file too large: limit is %d bytes", MaxUploadBytes)
	}
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), pdfMagic) {
		return apperr.Validation("file is not a valid PDF")
	}
	return nil
}

// ExtractPDFText returns the plain text of a PDF with whitespace collapsed.
func ExtractPDFText(data []byte) (text string, err error) {
	// The pdf reader panics on some corrupt cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", apperr.Validation("could not read PDF: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperr.Validation("could not read PDF: %v", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", apperr.Validation("could not extract text from PDF: %v", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
