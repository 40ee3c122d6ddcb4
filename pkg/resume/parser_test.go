package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/prepai/pkg/apperr"
)

func TestCheckPDF(t *testing.T) {
	assert.NoError(t, CheckPDF("cv.PDF", "", []byte("%PDF-1.4")))
	assert.NoError(t, CheckPDF("upload", "application/pdf", []byte("\n%PDF-1.4")))
	assert.ErrorIs(t, CheckPDF("cv.txt", "text/plain", []byte("%PDF-1.4")), apperr.ErrValidation)
	assert.ErrorIs(t, CheckPDF("cv.pdf", "application/pdf", []byte("<html>")), apperr.ErrValidation)
}

func TestExtractPDFText_Garbage(t *testing.T) {
	_, err := ExtractPDFText([]byte("%PDF-1.4 this is not really a pdf"))

	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", normalizeWhitespace("  a \t  b\n\n\nc  "))
}
