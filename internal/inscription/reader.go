package inscription

import (
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Reader extracts the legend (inscription) text from a coin image. The text
// is noisy on coin surfaces, so callers only ever use it as a supplementary
// hint, never as an authoritative field.
type Reader interface {
	ReadLegend(img []byte) (string, error)
}

type tesseractReader struct{}

// NewTesseractReader returns a Reader backed by a local Tesseract install.
func NewTesseractReader() Reader {
	return tesseractReader{}
}

func (tesseractReader) ReadLegend(img []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(img); err != nil {
		return "", err
	}
	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

type noopReader struct{}

// NewNoopReader returns a Reader that extracts nothing, used when legend OCR
// is disabled.
func NewNoopReader() Reader {
	return noopReader{}
}

func (noopReader) ReadLegend(img []byte) (string, error) {
	return "", nil
}
