//go:build ocr

// Package ocr recovers positioned words from scanned schedule pages.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/archivista/schedula/model"
)

// Client wraps Tesseract for word-level recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no longer
// needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be specified as a "+" separated string (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// Words performs OCR on image data (PNG, TIFF, JPEG) and returns each
// recognized word with its bounding box in the coordinate system the layout
// segmenter expects: y increases downward from the top of the page.
func (c *Client) Words(imageData []byte) ([]model.Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("setting image: %w", err)
	}
	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]model.Word, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		words = append(words, model.Word{
			Text:   text,
			Top:    float64(b.Box.Min.Y),
			Bottom: float64(b.Box.Max.Y),
			X0:     float64(b.Box.Min.X),
			X1:     float64(b.Box.Max.X),
		})
	}
	return words, nil
}

// Page recognizes one scanned page image and returns it as a model page,
// with dimensions taken from the image header.
func (c *Client) Page(number int, imageData []byte) (model.Page, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return model.Page{}, fmt.Errorf("decoding image header: %w", err)
	}
	words, err := c.Words(imageData)
	if err != nil {
		return model.Page{}, err
	}
	return model.Page{
		Number: number,
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		Words:  words,
	}, nil
}
