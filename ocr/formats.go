//go:build ocr

package ocr

// Image format registrations for Page's header decoding. Scanned schedules
// arrive as PNG, JPEG, or TIFF.
import (
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)
