//go:build !cgo

package ocr

import "image"

// Available reports whether Tesseract support was compiled in.
func Available() bool { return false }

// ExtractText always reports ErrUnavailable in non-cgo builds.
func ExtractText(image.Image) (string, error) {
	return "", ErrUnavailable
}
