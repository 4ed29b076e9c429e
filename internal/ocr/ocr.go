// Package ocr provides text extraction from in-memory images.
//
// The real implementation binds Tesseract through gosseract and is only
// built when cgo is enabled; otherwise ExtractText reports
// ErrUnavailable and the boundary surfaces an unsupported status.
package ocr

import "errors"

// ErrUnavailable is returned when the binary was built without Tesseract
// support.
var ErrUnavailable = errors.New("ocr: tesseract support not compiled in")
