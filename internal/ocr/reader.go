// Package ocr extracts text lines from images, one reader per script family.
package ocr

import (
	"context"
	"errors"
)

// ErrUnavailable signals that the OCR subsystem is not initialized at all,
// as opposed to a recognition failure on one image. Callers surface it as a
// distinct "service unavailable" message.
var ErrUnavailable = errors.New("ocr service unavailable")

// Reader extracts ordered text line groups from an image.
type Reader interface {
	ReadLines(ctx context.Context, imagePath string) ([]string, error)
}
