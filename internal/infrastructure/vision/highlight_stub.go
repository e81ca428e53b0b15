//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"roadcheck/internal/domain/entity"
)

type GoCVHighlighter struct{}

// NewGoCVHighlighter создаёт отрисовщик-заглушку (без OpenCV).
func NewGoCVHighlighter() *GoCVHighlighter {
	return &GoCVHighlighter{}
}

// HighlightDefects возвращает ошибку, если сборка без тега gocv.
func (h *GoCVHighlighter) HighlightDefects(imageData []byte, result *entity.InspectionResult) ([]byte, error) {
	_ = imageData
	_ = result
	return nil, errors.New("gocv build tag is not enabled")
}
