//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"roadcheck/internal/domain/entity"
)

// GoCVHighlighter рисует рамки найденных дефектов поверх фотографии.
type GoCVHighlighter struct{}

// NewGoCVHighlighter создаёт отрисовщик рамок.
func NewGoCVHighlighter() *GoCVHighlighter {
	return &GoCVHighlighter{}
}

// HighlightDefects рисует прямоугольники вокруг дефектов и возвращает новую
// картинку. Нормированные рамки переводятся в пиксели по размеру кадра.
func (h *GoCVHighlighter) HighlightDefects(imageData []byte, result *entity.InspectionResult) ([]byte, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil || mat.Empty() {
		if !mat.Empty() {
			mat.Close()
		}
		return nil, errors.New("failed to decode image")
	}
	defer mat.Close()

	w := float64(mat.Cols())
	ht := float64(mat.Rows())

	red := color.RGBA{R: 255, A: 255}
	for _, det := range result.Detections {
		rect := image.Rect(
			int(det.Box.XMin*w),
			int(det.Box.YMin*ht),
			int(det.Box.XMax*w),
			int(det.Box.YMax*ht),
		)
		gocv.Rectangle(&mat, rect, red, 2)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
