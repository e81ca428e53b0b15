package port

import "roadcheck/internal/domain/entity"

// DefectHighlighter — интерфейс отрисовки рамок дефектов на фотографии
type DefectHighlighter interface {
	// HighlightDefects создаёт копию изображения с подсветкой дефектов
	HighlightDefects(imageData []byte, result *entity.InspectionResult) ([]byte, error)
}
