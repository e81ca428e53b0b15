package port

import (
	"context"

	"roadcheck/internal/domain/entity"
)

// DefectDetector — интерфейс внешней модели поиска дефектов
type DefectDetector interface {
	// Detect анализирует изображение и возвращает найденные дефекты
	// в порядке выдачи модели
	Detect(ctx context.Context, imageData []byte) (*entity.InspectionResult, error)
}
