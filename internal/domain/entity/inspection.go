package entity

// InspectionResult хранит итог анализа изображения внешней моделью.
type InspectionResult struct {
	Detections []Detection // найденные дефекты в порядке выдачи модели
	HasDefects bool        // флаг наличия дефектов
}

// Report — полный отчёт по одной фотографии: дефекты, опциональная оценка
// точности против эталона и опциональная координата съёмки.
type Report struct {
	Result      *InspectionResult
	Metrics     *ComparisonResult // nil, если эталонная разметка не загружена
	Location    *ResolvedLocation // nil, если трек не загружен
	Highlighted []byte            // фото с подсветкой дефектов; nil без OpenCV
}
