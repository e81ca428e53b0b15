package entity

// ReferenceAnnotation — эталонная (ground truth) разметка дефекта из внешнего
// файла аннотаций. Метка свободная, словарь может не совпадать со словарём
// детектора.
type ReferenceAnnotation struct {
	Type string      // метка класса из файла разметки
	Box  BoundingBox // нормированная рамка дефекта
}

// NormalizedType возвращает метку в каноническом виде для сопоставления.
func (a ReferenceAnnotation) NormalizedType() string {
	return NormalizeReferenceLabel(a.Type)
}
