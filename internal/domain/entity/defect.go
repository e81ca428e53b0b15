package entity

import "strings"

// Канонические семейства дефектов дорожного покрытия. Детектор может выдавать
// более мелкие подтипы (например "longitudinal crack"), но эталонная разметка
// обычно знает только крупные семейства.
const (
	DefectCrack   = "Crack"   // трещины любого вида
	DefectPothole = "Pothole" // выбоины
)

// categoryFamilies — таблица сведения подтипов к семействам. Порядок значим:
// берётся первое совпадение подстроки (без учёта регистра).
var categoryFamilies = []struct {
	Substring string
	Family    string
}{
	{"crack", DefectCrack},
	{"pothole", DefectPothole},
}

// Detection — дефект, найденный внешней моделью: тип, рамка и уверенность.
// Порядок детекций в списке задаёт модель, и он значим для сопоставления.
type Detection struct {
	Type       string      // метка класса из словаря детектора
	Box        BoundingBox // нормированная рамка дефекта
	Confidence float64     // уверенность модели в [0,1]; 0 — не сообщена
}

// NormalizedType возвращает семейство дефекта для сопоставления с эталоном.
func (d Detection) NormalizedType() string {
	return NormalizeDetectionLabel(d.Type)
}

// NormalizeDetectionLabel сводит подтипы детектора к крупным семействам по
// таблице categoryFamilies; незнакомые метки проходят без изменений.
func NormalizeDetectionLabel(label string) string {
	lower := strings.ToLower(label)
	for _, f := range categoryFamilies {
		if strings.Contains(lower, f.Substring) {
			return f.Family
		}
	}
	return label
}

// NormalizeReferenceLabel приводит свободную метку из файла разметки к виду
// "Первая заглавная, остальные строчные": "pothole" → "Pothole".
func NormalizeReferenceLabel(label string) string {
	if label == "" {
		return ""
	}
	lower := strings.ToLower(label)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
