package entity

// ClassMetrics — счётчики качества детекции по одному классу дефектов.
// Заполняется при сравнении и после этого не меняется.
type ClassMetrics struct {
	TruePositives    int     // детекции, совпавшие с эталоном
	FalsePositives   int     // детекции без пары в эталоне
	FalseNegatives   int     // эталонные дефекты, которые модель пропустила
	TotalGroundTruth int     // всего эталонных дефектов этого класса
	Precision        float64 // tp / (tp + fp)
	Recall           float64 // tp / (tp + fn)
	F1Score          float64 // гармоническое среднее precision и recall
}

// ComparisonResult — итог сравнения детекций с эталонной разметкой по одному
// изображению: суммарные счётчики, средний IoU по совпавшим парам и метрики
// в разрезе классов.
type ComparisonResult struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	AverageIoU     float64
	Precision      float64
	Recall         float64
	F1Score        float64
	PerClass       map[string]ClassMetrics
}

// PrecisionRecallF1 считает метрики по счётчикам; нулевой знаменатель даёт 0,
// без особых случаев.
func PrecisionRecallF1(tp, fp, fn int) (precision, recall, f1 float64) {
	if tp+fp > 0 {
		precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		recall = float64(tp) / float64(tp+fn)
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}
