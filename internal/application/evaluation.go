package app

import "roadcheck/internal/domain/entity"

// DefaultIoUThreshold — порог IoU, при котором детекция засчитывается
// совпавшей с эталонной рамкой.
const DefaultIoUThreshold = 0.5

// Correlator сопоставляет детекции модели с эталонной разметкой и считает
// метрики точности. Чистая функция над неизменяемыми входами: входные срезы
// не модифицируются, всё состояние локально для одного вызова.
type Correlator struct {
	IoUThreshold float64
}

// NewCorrelator создаёт коррелятор; неположительный порог заменяется на
// DefaultIoUThreshold.
func NewCorrelator(threshold float64) *Correlator {
	if threshold <= 0 {
		threshold = DefaultIoUThreshold
	}
	return &Correlator{IoUThreshold: threshold}
}

// классовый аккумулятор до вычисления производных метрик
type classCounter struct {
	tp, fp, fn       int
	totalGroundTruth int
}

// Compare сравнивает детекции с эталоном жадным алгоритмом: детекции
// обрабатываются в порядке выдачи модели, каждая забирает ещё не занятую
// эталонную рамку своего класса с наибольшим IoU. Порядок детекций значим,
// глобально оптимальное назначение не ищется.
func (c *Correlator) Compare(detections []entity.Detection, references []entity.ReferenceAnnotation) entity.ComparisonResult {
	counters := make(map[string]*classCounter)

	// Классы эталона с числом рамок каждого класса.
	refTypes := make([]string, len(references))
	for i, ref := range references {
		refTypes[i] = ref.NormalizedType()
		cnt := counterFor(counters, refTypes[i])
		cnt.totalGroundTruth++
	}

	// Классы, которые знает только детектор, получают пустой аккумулятор.
	for _, det := range detections {
		counterFor(counters, det.NormalizedType())
	}

	consumed := make(map[int]bool)
	var iouSum float64

	for _, det := range detections {
		detType := det.NormalizedType()

		// Лучшая свободная эталонная рамка того же класса; при равных IoU
		// остаётся первая найденная.
		bestIdx := -1
		bestIoU := 0.0
		for i, ref := range references {
			if consumed[i] || refTypes[i] != detType {
				continue
			}
			if iou := det.Box.IoU(ref.Box); iou > bestIoU {
				bestIoU = iou
				bestIdx = i
			}
		}

		cnt := counterFor(counters, detType)
		if bestIdx >= 0 && bestIoU >= c.IoUThreshold {
			cnt.tp++
			iouSum += bestIoU
			consumed[bestIdx] = true
		} else {
			cnt.fp++
		}
	}

	// Несопоставленные эталонные рамки — пропуски своего класса.
	for i := range references {
		if !consumed[i] {
			counterFor(counters, refTypes[i]).fn++
		}
	}

	result := entity.ComparisonResult{
		PerClass: make(map[string]entity.ClassMetrics, len(counters)),
	}
	for name, cnt := range counters {
		precision, recall, f1 := entity.PrecisionRecallF1(cnt.tp, cnt.fp, cnt.fn)
		result.PerClass[name] = entity.ClassMetrics{
			TruePositives:    cnt.tp,
			FalsePositives:   cnt.fp,
			FalseNegatives:   cnt.fn,
			TotalGroundTruth: cnt.totalGroundTruth,
			Precision:        precision,
			Recall:           recall,
			F1Score:          f1,
		}
		result.TruePositives += cnt.tp
		result.FalsePositives += cnt.fp
		result.FalseNegatives += cnt.fn
	}

	result.Precision, result.Recall, result.F1Score = entity.PrecisionRecallF1(
		result.TruePositives, result.FalsePositives, result.FalseNegatives)
	if result.TruePositives > 0 {
		result.AverageIoU = iouSum / float64(result.TruePositives)
	}

	return result
}

func counterFor(counters map[string]*classCounter, name string) *classCounter {
	if cnt, ok := counters[name]; ok {
		return cnt
	}
	cnt := &classCounter{}
	counters[name] = cnt
	return cnt
}
