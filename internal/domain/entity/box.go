package entity

// BoundingBox — прямоугольная область на изображении в нормированных
// координатах [0,1] относительно ширины и высоты кадра.
type BoundingBox struct {
	XMin float64 // левая граница
	YMin float64 // верхняя граница
	XMax float64 // правая граница
	YMax float64 // нижняя граница
}

// Width возвращает ширину области; для некорректной рамки (XMax ≤ XMin) — 0.
func (b BoundingBox) Width() float64 {
	if w := b.XMax - b.XMin; w > 0 {
		return w
	}
	return 0
}

// Height возвращает высоту области; для некорректной рамки (YMax ≤ YMin) — 0.
func (b BoundingBox) Height() float64 {
	if h := b.YMax - b.YMin; h > 0 {
		return h
	}
	return 0
}

// Area возвращает площадь области. Некорректная рамка имеет нулевую площадь,
// отрицательной площади не бывает.
func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

// IoU считает Intersection-over-Union двух рамок по стандартной формуле для
// осевых прямоугольников. Нулевое или отрицательное пересечение даёт 0.
func (b BoundingBox) IoU(other BoundingBox) float64 {
	interW := minFloat(b.XMax, other.XMax) - maxFloat(b.XMin, other.XMin)
	interH := minFloat(b.YMax, other.YMax) - maxFloat(b.YMin, other.YMin)
	if interW <= 0 || interH <= 0 {
		return 0
	}

	inter := interW * interH
	union := b.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
