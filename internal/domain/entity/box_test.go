package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBoxIoU_Identical(t *testing.T) {
	b := BoundingBox{XMin: 0.1, YMin: 0.1, XMax: 0.3, YMax: 0.3}
	require.InDelta(t, 1.0, b.IoU(b), 1e-9)
}

func TestBoundingBoxIoU_Symmetry(t *testing.T) {
	a := BoundingBox{XMin: 0.1, YMin: 0.1, XMax: 0.5, YMax: 0.5}
	b := BoundingBox{XMin: 0.3, YMin: 0.3, XMax: 0.7, YMax: 0.7}
	require.InDelta(t, a.IoU(b), b.IoU(a), 1e-9)
	require.Greater(t, a.IoU(b), 0.0)
}

func TestBoundingBoxIoU_Disjoint(t *testing.T) {
	a := BoundingBox{XMin: 0.0, YMin: 0.0, XMax: 0.2, YMax: 0.2}
	b := BoundingBox{XMin: 0.5, YMin: 0.5, XMax: 0.7, YMax: 0.7}
	require.Equal(t, 0.0, a.IoU(b))
}

func TestBoundingBoxIoU_Touching(t *testing.T) {
	// Общая граница без перекрытия — пересечение нулевое.
	a := BoundingBox{XMin: 0.0, YMin: 0.0, XMax: 0.2, YMax: 0.2}
	b := BoundingBox{XMin: 0.2, YMin: 0.0, XMax: 0.4, YMax: 0.2}
	require.Equal(t, 0.0, a.IoU(b))
}

func TestBoundingBoxIoU_MalformedBox(t *testing.T) {
	malformed := BoundingBox{XMin: 0.5, YMin: 0.5, XMax: 0.1, YMax: 0.1}
	ok := BoundingBox{XMin: 0.0, YMin: 0.0, XMax: 1.0, YMax: 1.0}

	require.Equal(t, 0.0, malformed.Area())
	require.Equal(t, 0.0, malformed.IoU(ok))
	require.Equal(t, 0.0, ok.IoU(malformed))
}

func TestBoundingBoxIoU_PartialOverlap(t *testing.T) {
	// Пересечение 0.1x0.1, объединение 0.04+0.04-0.01.
	a := BoundingBox{XMin: 0.0, YMin: 0.0, XMax: 0.2, YMax: 0.2}
	b := BoundingBox{XMin: 0.1, YMin: 0.1, XMax: 0.3, YMax: 0.3}
	require.InDelta(t, 0.01/0.07, a.IoU(b), 1e-9)
}
