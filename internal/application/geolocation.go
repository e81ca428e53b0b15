package app

import (
	"errors"
	"sort"
	"time"

	"roadcheck/internal/domain/entity"
)

// ErrNoTrackData возвращается, когда в треке нет ни одной пригодной точки.
// Вызывающая сторона решает, фатально это или можно обойтись без координаты.
var ErrNoTrackData = errors.New("no usable track data")

// TrackLocator восстанавливает координату съёмки по записанному GPS-треку.
// Чистая функция над неизменяемыми входами: трек копируется перед сортировкой,
// вход не модифицируется.
type TrackLocator struct{}

// NewTrackLocator создаёт локатор.
func NewTrackLocator() *TrackLocator {
	return &TrackLocator{}
}

// Resolve возвращает координату для момента target. Точки трека могут
// приходить в произвольном порядке. Между соседними точками широта и долгота
// интерполируются линейно и независимо; для коротких интервалов в секунды
// геодезическая поправка не нужна. Момент вне записанного окна прижимается
// к ближайшему краю трека.
func (l *TrackLocator) Resolve(points []entity.TrackPoint, target time.Time) (entity.ResolvedLocation, error) {
	if len(points) == 0 {
		return entity.ResolvedLocation{}, ErrNoTrackData
	}

	track := make([]entity.TrackPoint, len(points))
	copy(track, points)
	sort.SliceStable(track, func(i, j int) bool {
		return track[i].Time.Before(track[j].Time)
	})

	first := track[0]
	if !target.After(first.Time) {
		return entity.ResolvedLocation{Latitude: first.Latitude, Longitude: first.Longitude}, nil
	}

	for i := 1; i < len(track); i++ {
		p1, p2 := track[i-1], track[i]
		if target.After(p2.Time) {
			continue
		}

		span := p2.Time.Sub(p1.Time)
		if span == 0 {
			return entity.ResolvedLocation{Latitude: p1.Latitude, Longitude: p1.Longitude}, nil
		}

		f := float64(target.Sub(p1.Time)) / float64(span)
		return entity.ResolvedLocation{
			Latitude:  p1.Latitude + (p2.Latitude-p1.Latitude)*f,
			Longitude: p1.Longitude + (p2.Longitude-p1.Longitude)*f,
		}, nil
	}

	last := track[len(track)-1]
	return entity.ResolvedLocation{Latitude: last.Latitude, Longitude: last.Longitude}, nil
}
