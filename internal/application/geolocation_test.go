package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roadcheck/internal/domain/entity"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func point(lat, lon float64, at time.Time) entity.TrackPoint {
	return entity.TrackPoint{Latitude: lat, Longitude: lon, Time: at}
}

func TestTrackLocator_EmptyTrack(t *testing.T) {
	l := NewTrackLocator()

	_, err := l.Resolve(nil, t0)
	require.ErrorIs(t, err, ErrNoTrackData)
}

func TestTrackLocator_Midpoint(t *testing.T) {
	l := NewTrackLocator()

	track := []entity.TrackPoint{
		point(0, 0, t0),
		point(10, 10, t0.Add(10*time.Second)),
	}

	loc, err := l.Resolve(track, t0.Add(5*time.Second))
	require.NoError(t, err)
	require.InDelta(t, 5.0, loc.Latitude, 1e-9)
	require.InDelta(t, 5.0, loc.Longitude, 1e-9)
}

func TestTrackLocator_ExactPoint(t *testing.T) {
	l := NewTrackLocator()

	track := []entity.TrackPoint{
		point(1, 2, t0),
		point(3, 4, t0.Add(10*time.Second)),
	}

	loc, err := l.Resolve(track, t0.Add(10*time.Second))
	require.NoError(t, err)
	require.InDelta(t, 3.0, loc.Latitude, 1e-9)
	require.InDelta(t, 4.0, loc.Longitude, 1e-9)
}

func TestTrackLocator_ClampBeforeStart(t *testing.T) {
	l := NewTrackLocator()

	track := []entity.TrackPoint{point(1, 1, t0)}

	loc, err := l.Resolve(track, t0.Add(-100*time.Second))
	require.NoError(t, err)
	require.Equal(t, 1.0, loc.Latitude)
	require.Equal(t, 1.0, loc.Longitude)
}

func TestTrackLocator_ClampAfterEnd(t *testing.T) {
	l := NewTrackLocator()

	track := []entity.TrackPoint{
		point(0, 0, t0),
		point(5, 6, t0.Add(time.Minute)),
	}

	loc, err := l.Resolve(track, t0.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, 5.0, loc.Latitude)
	require.Equal(t, 6.0, loc.Longitude)
}

func TestTrackLocator_UnsortedInput(t *testing.T) {
	l := NewTrackLocator()

	// Точки намеренно перемешаны: локатор сортирует сам.
	track := []entity.TrackPoint{
		point(10, 10, t0.Add(10*time.Second)),
		point(0, 0, t0),
		point(20, 20, t0.Add(20*time.Second)),
	}

	loc, err := l.Resolve(track, t0.Add(15*time.Second))
	require.NoError(t, err)
	require.InDelta(t, 15.0, loc.Latitude, 1e-9)
	require.InDelta(t, 15.0, loc.Longitude, 1e-9)

	// Вход не переупорядочен.
	require.Equal(t, t0.Add(10*time.Second), track[0].Time)
}

func TestTrackLocator_DuplicateTimestamps(t *testing.T) {
	l := NewTrackLocator()

	// Две точки с одинаковым временем: деления на ноль нет, берётся первая.
	track := []entity.TrackPoint{
		point(1, 1, t0),
		point(2, 2, t0),
	}

	loc, err := l.Resolve(track, t0)
	require.NoError(t, err)
	require.Equal(t, 1.0, loc.Latitude)
	require.Equal(t, 1.0, loc.Longitude)
}

func TestTrackLocator_QuarterInterpolation(t *testing.T) {
	l := NewTrackLocator()

	track := []entity.TrackPoint{
		point(50.0, 30.0, t0),
		point(50.4, 30.8, t0.Add(40*time.Second)),
	}

	loc, err := l.Resolve(track, t0.Add(10*time.Second))
	require.NoError(t, err)
	require.InDelta(t, 50.1, loc.Latitude, 1e-9)
	require.InDelta(t, 30.2, loc.Longitude, 1e-9)
}
