package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSession_DefaultState(t *testing.T) {
	s := NewSession(1, 10)
	require.Equal(t, StateMainMenu, s.State)
	require.Equal(t, int64(1), s.UserID)
	require.Equal(t, int64(10), s.ChatID)
	require.Nil(t, s.Track)
	require.Nil(t, s.References)
}

func TestSession_AttachTrackAndReferences(t *testing.T) {
	s := NewSession(1, 10)

	s.AttachTrack([]TrackPoint{{Latitude: 1, Longitude: 2, Time: time.Unix(0, 0)}})
	s.AttachReferences([]ReferenceAnnotation{{Type: "pothole"}})

	require.Len(t, s.Track, 1)
	require.Len(t, s.References, 1)

	s.SetState(StateAwaitingPhoto)
	require.Equal(t, StateAwaitingPhoto, s.State)
}
