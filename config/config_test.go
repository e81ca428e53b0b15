package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DETECTOR_URL", "http://localhost:8000/detect")
	t.Setenv("IOU_THRESHOLD", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "http://localhost:8000/detect", cfg.DetectorURL)
	require.Equal(t, 0.5, cfg.IoUThreshold)
}

func TestLoad_CustomThreshold(t *testing.T) {
	t.Setenv("IOU_THRESHOLD", "0.75")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 0.75, cfg.IoUThreshold)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	t.Setenv("IOU_THRESHOLD", "abc")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("IOU_THRESHOLD", "1.5")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("IOU_THRESHOLD", "0")
	_, err = Load()
	require.Error(t, err)
}
