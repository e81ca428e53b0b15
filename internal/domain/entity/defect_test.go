package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDetectionLabel(t *testing.T) {
	require.Equal(t, DefectCrack, NormalizeDetectionLabel("longitudinal crack"))
	require.Equal(t, DefectCrack, NormalizeDetectionLabel("Alligator Crack"))
	require.Equal(t, DefectPothole, NormalizeDetectionLabel("pothole"))
	require.Equal(t, DefectPothole, NormalizeDetectionLabel("Deep Pothole"))
	// Незнакомая метка проходит без изменений.
	require.Equal(t, "Rutting", NormalizeDetectionLabel("Rutting"))
}

func TestNormalizeReferenceLabel(t *testing.T) {
	require.Equal(t, "Pothole", NormalizeReferenceLabel("pothole"))
	require.Equal(t, "Crack", NormalizeReferenceLabel("CRACK"))
	require.Equal(t, "Patch", NormalizeReferenceLabel("paTCH"))
	require.Equal(t, "", NormalizeReferenceLabel(""))
}

func TestDetectionNormalizedType(t *testing.T) {
	d := Detection{Type: "transverse crack", Confidence: 0.8}
	require.Equal(t, DefectCrack, d.NormalizedType())
}
