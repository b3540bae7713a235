package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// Chart builds a validated male chart from four pillar strings like "甲子".
func Chart(t *testing.T, year, month, day, hour string) *models.Chart {
	t.Helper()
	return ChartWithGender(t, year, month, day, hour, models.GenderMale)
}

// ChartWithGender builds a validated chart with an explicit gender flag.
func ChartWithGender(t *testing.T, year, month, day, hour string, gender models.Gender) *models.Chart {
	t.Helper()
	chart := &models.Chart{
		Year:   Pillar(t, year),
		Month:  Pillar(t, month),
		Day:    Pillar(t, day),
		Hour:   Pillar(t, hour),
		Gender: gender,
	}
	require.NoError(t, chart.Validate())
	return chart
}

// Pillar parses a two-glyph pillar string, failing the test on bad input.
func Pillar(t *testing.T, s string) models.Pillar {
	t.Helper()
	p, err := models.ParsePillar(s)
	require.NoError(t, err, "pillar %s", s)
	return p
}
