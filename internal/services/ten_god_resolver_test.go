package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/testutil"
)

func TestTenGodResolver_Identity(t *testing.T) {
	resolver := NewTenGodResolver()

	for _, stem := range models.Stems {
		assert.Equal(t, models.TenGodCompanion, resolver.Resolve(stem, stem),
			"every stem is its own companion: %s", stem)
	}
}

func TestTenGodResolver_Resolve(t *testing.T) {
	resolver := NewTenGodResolver()

	tests := []struct {
		name      string
		dayMaster models.Stem
		target    models.Stem
		want      models.TenGod
	}{
		{"same element opposite polarity", models.StemJia, models.StemYi, models.TenGodRobWealth},
		{"output same polarity", models.StemJia, models.StemBing, models.TenGodEatingGod},
		{"output opposite polarity", models.StemJia, models.StemDing, models.TenGodHurtingOfficer},
		{"wealth same polarity", models.StemJia, models.StemWu, models.TenGodIndirectWealth},
		{"wealth opposite polarity", models.StemJia, models.StemJi, models.TenGodDirectWealth},
		{"power same polarity wood vs metal", models.StemJia, models.StemGeng, models.TenGodSevenKillings},
		{"power opposite polarity", models.StemJia, models.StemXin, models.TenGodDirectOfficer},
		{"resource same polarity", models.StemJia, models.StemRen, models.TenGodIndirectResource},
		{"resource opposite polarity", models.StemJia, models.StemGui, models.TenGodDirectResource},
		{"yang metal vs yang fire", models.StemGeng, models.StemBing, models.TenGodSevenKillings},
		{"yin water vs yang earth", models.StemGui, models.StemWu, models.TenGodDirectOfficer},
		{"yang fire vs yin water", models.StemBing, models.StemGui, models.TenGodDirectOfficer},
		{"yin wood vs yang earth", models.StemYi, models.StemWu, models.TenGodDirectWealth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.dayMaster, tt.target))
		})
	}
}

// The label table must agree with the classical rows: each cycle offset maps
// to a fixed label, one row for yang day masters and one for yin (the odd
// offsets swap their polarity pair between the rows).
func TestTenGodResolver_MatchesCycleOffsets(t *testing.T) {
	resolver := NewTenGodResolver()

	yangRow := [10]models.TenGod{
		models.TenGodCompanion, models.TenGodRobWealth,
		models.TenGodEatingGod, models.TenGodHurtingOfficer,
		models.TenGodIndirectWealth, models.TenGodDirectWealth,
		models.TenGodSevenKillings, models.TenGodDirectOfficer,
		models.TenGodIndirectResource, models.TenGodDirectResource,
	}
	yinRow := [10]models.TenGod{
		models.TenGodCompanion, models.TenGodHurtingOfficer,
		models.TenGodEatingGod, models.TenGodDirectWealth,
		models.TenGodIndirectWealth, models.TenGodDirectOfficer,
		models.TenGodSevenKillings, models.TenGodDirectResource,
		models.TenGodIndirectResource, models.TenGodRobWealth,
	}

	for _, dm := range models.Stems {
		row := yangRow
		if dm.Polarity() == models.PolarityYin {
			row = yinRow
		}
		for _, target := range models.Stems {
			offset := (target.Index() - dm.Index() + 10) % 10
			assert.Equal(t, row[offset], resolver.Resolve(dm, target),
				"day master %s target %s", dm, target)
		}
	}
}

func TestTenGodResolver_ResolveChart(t *testing.T) {
	resolver := NewTenGodResolver()
	chart := testutil.Chart(t, "甲子", "丙寅", "壬辰", "庚戌")

	got := resolver.ResolveChart(chart)

	assert.Equal(t, models.StemRen, got.DayMaster)
	assert.Equal(t, models.TenGodEatingGod, got.Stems.Year)
	assert.Equal(t, models.TenGodIndirectWealth, got.Stems.Month)
	assert.Equal(t, models.DayMasterLabel, got.Stems.Day)
	assert.Equal(t, models.TenGodIndirectResource, got.Stems.Hour)

	require.Len(t, got.Hidden.Year, 1)
	assert.Equal(t, models.StemGui, got.Hidden.Year[0].Stem)
	assert.Equal(t, models.TenGodRobWealth, got.Hidden.Year[0].TenGod)

	require.Len(t, got.Hidden.Month, 3)
	assert.Equal(t, models.TenGodEatingGod, got.Hidden.Month[0].TenGod)
	assert.Equal(t, models.TenGodIndirectWealth, got.Hidden.Month[1].TenGod)
	assert.Equal(t, models.TenGodSevenKillings, got.Hidden.Month[2].TenGod)

	// Hidden-stem order follows the branch table: 辰 conceals 戊乙癸.
	require.Len(t, got.Hidden.Day, 3)
	assert.Equal(t, models.StemWu, got.Hidden.Day[0].Stem)
	assert.Equal(t, models.TenGodSevenKillings, got.Hidden.Day[0].TenGod)
	assert.Equal(t, models.TenGodHurtingOfficer, got.Hidden.Day[1].TenGod)
	assert.Equal(t, models.TenGodRobWealth, got.Hidden.Day[2].TenGod)
}
