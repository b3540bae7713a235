package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiansheng/tianji-ai-go/internal/config"
	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/utils"
)

func TestChartAnalyzer_AnalyzeChart(t *testing.T) {
	analyzer := NewChartAnalyzer(logrus.New())

	// Winter wood chart: the day master's 禄 sits in the hour branch, the
	// climate is urgent, and the day master counts as strong.
	analysis, err := analyzer.AnalyzeChart(context.Background(), &models.AnalyzeRequest{
		Year:   "庚子",
		Month:  "戊子",
		Day:    "甲寅",
		Hour:   "丙寅",
		Gender: models.GenderMale,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.ID)
	assert.False(t, analysis.GeneratedAt.IsZero())
	assert.Equal(t, "庚子 戊子 甲寅 丙寅", analysis.Chart.String())
	assert.Equal(t, models.StemJia, analysis.DayMaster)

	assert.Equal(t, models.TenGodSevenKillings, analysis.TenGods.Stems.Year)
	assert.Equal(t, models.TenGodIndirectWealth, analysis.TenGods.Stems.Month)
	assert.Equal(t, models.DayMasterLabel, analysis.TenGods.Stems.Day)
	assert.Equal(t, models.TenGodEatingGod, analysis.TenGods.Stems.Hour)

	assert.Equal(t, models.PatternSpecial, analysis.Pattern.Kind)
	assert.Equal(t, "日禄归时格", analysis.Pattern.Name)

	assert.Equal(t, models.VerdictStrong, analysis.Strength.Verdict)
	assert.True(t, analysis.Strength.InSeason)

	assert.Empty(t, analysis.Interactions)
	assert.NotEmpty(t, analysis.Auxiliary.Stages)
	assert.NotEmpty(t, analysis.Imagery.Image)

	assert.Equal(t, models.SeasonWinter, analysis.Seasonal.Season)
	require.True(t, analysis.Seasonal.Urgent)
	assert.Equal(t, models.ElementFire, analysis.Seasonal.Element)
}

func TestChartAnalyzer_UrgentElementLeadsFavorables(t *testing.T) {
	analyzer := NewChartAnalyzer(logrus.New())

	// Strong winter wood wants venting (fire, metal); the urgent climate
	// element is also fire, so the merged list must not repeat it.
	analysis, err := analyzer.AnalyzeChart(context.Background(), &models.AnalyzeRequest{
		Year:   "庚子",
		Month:  "戊子",
		Day:    "甲寅",
		Hour:   "丙寅",
		Gender: models.GenderMale,
	})
	require.NoError(t, err)

	assert.Equal(t, []models.Element{models.ElementFire, models.ElementMetal}, analysis.Strength.Favorable)
}

func TestChartAnalyzer_BalancedSeasonKeepsFavorables(t *testing.T) {
	analyzer := NewChartAnalyzer(logrus.New())

	// Spring fire, strong in season: favorables stay in strength order
	// because no climate element is urgent.
	analysis, err := analyzer.AnalyzeChart(context.Background(), &models.AnalyzeRequest{
		Year:   "乙酉",
		Month:  "己卯",
		Day:    "丙申",
		Hour:   "戊戌",
		Gender: models.GenderFemale,
	})
	require.NoError(t, err)

	assert.False(t, analysis.Seasonal.Urgent)
	assert.Equal(t, models.VerdictStrong, analysis.Strength.Verdict)
	assert.Equal(t, []models.Element{models.ElementWater, models.ElementEarth}, analysis.Strength.Favorable)
}

func TestChartAnalyzer_InvalidRequests(t *testing.T) {
	analyzer := NewChartAnalyzer(logrus.New())

	tests := []struct {
		name      string
		req       *models.AnalyzeRequest
		wantField string
	}{
		{
			name:      "nil request",
			req:       nil,
			wantField: "request",
		},
		{
			name:      "malformed month pillar",
			req:       &models.AnalyzeRequest{Year: "庚子", Month: "戊", Day: "甲寅", Hour: "丙寅", Gender: models.GenderMale},
			wantField: "month_pillar",
		},
		{
			name:      "unknown branch glyph",
			req:       &models.AnalyzeRequest{Year: "庚子", Month: "戊子", Day: "甲猫", Hour: "丙寅", Gender: models.GenderMale},
			wantField: "day_pillar",
		},
		{
			name:      "missing gender",
			req:       &models.AnalyzeRequest{Year: "庚子", Month: "戊子", Day: "甲寅", Hour: "丙寅"},
			wantField: "chart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzer.AnalyzeChart(context.Background(), tt.req)
			require.Error(t, err)

			var validationErr *utils.ValidationError
			require.True(t, errors.As(err, &validationErr), "error = %v", err)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestChartAnalyzer_CancelledContext(t *testing.T) {
	analyzer := NewChartAnalyzer(logrus.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.AnalyzeChart(ctx, &models.AnalyzeRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart analysis aborted")
}

func TestChartAnalyzer_ConfigTunables(t *testing.T) {
	cfg := &config.Config{
		Engine: config.EngineConfig{
			StrengthThresholdInSeason:    70,
			StrengthThresholdOutOfSeason: 80,
			ReportPartialTrines:          false,
		},
	}
	analyzer := NewChartAnalyzerWithConfig(cfg, logrus.New())

	// The raised cutoff flips the winter wood chart to weak.
	analysis, err := analyzer.AnalyzeChart(context.Background(), &models.AnalyzeRequest{
		Year:   "庚子",
		Month:  "戊子",
		Day:    "甲寅",
		Hour:   "丙寅",
		Gender: models.GenderMale,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerdictWeak, analysis.Strength.Verdict)
	assert.Equal(t, []models.Element{models.ElementFire, models.ElementWood, models.ElementWater}, analysis.Strength.Favorable)

	// Half-trine reporting is off, and this chart has nothing stronger.
	analysis, err = analyzer.AnalyzeChart(context.Background(), &models.AnalyzeRequest{
		Year:   "戊申",
		Month:  "壬子",
		Day:    "辛卯",
		Hour:   "己亥",
		Gender: models.GenderMale,
	})
	require.NoError(t, err)
	assert.Empty(t, analysis.Interactions)
}
