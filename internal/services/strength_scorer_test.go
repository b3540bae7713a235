package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/testutil"
)

func TestStrengthScorer_Score(t *testing.T) {
	scorer := NewStrengthScorer(NewTenGodResolver())

	tests := []struct {
		name      string
		pillars   [4]string
		score     string
		threshold string
		inSeason  bool
		verdict   models.StrengthVerdict
		favorable []models.Element
	}{
		{
			name:      "wood day master commanding a wood month",
			pillars:   [4]string{"甲寅", "丙寅", "甲子", "乙亥"},
			score:     "71.6",
			threshold: "38",
			inSeason:  true,
			verdict:   models.VerdictStrong,
			favorable: []models.Element{models.ElementMetal, models.ElementFire},
		},
		{
			name:      "wood day master drowned in metal",
			pillars:   [4]string{"庚申", "乙酉", "甲戌", "庚午"},
			score:     "11.8",
			threshold: "48",
			inSeason:  false,
			verdict:   models.VerdictWeak,
			favorable: []models.Element{models.ElementWood, models.ElementWater},
		},
		{
			name:      "fire day master just above the seasonal threshold",
			pillars:   [4]string{"庚子", "辛巳", "丙寅", "戊申"},
			score:     "38.4",
			threshold: "38",
			inSeason:  true,
			verdict:   models.VerdictStrong,
			favorable: []models.Element{models.ElementWater, models.ElementEarth},
		},
		{
			name:      "fire day master in season but under-supported",
			pillars:   [4]string{"庚子", "辛巳", "丙午", "戊申"},
			score:     "35.2",
			threshold: "38",
			inSeason:  true,
			verdict:   models.VerdictWeak,
			favorable: []models.Element{models.ElementFire, models.ElementWood},
		},
		{
			name:      "out of season score below the raised threshold",
			pillars:   [4]string{"甲子", "乙酉", "甲子", "戊辰"},
			score:     "42.8",
			threshold: "48",
			inSeason:  false,
			verdict:   models.VerdictWeak,
			favorable: []models.Element{models.ElementWood, models.ElementWater},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := testutil.Chart(t, tt.pillars[0], tt.pillars[1], tt.pillars[2], tt.pillars[3])
			result := scorer.Score(chart)

			expectedScore := decimal.RequireFromString(tt.score)
			expectedThreshold := decimal.RequireFromString(tt.threshold)

			assert.True(t, result.Score.Equal(expectedScore),
				"score = %s, expected %s", result.Score, tt.score)
			assert.True(t, result.Threshold.Equal(expectedThreshold),
				"threshold = %s, expected %s", result.Threshold, tt.threshold)
			assert.Equal(t, tt.inSeason, result.InSeason)
			assert.Equal(t, tt.verdict, result.Verdict)
			assert.Equal(t, tt.favorable, result.Favorable)
		})
	}
}

func TestStrengthScorer_Contributions(t *testing.T) {
	scorer := NewStrengthScorer(NewTenGodResolver())

	chart := testutil.Chart(t, "甲子", "乙酉", "甲子", "戊辰")
	result := scorer.Score(chart)

	// Three visible stem slots plus one hidden stem each for 子, 酉, 子 and
	// three for 辰.
	require.Len(t, result.Contributions, 9)

	counted := 0
	total := decimal.Zero
	for _, c := range result.Contributions {
		if c.Counted {
			counted++
			total = total.Add(c.Weight)
		}
	}
	assert.Equal(t, 6, counted)
	assert.True(t, total.Equal(result.Score),
		"counted weights sum to %s, score is %s", total, result.Score)

	// The day stem is the subject of the measurement and never a slot.
	for _, c := range result.Contributions {
		if c.Position == models.PositionDay {
			assert.Equal(t, models.SlotBranch, c.Slot)
		}
	}
}

func TestStrengthScorer_BranchWeightSplit(t *testing.T) {
	scorer := NewStrengthScorer(NewTenGodResolver())

	// 寅 in the month slot splits 40 into 24/12/4 over 甲, 丙, 戊.
	chart := testutil.Chart(t, "庚子", "戊寅", "丙午", "戊子")
	result := scorer.Score(chart)

	shares := map[models.Stem]string{}
	for _, c := range result.Contributions {
		if c.Position == models.PositionMonth && c.Slot == models.SlotBranch {
			shares[c.Stem] = c.Weight.String()
		}
	}

	assert.Equal(t, "24", shares[models.StemJia])
	assert.Equal(t, "12", shares[models.StemBing])
	assert.Equal(t, "4", shares[models.StemWu])
}
