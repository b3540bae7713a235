package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/testutil"
)

func TestImageryComposer_Compose(t *testing.T) {
	composer := NewImageryComposer()

	t.Run("weak wood in winter", func(t *testing.T) {
		chart := testutil.Chart(t, "庚子", "戊子", "甲寅", "丙寅")
		strength := models.StrengthResult{Verdict: models.VerdictWeak}

		imagery := composer.Compose(chart, strength, nil)

		assert.Equal(t, models.SeasonWinter, imagery.Season)
		assert.Equal(t, "Floating Wood or Winter Orchid (Dormant)", imagery.Image)
		assert.Equal(t,
			"甲 Day Master in 子 (冬) Month -> Image Hint: Floating Wood or Winter Orchid (Dormant)",
			imagery.Hint)
		assert.Equal(t, []string{"Self is Weak -> Needs Support"}, imagery.Conflicts)
	})

	t.Run("strong fire in autumn with a clash", func(t *testing.T) {
		chart := testutil.Chart(t, "辛巳", "丁酉", "丙午", "甲子")
		strength := models.StrengthResult{Verdict: models.VerdictStrong}
		interactions := NewBranchInteractionResolver().Resolve(chart)

		imagery := composer.Compose(chart, strength, interactions)

		assert.Equal(t, "Sunset Glow (Fading)", imagery.Image)
		assert.Equal(t, []string{
			"Self is Strong -> Needs Venting/Control",
			"Clash Detected: 子午冲",
		}, imagery.Conflicts)
	})
}
