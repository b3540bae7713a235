package services

import (
	"fmt"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// The 5x4 element-by-season image table behind the poetic reading hints.
var natureImages = map[models.Element]map[models.Season]string{
	models.ElementWood: {
		models.SeasonSpring: "Spring Willow (Vitality)",
		models.SeasonSummer: "Dry Wood in Fire (Burning)",
		models.SeasonAutumn: "Withered Wood (Changes)",
		models.SeasonWinter: "Floating Wood or Winter Orchid (Dormant)",
	},
	models.ElementFire: {
		models.SeasonSpring: "Wood Fire (Bright)",
		models.SeasonSummer: "Volcano (Intense)",
		models.SeasonAutumn: "Sunset Glow (Fading)",
		models.SeasonWinter: "Candle in Snow (Precious)",
	},
	models.ElementEarth: {
		models.SeasonSpring: "Loose Soil (Weak)",
		models.SeasonSummer: "Dry Earth (Cracked)",
		models.SeasonAutumn: "Mountain (Stable)",
		models.SeasonWinter: "Frozen Earth (Hard)",
	},
	models.ElementMetal: {
		models.SeasonSpring: "Rusty Metal (Dull)",
		models.SeasonSummer: "Molten Metal (Soft)",
		models.SeasonAutumn: "Sharp Sword (Strong)",
		models.SeasonWinter: "Cold Steel (Chilling)",
	},
	models.ElementWater: {
		models.SeasonSpring: "Morning Dew (Gentle)",
		models.SeasonSummer: "Evaporating Pond (Scarse)",
		models.SeasonAutumn: "Clear Stream (Flowing)",
		models.SeasonWinter: "Iceberg/Ocean (Frozen/Deep)",
	},
}

// ImageryComposer turns a chart plus its strength and interaction findings
// into the nature-image narrative block.
type ImageryComposer struct{}

// NewImageryComposer creates a new imagery composer.
func NewImageryComposer() *ImageryComposer {
	return &ImageryComposer{}
}

// Compose builds the image hint and core-conflict lines.
func (ic *ImageryComposer) Compose(chart *models.Chart, strength models.StrengthResult, interactions []models.BranchInteraction) models.NatureImagery {
	dm := chart.DayMaster()
	season := chart.Month.Branch.Season()
	image := natureImages[dm.Element()][season]

	conflicts := make([]string, 0, 2)
	if strength.Strong() {
		conflicts = append(conflicts, "Self is Strong -> Needs Venting/Control")
	} else {
		conflicts = append(conflicts, "Self is Weak -> Needs Support")
	}
	for _, in := range interactions {
		if in.Kind == models.InteractionSixClash {
			conflicts = append(conflicts, fmt.Sprintf("Clash Detected: %s", in.Label))
		}
	}

	return models.NatureImagery{
		Season: season,
		Image:  image,
		Hint: fmt.Sprintf("%s Day Master in %s (%s) Month -> Image Hint: %s",
			dm, chart.Month.Branch, season, image),
		Conflicts: conflicts,
	}
}
