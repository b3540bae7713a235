package services

import (
	"github.com/shopspring/decimal"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// Slot weights of the strength model. The eight slots total 100; the month
// branch dominates because seasonal command outweighs every other backing.
// The day stem is the subject being measured and carries no weight.
var (
	stemSlotWeights = map[models.PillarPosition]decimal.Decimal{
		models.PositionYear:  decimal.NewFromInt(6),
		models.PositionMonth: decimal.NewFromInt(10),
		models.PositionHour:  decimal.NewFromInt(10),
	}
	branchSlotWeights = map[models.PillarPosition]decimal.Decimal{
		models.PositionYear:  decimal.NewFromInt(6),
		models.PositionMonth: decimal.NewFromInt(40),
		models.PositionDay:   decimal.NewFromInt(16),
		models.PositionHour:  decimal.NewFromInt(12),
	}

	strengthThresholdInSeason    = decimal.NewFromInt(38)
	strengthThresholdOutOfSeason = decimal.NewFromInt(48)
)

// StrengthScorer weighs how much of the chart stands behind the Day Master.
// Every slot whose ten god is self-party (peers and resources) adds its
// weight; branch weights are split over hidden stems by dominance.
type StrengthScorer struct {
	resolver             *TenGodResolver
	thresholdInSeason    decimal.Decimal
	thresholdOutOfSeason decimal.Decimal
}

// NewStrengthScorer creates a new strength scorer with the standard verdict
// cutoffs.
func NewStrengthScorer(resolver *TenGodResolver) *StrengthScorer {
	return &StrengthScorer{
		resolver:             resolver,
		thresholdInSeason:    strengthThresholdInSeason,
		thresholdOutOfSeason: strengthThresholdOutOfSeason,
	}
}

// Score computes the weighted support score, compares it against the
// seasonal threshold and derives the favorable elements for the verdict.
func (ss *StrengthScorer) Score(chart *models.Chart) models.StrengthResult {
	dm := chart.DayMaster()
	score := decimal.Zero
	contributions := make([]models.StrengthContribution, 0, 16)
	ten := decimal.NewFromInt(10)

	for _, pos := range models.PillarPositions {
		pillar := chart.PillarAt(pos)

		if weight, ok := stemSlotWeights[pos]; ok {
			god := ss.resolver.Resolve(dm, pillar.Stem)
			counted := god.SelfParty()
			if counted {
				score = score.Add(weight)
			}
			contributions = append(contributions, models.StrengthContribution{
				Position: pos,
				Slot:     models.SlotStem,
				Stem:     pillar.Stem,
				TenGod:   god,
				Weight:   weight,
				Counted:  counted,
			})
		}

		slotWeight := branchSlotWeights[pos]
		for _, hs := range pillar.Branch.HiddenStems() {
			share := slotWeight.Mul(hs.Weight).Div(ten)
			god := ss.resolver.Resolve(dm, hs.Stem)
			counted := god.SelfParty()
			if counted {
				score = score.Add(share)
			}
			contributions = append(contributions, models.StrengthContribution{
				Position: pos,
				Slot:     models.SlotBranch,
				Stem:     hs.Stem,
				TenGod:   god,
				Weight:   share,
				Counted:  counted,
			})
		}
	}

	inSeason := ss.inSeason(chart)
	threshold := ss.thresholdOutOfSeason
	if inSeason {
		threshold = ss.thresholdInSeason
	}

	verdict := models.VerdictWeak
	if score.GreaterThanOrEqual(threshold) {
		verdict = models.VerdictStrong
	}

	return models.StrengthResult{
		Score:         score,
		Threshold:     threshold,
		InSeason:      inSeason,
		Verdict:       verdict,
		Favorable:     favorableElements(dm.Element(), verdict),
		Contributions: contributions,
	}
}

// inSeason reports whether the month branch's element backs the Day Master,
// either as its own element or as its resource.
func (ss *StrengthScorer) inSeason(chart *models.Chart) bool {
	month := chart.Month.Branch.Element()
	dm := chart.DayMaster().Element()
	return month == dm || month == dm.GeneratedBy()
}

// favorableElements picks what the chart should welcome: a weak Day Master
// wants its own element and its resource; a strong one wants the element
// that controls it and the one it produces.
func favorableElements(dm models.Element, verdict models.StrengthVerdict) []models.Element {
	if verdict == models.VerdictStrong {
		return []models.Element{dm.ControlledBy(), dm.Generates()}
	}
	return []models.Element{dm, dm.GeneratedBy()}
}
