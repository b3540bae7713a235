package services

import (
	"fmt"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// PatternClassifier determines the named structural pattern (格局) of a
// chart. Special patterns preempt the regular eight patterns; regular
// classification picks the month-branch qi that best represents the chart
// and names the pattern after its ten-god relation to the Day Master.
type PatternClassifier struct {
	resolver *TenGodResolver
}

// NewPatternClassifier creates a new pattern classifier.
func NewPatternClassifier(resolver *TenGodResolver) *PatternClassifier {
	return &PatternClassifier{resolver: resolver}
}

// Classify returns the chart's pattern. Special patterns are tried first in
// class priority order; when none match, the regular pattern is derived from
// the month branch.
func (pc *PatternClassifier) Classify(chart *models.Chart) models.PatternResult {
	for _, check := range pc.specialChecks() {
		if result, ok := check(chart); ok {
			return result
		}
	}
	return pc.classifyRegular(chart)
}

// classifyRegular implements the month-qi selection rules:
//
//  1. If the month branch's primary qi shares the Day Master's element, the
//     pattern is 建禄格 (same polarity) or 羊刃格 (opposite polarity) and no
//     revealed-stem search happens.
//  2. Otherwise prefer a month hidden stem that is revealed among the year,
//     month and hour stems: the primary qi first, then middle and residual
//     qi in storage order.
//  3. With nothing revealed, the primary qi stands for the month.
func (pc *PatternClassifier) classifyRegular(chart *models.Chart) models.PatternResult {
	dm := chart.DayMaster()
	hidden := chart.Month.Branch.HiddenStems()
	primary := hidden[0].Stem

	switch pc.resolver.Resolve(dm, primary) {
	case models.TenGodCompanion:
		return models.PatternResult{
			Kind:      models.PatternRegular,
			Name:      "建禄格",
			TenGod:    models.TenGodCompanion,
			Rationale: fmt.Sprintf("month primary qi %s is the Day Master's companion", primary),
		}
	case models.TenGodRobWealth:
		return models.PatternResult{
			Kind:      models.PatternRegular,
			Name:      "羊刃格",
			TenGod:    models.TenGodRobWealth,
			Rationale: fmt.Sprintf("month primary qi %s is the Day Master's blade", primary),
		}
	}

	revealed := map[models.Stem]string{
		chart.Year.Stem:  "year",
		chart.Month.Stem: "month",
		chart.Hour.Stem:  "hour",
	}

	chosen := primary
	rationale := fmt.Sprintf("month primary qi %s not revealed; taken as is", primary)
	if pos, ok := revealed[primary]; ok {
		rationale = fmt.Sprintf("month primary qi %s revealed in the %s stem", primary, pos)
	} else {
		for _, hs := range hidden[1:] {
			if pos, ok := revealed[hs.Stem]; ok {
				chosen = hs.Stem
				rationale = fmt.Sprintf("month hidden stem %s revealed in the %s stem", hs.Stem, pos)
				break
			}
		}
	}

	god := pc.resolver.Resolve(dm, chosen)
	return models.PatternResult{
		Kind:      models.PatternRegular,
		Name:      string(god) + "格",
		TenGod:    god,
		Rationale: rationale,
	}
}
