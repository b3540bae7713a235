package services

import (
	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// TenGodResolver classifies the relation of any stem toward a reference Day
// Master. The full 10x10 label table is built once at package init from the
// element cycle and the polarity rule, so lookups are pure and never fail.
type TenGodResolver struct{}

// NewTenGodResolver creates a new resolver instance.
func NewTenGodResolver() *TenGodResolver {
	return &TenGodResolver{}
}

// tenGodTable is indexed by [dayMaster][target] stem cycle positions.
var tenGodTable [10][10]models.TenGod

func init() {
	for di, dm := range models.Stems {
		for ti, target := range models.Stems {
			tenGodTable[di][ti] = classifyTenGod(dm, target)
		}
	}
}

// classifyTenGod derives a label from the element relation between the two
// stems, split by polarity match. Five relations times two polarities cover
// all ten labels.
func classifyTenGod(dayMaster, target models.Stem) models.TenGod {
	dmElement := dayMaster.Element()
	targetElement := target.Element()
	samePolarity := dayMaster.Polarity() == target.Polarity()

	switch {
	case targetElement == dmElement:
		if samePolarity {
			return models.TenGodCompanion
		}
		return models.TenGodRobWealth
	case dmElement.Generates() == targetElement:
		if samePolarity {
			return models.TenGodEatingGod
		}
		return models.TenGodHurtingOfficer
	case dmElement.Controls() == targetElement:
		if samePolarity {
			return models.TenGodIndirectWealth
		}
		return models.TenGodDirectWealth
	case targetElement.Controls() == dmElement:
		if samePolarity {
			return models.TenGodSevenKillings
		}
		return models.TenGodDirectOfficer
	default:
		if samePolarity {
			return models.TenGodIndirectResource
		}
		return models.TenGodDirectResource
	}
}

// Resolve returns the target stem's ten-god label relative to the Day Master.
func (r *TenGodResolver) Resolve(dayMaster, target models.Stem) models.TenGod {
	di, ti := dayMaster.Index(), target.Index()
	if di < 0 || ti < 0 {
		return ""
	}
	return tenGodTable[di][ti]
}

// ResolveChart labels every visible stem and every hidden stem of the chart
// relative to its Day Master. The day stem itself is marked 日主 rather than
// given its trivial peer label.
func (r *TenGodResolver) ResolveChart(chart *models.Chart) models.TenGodChart {
	dm := chart.DayMaster()

	return models.TenGodChart{
		DayMaster: dm,
		Stems: models.PillarGods{
			Year:  r.Resolve(dm, chart.Year.Stem),
			Month: r.Resolve(dm, chart.Month.Stem),
			Day:   models.DayMasterLabel,
			Hour:  r.Resolve(dm, chart.Hour.Stem),
		},
		Hidden: models.PillarHiddenGods{
			Year:  r.resolveHidden(dm, chart.Year.Branch),
			Month: r.resolveHidden(dm, chart.Month.Branch),
			Day:   r.resolveHidden(dm, chart.Day.Branch),
			Hour:  r.resolveHidden(dm, chart.Hour.Branch),
		},
	}
}

func (r *TenGodResolver) resolveHidden(dm models.Stem, branch models.Branch) []models.HiddenStemGod {
	hidden := branch.HiddenStems()
	out := make([]models.HiddenStemGod, len(hidden))
	for i, h := range hidden {
		out[i] = models.HiddenStemGod{
			Stem:   h.Stem,
			Weight: h.Weight,
			TenGod: r.Resolve(dm, h.Stem),
		}
	}
	return out
}
