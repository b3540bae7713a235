package services

import (
	"fmt"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// Interaction strength ranks, strongest first. Narrative layers sort
// findings by rank.
const (
	rankAssembly     = 1
	rankTrine        = 2
	rankPartialTrine = 3
	rankSixHarmony   = 4
	rankSixClash     = 5
)

type branchTrio struct {
	branches [3]models.Branch
	element  models.Element
	label    string
}

var assemblyTrios = []branchTrio{
	{[3]models.Branch{models.BranchHai, models.BranchZi, models.BranchChou}, models.ElementWater, "北方水局"},
	{[3]models.Branch{models.BranchYin, models.BranchMao, models.BranchChen}, models.ElementWood, "东方木局"},
	{[3]models.Branch{models.BranchSi, models.BranchWu, models.BranchWei}, models.ElementFire, "南方火局"},
	{[3]models.Branch{models.BranchShen, models.BranchYou, models.BranchXu}, models.ElementMetal, "西方金局"},
}

var harmonyTrios = []branchTrio{
	{[3]models.Branch{models.BranchShen, models.BranchZi, models.BranchChen}, models.ElementWater, ""},
	{[3]models.Branch{models.BranchHai, models.BranchMao, models.BranchWei}, models.ElementWood, ""},
	{[3]models.Branch{models.BranchYin, models.BranchWu, models.BranchXu}, models.ElementFire, ""},
	{[3]models.Branch{models.BranchSi, models.BranchYou, models.BranchChou}, models.ElementMetal, ""},
}

var sixHarmonyPairs = []struct {
	pair    [2]models.Branch
	element models.Element
}{
	{[2]models.Branch{models.BranchZi, models.BranchChou}, models.ElementEarth},
	{[2]models.Branch{models.BranchYin, models.BranchHai}, models.ElementWood},
	{[2]models.Branch{models.BranchMao, models.BranchXu}, models.ElementFire},
	{[2]models.Branch{models.BranchChen, models.BranchYou}, models.ElementMetal},
	{[2]models.Branch{models.BranchSi, models.BranchShen}, models.ElementWater},
	{[2]models.Branch{models.BranchWu, models.BranchWei}, models.ElementEarth},
}

var sixClashPairs = [][2]models.Branch{
	{models.BranchZi, models.BranchWu},
	{models.BranchChou, models.BranchWei},
	{models.BranchYin, models.BranchShen},
	{models.BranchMao, models.BranchYou},
	{models.BranchChen, models.BranchXu},
	{models.BranchSi, models.BranchHai},
}

// BranchInteractionResolver detects combinations among the chart's four
// branches. Detection is non-exclusive and works on the distinct branch set:
// duplicates never multiply a finding, and one branch may appear in several.
type BranchInteractionResolver struct {
	reportPartial bool
}

// NewBranchInteractionResolver creates a new branch interaction resolver
// that reports partial harmonies.
func NewBranchInteractionResolver() *BranchInteractionResolver {
	return &BranchInteractionResolver{reportPartial: true}
}

// Resolve returns every assembly, harmony and clash present in the chart,
// ordered strongest kind first. A partial harmony is reported only when its
// full trio is absent.
func (br *BranchInteractionResolver) Resolve(chart *models.Chart) []models.BranchInteraction {
	present := make(map[models.Branch]bool, 4)
	for _, b := range chart.Branches() {
		present[b] = true
	}

	interactions := make([]models.BranchInteraction, 0, 4)

	// The shadow copies in the loops below keep the Branches slices, which
	// alias the iteration value's backing array, from sharing one variable
	// under this module's pre-1.22 go directive.
	for _, trio := range assemblyTrios {
		trio := trio
		if present[trio.branches[0]] && present[trio.branches[1]] && present[trio.branches[2]] {
			interactions = append(interactions, models.BranchInteraction{
				Kind:     models.InteractionAssembly,
				Branches: trio.branches[:],
				Element:  trio.element,
				Rank:     rankAssembly,
				Label:    trio.label,
			})
		}
	}

	for _, trio := range harmonyTrios {
		trio := trio
		hits := make([]models.Branch, 0, 3)
		for _, b := range trio.branches {
			if present[b] {
				hits = append(hits, b)
			}
		}
		switch len(hits) {
		case 3:
			interactions = append(interactions, models.BranchInteraction{
				Kind:     models.InteractionTrine,
				Branches: trio.branches[:],
				Element:  trio.element,
				Rank:     rankTrine,
				Label: fmt.Sprintf("%s%s%s三合%s局",
					trio.branches[0], trio.branches[1], trio.branches[2], trio.element),
			})
		case 2:
			if !br.reportPartial {
				continue
			}
			interactions = append(interactions, models.BranchInteraction{
				Kind:     models.InteractionPartialTrine,
				Branches: hits,
				Element:  trio.element,
				Rank:     rankPartialTrine,
				Label:    fmt.Sprintf("%s%s半合%s局", hits[0], hits[1], trio.element),
			})
		}
	}

	for _, sh := range sixHarmonyPairs {
		sh := sh
		if present[sh.pair[0]] && present[sh.pair[1]] {
			interactions = append(interactions, models.BranchInteraction{
				Kind:     models.InteractionSixHarmony,
				Branches: sh.pair[:],
				Element:  sh.element,
				Rank:     rankSixHarmony,
				Label:    fmt.Sprintf("%s%s合%s", sh.pair[0], sh.pair[1], sh.element),
			})
		}
	}

	for _, pair := range sixClashPairs {
		pair := pair
		if present[pair[0]] && present[pair[1]] {
			interactions = append(interactions, models.BranchInteraction{
				Kind:     models.InteractionSixClash,
				Branches: pair[:],
				Rank:     rankSixClash,
				Label:    fmt.Sprintf("%s%s冲", pair[0], pair[1]),
			})
		}
	}

	return interactions
}
