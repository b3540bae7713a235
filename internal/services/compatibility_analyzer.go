package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/utils"
)

// Point values of the pairwise checks, applied to a base of 60. The day
// pillar is the spouse palace, so its stem and branch relations dominate
// the score.
var (
	compatibilityBase = decimal.NewFromInt(60)
	compatibilityCeil = decimal.NewFromInt(100)
	pointsStemUnion   = decimal.NewFromInt(30)
	pointsBranchUnion = decimal.NewFromInt(20)
	pointsBranchClash = decimal.NewFromInt(-10)
	pointsComplement  = decimal.NewFromInt(20)
)

// CompatibilityAnalyzer matches two charts pairwise: day-pillar chemistry
// plus element complement.
type CompatibilityAnalyzer struct {
	logger *logrus.Logger
}

// NewCompatibilityAnalyzer creates a new compatibility analyzer.
func NewCompatibilityAnalyzer(logger *logrus.Logger) *CompatibilityAnalyzer {
	return &CompatibilityAnalyzer{logger: logger}
}

// Analyze validates both charts and scores their match. Findings carry the
// individual observations with their point values; the final score is
// clamped to [0, 100].
func (ca *CompatibilityAnalyzer) Analyze(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compatibility analysis aborted: %w", err)
	}
	if req == nil {
		return nil, utils.NewValidationError("request", "compatibility request is nil")
	}

	first, err := chartFromRequest(&req.First)
	if err != nil {
		return nil, fmt.Errorf("first chart: %w", err)
	}
	second, err := chartFromRequest(&req.Second)
	if err != nil {
		return nil, fmt.Errorf("second chart: %w", err)
	}

	ca.logger.WithFields(logrus.Fields{
		"first":  first.String(),
		"second": second.String(),
	}).Debug("Starting compatibility analysis")

	var findings []models.CompatibilityFinding

	// Day stems forming one of the five unions bind the two day masters.
	dmA, dmB := first.DayMaster(), second.DayMaster()
	if _, ok := combineStems(dmA, dmB); ok {
		findings = append(findings, models.CompatibilityFinding{
			Name:   "日干相合",
			Detail: fmt.Sprintf("日干相合 (%s-%s)：灵魂吸引力极强，性格互补。", dmA, dmB),
			Points: pointsStemUnion,
		})
	}

	// Day branches: six harmony and six clash are mutually exclusive, so the
	// clash check only runs when no harmony was found.
	dbA, dbB := first.Day.Branch, second.Day.Branch
	switch {
	case branchPairIn(harmonyPairTable(), dbA, dbB):
		findings = append(findings, models.CompatibilityFinding{
			Name:   "日支六合",
			Detail: fmt.Sprintf("日支六合 (%s-%s)：相处舒服，生活步调一致。", dbA, dbB),
			Points: pointsBranchUnion,
		})
	case branchPairIn(sixClashPairs, dbA, dbB):
		findings = append(findings, models.CompatibilityFinding{
			Name:   "日支相冲",
			Detail: fmt.Sprintf("日支相冲 (%s-%s)：容易有价值观冲突，需磨合。", dbA, dbB),
			Points: pointsBranchClash,
		})
	}

	// One chart's missing element covered by the other's dominant element
	// counts once, whichever direction it runs in.
	if elem, ok := complementElement(first, second); ok {
		findings = append(findings, models.CompatibilityFinding{
			Name:   "五行互补",
			Detail: fmt.Sprintf("五行互补 (%s)：对方的强项正好是你的弱项，旺你。", elem),
			Points: pointsComplement,
		})
	}

	score := compatibilityBase
	for _, f := range findings {
		score = score.Add(f.Points)
	}
	if score.LessThan(decimal.Zero) {
		score = decimal.Zero
	}
	if score.GreaterThan(compatibilityCeil) {
		score = compatibilityCeil
	}

	result := &models.CompatibilityResult{
		ID:          uuid.New().String(),
		Score:       score,
		Findings:    findings,
		GeneratedAt: time.Now().UTC(),
	}

	ca.logger.WithFields(logrus.Fields{
		"result_id": result.ID,
		"score":     result.Score.String(),
		"findings":  len(result.Findings),
	}).Info("Compatibility analysis complete")

	return result, nil
}

func branchPairIn(table [][2]models.Branch, a, b models.Branch) bool {
	for _, p := range table {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}

// complementElement looks for an element one chart lacks entirely that the
// other chart holds as its dominant phase. The first chart's gaps are
// checked first; at most one complement is reported.
func complementElement(first, second *models.Chart) (models.Element, bool) {
	countsA := first.ElementCounts()
	countsB := second.ElementCounts()

	if elem, ok := coveredGap(countsA, countsB); ok {
		return elem, true
	}
	return coveredGap(countsB, countsA)
}

// coveredGap reports the first element absent from lacking that sits at the
// top of dominant's tally.
func coveredGap(lacking, dominant map[models.Element]int) (models.Element, bool) {
	max := 0
	for _, n := range dominant {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return "", false
	}
	for _, e := range models.Elements() {
		if lacking[e] == 0 && dominant[e] == max {
			return e, true
		}
	}
	return "", false
}
