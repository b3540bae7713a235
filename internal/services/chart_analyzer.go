package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/qiansheng/tianji-ai-go/internal/config"
	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/utils"
)

// ChartAnalyzer runs the full reading pipeline over one chart: ten gods,
// pattern, strength, branch interactions, auxiliary stars, climate and
// imagery. The sub-engines are pure; the analyzer owns request validation,
// record identity and logging.
type ChartAnalyzer struct {
	resolver     *TenGodResolver
	classifier   *PatternClassifier
	scorer       *StrengthScorer
	interactions *BranchInteractionResolver
	auxiliary    *AuxiliaryResolver
	seasonal     *SeasonalAdjuster
	imagery      *ImageryComposer
	logger       *logrus.Logger
}

// NewChartAnalyzer creates a new chart analyzer with all sub-engines wired
// to their standard settings.
func NewChartAnalyzer(logger *logrus.Logger) *ChartAnalyzer {
	resolver := NewTenGodResolver()
	return &ChartAnalyzer{
		resolver:     resolver,
		classifier:   NewPatternClassifier(resolver),
		scorer:       NewStrengthScorer(resolver),
		interactions: NewBranchInteractionResolver(),
		auxiliary:    NewAuxiliaryResolver(),
		seasonal:     NewSeasonalAdjuster(),
		imagery:      NewImageryComposer(),
		logger:       logger,
	}
}

// NewChartAnalyzerWithConfig wires the sub-engines with the configured
// tunables: strength verdict cutoffs and partial-trine reporting.
func NewChartAnalyzerWithConfig(cfg *config.Config, logger *logrus.Logger) *ChartAnalyzer {
	resolver := NewTenGodResolver()
	inSeason, outOfSeason := cfg.Engine.Thresholds()
	return &ChartAnalyzer{
		resolver:   resolver,
		classifier: NewPatternClassifier(resolver),
		scorer: &StrengthScorer{
			resolver:             resolver,
			thresholdInSeason:    inSeason,
			thresholdOutOfSeason: outOfSeason,
		},
		interactions: &BranchInteractionResolver{reportPartial: cfg.Engine.ReportPartialTrines},
		auxiliary:    NewAuxiliaryResolver(),
		seasonal:     NewSeasonalAdjuster(),
		imagery:      NewImageryComposer(),
		logger:       logger,
	}
}

// AnalyzeChart validates the request and produces a complete chart analysis
// record. Validation failures surface as wrapped ValidationErrors.
func (ca *ChartAnalyzer) AnalyzeChart(ctx context.Context, req *models.AnalyzeRequest) (*models.ChartAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("chart analysis aborted: %w", err)
	}
	if req == nil {
		return nil, utils.NewValidationError("request", "analyze request is nil")
	}

	chart, err := chartFromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build chart: %w", err)
	}

	ca.logger.WithFields(logrus.Fields{
		"chart":  chart.String(),
		"gender": chart.Gender,
	}).Debug("Starting chart analysis")

	tenGods := ca.resolver.ResolveChart(chart)
	pattern := ca.classifier.Classify(chart)
	strength := ca.scorer.Score(chart)
	interactions := ca.interactions.Resolve(chart)
	auxiliary := ca.auxiliary.Resolve(chart)
	seasonal := ca.seasonal.Adjust(chart)
	imagery := ca.imagery.Compose(chart, strength, interactions)

	strength.Favorable = mergeFavorables(seasonal, strength.Favorable)

	analysis := &models.ChartAnalysis{
		ID:           uuid.New().String(),
		Chart:        *chart,
		DayMaster:    chart.DayMaster(),
		TenGods:      tenGods,
		Pattern:      pattern,
		Strength:     strength,
		Interactions: interactions,
		Auxiliary:    auxiliary,
		Seasonal:     seasonal,
		Imagery:      imagery,
		GeneratedAt:  time.Now().UTC(),
	}

	ca.logger.WithFields(logrus.Fields{
		"analysis_id": analysis.ID,
		"pattern":     pattern.Name,
		"verdict":     strength.Verdict,
		"score":       strength.Score.String(),
	}).Info("Chart analysis complete")

	return analysis, nil
}

// chartFromRequest parses the four raw pillar strings of a request into a
// validated chart.
func chartFromRequest(req *models.AnalyzeRequest) (*models.Chart, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"year_pillar", req.Year},
		{"month_pillar", req.Month},
		{"day_pillar", req.Day},
		{"hour_pillar", req.Hour},
	}

	var pillars [4]models.Pillar
	for i, f := range fields {
		p, err := models.ParsePillar(f.value)
		if err != nil {
			return nil, utils.NewValidationErrorf(f.name, "%v", err)
		}
		pillars[i] = p
	}

	chart := &models.Chart{
		Year:   pillars[0],
		Month:  pillars[1],
		Day:    pillars[2],
		Hour:   pillars[3],
		Gender: req.Gender,
	}
	if err := chart.Validate(); err != nil {
		return nil, utils.NewValidationErrorf("chart", "%v", err)
	}
	return chart, nil
}

// mergeFavorables puts an urgent climate element at the head of the favorable
// list, keeping the strength-derived order behind it without duplicates.
func mergeFavorables(seasonal models.SeasonalResult, favorable []models.Element) []models.Element {
	if !seasonal.Urgent {
		return favorable
	}
	merged := make([]models.Element, 0, len(favorable)+1)
	merged = append(merged, seasonal.Element)
	for _, e := range favorable {
		if e != seasonal.Element {
			merged = append(merged, e)
		}
	}
	return merged
}
