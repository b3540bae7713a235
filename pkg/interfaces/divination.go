package interfaces

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartAnalysisResponse is the transport-level summary of one Four-Pillar
// chart analysis. It carries the verdict essentials without the full
// contribution breakdown.
type ChartAnalysisResponse struct {
	// ID is the unique identifier of the analysis record.
	ID string `json:"id"`
	// Chart renders the four pillars as space-separated glyph pairs.
	Chart string `json:"chart"`
	// DayMaster is the day stem the whole reading pivots on.
	DayMaster string `json:"day_master"`
	// Pattern is the resolved pattern name (e.g. "正官格").
	Pattern string `json:"pattern"`
	// Verdict is the strength verdict, 身旺 or 身弱.
	Verdict string `json:"verdict"`
	// Score is the weighted support score behind the verdict.
	Score decimal.Decimal `json:"score"`
	// Favorable lists the favorable elements, urgent climate element first.
	Favorable []string `json:"favorable_elements"`
	// GeneratedAt is the timestamp of the analysis record.
	GeneratedAt time.Time `json:"generated_at"`
}

// ChartAnalysisInterface defines the contract for consuming chart analysis
// summaries. Any type implementing this interface can feed a report layer.
type ChartAnalysisInterface interface {
	// GetID retrieves the analysis record identifier.
	GetID() string

	// GetChart retrieves the rendered four-pillar chart.
	GetChart() string

	// GetDayMaster retrieves the day stem glyph.
	GetDayMaster() string

	// GetPattern retrieves the resolved pattern name.
	GetPattern() string

	// GetVerdict retrieves the strength verdict.
	GetVerdict() string

	// GetScore retrieves the weighted support score.
	GetScore() decimal.Decimal

	// GetFavorable retrieves the favorable elements in reading order.
	GetFavorable() []string

	// GetGeneratedAt retrieves the record timestamp.
	GetGeneratedAt() time.Time
}

// GetID returns the analysis record identifier.
func (r *ChartAnalysisResponse) GetID() string {
	return r.ID
}

// GetChart returns the rendered four-pillar chart.
func (r *ChartAnalysisResponse) GetChart() string {
	return r.Chart
}

// GetDayMaster returns the day stem glyph.
func (r *ChartAnalysisResponse) GetDayMaster() string {
	return r.DayMaster
}

// GetPattern returns the resolved pattern name.
func (r *ChartAnalysisResponse) GetPattern() string {
	return r.Pattern
}

// GetVerdict returns the strength verdict.
func (r *ChartAnalysisResponse) GetVerdict() string {
	return r.Verdict
}

// GetScore returns the weighted support score.
func (r *ChartAnalysisResponse) GetScore() decimal.Decimal {
	return r.Score
}

// GetFavorable returns the favorable elements in reading order.
func (r *ChartAnalysisResponse) GetFavorable() []string {
	return r.Favorable
}

// GetGeneratedAt returns the record timestamp.
func (r *ChartAnalysisResponse) GetGeneratedAt() time.Time {
	return r.GeneratedAt
}

// CastResponse is the transport-level summary of one hexagram cast.
type CastResponse struct {
	// ID is the unique identifier of the cast record.
	ID string `json:"id"`
	// Question is the question put to the oracle, if any.
	Question string `json:"question,omitempty"`
	// Primary is the name of the primary hexagram.
	Primary string `json:"primary"`
	// Future is the name of the future hexagram, empty when no line moves.
	Future string `json:"future,omitempty"`
	// MovingLines lists the 1-based positions of moving lines, bottom first.
	MovingLines []int `json:"moving_lines,omitempty"`
	// CastAt is the timestamp of the cast record.
	CastAt time.Time `json:"cast_at"`
}

// CastInterface defines the contract for consuming hexagram cast summaries.
type CastInterface interface {
	// GetID retrieves the cast record identifier.
	GetID() string

	// GetQuestion retrieves the question put to the oracle.
	GetQuestion() string

	// GetPrimary retrieves the primary hexagram name.
	GetPrimary() string

	// GetFuture retrieves the future hexagram name, empty when none.
	GetFuture() string

	// GetMovingLines retrieves the 1-based moving line positions.
	GetMovingLines() []int

	// GetCastAt retrieves the record timestamp.
	GetCastAt() time.Time
}

// GetID returns the cast record identifier.
func (r *CastResponse) GetID() string {
	return r.ID
}

// GetQuestion returns the question put to the oracle.
func (r *CastResponse) GetQuestion() string {
	return r.Question
}

// GetPrimary returns the primary hexagram name.
func (r *CastResponse) GetPrimary() string {
	return r.Primary
}

// GetFuture returns the future hexagram name, empty when none.
func (r *CastResponse) GetFuture() string {
	return r.Future
}

// GetMovingLines returns the 1-based moving line positions.
func (r *CastResponse) GetMovingLines() []int {
	return r.MovingLines
}

// GetCastAt returns the record timestamp.
func (r *CastResponse) GetCastAt() time.Time {
	return r.CastAt
}
