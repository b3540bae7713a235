package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HiddenStemGod labels one hidden stem with its relation to the Day Master.
type HiddenStemGod struct {
	Stem   Stem            `json:"stem"`
	Weight decimal.Decimal `json:"weight"`
	TenGod TenGod          `json:"ten_god"`
}

// PillarGods holds the ten-god labels of the four visible stems; the day slot
// always carries the Day Master marker.
type PillarGods struct {
	Year  TenGod `json:"year"`
	Month TenGod `json:"month"`
	Day   TenGod `json:"day"`
	Hour  TenGod `json:"hour"`
}

// PillarHiddenGods holds the labeled hidden stems of each branch, ordered
// primary qi first.
type PillarHiddenGods struct {
	Year  []HiddenStemGod `json:"year"`
	Month []HiddenStemGod `json:"month"`
	Day   []HiddenStemGod `json:"day"`
	Hour  []HiddenStemGod `json:"hour"`
}

// TenGodChart is the full ten-god mapping of a chart.
type TenGodChart struct {
	DayMaster Stem             `json:"day_master"`
	Stems     PillarGods       `json:"stems"`
	Hidden    PillarHiddenGods `json:"hidden_stems"`
}

// PatternKind distinguishes the two classification families.
type PatternKind string

const (
	PatternSpecial PatternKind = "special"
	PatternRegular PatternKind = "regular"
)

// PatternResult names the chart's structural pattern. A special pattern
// always wins over the regular eight; only one is ever reported.
type PatternResult struct {
	Kind      PatternKind `json:"kind"`
	Name      string      `json:"name"`
	TenGod    TenGod      `json:"ten_god,omitempty"`
	Rationale string      `json:"rationale,omitempty"`
}

// StrengthVerdict is the day-master strength label.
type StrengthVerdict string

const (
	VerdictStrong StrengthVerdict = "身旺"
	VerdictWeak   StrengthVerdict = "身弱"
)

// SlotKind tells whether a scoring contribution came from a visible stem or
// from a branch's hidden stem.
type SlotKind string

const (
	SlotStem   SlotKind = "stem"
	SlotBranch SlotKind = "branch"
)

// StrengthContribution is one scored slot of the strength calculation,
// retained for narrative breakdowns.
type StrengthContribution struct {
	Position PillarPosition  `json:"position"`
	Slot     SlotKind        `json:"slot"`
	Stem     Stem            `json:"stem"`
	TenGod   TenGod          `json:"ten_god"`
	Weight   decimal.Decimal `json:"weight"`
	Counted  bool            `json:"counted"`
}

// StrengthResult is the day-master strength verdict with its full scoring
// breakdown and favorable-element recommendation.
type StrengthResult struct {
	Score         decimal.Decimal        `json:"score"`
	Threshold     decimal.Decimal        `json:"threshold"`
	InSeason      bool                   `json:"in_season"`
	Verdict       StrengthVerdict        `json:"verdict"`
	Favorable     []Element              `json:"favorable_elements"`
	Contributions []StrengthContribution `json:"contributions"`
}

// Strong reports whether the verdict is 身旺.
func (r StrengthResult) Strong() bool {
	return r.Verdict == VerdictStrong
}

// InteractionKind is a branch-combination relation family.
type InteractionKind string

const (
	InteractionAssembly     InteractionKind = "三会"
	InteractionTrine        InteractionKind = "三合"
	InteractionPartialTrine InteractionKind = "半合"
	InteractionSixHarmony   InteractionKind = "六合"
	InteractionSixClash     InteractionKind = "六冲"
)

// BranchInteraction is one detected combination among the chart's branches.
// Detection is non-exclusive: one branch may appear in several findings.
type BranchInteraction struct {
	Kind     InteractionKind `json:"kind"`
	Branches []Branch        `json:"branches"`
	Element  Element         `json:"element,omitempty"`
	Rank     int             `json:"rank"`
	Label    string          `json:"label"`
}

// LifeStage is one of the twelve life-cycle stages (十二长生).
type LifeStage string

const (
	StageBirth       LifeStage = "长生"
	StageBath        LifeStage = "沐浴"
	StageCapping     LifeStage = "冠带"
	StageOffice      LifeStage = "临官"
	StagePeak        LifeStage = "帝旺"
	StageDecline     LifeStage = "衰"
	StageSickness    LifeStage = "病"
	StageDeath       LifeStage = "死"
	StageTomb        LifeStage = "墓"
	StageSevered     LifeStage = "绝"
	StageConception  LifeStage = "胎"
	StageNourishment LifeStage = "养"
)

// LifeStages lists the twelve stages in forward cycle order.
var LifeStages = [12]LifeStage{
	StageBirth, StageBath, StageCapping, StageOffice, StagePeak, StageDecline,
	StageSickness, StageDeath, StageTomb, StageSevered, StageConception, StageNourishment,
}

// StageEntry is the Day Master's life stage at one pillar's branch.
type StageEntry struct {
	Position PillarPosition `json:"position"`
	Branch   Branch         `json:"branch"`
	Stage    LifeStage      `json:"stage"`
}

// VoidInfo is a void pair plus the chart positions whose branches fall in it.
type VoidInfo struct {
	Pair []Branch         `json:"pair"`
	Hits []PillarPosition `json:"hits,omitempty"`
}

// SpiritStar is one auspicious/inauspicious marker found in the chart.
type SpiritStar struct {
	Name      string           `json:"name"`
	Target    string           `json:"target"`
	Positions []PillarPosition `json:"positions"`
}

// PillarRelation is one pairwise branch relation (刑冲合害) between two
// pillars of the same chart.
type PillarRelation struct {
	Kind      string           `json:"kind"`
	Label     string           `json:"label"`
	Positions []PillarPosition `json:"positions"`
	Branches  []Branch         `json:"branches"`
}

// PillarNaYin carries the melodic element of each pillar.
type PillarNaYin struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Hour  string `json:"hour"`
}

// PillarVoids carries each pillar's own void pair.
type PillarVoids struct {
	Year  []Branch `json:"year"`
	Month []Branch `json:"month"`
	Day   []Branch `json:"day"`
	Hour  []Branch `json:"hour"`
}

// AuxiliaryResult bundles the stage, void, spirit and pairwise-relation
// findings of a chart.
type AuxiliaryResult struct {
	Stages      []StageEntry     `json:"life_stages"`
	Void        VoidInfo         `json:"void"`
	PillarVoids PillarVoids      `json:"pillar_voids"`
	Stars       []SpiritStar     `json:"stars"`
	Relations   []PillarRelation `json:"relations"`
	NaYin       PillarNaYin      `json:"na_yin"`
	LuAt        []PillarPosition `json:"lu_positions,omitempty"`
	BladeAt     []PillarPosition `json:"blade_positions,omitempty"`
}

// SeasonalResult is the climate adjustment derived from the month branch.
type SeasonalResult struct {
	Season  Season  `json:"season"`
	Urgent  bool    `json:"urgent"`
	Element Element `json:"element,omitempty"`
	Status  string  `json:"status"`
	Needs   string  `json:"needs"`
	Advice  string  `json:"advice"`
}

// NatureImagery is the poetic day-master image block decorating a reading.
type NatureImagery struct {
	Season    Season   `json:"season"`
	Image     string   `json:"image"`
	Hint      string   `json:"hint"`
	Conflicts []string `json:"conflicts,omitempty"`
}

// ChartAnalysis is the full enriched record produced for one chart. It is a
// plain value; rendering and prompt layers consume it as-is.
type ChartAnalysis struct {
	ID           string              `json:"id"`
	Chart        Chart               `json:"chart"`
	DayMaster    Stem                `json:"day_master"`
	TenGods      TenGodChart         `json:"ten_gods"`
	Pattern      PatternResult       `json:"pattern"`
	Strength     StrengthResult      `json:"strength"`
	Interactions []BranchInteraction `json:"interactions"`
	Auxiliary    AuxiliaryResult     `json:"auxiliary"`
	Seasonal     SeasonalResult      `json:"seasonal"`
	Imagery      NatureImagery       `json:"imagery"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// CompatibilityFinding is one scored observation of a pairwise chart match.
type CompatibilityFinding struct {
	Name   string          `json:"name"`
	Detail string          `json:"detail"`
	Points decimal.Decimal `json:"points"`
}

// CompatibilityResult is the outcome of matching two charts.
type CompatibilityResult struct {
	ID          string                 `json:"id"`
	Score       decimal.Decimal        `json:"score"`
	Findings    []CompatibilityFinding `json:"findings"`
	GeneratedAt time.Time              `json:"generated_at"`
}
