package models

// AnalyzeRequest carries one chart as raw two-glyph pillar strings, e.g.
// "甲子". Calendar-to-pillar conversion happens upstream of this engine.
type AnalyzeRequest struct {
	Year   string `json:"year"`
	Month  string `json:"month"`
	Day    string `json:"day"`
	Hour   string `json:"hour"`
	Gender Gender `json:"gender"`
}

// CastRequest asks for one six-line hexagram cast. A nil Seed draws a fresh
// cryptographic seed; a set Seed makes the cast fully reproducible.
type CastRequest struct {
	Question string `json:"question,omitempty"`
	Seed     *int64 `json:"seed,omitempty"`
}

// CompatibilityRequest pairs two charts for matching.
type CompatibilityRequest struct {
	First  AnalyzeRequest `json:"first"`
	Second AnalyzeRequest `json:"second"`
}
