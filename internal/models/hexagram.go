package models

import "time"

// LineValue is the total of one three-coin toss: 6 old yin, 7 young yang,
// 8 young yin, 9 old yang. Old lines are moving lines.
type LineValue int

const (
	LineOldYin    LineValue = 6
	LineYoungYang LineValue = 7
	LineYoungYin  LineValue = 8
	LineOldYang   LineValue = 9
)

// Valid reports whether v is a possible toss total.
func (v LineValue) Valid() bool {
	return v >= LineOldYin && v <= LineOldYang
}

// Yang reports the line's parity in the primary hexagram.
func (v LineValue) Yang() bool {
	return v == LineYoungYang || v == LineOldYang
}

// Moving reports whether the line transforms in the future hexagram.
func (v LineValue) Moving() bool {
	return v == LineOldYin || v == LineOldYang
}

// Label returns the classical line name.
func (v LineValue) Label() string {
	switch v {
	case LineOldYin:
		return "老阴"
	case LineYoungYang:
		return "少阳"
	case LineYoungYin:
		return "少阴"
	case LineOldYang:
		return "老阳"
	}
	return ""
}

// Render returns the display form of the line, marking moving lines.
func (v LineValue) Render() string {
	switch v {
	case LineOldYin:
		return "⚋ 老阴 (动爻)"
	case LineYoungYang:
		return "⚊ 少阳"
	case LineYoungYin:
		return "⚋ 少阴"
	case LineOldYang:
		return "⚊ 老阳 (动爻)"
	}
	return ""
}

// Trigram is one of the eight three-line figures. Value is the trigram's
// 3-bit code with the bottom line in bit 0 and yang lines set.
type Trigram struct {
	Value     uint8  `json:"value"`
	Name      string `json:"name"`
	Aspect    string `json:"aspect"`
	Symbol    string `json:"symbol"`
	Attribute string `json:"attribute"`
}

// Hexagram is a resolved six-line figure. Code packs the lines bottom-first
// into six bits; the lower trigram occupies bits 0-2, the upper bits 3-5.
type Hexagram struct {
	Code    uint8   `json:"code"`
	Name    string  `json:"name"`
	Short   string  `json:"short"`
	Meaning string  `json:"meaning"`
	Upper   Trigram `json:"upper"`
	Lower   Trigram `json:"lower"`
}

// CastResult is the record of one coin-toss divination. Lines run bottom to
// top; MovingLines positions are 1-based from the bottom. Future is nil when
// no line moves.
type CastResult struct {
	ID          string      `json:"id"`
	Question    string      `json:"question,omitempty"`
	Seed        int64       `json:"seed"`
	Lines       []LineValue `json:"lines"`
	Rendered    []string    `json:"rendered"`
	Primary     Hexagram    `json:"primary"`
	Future      *Hexagram   `json:"future,omitempty"`
	MovingLines []int       `json:"moving_lines,omitempty"`
	CastAt      time.Time   `json:"cast_at"`
}

// Changed reports whether any line moves.
func (r *CastResult) Changed() bool {
	return len(r.MovingLines) > 0
}
