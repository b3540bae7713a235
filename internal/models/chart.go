package models

import (
	"fmt"
	"unicode/utf8"
)

// PillarPosition identifies one of the four pillars of a chart.
type PillarPosition string

const (
	PositionYear  PillarPosition = "year"
	PositionMonth PillarPosition = "month"
	PositionDay   PillarPosition = "day"
	PositionHour  PillarPosition = "hour"
)

// PillarPositions lists the four positions in chart order.
var PillarPositions = [4]PillarPosition{PositionYear, PositionMonth, PositionDay, PositionHour}

// Gender is the chart subject's gender, carried for downstream narrative use.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Pillar is one stem-branch pair of a Four-Pillar chart.
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// ParsePillar parses a two-glyph pillar string such as "甲子".
func ParsePillar(s string) (Pillar, error) {
	if utf8.RuneCountInString(s) != 2 {
		return Pillar{}, fmt.Errorf("pillar %q: want exactly two glyphs", s)
	}
	runes := []rune(s)
	p := Pillar{Stem: Stem(runes[0]), Branch: Branch(runes[1])}
	if !p.Stem.Valid() {
		return Pillar{}, fmt.Errorf("pillar %q: unknown stem %q", s, string(runes[0]))
	}
	if !p.Branch.Valid() {
		return Pillar{}, fmt.Errorf("pillar %q: unknown branch %q", s, string(runes[1]))
	}
	return p, nil
}

func (p Pillar) String() string {
	return string(p.Stem) + string(p.Branch)
}

// Valid reports whether both halves are canonical symbols.
func (p Pillar) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid()
}

// SexagenaryIndex returns the pillar's position in the sixty-term cycle
// (甲子 = 0 … 癸亥 = 59), or -1 when the stem/branch parities cannot pair.
func (p Pillar) SexagenaryIndex() int {
	s, b := p.Stem.Index(), p.Branch.Index()
	if s < 0 || b < 0 || s%2 != b%2 {
		return -1
	}
	for n := s; n < 60; n += 10 {
		if n%12 == b {
			return n
		}
	}
	return -1
}

// nayinNames holds the thirty melodic-element names; consecutive cycle pairs
// (甲子/乙丑, 丙寅/丁卯, ...) share one name.
var nayinNames = [30]string{
	"海中金", "炉中火", "大林木", "路旁土", "剑锋金",
	"山头火", "涧下水", "城头土", "白蜡金", "杨柳木",
	"泉中水", "屋上土", "霹雳火", "松柏木", "长流水",
	"沙中金", "山下火", "平地木", "壁上土", "金箔金",
	"覆灯火", "天河水", "大驿土", "钗钏金", "桑柘木",
	"大溪水", "沙中土", "天上火", "石榴木", "大海水",
}

// NaYin returns the pillar's melodic element (纳音), such as 海中金 for 甲子.
func (p Pillar) NaYin() string {
	n := p.SexagenaryIndex()
	if n < 0 {
		return ""
	}
	return nayinNames[n/2]
}

// VoidPair returns the two branches rendered void (空亡) by this pillar's
// decade: the last two branches of its ten-term block in the sixty cycle.
func (p Pillar) VoidPair() [2]Branch {
	s, b := p.Stem.Index(), p.Branch.Index()
	if s < 0 || b < 0 {
		return [2]Branch{}
	}
	d := ((b - s) % 12 + 12) % 12
	return [2]Branch{Branches[(d+10)%12], Branches[(d+11)%12]}
}

// Chart is a resolved Four-Pillar chart. Calendar conversion happens upstream;
// by the time a Chart exists its pillars are plain symbol pairs.
type Chart struct {
	Year   Pillar `json:"year"`
	Month  Pillar `json:"month"`
	Day    Pillar `json:"day"`
	Hour   Pillar `json:"hour"`
	Gender Gender `json:"gender"`
}

// DayMaster returns the day pillar's stem, the reference point for all
// ten-god classification.
func (c *Chart) DayMaster() Stem {
	return c.Day.Stem
}

// Pillars returns the four pillars in year, month, day, hour order.
func (c *Chart) Pillars() [4]Pillar {
	return [4]Pillar{c.Year, c.Month, c.Day, c.Hour}
}

// PillarAt returns the pillar at the given position.
func (c *Chart) PillarAt(pos PillarPosition) Pillar {
	switch pos {
	case PositionYear:
		return c.Year
	case PositionMonth:
		return c.Month
	case PositionDay:
		return c.Day
	case PositionHour:
		return c.Hour
	}
	return Pillar{}
}

// Stems returns the four visible stems in chart order.
func (c *Chart) Stems() [4]Stem {
	return [4]Stem{c.Year.Stem, c.Month.Stem, c.Day.Stem, c.Hour.Stem}
}

// Branches returns the four branches in chart order.
func (c *Chart) Branches() [4]Branch {
	return [4]Branch{c.Year.Branch, c.Month.Branch, c.Day.Branch, c.Hour.Branch}
}

// ElementCounts tallies each phase's occurrences across the four visible
// stems and the four branch elements.
func (c *Chart) ElementCounts() map[Element]int {
	counts := make(map[Element]int, 5)
	for _, e := range elementCycle {
		counts[e] = 0
	}
	for _, s := range c.Stems() {
		counts[s.Element()]++
	}
	for _, b := range c.Branches() {
		counts[b.Element()]++
	}
	return counts
}

// Validate rejects charts whose symbols fall outside the canonical sets or
// whose gender flag is missing. It reports the first problem found.
func (c *Chart) Validate() error {
	for _, pos := range PillarPositions {
		p := c.PillarAt(pos)
		if !p.Stem.Valid() {
			return fmt.Errorf("%s pillar: unknown stem %q", pos, p.Stem)
		}
		if !p.Branch.Valid() {
			return fmt.Errorf("%s pillar: unknown branch %q", pos, p.Branch)
		}
	}
	if c.Gender != GenderMale && c.Gender != GenderFemale {
		return fmt.Errorf("gender: want %q or %q, got %q", GenderMale, GenderFemale, c.Gender)
	}
	return nil
}

// String renders the chart as four space-separated pillars, e.g.
// "甲子 丙寅 壬辰 庚戌".
func (c *Chart) String() string {
	return fmt.Sprintf("%s %s %s %s", c.Year, c.Month, c.Day, c.Hour)
}
