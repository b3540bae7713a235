package models

// Element is one of the five phases (五行). Values are the Chinese glyphs so
// serialized analyses read the same way classical charts are written.
type Element string

const (
	ElementWood  Element = "木"
	ElementFire  Element = "火"
	ElementEarth Element = "土"
	ElementMetal Element = "金"
	ElementWater Element = "水"
)

// elementCycle lists the five phases in generative (相生) order; each element
// produces its successor and controls the element two steps ahead.
var elementCycle = [5]Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

var elementOrdinal = map[Element]int{
	ElementWood:  0,
	ElementFire:  1,
	ElementEarth: 2,
	ElementMetal: 3,
	ElementWater: 4,
}

// Valid reports whether e is one of the five canonical phases.
func (e Element) Valid() bool {
	_, ok := elementOrdinal[e]
	return ok
}

// Generates returns the element e produces (木生火, 火生土, ...).
func (e Element) Generates() Element {
	return elementCycle[(elementOrdinal[e]+1)%5]
}

// GeneratedBy returns the element that produces e, the resource (印) element.
func (e Element) GeneratedBy() Element {
	return elementCycle[(elementOrdinal[e]+4)%5]
}

// Controls returns the element e restrains (木克土, 土克水, ...).
func (e Element) Controls() Element {
	return elementCycle[(elementOrdinal[e]+2)%5]
}

// ControlledBy returns the element that restrains e.
func (e Element) ControlledBy() Element {
	return elementCycle[(elementOrdinal[e]+3)%5]
}

// English returns the conventional English name.
func (e Element) English() string {
	switch e {
	case ElementWood:
		return "Wood"
	case ElementFire:
		return "Fire"
	case ElementEarth:
		return "Earth"
	case ElementMetal:
		return "Metal"
	case ElementWater:
		return "Water"
	}
	return ""
}

// Elements returns the five phases in generative order.
func Elements() []Element {
	out := make([]Element, len(elementCycle))
	copy(out, elementCycle[:])
	return out
}

// Polarity is the yin/yang quality shared by stems and branches.
type Polarity string

const (
	PolarityYang Polarity = "阳"
	PolarityYin  Polarity = "阴"
)

// Season is the quarter of the year a month branch falls in.
type Season string

const (
	SeasonSpring Season = "春"
	SeasonSummer Season = "夏"
	SeasonAutumn Season = "秋"
	SeasonWinter Season = "冬"
)

// English returns the English season name.
func (s Season) English() string {
	switch s {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	case SeasonWinter:
		return "Winter"
	}
	return ""
}
