package models

// Stem is one of the ten Heavenly Stems (天干).
type Stem string

const (
	StemJia  Stem = "甲"
	StemYi   Stem = "乙"
	StemBing Stem = "丙"
	StemDing Stem = "丁"
	StemWu   Stem = "戊"
	StemJi   Stem = "己"
	StemGeng Stem = "庚"
	StemXin  Stem = "辛"
	StemRen  Stem = "壬"
	StemGui  Stem = "癸"
)

// Stems lists the ten stems in canonical cycle order.
var Stems = [10]Stem{
	StemJia, StemYi, StemBing, StemDing, StemWu,
	StemJi, StemGeng, StemXin, StemRen, StemGui,
}

// stemElements pairs off in cycle order: 甲乙木, 丙丁火, 戊己土, 庚辛金, 壬癸水.
var stemElements = [10]Element{
	ElementWood, ElementWood, ElementFire, ElementFire, ElementEarth,
	ElementEarth, ElementMetal, ElementMetal, ElementWater, ElementWater,
}

var stemOrdinal = make(map[Stem]int, len(Stems))

func init() {
	for i, s := range Stems {
		stemOrdinal[s] = i
	}
}

// Valid reports whether s is one of the ten canonical stems.
func (s Stem) Valid() bool {
	_, ok := stemOrdinal[s]
	return ok
}

// Index returns the stem's position in the canonical cycle, or -1 when s is
// not a canonical stem.
func (s Stem) Index() int {
	i, ok := stemOrdinal[s]
	if !ok {
		return -1
	}
	return i
}

// Element returns the stem's phase.
func (s Stem) Element() Element {
	i, ok := stemOrdinal[s]
	if !ok {
		return ""
	}
	return stemElements[i]
}

// Polarity alternates through the cycle; even indices are yang.
func (s Stem) Polarity() Polarity {
	if s.Index()%2 == 0 {
		return PolarityYang
	}
	return PolarityYin
}

// Pinyin returns the romanized stem name, used in logs and English output.
func (s Stem) Pinyin() string {
	switch s {
	case StemJia:
		return "Jia"
	case StemYi:
		return "Yi"
	case StemBing:
		return "Bing"
	case StemDing:
		return "Ding"
	case StemWu:
		return "Wu"
	case StemJi:
		return "Ji"
	case StemGeng:
		return "Geng"
	case StemXin:
		return "Xin"
	case StemRen:
		return "Ren"
	case StemGui:
		return "Gui"
	}
	return ""
}
