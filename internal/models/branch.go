package models

import "github.com/shopspring/decimal"

// Branch is one of the twelve Earthly Branches (地支).
type Branch string

const (
	BranchZi   Branch = "子"
	BranchChou Branch = "丑"
	BranchYin  Branch = "寅"
	BranchMao  Branch = "卯"
	BranchChen Branch = "辰"
	BranchSi   Branch = "巳"
	BranchWu   Branch = "午"
	BranchWei  Branch = "未"
	BranchShen Branch = "申"
	BranchYou  Branch = "酉"
	BranchXu   Branch = "戌"
	BranchHai  Branch = "亥"
)

// Branches lists the twelve branches in canonical cycle order.
var Branches = [12]Branch{
	BranchZi, BranchChou, BranchYin, BranchMao, BranchChen, BranchSi,
	BranchWu, BranchWei, BranchShen, BranchYou, BranchXu, BranchHai,
}

var branchElements = [12]Element{
	ElementWater, ElementEarth, ElementWood, ElementWood, ElementEarth, ElementFire,
	ElementFire, ElementEarth, ElementMetal, ElementMetal, ElementEarth, ElementWater,
}

// branchHiddenStems is the standard Zi Ping hidden-stem table, ordered
// primary qi first, then middle and residual qi.
var branchHiddenStems = map[Branch][]Stem{
	BranchZi:   {StemGui},
	BranchChou: {StemJi, StemGui, StemXin},
	BranchYin:  {StemJia, StemBing, StemWu},
	BranchMao:  {StemYi},
	BranchChen: {StemWu, StemYi, StemGui},
	BranchSi:   {StemBing, StemWu, StemGeng},
	BranchWu:   {StemDing, StemJi},
	BranchWei:  {StemJi, StemDing, StemYi},
	BranchShen: {StemGeng, StemRen, StemWu},
	BranchYou:  {StemXin},
	BranchXu:   {StemWu, StemXin, StemDing},
	BranchHai:  {StemRen, StemJia},
}

// hiddenStemWeights distributes a fixed 10-point scale over a branch's hidden
// stems by count: a lone primary qi owns all of it, a pair splits 7/3, and a
// full triple splits 6/3/1.
var hiddenStemWeights = map[int][]int64{
	1: {10},
	2: {7, 3},
	3: {6, 3, 1},
}

// HiddenStem is a stem concealed inside a branch along with its dominance
// weight on the 10-point scale.
type HiddenStem struct {
	Stem   Stem            `json:"stem"`
	Weight decimal.Decimal `json:"weight"`
}

var hiddenStemTable = make(map[Branch][]HiddenStem, len(Branches))

var branchOrdinal = make(map[Branch]int, len(Branches))

func init() {
	for i, b := range Branches {
		branchOrdinal[b] = i
	}
	for b, stems := range branchHiddenStems {
		weights := hiddenStemWeights[len(stems)]
		hidden := make([]HiddenStem, len(stems))
		for i, s := range stems {
			hidden[i] = HiddenStem{Stem: s, Weight: decimal.NewFromInt(weights[i])}
		}
		hiddenStemTable[b] = hidden
	}
}

// Valid reports whether b is one of the twelve canonical branches.
func (b Branch) Valid() bool {
	_, ok := branchOrdinal[b]
	return ok
}

// Index returns the branch's position in the canonical cycle, or -1 when b is
// not a canonical branch.
func (b Branch) Index() int {
	i, ok := branchOrdinal[b]
	if !ok {
		return -1
	}
	return i
}

// Element returns the branch's phase.
func (b Branch) Element() Element {
	i, ok := branchOrdinal[b]
	if !ok {
		return ""
	}
	return branchElements[i]
}

// Polarity alternates through the cycle; even indices are yang.
func (b Branch) Polarity() Polarity {
	if b.Index()%2 == 0 {
		return PolarityYang
	}
	return PolarityYin
}

// Season returns the quarter the branch governs when it serves as the month
// branch: 寅卯辰 spring, 巳午未 summer, 申酉戌 autumn, 亥子丑 winter.
func (b Branch) Season() Season {
	switch b {
	case BranchYin, BranchMao, BranchChen:
		return SeasonSpring
	case BranchSi, BranchWu, BranchWei:
		return SeasonSummer
	case BranchShen, BranchYou, BranchXu:
		return SeasonAutumn
	case BranchHai, BranchZi, BranchChou:
		return SeasonWinter
	}
	return ""
}

// HiddenStems returns the branch's concealed stems with their weights,
// primary qi first. The returned slice is shared; callers must not mutate it.
func (b Branch) HiddenStems() []HiddenStem {
	return hiddenStemTable[b]
}

// PrimaryQi returns the branch's dominant hidden stem (本气).
func (b Branch) PrimaryQi() Stem {
	hidden := hiddenStemTable[b]
	if len(hidden) == 0 {
		return ""
	}
	return hidden[0].Stem
}
