package models

// TenGod is one of the ten relation labels (十神) a stem can hold toward the
// Day Master. Each label pairs an elemental relation with a polarity match.
type TenGod string

const (
	TenGodCompanion        TenGod = "比肩" // same element, same polarity
	TenGodRobWealth        TenGod = "劫财" // same element, opposite polarity
	TenGodEatingGod        TenGod = "食神" // generated by the Day Master, same polarity
	TenGodHurtingOfficer   TenGod = "伤官" // generated by the Day Master, opposite polarity
	TenGodIndirectWealth   TenGod = "偏财" // controlled by the Day Master, same polarity
	TenGodDirectWealth     TenGod = "正财" // controlled by the Day Master, opposite polarity
	TenGodSevenKillings    TenGod = "七杀" // controls the Day Master, same polarity
	TenGodDirectOfficer    TenGod = "正官" // controls the Day Master, opposite polarity
	TenGodIndirectResource TenGod = "偏印" // generates the Day Master, same polarity
	TenGodDirectResource   TenGod = "正印" // generates the Day Master, opposite polarity
)

// DayMasterLabel marks the day stem's own slot in a ten-god mapping; the Day
// Master holds no relation to itself.
const DayMasterLabel TenGod = "日主"

// TenGodCategory groups the ten labels into the five party roles used by
// strength scoring and favorable-element selection.
type TenGodCategory string

const (
	CategoryPeer     TenGodCategory = "peer"     // 比肩 劫财
	CategoryOutput   TenGodCategory = "output"   // 食神 伤官
	CategoryWealth   TenGodCategory = "wealth"   // 偏财 正财
	CategoryPower    TenGodCategory = "power"    // 七杀 正官
	CategoryResource TenGodCategory = "resource" // 偏印 正印
)

var tenGodCategories = map[TenGod]TenGodCategory{
	TenGodCompanion:        CategoryPeer,
	TenGodRobWealth:        CategoryPeer,
	TenGodEatingGod:        CategoryOutput,
	TenGodHurtingOfficer:   CategoryOutput,
	TenGodIndirectWealth:   CategoryWealth,
	TenGodDirectWealth:     CategoryWealth,
	TenGodSevenKillings:    CategoryPower,
	TenGodDirectOfficer:    CategoryPower,
	TenGodIndirectResource: CategoryResource,
	TenGodDirectResource:   CategoryResource,
}

// Category returns the label's party role.
func (g TenGod) Category() TenGodCategory {
	return tenGodCategories[g]
}

// SelfParty reports whether the label supports the Day Master: peers share
// its element, resources generate it.
func (g TenGod) SelfParty() bool {
	c := tenGodCategories[g]
	return c == CategoryPeer || c == CategoryResource
}

// English returns the conventional translation.
func (g TenGod) English() string {
	switch g {
	case TenGodCompanion:
		return "Companion"
	case TenGodRobWealth:
		return "Rob Wealth"
	case TenGodEatingGod:
		return "Eating God"
	case TenGodHurtingOfficer:
		return "Hurting Officer"
	case TenGodIndirectWealth:
		return "Indirect Wealth"
	case TenGodDirectWealth:
		return "Direct Wealth"
	case TenGodSevenKillings:
		return "Seven Killings"
	case TenGodDirectOfficer:
		return "Direct Officer"
	case TenGodIndirectResource:
		return "Indirect Resource"
	case TenGodDirectResource:
		return "Direct Resource"
	case DayMasterLabel:
		return "Day Master"
	}
	return ""
}
