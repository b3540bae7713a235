package services

import "github.com/qiansheng/tianji-ai-go/internal/models"

type climateEntry struct {
	status string
	needs  string
	advice string
}

// Winter charts freeze; whatever the Day Master, the cure circles Fire.
var winterClimate = map[models.Element]climateEntry{
	models.ElementWood: {
		status: "水冷木冻",
		needs:  "丙火 (太阳)",
		advice: "寒木向阳，无火不发。首要取火暖局，防根基腐烂。",
	},
	models.ElementFire: {
		status: "火势气弱",
		needs:  "甲木 (引火)",
		advice: "冬天的火容易熄灭，喜木来生火，同时需丙火比劫帮身抗寒。",
	},
	models.ElementEarth: {
		status: "天地冻结",
		needs:  "丙火 (解冻)",
		advice: "湿土冻土无法生金或栽木，急需火来解冻，才能恢复生机。",
	},
	models.ElementMetal: {
		status: "金寒水冷",
		needs:  "丁火/丙火",
		advice: "水冷金寒，也就是'沉金'。需要火来炼金或暖局，否则才华被冰封。",
	},
	models.ElementWater: {
		status: "滴水成冰",
		needs:  "戊土 (止流) + 丙火 (暖局)",
		advice: "冬水太旺且寒，容易泛滥成灾。需土制水，更需火来暖水，否则是一潭死水。",
	},
}

// Summer charts scorch; the cure circles Water.
var summerClimate = map[models.Element]climateEntry{
	models.ElementWood: {
		status: "木性枯焦",
		needs:  "癸水 (雨露)",
		advice: "火旺泄木太过，木容易枯萎。急需水来滋润，也就是'虚湿之地'。",
	},
	models.ElementFire: {
		status: "炎火炎上",
		needs:  "壬水 (既济)",
		advice: "火太旺则容易自焚，喜水来调节（水火既济），这叫'辉光相映'。",
	},
	models.ElementEarth: {
		status: "火炎土燥",
		needs:  "癸水 (润土)",
		advice: "燥土不能生金，也不能种树。急需水来润土，解决'亢旱'。",
	},
	models.ElementMetal: {
		status: "火熔金流",
		needs:  "壬水 (洗金) + 己土 (生金)",
		advice: "金被火克太重，急需水来制火护金，或者湿土来生金。",
	},
	models.ElementWater: {
		status: "水气干涸",
		needs:  "庚辛金 (发源) + 比劫",
		advice: "夏天的水容易蒸发，需要金（水源）来生水，或者比劫帮身。",
	},
}

// SeasonalAdjuster derives climate regulation (调候) from the month branch.
// Only winter and summer are urgent; spring and autumn defer to the strength
// analysis.
type SeasonalAdjuster struct{}

// NewSeasonalAdjuster creates a new seasonal adjuster.
func NewSeasonalAdjuster() *SeasonalAdjuster {
	return &SeasonalAdjuster{}
}

// Adjust returns the climate verdict for the chart's month.
func (sa *SeasonalAdjuster) Adjust(chart *models.Chart) models.SeasonalResult {
	season := chart.Month.Branch.Season()
	element := chart.DayMaster().Element()

	switch season {
	case models.SeasonWinter:
		entry := winterClimate[element]
		return models.SeasonalResult{
			Season:  season,
			Urgent:  true,
			Element: models.ElementFire,
			Status:  entry.status,
			Needs:   entry.needs,
			Advice:  entry.advice,
		}
	case models.SeasonSummer:
		entry := summerClimate[element]
		return models.SeasonalResult{
			Season:  season,
			Urgent:  true,
			Element: models.ElementWater,
			Status:  entry.status,
			Needs:   entry.needs,
			Advice:  entry.advice,
		}
	}

	return models.SeasonalResult{
		Season: season,
		Status: "气候平和",
		Needs:  "依据强弱定喜用",
		Advice: "调候需求不明显，请主要参考五行强弱分析。",
	}
}
