package services

import (
	"fmt"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// Special patterns are rare whole-chart structures that preempt regular
// classification. Checks run in class priority order: chong-ben (clash-rush)
// patterns, then remote-harmony (遥合) patterns, then day-hour combinations,
// then pure-image patterns, then stem transformations. The first match wins.
func (pc *PatternClassifier) specialChecks() []func(*models.Chart) (models.PatternResult, bool) {
	return []func(*models.Chart) (models.PatternResult, bool){
		// chong-ben class
		pc.checkFeiTianLuMa,
		pc.checkJingLanChaMa,
		pc.checkRenQiLongBei,
		// yao-he class
		pc.checkZiYaoSi,
		pc.checkChouYaoSi,
		// day-hour combination class
		pc.checkLiuYiShuGui,
		pc.checkLiuYinChaoYang,
		pc.checkXingHe,
		pc.checkGongLu,
		pc.checkGongGui,
		pc.checkRiLuGuiShi,
		// pure-image class
		pc.checkTianYuanYiQi,
		pc.checkDiYuanYiQi,
		pc.checkKuiGang,
		pc.checkJinShen,
		// transformation class
		pc.checkHuaQi,
	}
}

// stemLu maps each stem to its salary (禄) branch.
var stemLu = map[models.Stem]models.Branch{
	models.StemJia:  models.BranchYin,
	models.StemYi:   models.BranchMao,
	models.StemBing: models.BranchSi,
	models.StemDing: models.BranchWu,
	models.StemWu:   models.BranchSi,
	models.StemJi:   models.BranchWu,
	models.StemGeng: models.BranchShen,
	models.StemXin:  models.BranchYou,
	models.StemRen:  models.BranchHai,
	models.StemGui:  models.BranchZi,
}

func branchCount(branches [4]models.Branch, target models.Branch) int {
	n := 0
	for _, b := range branches {
		if b == target {
			n++
		}
	}
	return n
}

func containsBranch(branches [4]models.Branch, target models.Branch) bool {
	return branchCount(branches, target) > 0
}

func specialResult(name, rationale string) (models.PatternResult, bool) {
	return models.PatternResult{
		Kind:      models.PatternSpecial,
		Name:      name,
		Rationale: rationale,
	}, true
}

// 飞天禄马: a 庚/壬 day sitting on 子 with three 子 among the branches, or a
// 辛/癸 day sitting on 亥 with three 亥.
func (pc *PatternClassifier) checkFeiTianLuMa(chart *models.Chart) (models.PatternResult, bool) {
	dm, db := chart.Day.Stem, chart.Day.Branch
	branches := chart.Branches()

	if (dm == models.StemGeng || dm == models.StemRen) && db == models.BranchZi &&
		branchCount(branches, models.BranchZi) >= 3 {
		return specialResult("飞天禄马格", fmt.Sprintf("%s day on 子 with %d 子 branches", dm, branchCount(branches, models.BranchZi)))
	}
	if (dm == models.StemXin || dm == models.StemGui) && db == models.BranchHai &&
		branchCount(branches, models.BranchHai) >= 3 {
		return specialResult("飞天禄马格", fmt.Sprintf("%s day on 亥 with %d 亥 branches", dm, branchCount(branches, models.BranchHai)))
	}
	return models.PatternResult{}, false
}

// 井栏叉马: a 庚 day with the full 申子辰 water trine among the branches.
func (pc *PatternClassifier) checkJingLanChaMa(chart *models.Chart) (models.PatternResult, bool) {
	if chart.Day.Stem != models.StemGeng {
		return models.PatternResult{}, false
	}
	branches := chart.Branches()
	if containsBranch(branches, models.BranchShen) &&
		containsBranch(branches, models.BranchZi) &&
		containsBranch(branches, models.BranchChen) {
		return specialResult("井栏叉马格", "庚 day with the full 申子辰 trine")
	}
	return models.PatternResult{}, false
}

// 壬骑龙背: a 壬辰 day riding enough 辰 (or 寅) among the branches.
func (pc *PatternClassifier) checkRenQiLongBei(chart *models.Chart) (models.PatternResult, bool) {
	if chart.Day.Stem != models.StemRen || chart.Day.Branch != models.BranchChen {
		return models.PatternResult{}, false
	}
	branches := chart.Branches()
	chen := branchCount(branches, models.BranchChen)
	yin := branchCount(branches, models.BranchYin)
	if chen >= 3 || (yin >= 1 && chen >= 2) || yin >= 3 {
		return specialResult("壬骑龙背格", fmt.Sprintf("壬辰 day with %d 辰, %d 寅", chen, yin))
	}
	return models.PatternResult{}, false
}

// 子遥巳: a 甲子 day with doubled 子 reaching for 巳 from afar.
func (pc *PatternClassifier) checkZiYaoSi(chart *models.Chart) (models.PatternResult, bool) {
	if chart.Day.Stem == models.StemJia && chart.Day.Branch == models.BranchZi &&
		branchCount(chart.Branches(), models.BranchZi) >= 2 {
		return specialResult("子遥巳格", "甲子 day with doubled 子")
	}
	return models.PatternResult{}, false
}

// 丑遥巳: a 癸丑 or 辛丑 day with doubled 丑.
func (pc *PatternClassifier) checkChouYaoSi(chart *models.Chart) (models.PatternResult, bool) {
	dm := chart.Day.Stem
	if (dm == models.StemGui || dm == models.StemXin) && chart.Day.Branch == models.BranchChou &&
		branchCount(chart.Branches(), models.BranchChou) >= 2 {
		return specialResult("丑遥巳格", fmt.Sprintf("%s丑 day with doubled 丑", dm))
	}
	return models.PatternResult{}, false
}

// 六乙鼠贵: an 乙 day meeting the 子 hour.
func (pc *PatternClassifier) checkLiuYiShuGui(chart *models.Chart) (models.PatternResult, bool) {
	if chart.Day.Stem == models.StemYi && chart.Hour.Branch == models.BranchZi {
		return specialResult("六乙鼠贵格", "乙 day at the 子 hour")
	}
	return models.PatternResult{}, false
}

// 六阴朝阳: a 辛 day meeting the 子 hour.
func (pc *PatternClassifier) checkLiuYinChaoYang(chart *models.Chart) (models.PatternResult, bool) {
	if chart.Day.Stem == models.StemXin && chart.Hour.Branch == models.BranchZi {
		return specialResult("六阴朝阳格", "辛 day at the 子 hour")
	}
	return models.PatternResult{}, false
}

// 刑合: a 癸 day meeting the 甲寅 hour.
func (pc *PatternClassifier) checkXingHe(chart *models.Chart) (models.PatternResult, bool) {
	if chart.Day.Stem == models.StemGui &&
		chart.Hour.Stem == models.StemJia && chart.Hour.Branch == models.BranchYin {
		return specialResult("刑合格", "癸 day at the 甲寅 hour")
	}
	return models.PatternResult{}, false
}

// 拱禄: the day and hour branches flank the Day Master's missing salary
// branch (癸: 亥/丑; 丁 or 己: 巳/未), in either order.
func (pc *PatternClassifier) checkGongLu(chart *models.Chart) (models.PatternResult, bool) {
	dm, db, hb := chart.Day.Stem, chart.Day.Branch, chart.Hour.Branch

	flanks := func(a, b models.Branch) bool {
		return (db == a && hb == b) || (db == b && hb == a)
	}
	if dm == models.StemGui && flanks(models.BranchHai, models.BranchChou) {
		return specialResult("拱禄格", "癸 day with 亥/丑 flanking its 子 salary")
	}
	if (dm == models.StemDing || dm == models.StemJi) && flanks(models.BranchSi, models.BranchWei) {
		return specialResult("拱禄格", fmt.Sprintf("%s day with 巳/未 flanking its 午 salary", dm))
	}
	return models.PatternResult{}, false
}

// 拱贵: a 甲 day whose day/hour branches 申/戌 flank its noble 酉.
func (pc *PatternClassifier) checkGongGui(chart *models.Chart) (models.PatternResult, bool) {
	dm, db, hb := chart.Day.Stem, chart.Day.Branch, chart.Hour.Branch
	if dm == models.StemJia &&
		((db == models.BranchShen && hb == models.BranchXu) || (db == models.BranchXu && hb == models.BranchShen)) {
		return specialResult("拱贵格", "甲 day with 申/戌 flanking the noble branch")
	}
	return models.PatternResult{}, false
}

// 日禄归时: the hour branch is the Day Master's own salary branch.
func (pc *PatternClassifier) checkRiLuGuiShi(chart *models.Chart) (models.PatternResult, bool) {
	if stemLu[chart.Day.Stem] == chart.Hour.Branch {
		return specialResult("日禄归时格", fmt.Sprintf("%s salary branch %s in the hour", chart.Day.Stem, chart.Hour.Branch))
	}
	return models.PatternResult{}, false
}

// 天元一气: all four stems identical.
func (pc *PatternClassifier) checkTianYuanYiQi(chart *models.Chart) (models.PatternResult, bool) {
	stems := chart.Stems()
	if stems[0] == stems[1] && stems[1] == stems[2] && stems[2] == stems[3] {
		return specialResult("天元一气格", fmt.Sprintf("all four stems are %s", stems[0]))
	}
	return models.PatternResult{}, false
}

// 地元一气: all four branches identical.
func (pc *PatternClassifier) checkDiYuanYiQi(chart *models.Chart) (models.PatternResult, bool) {
	branches := chart.Branches()
	if branches[0] == branches[1] && branches[1] == branches[2] && branches[2] == branches[3] {
		return specialResult("地元一气格", fmt.Sprintf("all four branches are %s", branches[0]))
	}
	return models.PatternResult{}, false
}

// 魁罡: the day pillar is one of the four Kui Gang pillars.
func (pc *PatternClassifier) checkKuiGang(chart *models.Chart) (models.PatternResult, bool) {
	switch chart.Day.String() {
	case "戊戌", "庚戌", "庚辰", "壬辰":
		return specialResult("魁罡格", fmt.Sprintf("day pillar %s", chart.Day))
	}
	return models.PatternResult{}, false
}

// 金神: the hour pillar is one of the three Jin Shen pillars.
func (pc *PatternClassifier) checkJinShen(chart *models.Chart) (models.PatternResult, bool) {
	switch chart.Hour.String() {
	case "癸酉", "己巳", "乙丑":
		return specialResult("金神格", fmt.Sprintf("hour pillar %s", chart.Hour))
	}
	return models.PatternResult{}, false
}

// fiveCombinations maps each stem pair (keyed by the cycle-earlier stem) to
// the element it transforms into: 甲己土, 乙庚金, 丙辛水, 丁壬木, 戊癸火.
var fiveCombinations = map[models.Stem]struct {
	partner models.Stem
	element models.Element
}{
	models.StemJia:  {models.StemJi, models.ElementEarth},
	models.StemYi:   {models.StemGeng, models.ElementMetal},
	models.StemBing: {models.StemXin, models.ElementWater},
	models.StemDing: {models.StemRen, models.ElementWood},
	models.StemWu:   {models.StemGui, models.ElementFire},
}

// combineStems resolves the five-combination element of a stem pair in
// either order.
func combineStems(a, b models.Stem) (models.Element, bool) {
	if a.Index() > b.Index() {
		a, b = b, a
	}
	combo, ok := fiveCombinations[a]
	if !ok || combo.partner != b {
		return "", false
	}
	return combo.element, true
}

// 化气: the day and month stems combine and the month branch carries the
// transformed element, so the Day Master follows the transformation.
func (pc *PatternClassifier) checkHuaQi(chart *models.Chart) (models.PatternResult, bool) {
	element, ok := combineStems(chart.Day.Stem, chart.Month.Stem)
	if !ok || chart.Month.Branch.Element() != element {
		return models.PatternResult{}, false
	}
	name := fmt.Sprintf("化%s格", element)
	rationale := fmt.Sprintf("%s and %s combine into %s in a %s month",
		chart.Day.Stem, chart.Month.Stem, element, chart.Month.Branch)
	return specialResult(name, rationale)
}
