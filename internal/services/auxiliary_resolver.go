package services

import (
	"fmt"

	"github.com/qiansheng/tianji-ai-go/internal/models"
)

// Twelve-stage cycle anchors: the branch index where each stem's 长生 sits.
// Yang stems walk the cycle forward from there, yin stems backward.
var lifeStageStart = map[models.Stem]int{
	models.StemJia:  11,
	models.StemBing: 2,
	models.StemWu:   2,
	models.StemGeng: 5,
	models.StemRen:  8,
	models.StemYi:   6,
	models.StemDing: 9,
	models.StemJi:   9,
	models.StemXin:  0,
	models.StemGui:  3,
}

// stemBlade maps each stem to its blade (羊刃) branch.
var stemBlade = map[models.Stem]models.Branch{
	models.StemJia:  models.BranchMao,
	models.StemYi:   models.BranchYin,
	models.StemBing: models.BranchWu,
	models.StemDing: models.BranchSi,
	models.StemWu:   models.BranchWu,
	models.StemJi:   models.BranchSi,
	models.StemGeng: models.BranchYou,
	models.StemXin:  models.BranchShen,
	models.StemRen:  models.BranchZi,
	models.StemGui:  models.BranchHai,
}

// Day-stem keyed star targets. Multi-branch tables scan every chart branch;
// single-target tables check presence of the one branch.
var (
	noblemanTargets = map[models.Stem][]models.Branch{
		models.StemJia:  {models.BranchChou, models.BranchWei},
		models.StemWu:   {models.BranchChou, models.BranchWei},
		models.StemGeng: {models.BranchChou, models.BranchWei},
		models.StemYi:   {models.BranchZi, models.BranchShen},
		models.StemJi:   {models.BranchZi, models.BranchShen},
		models.StemBing: {models.BranchHai, models.BranchYou},
		models.StemDing: {models.BranchHai, models.BranchYou},
		models.StemRen:  {models.BranchSi, models.BranchMao},
		models.StemGui:  {models.BranchSi, models.BranchMao},
		models.StemXin:  {models.BranchWu, models.BranchYin},
	}
	literaryTargets = map[models.Stem][]models.Branch{
		models.StemJia:  {models.BranchSi, models.BranchWu},
		models.StemYi:   {models.BranchSi, models.BranchWu},
		models.StemBing: {models.BranchShen, models.BranchYou},
		models.StemDing: {models.BranchShen, models.BranchYou},
		models.StemWu:   {models.BranchShen, models.BranchYou},
		models.StemJi:   {models.BranchShen, models.BranchYou},
		models.StemGeng: {models.BranchHai, models.BranchZi},
		models.StemXin:  {models.BranchHai, models.BranchZi},
		models.StemRen:  {models.BranchYin, models.BranchMao},
		models.StemGui:  {models.BranchYin, models.BranchMao},
	}
	taijiTargets = map[models.Stem][]models.Branch{
		models.StemJia:  {models.BranchZi, models.BranchWu},
		models.StemYi:   {models.BranchZi, models.BranchWu},
		models.StemBing: {models.BranchMao, models.BranchYou},
		models.StemDing: {models.BranchMao, models.BranchYou},
		models.StemWu:   {models.BranchChen, models.BranchXu, models.BranchChou, models.BranchWei},
		models.StemJi:   {models.BranchChen, models.BranchXu, models.BranchChou, models.BranchWei},
		models.StemGeng: {models.BranchYin, models.BranchHai},
		models.StemXin:  {models.BranchYin, models.BranchHai},
		models.StemRen:  {models.BranchSi, models.BranchShen},
		models.StemGui:  {models.BranchSi, models.BranchShen},
	}
	fortuneTargets = map[models.Stem][]models.Branch{
		models.StemJia:  {models.BranchChou, models.BranchWei},
		models.StemYi:   {models.BranchChou, models.BranchWei},
		models.StemBing: {models.BranchZi, models.BranchShen},
		models.StemDing: {models.BranchZi, models.BranchShen},
		models.StemWu:   {models.BranchYin, models.BranchXu},
		models.StemJi:   {models.BranchYin, models.BranchXu},
		models.StemGeng: {models.BranchMao, models.BranchHai},
		models.StemXin:  {models.BranchMao, models.BranchHai},
		models.StemRen:  {models.BranchSi, models.BranchYou},
		models.StemGui:  {models.BranchSi, models.BranchYou},
	}
	sealTargets = map[models.Stem]models.Branch{
		models.StemJia:  models.BranchXu,
		models.StemYi:   models.BranchHai,
		models.StemBing: models.BranchChou,
		models.StemDing: models.BranchYin,
		models.StemWu:   models.BranchChou,
		models.StemJi:   models.BranchYin,
		models.StemGeng: models.BranchChen,
		models.StemXin:  models.BranchSi,
		models.StemRen:  models.BranchWei,
		models.StemGui:  models.BranchShen,
	}
)

// Day-branch keyed star targets, grouped by the branch's harmony trio.
var (
	peachBlossomTargets = map[models.Branch]models.Branch{
		models.BranchShen: models.BranchYou, models.BranchZi: models.BranchYou, models.BranchChen: models.BranchYou,
		models.BranchYin: models.BranchMao, models.BranchWu: models.BranchMao, models.BranchXu: models.BranchMao,
		models.BranchSi: models.BranchWu, models.BranchYou: models.BranchWu, models.BranchChou: models.BranchWu,
		models.BranchHai: models.BranchZi, models.BranchMao: models.BranchZi, models.BranchWei: models.BranchZi,
	}
	travelHorseTargets = map[models.Branch]models.Branch{
		models.BranchShen: models.BranchYin, models.BranchZi: models.BranchYin, models.BranchChen: models.BranchYin,
		models.BranchYin: models.BranchShen, models.BranchWu: models.BranchShen, models.BranchXu: models.BranchShen,
		models.BranchSi: models.BranchHai, models.BranchYou: models.BranchHai, models.BranchChou: models.BranchHai,
		models.BranchHai: models.BranchSi, models.BranchMao: models.BranchSi, models.BranchWei: models.BranchSi,
	}
	canopyTargets = map[models.Branch]models.Branch{
		models.BranchShen: models.BranchChen, models.BranchZi: models.BranchChen, models.BranchChen: models.BranchChen,
		models.BranchYin: models.BranchXu, models.BranchWu: models.BranchXu, models.BranchXu: models.BranchXu,
		models.BranchSi: models.BranchChou, models.BranchYou: models.BranchChou, models.BranchChou: models.BranchChou,
		models.BranchHai: models.BranchWei, models.BranchMao: models.BranchWei, models.BranchWei: models.BranchWei,
	}
	generalTargets = map[models.Branch]models.Branch{
		models.BranchShen: models.BranchZi, models.BranchZi: models.BranchZi, models.BranchChen: models.BranchZi,
		models.BranchYin: models.BranchWu, models.BranchWu: models.BranchWu, models.BranchXu: models.BranchWu,
		models.BranchSi: models.BranchYou, models.BranchYou: models.BranchYou, models.BranchChou: models.BranchYou,
		models.BranchHai: models.BranchMao, models.BranchMao: models.BranchMao, models.BranchWei: models.BranchMao,
	}
)

// Month-branch keyed virtue targets. 天德 targets mix stems and branches;
// 月德 targets are always stems.
var (
	heavenVirtueTargets = map[models.Branch]string{
		models.BranchYin: "丁", models.BranchMao: "申", models.BranchChen: "壬", models.BranchSi: "辛",
		models.BranchWu: "亥", models.BranchWei: "甲", models.BranchShen: "癸", models.BranchYou: "寅",
		models.BranchXu: "丙", models.BranchHai: "乙", models.BranchZi: "己", models.BranchChou: "庚",
	}
	monthVirtueTargets = map[models.Branch]models.Stem{
		models.BranchYin: models.StemBing, models.BranchWu: models.StemBing, models.BranchXu: models.StemBing,
		models.BranchShen: models.StemRen, models.BranchZi: models.StemRen, models.BranchChen: models.StemRen,
		models.BranchHai: models.StemJia, models.BranchMao: models.StemJia, models.BranchWei: models.StemJia,
		models.BranchSi: models.StemGeng, models.BranchYou: models.StemGeng, models.BranchChou: models.StemGeng,
	}
)

// Year-branch keyed romance and solitude stars.
var (
	redPhoenixTargets = map[models.Branch]models.Branch{
		models.BranchZi: models.BranchMao, models.BranchChou: models.BranchYin, models.BranchYin: models.BranchChou,
		models.BranchMao: models.BranchZi, models.BranchChen: models.BranchHai, models.BranchSi: models.BranchXu,
		models.BranchWu: models.BranchYou, models.BranchWei: models.BranchShen, models.BranchShen: models.BranchWei,
		models.BranchYou: models.BranchWu, models.BranchXu: models.BranchSi, models.BranchHai: models.BranchChen,
	}
	heavenJoyTargets = map[models.Branch]models.Branch{
		models.BranchZi: models.BranchYou, models.BranchChou: models.BranchShen, models.BranchYin: models.BranchWei,
		models.BranchMao: models.BranchWu, models.BranchChen: models.BranchSi, models.BranchSi: models.BranchChen,
		models.BranchWu: models.BranchMao, models.BranchWei: models.BranchYin, models.BranchShen: models.BranchChou,
		models.BranchYou: models.BranchZi, models.BranchXu: models.BranchHai, models.BranchHai: models.BranchXu,
	}
	lonesomeTargets = map[models.Branch]models.Branch{
		models.BranchHai: models.BranchYin, models.BranchZi: models.BranchYin, models.BranchChou: models.BranchYin,
		models.BranchYin: models.BranchSi, models.BranchMao: models.BranchSi, models.BranchChen: models.BranchSi,
		models.BranchSi: models.BranchShen, models.BranchWu: models.BranchShen, models.BranchWei: models.BranchShen,
		models.BranchShen: models.BranchHai, models.BranchYou: models.BranchHai, models.BranchXu: models.BranchHai,
	}
	widowTargets = map[models.Branch]models.Branch{
		models.BranchHai: models.BranchXu, models.BranchZi: models.BranchXu, models.BranchChou: models.BranchXu,
		models.BranchYin: models.BranchChou, models.BranchMao: models.BranchChou, models.BranchChen: models.BranchChou,
		models.BranchSi: models.BranchChen, models.BranchWu: models.BranchChen, models.BranchWei: models.BranchChen,
		models.BranchShen: models.BranchWei, models.BranchYou: models.BranchWei, models.BranchXu: models.BranchWei,
	}
)

// Pairwise relation tables for the 刑冲合害 sweep.
var (
	harmPairs = [][2]models.Branch{
		{models.BranchZi, models.BranchWei},
		{models.BranchChou, models.BranchWu},
		{models.BranchYin, models.BranchSi},
		{models.BranchMao, models.BranchChen},
		{models.BranchShen, models.BranchHai},
		{models.BranchYou, models.BranchXu},
	}
	punishmentPairs = [][2]models.Branch{
		{models.BranchYin, models.BranchSi},
		{models.BranchSi, models.BranchShen},
		{models.BranchYin, models.BranchShen},
		{models.BranchChou, models.BranchXu},
		{models.BranchXu, models.BranchWei},
		{models.BranchChou, models.BranchWei},
		{models.BranchZi, models.BranchMao},
	}
	selfPunishing = map[models.Branch]bool{
		models.BranchChen: true,
		models.BranchWu:   true,
		models.BranchYou:  true,
		models.BranchHai:  true,
	}
)

// AuxiliaryResolver derives the supporting markers of a chart: twelve-stage
// placements, void branches, spirit stars, pairwise branch relations and the
// melodic elements.
type AuxiliaryResolver struct{}

// NewAuxiliaryResolver creates a new auxiliary resolver.
func NewAuxiliaryResolver() *AuxiliaryResolver {
	return &AuxiliaryResolver{}
}

// Resolve computes every auxiliary marker for the chart.
func (ar *AuxiliaryResolver) Resolve(chart *models.Chart) models.AuxiliaryResult {
	return models.AuxiliaryResult{
		Stages:      ar.lifeStages(chart),
		Void:        ar.voidInfo(chart),
		PillarVoids: ar.pillarVoids(chart),
		Stars:       ar.spiritStars(chart),
		Relations:   ar.relations(chart),
		NaYin: models.PillarNaYin{
			Year:  chart.Year.NaYin(),
			Month: chart.Month.NaYin(),
			Day:   chart.Day.NaYin(),
			Hour:  chart.Hour.NaYin(),
		},
		LuAt:    ar.branchPositions(chart, stemLu[chart.DayMaster()]),
		BladeAt: ar.branchPositions(chart, stemBlade[chart.DayMaster()]),
	}
}

// lifeStages places the Day Master's twelve-stage cycle on each branch. Yang
// stems count forward from their 长生 anchor, yin stems backward.
func (ar *AuxiliaryResolver) lifeStages(chart *models.Chart) []models.StageEntry {
	dm := chart.DayMaster()
	start := lifeStageStart[dm]
	yang := dm.Polarity() == models.PolarityYang

	entries := make([]models.StageEntry, 0, 4)
	for _, pos := range models.PillarPositions {
		branch := chart.PillarAt(pos).Branch
		var diff int
		if yang {
			diff = ((branch.Index() - start) % 12 + 12) % 12
		} else {
			diff = ((start - branch.Index()) % 12 + 12) % 12
		}
		entries = append(entries, models.StageEntry{
			Position: pos,
			Branch:   branch,
			Stage:    models.LifeStages[diff],
		})
	}
	return entries
}

// voidInfo reports the day pillar's void pair and which chart positions fall
// in it.
func (ar *AuxiliaryResolver) voidInfo(chart *models.Chart) models.VoidInfo {
	pair := chart.Day.VoidPair()
	info := models.VoidInfo{Pair: pair[:]}
	for _, pos := range models.PillarPositions {
		b := chart.PillarAt(pos).Branch
		if b == pair[0] || b == pair[1] {
			info.Hits = append(info.Hits, pos)
		}
	}
	return info
}

func (ar *AuxiliaryResolver) pillarVoids(chart *models.Chart) models.PillarVoids {
	year, month := chart.Year.VoidPair(), chart.Month.VoidPair()
	day, hour := chart.Day.VoidPair(), chart.Hour.VoidPair()
	return models.PillarVoids{
		Year:  year[:],
		Month: month[:],
		Day:   day[:],
		Hour:  hour[:],
	}
}

// branchPositions returns every chart position whose branch equals target.
func (ar *AuxiliaryResolver) branchPositions(chart *models.Chart, target models.Branch) []models.PillarPosition {
	var hits []models.PillarPosition
	for _, pos := range models.PillarPositions {
		if chart.PillarAt(pos).Branch == target {
			hits = append(hits, pos)
		}
	}
	return hits
}

// stemPositions returns every chart position whose stem equals target.
func (ar *AuxiliaryResolver) stemPositions(chart *models.Chart, target models.Stem) []models.PillarPosition {
	var hits []models.PillarPosition
	for _, pos := range models.PillarPositions {
		if chart.PillarAt(pos).Stem == target {
			hits = append(hits, pos)
		}
	}
	return hits
}

// spiritStars runs the star tables in canonical order. Every star records
// the concrete target symbol and the positions where it was found.
func (ar *AuxiliaryResolver) spiritStars(chart *models.Chart) []models.SpiritStar {
	dm := chart.DayMaster()
	var stars []models.SpiritStar

	appendBranchStar := func(name string, target models.Branch) {
		if hits := ar.branchPositions(chart, target); len(hits) > 0 {
			stars = append(stars, models.SpiritStar{Name: name, Target: string(target), Positions: hits})
		}
	}
	appendScanStars := func(name string, targets []models.Branch) {
		for _, target := range targets {
			appendBranchStar(name, target)
		}
	}

	appendScanStars("天乙贵人", noblemanTargets[dm])
	appendBranchStar("桃花", peachBlossomTargets[chart.Day.Branch])
	appendBranchStar("驿马", travelHorseTargets[chart.Day.Branch])
	appendBranchStar("华盖", canopyTargets[chart.Day.Branch])
	appendBranchStar("将星", generalTargets[chart.Day.Branch])
	appendBranchStar("羊刃", stemBlade[dm])
	appendScanStars("文昌", literaryTargets[dm])
	appendScanStars("太极", taijiTargets[dm])
	appendScanStars("福星", fortuneTargets[dm])
	appendBranchStar("国印", sealTargets[dm])
	appendBranchStar("禄神", stemLu[dm])

	// 天德 targets may be a stem or a branch glyph depending on the month.
	if glyph, ok := heavenVirtueTargets[chart.Month.Branch]; ok {
		var hits []models.PillarPosition
		if b := models.Branch(glyph); b.Valid() {
			hits = ar.branchPositions(chart, b)
		} else {
			hits = ar.stemPositions(chart, models.Stem(glyph))
		}
		if len(hits) > 0 {
			stars = append(stars, models.SpiritStar{Name: "天德", Target: glyph, Positions: hits})
		}
	}
	if target, ok := monthVirtueTargets[chart.Month.Branch]; ok {
		if hits := ar.stemPositions(chart, target); len(hits) > 0 {
			stars = append(stars, models.SpiritStar{Name: "月德", Target: string(target), Positions: hits})
		}
	}

	appendBranchStar("红鸾", redPhoenixTargets[chart.Year.Branch])
	appendBranchStar("天喜", heavenJoyTargets[chart.Year.Branch])
	appendBranchStar("孤辰", lonesomeTargets[chart.Year.Branch])
	appendBranchStar("寡宿", widowTargets[chart.Year.Branch])

	return stars
}

// relations sweeps all six position pairs against the clash, harmony, harm
// and punishment tables. Categories are scanned in 冲合害刑 order; a pair may
// land in more than one.
func (ar *AuxiliaryResolver) relations(chart *models.Chart) []models.PillarRelation {
	var relations []models.PillarRelation

	pairMatch := func(table [][2]models.Branch, a, b models.Branch) (models.Branch, models.Branch, bool) {
		for _, p := range table {
			if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
				return p[0], p[1], true
			}
		}
		return "", "", false
	}

	type category struct {
		kind   string
		table  [][2]models.Branch
		format string
	}
	categories := []category{
		{"冲", sixClashPairs, "%s%s相冲"},
		{"合", harmonyPairTable(), "%s%s六合"},
		{"害", harmPairs, "%s%s相害"},
		{"刑", punishmentPairs, "%s%s相刑"},
	}

	positions := models.PillarPositions
	for _, cat := range categories {
		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				b1 := chart.PillarAt(positions[i]).Branch
				b2 := chart.PillarAt(positions[j]).Branch
				if b1 == b2 {
					continue
				}
				if x, y, ok := pairMatch(cat.table, b1, b2); ok {
					relations = append(relations, models.PillarRelation{
						Kind:      cat.kind,
						Label:     fmt.Sprintf(cat.format, x, y),
						Positions: []models.PillarPosition{positions[i], positions[j]},
						Branches:  []models.Branch{x, y},
					})
				}
			}
		}
	}

	// Self-punishing branches doubled across two positions.
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			b1 := chart.PillarAt(positions[i]).Branch
			b2 := chart.PillarAt(positions[j]).Branch
			if b1 == b2 && selfPunishing[b1] {
				relations = append(relations, models.PillarRelation{
					Kind:      "刑",
					Label:     fmt.Sprintf("%s%s自刑", b1, b2),
					Positions: []models.PillarPosition{positions[i], positions[j]},
					Branches:  []models.Branch{b1, b2},
				})
			}
		}
	}

	return relations
}

// harmonyPairTable projects the six-harmony rules into plain pairs for the
// relation sweep.
func harmonyPairTable() [][2]models.Branch {
	pairs := make([][2]models.Branch, 0, len(sixHarmonyPairs))
	for _, sh := range sixHarmonyPairs {
		pairs = append(pairs, sh.pair)
	}
	return pairs
}
