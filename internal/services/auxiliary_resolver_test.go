package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/testutil"
)

func starTargets(stars []models.SpiritStar, name string) []string {
	var targets []string
	for _, s := range stars {
		if s.Name == name {
			targets = append(targets, s.Target)
		}
	}
	return targets
}

func TestAuxiliaryResolver_Resolve(t *testing.T) {
	resolver := NewAuxiliaryResolver()

	chart := testutil.Chart(t, "甲子", "丙寅", "壬辰", "庚戌")
	result := resolver.Resolve(chart)

	// Twelve stages of a yang water Day Master anchored at 申.
	require.Len(t, result.Stages, 4)
	assert.Equal(t, models.StagePeak, result.Stages[0].Stage)
	assert.Equal(t, models.StageSickness, result.Stages[1].Stage)
	assert.Equal(t, models.StageTomb, result.Stages[2].Stage)
	assert.Equal(t, models.StageCapping, result.Stages[3].Stage)

	// 壬辰 sits in the 甲申 decade, voiding 午 and 未; neither is present.
	assert.Equal(t, []models.Branch{models.BranchWu, models.BranchWei}, result.Void.Pair)
	assert.Empty(t, result.Void.Hits)
	assert.Equal(t, []models.Branch{models.BranchXu, models.BranchHai}, result.PillarVoids.Year)
	assert.Equal(t, []models.Branch{models.BranchYin, models.BranchMao}, result.PillarVoids.Hour)

	names := make([]string, len(result.Stars))
	for i, s := range result.Stars {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"驿马", "华盖", "将星", "羊刃", "文昌", "月德", "孤辰", "寡宿"}, names)

	assert.Equal(t, []string{"寅"}, starTargets(result.Stars, "驿马"))
	assert.Equal(t, []string{"辰"}, starTargets(result.Stars, "华盖"))
	assert.Equal(t, []string{"丙"}, starTargets(result.Stars, "月德"))

	require.Len(t, result.Relations, 1)
	clash := result.Relations[0]
	assert.Equal(t, "冲", clash.Kind)
	assert.Equal(t, "辰戌相冲", clash.Label)
	assert.Equal(t, []models.PillarPosition{models.PositionDay, models.PositionHour}, clash.Positions)

	assert.Equal(t, "海中金", result.NaYin.Year)
	assert.Equal(t, "炉中火", result.NaYin.Month)
	assert.Equal(t, "长流水", result.NaYin.Day)
	assert.Equal(t, "钗钏金", result.NaYin.Hour)

	assert.Empty(t, result.LuAt)
	assert.Equal(t, []models.PillarPosition{models.PositionYear}, result.BladeAt)
}

func TestAuxiliaryResolver_RelationsAndScanStars(t *testing.T) {
	resolver := NewAuxiliaryResolver()

	chart := testutil.Chart(t, "丁酉", "壬寅", "丁巳", "己酉")
	result := resolver.Resolve(chart)

	labels := make([]string, len(result.Relations))
	for i, r := range result.Relations {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{"寅巳相害", "寅巳相刑", "酉酉自刑"}, labels)

	// Doubled 酉 answers the nobleman scan at both positions.
	var nobleman models.SpiritStar
	for _, s := range result.Stars {
		if s.Name == "天乙贵人" {
			nobleman = s
		}
	}
	require.NotEmpty(t, nobleman.Name)
	assert.Equal(t, "酉", nobleman.Target)
	assert.Equal(t, []models.PillarPosition{models.PositionYear, models.PositionHour}, nobleman.Positions)

	// 寅 month points 天德 at the stem 丁, found in two pillars.
	var virtue models.SpiritStar
	for _, s := range result.Stars {
		if s.Name == "天德" {
			virtue = s
		}
	}
	require.NotEmpty(t, virtue.Name)
	assert.Equal(t, "丁", virtue.Target)
	assert.Equal(t, []models.PillarPosition{models.PositionYear, models.PositionDay}, virtue.Positions)

	assert.Equal(t, []string{"巳"}, starTargets(result.Stars, "羊刃"))
	assert.Equal(t, []string{"寅"}, starTargets(result.Stars, "国印"))
}

func TestAuxiliaryResolver_VoidHits(t *testing.T) {
	resolver := NewAuxiliaryResolver()

	chart := testutil.Chart(t, "甲戌", "丙寅", "甲子", "乙亥")
	result := resolver.Resolve(chart)

	assert.Equal(t, []models.Branch{models.BranchXu, models.BranchHai}, result.Void.Pair)
	assert.Equal(t, []models.PillarPosition{models.PositionYear, models.PositionHour}, result.Void.Hits)
}

func TestAuxiliaryResolver_HeavenVirtueBranchTarget(t *testing.T) {
	resolver := NewAuxiliaryResolver()

	// A 卯 month points 天德 at the branch 申 rather than a stem.
	chart := testutil.Chart(t, "庚申", "丁卯", "甲申", "辛未")
	result := resolver.Resolve(chart)

	assert.Equal(t, []string{"申"}, starTargets(result.Stars, "天德"))
	for _, s := range result.Stars {
		if s.Name == "天德" {
			assert.Equal(t, []models.PillarPosition{models.PositionYear, models.PositionDay}, s.Positions)
		}
	}
}
