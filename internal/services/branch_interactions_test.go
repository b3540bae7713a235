package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiansheng/tianji-ai-go/internal/models"
	"github.com/qiansheng/tianji-ai-go/internal/testutil"
)

func TestBranchInteractionResolver_Resolve(t *testing.T) {
	resolver := NewBranchInteractionResolver()

	tests := []struct {
		name    string
		pillars [4]string
		labels  []string
	}{
		{
			name:    "full water trine suppresses its partials",
			pillars: [4]string{"戊申", "壬子", "甲辰", "丙子"},
			labels:  []string{"申子辰三合水局"},
		},
		{
			name:    "two partial trines without their anchors",
			pillars: [4]string{"戊申", "壬子", "辛卯", "己亥"},
			labels:  []string{"申子半合水局", "亥卯半合木局"},
		},
		{
			name:    "northern assembly with harmony and clash",
			pillars: [4]string{"乙亥", "丙子", "丁丑", "丙午"},
			labels:  []string{"北方水局", "子丑合土", "子午冲"},
		},
		{
			name:    "duplicate branches report a clash once",
			pillars: [4]string{"甲子", "庚午", "壬子", "戊午"},
			labels:  []string{"子午冲"},
		},
		{
			name:    "overlapping partials and six harmonies",
			pillars: [4]string{"壬辰", "辛酉", "甲申", "己巳"},
			labels:  []string{"申辰半合水局", "巳酉半合金局", "辰酉合金", "巳申合水"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := testutil.Chart(t, tt.pillars[0], tt.pillars[1], tt.pillars[2], tt.pillars[3])
			interactions := resolver.Resolve(chart)

			labels := make([]string, len(interactions))
			for i, in := range interactions {
				labels[i] = in.Label
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestBranchInteractionResolver_FindingDetails(t *testing.T) {
	resolver := NewBranchInteractionResolver()

	chart := testutil.Chart(t, "乙亥", "丙子", "丁丑", "丙午")
	interactions := resolver.Resolve(chart)
	require.Len(t, interactions, 3)

	assembly := interactions[0]
	assert.Equal(t, models.InteractionAssembly, assembly.Kind)
	assert.Equal(t, models.ElementWater, assembly.Element)
	assert.Equal(t, 1, assembly.Rank)
	assert.Equal(t, []models.Branch{models.BranchHai, models.BranchZi, models.BranchChou}, assembly.Branches)

	harmony := interactions[1]
	assert.Equal(t, models.InteractionSixHarmony, harmony.Kind)
	assert.Equal(t, models.ElementEarth, harmony.Element)
	assert.Equal(t, 4, harmony.Rank)

	clash := interactions[2]
	assert.Equal(t, models.InteractionSixClash, clash.Kind)
	assert.Empty(t, clash.Element)
	assert.Equal(t, 5, clash.Rank)
}
