// Package analyticsvc - Test rule engine sinh insight.
package analyticsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales_insight/internal/api/analytics/models"
)

func TestComputeInsights_EmptyInputProducesNoInsight(t *testing.T) {
	insights := ComputeInsights(InsightInput{})
	assert.Empty(t, insights)
}

func TestComputeInsights_ConcentrationHigh(t *testing.T) {
	insights := ComputeInsights(InsightInput{
		Concentration: &models.ConcentrationResult{
			HHI:      0.4,
			RiskTier: "high",
			Shares:   []models.ShareItem{{Key: "c1", Name: "Khách Một", Amount: 80, Share: 0.6}},
		},
	})
	require.Len(t, insights, 1)
	assert.Equal(t, InsightConcentrationRisk, insights[0].Kind)
	assert.Equal(t, 5, insights[0].Severity)
	assert.InDelta(t, 0.4, insights[0].Value, 1e-9)
	assert.Contains(t, insights[0].Message, "Khách Một")
}

func TestComputeInsights_ChurnSpikeOnLastPair(t *testing.T) {
	insights := ComputeInsights(InsightInput{
		Migrations: []models.MigrationSummary{
			{FromMonth: "2024-01", ToMonth: "2024-02", Churned: 1, NewCustomers: 5},
			{FromMonth: "2024-02", ToMonth: "2024-03", Churned: 7, NewCustomers: 2},
		},
	})
	require.Len(t, insights, 1)
	assert.Equal(t, InsightChurnSpike, insights[0].Kind)
	assert.Contains(t, insights[0].Message, "2024-03")
	assert.InDelta(t, 7, insights[0].Value, 1e-9)
}

func TestComputeInsights_VarianceDriverPicksLargerComponent(t *testing.T) {
	insights := ComputeInsights(InsightInput{
		Variances: []models.VarianceRollup{
			{OrgID: "org1", OrgName: "Chi nhánh Bắc", TotalVariance: -100, PriceVariance: -80, VolumeVariance: -20},
			{OrgID: "org2", TotalVariance: 50, PriceVariance: 60, VolumeVariance: -10}, // vượt kế hoạch → không cảnh báo
		},
	})
	require.Len(t, insights, 1)
	assert.Equal(t, InsightVarianceDriver, insights[0].Kind)
	assert.Contains(t, insights[0].Message, "giá bán")
	assert.Contains(t, insights[0].Message, "Chi nhánh Bắc")
}

func TestComputeInsights_SortedBySeverityDesc(t *testing.T) {
	insights := ComputeInsights(InsightInput{
		Concentration: &models.ConcentrationResult{HHI: 0.3, RiskTier: "high"},
		Profiles: []models.PerformanceProfile{
			{PersonID: "p1", PersonName: "An", Rank: 1, TotalScore: 88},
		},
		Migrations: []models.MigrationSummary{
			{FromMonth: "2024-01", ToMonth: "2024-02", Churned: 3, NewCustomers: 0},
		},
	})
	require.Len(t, insights, 3)
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t, insights[i-1].Severity, insights[i].Severity,
			"insight phải sort theo severity giảm dần")
	}
	assert.Equal(t, InsightConcentrationRisk, insights[0].Kind)
	assert.Equal(t, InsightTopPerformer, insights[2].Kind)
}

func TestComputeInsights_LostShareAboveThreshold(t *testing.T) {
	insights := ComputeInsights(InsightInput{
		RfmSummary: models.RfmSummary{
			Total:         10,
			SegmentCounts: map[string]int{SegmentLost: 4, SegmentLoyal: 6},
		},
	})
	require.Len(t, insights, 1)
	assert.Equal(t, InsightLostShare, insights[0].Kind)
	assert.InDelta(t, 0.4, insights[0].Value, 1e-9)
}

func TestComputeInsights_VipAtRisk(t *testing.T) {
	insights := ComputeInsights(InsightInput{
		RfmScores: []models.RfmScore{
			{CustomerID: "c1", Segment: SegmentAtRisk, MonetaryScore: 5},
			{CustomerID: "c2", Segment: SegmentAtRisk, MonetaryScore: 2}, // chưa đủ lớn
			{CustomerID: "c3", Segment: SegmentLoyal, MonetaryScore: 5},
		},
	})
	require.Len(t, insights, 1)
	assert.Equal(t, InsightVipAtRisk, insights[0].Kind)
	assert.InDelta(t, 1, insights[0].Value, 1e-9)
}
