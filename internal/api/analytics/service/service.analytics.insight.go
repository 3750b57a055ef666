// Package analyticsvc - Rule engine sinh insight ngắn từ kết quả các phân tích.
package analyticsvc

import (
	"fmt"
	"math"
	"sort"

	"sales_insight/internal/api/analytics/models"
)

// Các loại insight.
const (
	InsightConcentrationRisk = "concentration_risk"
	InsightChurnSpike        = "churn_spike"
	InsightVipAtRisk         = "vip_at_risk"
	InsightLostShare         = "lost_share"
	InsightVarianceDriver    = "variance_driver"
	InsightTopPerformer      = "top_performer"
)

// Ngưỡng kích hoạt rule.
const (
	lostShareThreshold = 0.3 // Tỷ trọng khách lost đáng báo động
	vipMonetaryFloor   = 4   // MonetaryScore tối thiểu để coi là khách lớn
)

// InsightInput kết quả các phân tích thành phần — mảng nào rỗng/nil thì các
// rule đọc mảng đó không kích hoạt, không lỗi.
type InsightInput struct {
	Profiles      []models.PerformanceProfile
	RfmScores     []models.RfmScore
	RfmSummary    models.RfmSummary
	Migrations    []models.MigrationSummary
	Concentration *models.ConcentrationResult
	Variances     []models.VarianceRollup
}

// ComputeInsights chạy tuần tự các rule và trả về insight sort theo severity
// giảm dần; bằng severity thì giữ thứ tự rule. Không rule nào khớp → mảng rỗng.
func ComputeInsights(in InsightInput) []models.Insight {
	insights := []models.Insight{}
	insights = appendConcentrationInsight(insights, in.Concentration)
	insights = appendChurnInsight(insights, in.Migrations)
	insights = appendVipAtRiskInsight(insights, in.RfmScores)
	insights = appendLostShareInsight(insights, in.RfmSummary)
	insights = appendVarianceInsights(insights, in.Variances)
	insights = appendTopPerformerInsight(insights, in.Profiles)

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Severity > insights[j].Severity
	})
	return insights
}

// ComputeDatasetInsights chạy toàn bộ phân tích thành phần trên dataset rồi
// đưa kết quả qua rule engine. Dùng cho endpoint insights — client gửi 1 lần,
// không phải gọi từng phân tích rồi tự ghép.
func ComputeDatasetInsights(in PerformanceInput, planActuals []models.PlanActualRecord) []models.Insight {
	profiles := ComputePerformance(in)
	rfmScores, rfmSummary := ComputeRfm(in.Sales)
	migration := ComputeMigration(in.Sales)

	concentration := ComputeCustomerConcentration(in.Sales)

	_, rollups := ComputeVariance(planActuals)

	return ComputeInsights(InsightInput{
		Profiles:      profiles,
		RfmScores:     rfmScores,
		RfmSummary:    rfmSummary,
		Migrations:    migration.Summaries,
		Concentration: &concentration,
		Variances:     rollups,
	})
}

// appendConcentrationInsight cảnh báo khi doanh thu tập trung quá mức vào
// ít khách (HHI vượt tầng medium).
func appendConcentrationInsight(insights []models.Insight, conc *models.ConcentrationResult) []models.Insight {
	if conc == nil || conc.RiskTier == "low" {
		return insights
	}
	severity := 3
	if conc.RiskTier == "high" {
		severity = 5
	}
	top := ""
	if len(conc.Shares) > 0 {
		lead := conc.Shares[0]
		name := lead.Name
		if name == "" {
			name = lead.Key
		}
		top = fmt.Sprintf(", khách lớn nhất %s chiếm %.0f%%", name, lead.Share*100)
	}
	return append(insights, models.Insight{
		Kind:     InsightConcentrationRisk,
		Severity: severity,
		Message:  fmt.Sprintf("Doanh thu tập trung ở mức %s (HHI %.3f)%s", conc.RiskTier, conc.HHI, top),
		Value:    conc.HHI,
	})
}

// appendChurnInsight cảnh báo khi cặp tháng gần nhất mất khách nhiều hơn
// số khách mới.
func appendChurnInsight(insights []models.Insight, migrations []models.MigrationSummary) []models.Insight {
	if len(migrations) == 0 {
		return insights
	}
	last := migrations[len(migrations)-1]
	if last.Churned <= last.NewCustomers {
		return insights
	}
	return append(insights, models.Insight{
		Kind:     InsightChurnSpike,
		Severity: 4,
		Message: fmt.Sprintf("Tháng %s mất %d khách, chỉ thêm %d khách mới",
			last.ToMonth, last.Churned, last.NewCustomers),
		Value: float64(last.Churned),
	})
}

// appendVipAtRiskInsight cảnh báo khi có khách chi tiêu lớn đang nguội dần.
func appendVipAtRiskInsight(insights []models.Insight, scores []models.RfmScore) []models.Insight {
	count := 0
	for _, s := range scores {
		if s.Segment == SegmentAtRisk && s.MonetaryScore >= vipMonetaryFloor {
			count++
		}
	}
	if count == 0 {
		return insights
	}
	return append(insights, models.Insight{
		Kind:     InsightVipAtRisk,
		Severity: 4,
		Message:  fmt.Sprintf("%d khách chi tiêu lớn đang có dấu hiệu rời bỏ", count),
		Value:    float64(count),
	})
}

// appendLostShareInsight cảnh báo khi tỷ trọng khách lost vượt ngưỡng.
func appendLostShareInsight(insights []models.Insight, summary models.RfmSummary) []models.Insight {
	if summary.Total == 0 {
		return insights
	}
	share := float64(summary.SegmentCounts[SegmentLost]) / float64(summary.Total)
	if share <= lostShareThreshold {
		return insights
	}
	return append(insights, models.Insight{
		Kind:     InsightLostShare,
		Severity: 3,
		Message:  fmt.Sprintf("%.0f%% tập khách đã rời bỏ (segment lost)", share*100),
		Value:    share,
	})
}

// appendVarianceInsights chỉ ra driver chính (giá hay sản lượng) của các tổ
// chức đang hụt kế hoạch.
func appendVarianceInsights(insights []models.Insight, rollups []models.VarianceRollup) []models.Insight {
	for _, r := range rollups {
		if r.TotalVariance >= 0 {
			continue
		}
		driver := "sản lượng"
		value := r.VolumeVariance
		if math.Abs(r.PriceVariance) > math.Abs(r.VolumeVariance) {
			driver = "giá bán"
			value = r.PriceVariance
		}
		name := r.OrgName
		if name == "" {
			name = r.OrgID
		}
		insights = append(insights, models.Insight{
			Kind:     InsightVarianceDriver,
			Severity: 3,
			Message: fmt.Sprintf("%s hụt kế hoạch %.0f, nguyên nhân chính từ %s",
				name, -r.TotalVariance, driver),
			Value: value,
		})
	}
	return insights
}

// appendTopPerformerInsight ghi nhận người đứng đầu bảng xếp hạng.
func appendTopPerformerInsight(insights []models.Insight, profiles []models.PerformanceProfile) []models.Insight {
	for _, p := range profiles {
		if p.Rank != 1 {
			continue
		}
		name := p.PersonName
		if name == "" {
			name = p.PersonID
		}
		return append(insights, models.Insight{
			Kind:     InsightTopPerformer,
			Severity: 2,
			Message:  fmt.Sprintf("%s dẫn đầu bảng xếp hạng với %.1f điểm", name, p.TotalScore),
			Value:    p.TotalScore,
		})
	}
	return insights
}
