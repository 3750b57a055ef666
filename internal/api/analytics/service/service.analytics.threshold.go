// Package analyticsvc - Dynamic threshold calculator.
// Ngưỡng cắt hạng tính từ phân phối số dương của chính dataset đang lọc,
// không dùng cutoff cố định — dataset khác thì ngưỡng khác.
package analyticsvc

import (
	"math"
	"sort"

	"sales_insight/internal/api/analytics/models"
)

// Percentile mặc định cho 3 ngưỡng hạng.
const (
	gradePercentileHigh = 80.0
	gradePercentileMid  = 60.0
	gradePercentileLow  = 40.0
)

// Percentile tính percentile p (0–100) trên mảng ĐÃ SORT TĂNG DẦN,
// nội suy tuyến tính giữa 2 order statistic kề nhau:
// index = p/100 × (n−1), kết quả nội suy theo phần thập phân của index.
// Mảng rỗng → 0; 1 phần tử → chính phần tử đó với mọi p.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	index := p / 100 * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}
	frac := index - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// positiveSorted lọc giá trị dương và sort tăng dần — phân phối đầu vào
// của mọi threshold tính hạng.
func positiveSorted(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// ComputeGradeThresholds tính 3 ngưỡng cắt hạng (P80/P60/P40) từ mẫu
// doanh thu theo (tháng, khách). Mẫu rỗng → mọi ngưỡng = 0.
func ComputeGradeThresholds(samples []float64) models.GradeThresholds {
	sorted := positiveSorted(samples)
	return models.GradeThresholds{
		High: Percentile(sorted, gradePercentileHigh),
		Mid:  Percentile(sorted, gradePercentileMid),
		Low:  Percentile(sorted, gradePercentileLow),
	}
}

// GradeOf xếp hạng 1 giá trị doanh thu tháng theo ngưỡng đã tính.
// Giá trị <= 0 (không phát sinh hoặc trả hàng ròng) luôn là N.
func GradeOf(amount float64, th models.GradeThresholds) models.Grade {
	if amount <= 0 {
		return models.GradeN
	}
	if amount >= th.High {
		return models.GradeA
	}
	if amount >= th.Mid {
		return models.GradeB
	}
	if amount >= th.Low {
		return models.GradeC
	}
	return models.GradeD
}
