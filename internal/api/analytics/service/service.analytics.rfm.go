// Package analyticsvc - Phân khúc khách hàng theo mô hình RFM.
package analyticsvc

import (
	"math"
	"sort"

	"sales_insight/internal/api/analytics/models"
	"sales_insight/internal/utility"
)

// Tên các segment RFM.
const (
	SegmentVip       = "vip"
	SegmentLoyal     = "loyal"
	SegmentPotential = "potential"
	SegmentAtRisk    = "at_risk"
	SegmentDormant   = "dormant"
	SegmentLost      = "lost"
)

type rfmAccumulator struct {
	customerID   string
	customerName string
	lastMonth    string
	frequency    int
	monetary     float64
	order        int
}

// ComputeRfm chấm điểm RFM cho toàn tập khách từ record doanh thu.
// "Now" là tháng giao dịch mới nhất của chính dataset, không phải wall clock —
// phân tích dữ liệu lịch sử cho cùng kết quả ở mọi thời điểm chạy.
// Khách không có giao dịch nào parse được ngày bị loại khỏi output (không có
// recency thì không chấm được); caller vẫn thấy họ ở các view tổng.
func ComputeRfm(sales []models.SaleRecord) ([]models.RfmScore, models.RfmSummary) {
	accs := make(map[string]*rfmAccumulator)
	orderSeq := 0
	for _, r := range sales {
		if r.CustomerID == "" {
			continue
		}
		acc := accs[r.CustomerID]
		if acc == nil {
			acc = &rfmAccumulator{customerID: r.CustomerID, order: orderSeq}
			orderSeq++
			accs[r.CustomerID] = acc
		}
		if acc.customerName == "" && r.CustomerName != "" {
			acc.customerName = r.CustomerName
		}
		acc.frequency++
		acc.monetary += r.Amount
		if month, ok := r.MonthKey(); ok {
			if acc.lastMonth == "" || utility.CompareMonthKey(month, acc.lastMonth) > 0 {
				acc.lastMonth = month
			}
		}
	}

	analysisMonth := ""
	eligible := make([]*rfmAccumulator, 0, len(accs))
	for _, acc := range accs {
		if acc.lastMonth == "" {
			continue
		}
		if analysisMonth == "" || utility.CompareMonthKey(acc.lastMonth, analysisMonth) > 0 {
			analysisMonth = acc.lastMonth
		}
		eligible = append(eligible, acc)
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].order < eligible[j].order })

	scores := make([]models.RfmScore, len(eligible))
	for i, acc := range eligible {
		scores[i] = models.RfmScore{
			CustomerID:   acc.customerID,
			CustomerName: acc.customerName,
			Recency:      utility.MonthsBetween(acc.lastMonth, analysisMonth),
			Frequency:    acc.frequency,
			Monetary:     acc.monetary,
		}
	}

	// Quintile theo rank trong tập: recency nhỏ (mới giao dịch) là tốt nên
	// chấm theo giá trị đảo dấu
	assignQuintiles(scores, func(s models.RfmScore) float64 { return -float64(s.Recency) },
		func(s *models.RfmScore, q int) { s.RecencyScore = q })
	assignQuintiles(scores, func(s models.RfmScore) float64 { return float64(s.Frequency) },
		func(s *models.RfmScore, q int) { s.FrequencyScore = q })
	assignQuintiles(scores, func(s models.RfmScore) float64 { return s.Monetary },
		func(s *models.RfmScore, q int) { s.MonetaryScore = q })

	summary := models.RfmSummary{
		Total:         len(scores),
		SegmentCounts: make(map[string]int),
		AnalysisMonth: analysisMonth,
	}
	for i := range scores {
		s := &scores[i]
		s.TotalScore = s.RecencyScore + s.FrequencyScore + s.MonetaryScore
		s.Segment = segmentOf(s.RecencyScore, s.FrequencyScore, s.MonetaryScore)
		summary.SegmentCounts[s.Segment]++
	}
	return scores, summary
}

// assignQuintiles chấm quintile 1–5 theo vị trí rank trong tập: 20% tốt nhất
// nhận 5. Tập nhỏ hơn 5 khách vẫn chấm được — khách tốt nhất luôn nhận 5.
// Khách bằng giá trị thô nhận cùng quintile (cả nhóm lấy quintile của vị trí
// cao nhất trong nhóm), không tách theo thứ tự input.
func assignQuintiles(scores []models.RfmScore, val func(models.RfmScore) float64, set func(*models.RfmScore, int)) {
	n := len(scores)
	if n == 0 {
		return
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return val(scores[idx[a]]) < val(scores[idx[b]])
	})
	for pos := 0; pos < n; {
		end := pos
		for end+1 < n && val(scores[idx[end+1]]) == val(scores[idx[pos]]) {
			end++
		}
		q := int(math.Ceil(5 * float64(end+1) / float64(n)))
		if q < 1 {
			q = 1
		}
		if q > 5 {
			q = 5
		}
		for i := pos; i <= end; i++ {
			set(&scores[idx[i]], q)
		}
		pos = end + 1
	}
}

// segmentOf ánh xạ bộ điểm (R,F,M) sang segment theo bảng quyết định,
// xét từ trên xuống, rule đầu tiên khớp sẽ thắng:
//
//	R>=4 && F>=4 && M>=4  → vip
//	R>=3 && F>=3          → loyal
//	R>=4                  → potential (mới quay lại, chưa đủ dày)
//	R<=2 && M>=4          → at_risk   (khách lớn đang nguội)
//	R<=2 && F<=2          → lost
//	còn lại               → dormant
func segmentOf(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentVip
	case r >= 3 && f >= 3:
		return SegmentLoyal
	case r >= 4:
		return SegmentPotential
	case r <= 2 && m >= 4:
		return SegmentAtRisk
	case r <= 2 && f <= 2:
		return SegmentLost
	default:
		return SegmentDormant
	}
}
