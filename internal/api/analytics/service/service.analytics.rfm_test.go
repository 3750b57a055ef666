// Package analyticsvc - Test chấm điểm RFM và bảng quyết định segment.
package analyticsvc

import (
	"testing"

	"sales_insight/internal/api/analytics/models"
)

func TestComputeRfm_QuintileByRank(t *testing.T) {
	// 5 khách, mỗi khách 1 giao dịch cùng tháng, monetary tăng dần
	sales := []models.SaleRecord{
		{CustomerID: "c1", Date: "2024-05-01", Amount: 10},
		{CustomerID: "c2", Date: "2024-05-02", Amount: 20},
		{CustomerID: "c3", Date: "2024-05-03", Amount: 30},
		{CustomerID: "c4", Date: "2024-05-04", Amount: 40},
		{CustomerID: "c5", Date: "2024-05-05", Amount: 50},
	}
	scores, summary := ComputeRfm(sales)
	if len(scores) != 5 {
		t.Fatalf("số khách = %d, muốn 5", len(scores))
	}
	if summary.AnalysisMonth != "2024-05" {
		t.Errorf("AnalysisMonth = %q, muốn 2024-05", summary.AnalysisMonth)
	}
	for i, s := range scores {
		want := i + 1
		if s.MonetaryScore != want {
			t.Errorf("MonetaryScore của %s = %d, muốn %d", s.CustomerID, s.MonetaryScore, want)
		}
		// Cùng tháng giao dịch cuối → recency 0 cho cả tập
		if s.Recency != 0 {
			t.Errorf("Recency của %s = %d, muốn 0", s.CustomerID, s.Recency)
		}
	}
}

func TestComputeRfm_RecencyFromDatasetNow(t *testing.T) {
	sales := []models.SaleRecord{
		{CustomerID: "a", Date: "2024-05-15", Amount: 100},
		{CustomerID: "b", Date: "2024-01-15", Amount: 100},
	}
	scores, _ := ComputeRfm(sales)
	byID := map[string]models.RfmScore{}
	for _, s := range scores {
		byID[s.CustomerID] = s
	}
	if byID["a"].Recency != 0 {
		t.Errorf("recency của a = %d, muốn 0 (trùng tháng now của dataset)", byID["a"].Recency)
	}
	if byID["b"].Recency != 4 {
		t.Errorf("recency của b = %d, muốn 4", byID["b"].Recency)
	}
	if byID["a"].RecencyScore <= byID["b"].RecencyScore {
		t.Errorf("khách mới giao dịch phải có RecencyScore cao hơn: a=%d b=%d",
			byID["a"].RecencyScore, byID["b"].RecencyScore)
	}
}

func TestComputeRfm_SkipsCustomerWithoutParsableDate(t *testing.T) {
	sales := []models.SaleRecord{
		{CustomerID: "ok", Date: "2024-03-01", Amount: 50},
		{CustomerID: "bad", Date: "không rõ", Amount: 70},
	}
	scores, summary := ComputeRfm(sales)
	if len(scores) != 1 || scores[0].CustomerID != "ok" {
		t.Fatalf("khách không có ngày parse được phải bị loại, got %+v", scores)
	}
	if summary.Total != 1 {
		t.Errorf("summary.Total = %d, muốn 1", summary.Total)
	}
}

func TestComputeRfm_EqualValuesShareQuintile(t *testing.T) {
	// 4 khách cùng monetary phải nhận cùng MonetaryScore, không tách theo
	// thứ tự input; khách vượt trội vẫn nhận 5
	sales := []models.SaleRecord{
		{CustomerID: "c1", Date: "2024-05-01", Amount: 10},
		{CustomerID: "c2", Date: "2024-05-02", Amount: 10},
		{CustomerID: "c3", Date: "2024-05-03", Amount: 10},
		{CustomerID: "c4", Date: "2024-05-04", Amount: 10},
		{CustomerID: "c5", Date: "2024-05-05", Amount: 500},
	}
	scores, _ := ComputeRfm(sales)
	byID := map[string]models.RfmScore{}
	for _, s := range scores {
		byID[s.CustomerID] = s
	}
	for _, id := range []string{"c2", "c3", "c4"} {
		if byID[id].MonetaryScore != byID["c1"].MonetaryScore {
			t.Errorf("MonetaryScore của %s = %d, muốn bằng c1 (%d) vì cùng monetary",
				id, byID[id].MonetaryScore, byID["c1"].MonetaryScore)
		}
	}
	if byID["c5"].MonetaryScore != 5 {
		t.Errorf("MonetaryScore của c5 = %d, muốn 5", byID["c5"].MonetaryScore)
	}
	// Cùng tháng giao dịch cuối → recency bằng nhau → cùng RecencyScore
	for _, id := range []string{"c2", "c3", "c4", "c5"} {
		if byID[id].RecencyScore != byID["c1"].RecencyScore {
			t.Errorf("RecencyScore của %s = %d, muốn bằng c1 (%d)",
				id, byID[id].RecencyScore, byID["c1"].RecencyScore)
		}
	}
}

func TestSegmentOf_DecisionTable(t *testing.T) {
	cases := []struct {
		r, f, m int
		want    string
	}{
		{5, 5, 5, SegmentVip},
		{4, 4, 4, SegmentVip},
		{4, 4, 3, SegmentLoyal},     // thiếu M cho vip
		{3, 3, 1, SegmentLoyal},
		{5, 1, 1, SegmentPotential}, // mới quay lại, chưa đủ dày
		{2, 1, 5, SegmentAtRisk},    // khách lớn đang nguội
		{1, 2, 2, SegmentLost},
		{3, 2, 3, SegmentDormant},
	}
	for _, c := range cases {
		if got := segmentOf(c.r, c.f, c.m); got != c.want {
			t.Errorf("segmentOf(%d,%d,%d) = %q, muốn %q", c.r, c.f, c.m, got, c.want)
		}
	}
}

func TestComputeRfm_SegmentCountsSumToTotal(t *testing.T) {
	sales := []models.SaleRecord{
		{CustomerID: "c1", Date: "2024-05-01", Amount: 500},
		{CustomerID: "c1", Date: "2024-04-01", Amount: 500},
		{CustomerID: "c2", Date: "2024-01-01", Amount: 30},
		{CustomerID: "c3", Date: "2024-03-01", Amount: 90},
	}
	scores, summary := ComputeRfm(sales)
	sum := 0
	for _, n := range summary.SegmentCounts {
		sum += n
	}
	if sum != summary.Total || summary.Total != len(scores) {
		t.Errorf("tổng segment = %d, Total = %d, len = %d — phải bằng nhau", sum, summary.Total, len(scores))
	}
}
