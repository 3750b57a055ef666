// Package analyticsvc - Ước lượng giá trị vòng đời khách hàng (CLV).
package analyticsvc

import (
	"sort"

	"sales_insight/internal/api/analytics/models"
	"sales_insight/internal/utility"
)

// Hằng số policy của mô hình CLV.
const (
	clvExpectedYears   = 3.0  // Số năm vòng đời kỳ vọng
	clvFallbackMargin  = 0.15 // Margin rate khi tổ chức không có P&L
	clvMinTransactions = 2    // Dưới ngưỡng này không ước lượng được tần suất
	monthsPerYear      = 12.0
)

type clvAccumulator struct {
	customerID   string
	customerName string
	orgID        string
	count        int
	total        float64
	firstMonth   string
	lastMonth    string
	order        int
}

// ComputeClv ước lượng CLV từng khách:
//
//	CLV = giá trị giao dịch TB × tần suất quy năm × margin rate × số năm kỳ vọng
//
// Tần suất quy năm = số giao dịch × 12 / số tháng hoạt động (từ tháng đầu đến
// tháng cuối, tối thiểu 1). Margin rate lấy từ P&L của tổ chức gắn với khách;
// tổ chức không có P&L dùng fallback 0.15. Khách dưới 2 giao dịch hoặc không
// có giao dịch nào parse được ngày bị loại khỏi output.
func ComputeClv(sales []models.SaleRecord, profits []models.OrgProfitRecord) ([]models.ClvResult, models.ClvSummary) {
	marginByOrg := orgMarginRates(profits)

	accs := make(map[string]*clvAccumulator)
	orderSeq := 0
	for _, r := range sales {
		if r.CustomerID == "" {
			continue
		}
		acc := accs[r.CustomerID]
		if acc == nil {
			acc = &clvAccumulator{customerID: r.CustomerID, order: orderSeq}
			orderSeq++
			accs[r.CustomerID] = acc
		}
		if acc.customerName == "" && r.CustomerName != "" {
			acc.customerName = r.CustomerName
		}
		if acc.orgID == "" && r.OrgID != "" {
			acc.orgID = r.OrgID
		}
		acc.count++
		acc.total += r.Amount
		if month, ok := r.MonthKey(); ok {
			if acc.firstMonth == "" || utility.CompareMonthKey(month, acc.firstMonth) < 0 {
				acc.firstMonth = month
			}
			if acc.lastMonth == "" || utility.CompareMonthKey(month, acc.lastMonth) > 0 {
				acc.lastMonth = month
			}
		}
	}

	eligible := make([]*clvAccumulator, 0, len(accs))
	for _, acc := range accs {
		if acc.count < clvMinTransactions || acc.firstMonth == "" {
			continue
		}
		eligible = append(eligible, acc)
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].order < eligible[j].order })

	results := make([]models.ClvResult, 0, len(eligible))
	summary := models.ClvSummary{}
	for _, acc := range eligible {
		activeMonths := utility.MonthsBetween(acc.firstMonth, acc.lastMonth) + 1
		if activeMonths < 1 {
			activeMonths = 1
		}
		margin, ok := marginByOrg[acc.orgID]
		if !ok {
			margin = clvFallbackMargin
		}
		avgTxn := acc.total / float64(acc.count)
		annualFreq := float64(acc.count) * monthsPerYear / float64(activeMonths)
		clv := avgTxn * annualFreq * margin * clvExpectedYears
		results = append(results, models.ClvResult{
			CustomerID:       acc.customerID,
			CustomerName:     acc.customerName,
			AvgTransaction:   avgTxn,
			AnnualFrequency:  annualFreq,
			MarginRate:       margin,
			ExpectedYears:    clvExpectedYears,
			Clv:              clv,
			TransactionCount: acc.count,
		})
		summary.TotalClv += clv
	}
	summary.Count = len(results)
	if summary.Count > 0 {
		summary.AvgClv = summary.TotalClv / float64(summary.Count)
	}
	return results, summary
}

// orgMarginRates tính margin rate thực hiện của từng tổ chức từ P&L:
// Σ lợi nhuận hoạt động / Σ doanh thu. Tổ chức có doanh thu <= 0 bị bỏ qua
// (caller rơi về fallback).
func orgMarginRates(profits []models.OrgProfitRecord) map[string]float64 {
	profit := SumBy(profits,
		func(r models.OrgProfitRecord) string { return r.OrgID },
		func(r models.OrgProfitRecord) float64 { return r.OperatingProfit.Actual })
	revenue := SumBy(profits,
		func(r models.OrgProfitRecord) string { return r.OrgID },
		func(r models.OrgProfitRecord) float64 { return r.Revenue.Actual })

	out := make(map[string]float64, len(profit))
	for org, rev := range revenue {
		if rev <= 0 {
			continue
		}
		out[org] = profit[org] / rev
	}
	return out
}
