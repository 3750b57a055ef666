// Package analyticsvc - Matrix chuyển hạng khách hàng giữa các tháng liên tiếp.
package analyticsvc

import (
	"sort"

	"sales_insight/internal/api/analytics/models"
)

// MigrationResult kết quả phân tích chuyển hạng trên toàn dataset.
type MigrationResult struct {
	Thresholds models.GradeThresholds    `json:"thresholds"`
	Months     []string                  `json:"months"`
	Flows      []models.MigrationFlow    `json:"flows"`
	Summaries  []models.MigrationSummary `json:"summaries"`
}

// ComputeMigration dựng matrix chuyển hạng cho mọi cặp tháng liên tiếp.
// Ngưỡng hạng tính 1 lần từ phân phối doanh thu (tháng, khách) dương của
// TOÀN dataset rồi áp cho mọi tháng — hạng các tháng so sánh được với nhau.
// Tháng không phát sinh (hoặc net âm) là hạng N; cặp N→N không sinh ô nào.
// Khách chỉ có record không parse được ngày không xuất hiện trong matrix.
func ComputeMigration(sales []models.SaleRecord) MigrationResult {
	byCustomer := monthlyNetByCustomer(sales)
	months := sortedMonths(byCustomer)

	samples := make([]float64, 0, len(byCustomer)*4)
	for _, perMonth := range byCustomer {
		for _, amount := range perMonth {
			samples = append(samples, amount)
		}
	}
	thresholds := ComputeGradeThresholds(samples)

	customers := make([]string, 0, len(byCustomer))
	for id := range byCustomer {
		customers = append(customers, id)
	}
	sort.Strings(customers)

	result := MigrationResult{
		Thresholds: thresholds,
		Months:     months,
		Flows:      make([]models.MigrationFlow, 0, len(months)),
		Summaries:  make([]models.MigrationSummary, 0, len(months)),
	}
	for i := 1; i < len(months); i++ {
		fromMonth, toMonth := months[i-1], months[i]
		flow, summary := migrationPair(byCustomer, customers, thresholds, fromMonth, toMonth)
		result.Flows = append(result.Flows, flow)
		result.Summaries = append(result.Summaries, summary)
	}
	return result
}

// migrationPair phân loại toàn bộ khách cho 1 cặp tháng liên tiếp.
// Bất biến bảo toàn: mỗi khách active ở ít nhất 1 trong 2 tháng rơi vào đúng
// 1 trong 5 nhóm (upgraded/maintained/downgraded/churned/new).
func migrationPair(byCustomer map[string]map[string]float64, customers []string, th models.GradeThresholds, fromMonth, toMonth string) (models.MigrationFlow, models.MigrationSummary) {
	cells := make(map[[2]models.Grade][]string)
	summary := models.MigrationSummary{FromMonth: fromMonth, ToMonth: toMonth}

	for _, id := range customers {
		from := GradeOf(byCustomer[id][fromMonth], th)
		to := GradeOf(byCustomer[id][toMonth], th)
		if !from.Active() && !to.Active() {
			continue
		}
		cells[[2]models.Grade{from, to}] = append(cells[[2]models.Grade{from, to}], id)

		switch {
		case !from.Active():
			summary.NewCustomers++
		case !to.Active():
			summary.Churned++
		case to > from:
			summary.Upgraded++
		case to < from:
			summary.Downgraded++
		default:
			summary.Maintained++
		}
		if to.Active() {
			summary.TotalActive++
		}
	}

	flow := models.MigrationFlow{FromMonth: fromMonth, ToMonth: toMonth}
	// Duyệt ô theo thứ tự hạng giảm dần để output ổn định
	grades := []models.Grade{models.GradeA, models.GradeB, models.GradeC, models.GradeD, models.GradeN}
	for _, from := range grades {
		for _, to := range grades {
			ids := cells[[2]models.Grade{from, to}]
			if len(ids) == 0 {
				continue
			}
			flow.Flows = append(flow.Flows, models.GradeFlow{
				From:      from.String(),
				To:        to.String(),
				Count:     len(ids),
				Customers: ids,
			})
		}
	}
	return flow, summary
}
