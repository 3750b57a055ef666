// Package analyticsvc - Đo tập trung doanh thu bằng chỉ số Herfindahl-Hirschman.
package analyticsvc

import (
	"sort"

	"sales_insight/internal/api/analytics/models"
)

// Ngưỡng phân tầng rủi ro tập trung trên thang HHI phân số.
const (
	hhiHighRisk   = 0.25
	hhiMediumRisk = 0.15
)

// ComputeConcentration tính HHI và phân phối share từ map doanh thu theo key
// (khách hoặc tổ chức tùy chiều phân tích). Chỉ phần tử có doanh thu dương
// tham gia phân phối; share là phân số trong [0,1] nên HHI nằm trong [1/n, 1].
// Shares trả về sort giảm dần theo doanh thu, tie-break theo key để output
// deterministic. Map rỗng hoặc toàn giá trị <= 0 → HHI = 0, tier "low".
func ComputeConcentration(amounts map[string]float64, names map[string]string) models.ConcentrationResult {
	items := make([]models.ShareItem, 0, len(amounts))
	total := 0.0
	for key, amount := range amounts {
		if amount <= 0 {
			continue
		}
		items = append(items, models.ShareItem{Key: key, Name: names[key], Amount: amount})
		total += amount
	}
	if total <= 0 {
		return models.ConcentrationResult{RiskTier: riskTierOf(0)}
	}

	hhi := 0.0
	for i := range items {
		share := items[i].Amount / total
		items[i].Share = share
		hhi += share * share
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Amount != items[j].Amount {
			return items[i].Amount > items[j].Amount
		}
		return items[i].Key < items[j].Key
	})

	return models.ConcentrationResult{
		HHI:      hhi,
		RiskTier: riskTierOf(hhi),
		Shares:   items,
	}
}

// ComputeCustomerConcentration tính tập trung doanh thu theo khách hàng trên
// toàn tập record — chiều phân tích mặc định của dashboard.
func ComputeCustomerConcentration(sales []models.SaleRecord) models.ConcentrationResult {
	amounts := SumBy(sales,
		func(r models.SaleRecord) string { return r.CustomerID },
		func(r models.SaleRecord) float64 { return r.Amount })
	names := make(map[string]string)
	for _, r := range sales {
		if r.CustomerID != "" && names[r.CustomerID] == "" {
			names[r.CustomerID] = r.CustomerName
		}
	}
	return ComputeConcentration(amounts, names)
}

// riskTierOf phân tầng rủi ro theo HHI: >0.25 high, >0.15 medium, còn lại low.
func riskTierOf(hhi float64) string {
	switch {
	case hhi > hhiHighRisk:
		return "high"
	case hhi > hhiMediumRisk:
		return "medium"
	default:
		return "low"
	}
}
