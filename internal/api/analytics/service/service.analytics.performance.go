// Package analyticsvc - Chấm điểm thành tích đa trục cho người bán.
package analyticsvc

import (
	"sort"

	"sales_insight/internal/api/analytics/models"
)

// Số khách tối đa trong danh sách top khách của 1 người bán.
const topCustomerLimit = 5

// PerformanceInput các mảng record đầu vào của phân tích thành tích.
// Trục công nợ (ReceivableHealth) chỉ bật khi Receivables không rỗng —
// khi đó điểm chia 5 trục × 20, ngược lại 4 trục × 25.
type PerformanceInput struct {
	Sales         []models.SaleRecord
	Orders        []models.OrderRecord
	Collections   []models.CollectionRecord
	Contributions []models.TeamContributionRecord
	Receivables   []models.ReceivableAgingRecord
}

// ComputePerformance dựng hồ sơ thành tích cho mọi người bán xuất hiện trong
// bất kỳ mảng đầu vào nào. Điểm mỗi trục chuẩn hóa theo giá trị tốt nhất của
// tập (population-relative): người tốt nhất đạt đúng AxisMax, giá trị <= 0
// nhận 0 điểm. Rank xếp theo tổng điểm giảm dần; khi bằng điểm, người xuất
// hiện trước trong input đứng trước (ordinal, không chia sẻ hạng).
func ComputePerformance(in PerformanceInput) []models.PerformanceProfile {
	order := newFirstSeenOrder()
	personNames := make(map[string]string)
	personOrgs := make(map[string]string)
	notePerson := func(id, name, org string) {
		order.add(id)
		if id == "" {
			return
		}
		if personNames[id] == "" && name != "" {
			personNames[id] = name
		}
		if personOrgs[id] == "" && org != "" {
			personOrgs[id] = org
		}
	}
	for _, r := range in.Sales {
		notePerson(r.PersonID, r.PersonName, r.OrgID)
	}
	for _, r := range in.Orders {
		notePerson(r.PersonID, r.PersonName, r.OrgID)
	}
	for _, r := range in.Collections {
		notePerson(r.PersonID, r.PersonName, r.OrgID)
	}
	for _, r := range in.Contributions {
		notePerson(r.PersonID, r.PersonName, r.OrgID)
	}
	for _, r := range in.Receivables {
		notePerson(r.PersonID, r.PersonName, r.OrgID)
	}
	if len(order.keys) == 0 {
		return []models.PerformanceProfile{}
	}

	salesByPerson := SumBy(in.Sales,
		func(r models.SaleRecord) string { return r.PersonID },
		func(r models.SaleRecord) float64 { return r.Amount })
	ordersByPerson := SumBy(in.Orders,
		func(r models.OrderRecord) string { return r.PersonID },
		func(r models.OrderRecord) float64 { return r.Amount })

	marginActual := SumBy(in.Contributions,
		func(r models.TeamContributionRecord) string { return r.PersonID },
		func(r models.TeamContributionRecord) float64 { return r.Margin.Actual })
	revenueActual := SumBy(in.Contributions,
		func(r models.TeamContributionRecord) string { return r.PersonID },
		func(r models.TeamContributionRecord) float64 { return r.Revenue.Actual })

	collectPlan := SumBy(in.Collections,
		func(r models.CollectionRecord) string { return r.PersonID },
		func(r models.CollectionRecord) float64 { return r.Amount.Plan })
	collectActual := SumBy(in.Collections,
		func(r models.CollectionRecord) string { return r.PersonID },
		func(r models.CollectionRecord) float64 { return r.Amount.Actual })

	outstanding := SumBy(in.Receivables,
		func(r models.ReceivableAgingRecord) string { return r.PersonID },
		func(r models.ReceivableAgingRecord) float64 { return r.TotalOutstanding })
	longOverdue := SumBy(in.Receivables,
		func(r models.ReceivableAgingRecord) string { return r.PersonID },
		func(r models.ReceivableAgingRecord) float64 { return r.LongOverdue })

	customerCounts := DistinctBy(in.Sales,
		func(r models.SaleRecord) string { return r.PersonID },
		func(r models.SaleRecord) string { return r.CustomerID })
	productCounts := DistinctBy(in.Sales,
		func(r models.SaleRecord) string { return r.PersonID },
		func(r models.SaleRecord) string { return r.ProductID })

	hasAging := len(in.Receivables) > 0
	axisCount := 4
	if hasAging {
		axisCount = 5
	}
	axisMax := 100.0 / float64(axisCount)

	profiles := make([]models.PerformanceProfile, 0, len(order.keys))
	for _, id := range order.keys {
		p := models.PerformanceProfile{
			PersonID:      id,
			PersonName:    personNames[id],
			OrgID:         personOrgs[id],
			SalesAmount:   salesByPerson[id],
			OrderAmount:   ordersByPerson[id],
			AxisCount:     axisCount,
			AxisMax:       axisMax,
			CustomerCount: customerCounts[id],
			ProductCount:  productCounts[id],
		}
		p.MarginRate = safeRatio(marginActual[id], revenueActual[id])
		p.CollectionRate = safeRatio(collectActual[id], collectPlan[id])
		if hasAging && outstanding[id] > 0 {
			p.ReceivableHealth = 1 - safeRatio(longOverdue[id], outstanding[id])
		}
		profiles = append(profiles, p)
	}

	// Chuẩn hóa từng trục theo giá trị tốt nhất trong tập
	maxSales := maxOf(profiles, func(p models.PerformanceProfile) float64 { return p.SalesAmount })
	maxOrders := maxOf(profiles, func(p models.PerformanceProfile) float64 { return p.OrderAmount })
	maxMargin := maxOf(profiles, func(p models.PerformanceProfile) float64 { return p.MarginRate })
	maxCollect := maxOf(profiles, func(p models.PerformanceProfile) float64 { return p.CollectionRate })
	maxHealth := maxOf(profiles, func(p models.PerformanceProfile) float64 { return p.ReceivableHealth })

	for i := range profiles {
		p := &profiles[i]
		p.SalesScore = axisScore(p.SalesAmount, maxSales, axisMax)
		p.OrderScore = axisScore(p.OrderAmount, maxOrders, axisMax)
		p.MarginScore = axisScore(p.MarginRate, maxMargin, axisMax)
		p.CollectionScore = axisScore(p.CollectionRate, maxCollect, axisMax)
		p.TotalScore = p.SalesScore + p.OrderScore + p.MarginScore + p.CollectionScore
		if hasAging {
			p.ReceivableScore = axisScore(p.ReceivableHealth, maxHealth, axisMax)
			p.TotalScore += p.ReceivableScore
		}
	}

	rankProfiles(profiles)
	attachCustomerConcentration(profiles, in.Sales)
	return profiles
}

// rankProfiles gán Rank và Percentile theo tổng điểm giảm dần.
// SliceStable giữ thứ tự input cho các profile bằng điểm.
func rankProfiles(profiles []models.PerformanceProfile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalScore > profiles[j].TotalScore
	})
	n := len(profiles)
	for i := range profiles {
		profiles[i].Rank = i + 1
		if n == 1 {
			profiles[i].Percentile = 100
			continue
		}
		profiles[i].Percentile = 100 * (1 - float64(i)/float64(n-1))
	}
}

// attachCustomerConcentration tính HHI và top khách trên phân phối doanh thu
// khách của từng người bán.
func attachCustomerConcentration(profiles []models.PerformanceProfile, sales []models.SaleRecord) {
	byPerson := make(map[string]map[string]float64)
	names := make(map[string]string)
	for _, r := range sales {
		if r.PersonID == "" || r.CustomerID == "" {
			continue
		}
		if byPerson[r.PersonID] == nil {
			byPerson[r.PersonID] = make(map[string]float64)
		}
		byPerson[r.PersonID][r.CustomerID] += r.Amount
		if names[r.CustomerID] == "" && r.CustomerName != "" {
			names[r.CustomerID] = r.CustomerName
		}
	}
	for i := range profiles {
		p := &profiles[i]
		conc := ComputeConcentration(byPerson[p.PersonID], names)
		p.HHI = conc.HHI
		p.RiskTier = conc.RiskTier
		limit := topCustomerLimit
		if limit > len(conc.Shares) {
			limit = len(conc.Shares)
		}
		for _, s := range conc.Shares[:limit] {
			p.TopCustomers = append(p.TopCustomers, models.TopCustomer{
				CustomerID:   s.Key,
				CustomerName: s.Name,
				Amount:       s.Amount,
				Share:        s.Share,
			})
		}
	}
}

// axisScore chuẩn hóa giá trị thô về thang [0, axisMax] theo max của tập.
// Giá trị <= 0 hoặc max <= 0 → 0 điểm.
func axisScore(value, max, axisMax float64) float64 {
	if value <= 0 || max <= 0 {
		return 0
	}
	return value / max * axisMax
}

// safeRatio chia có guard: mẫu <= 0 trả về 0, không bao giờ NaN/Inf.
func safeRatio(num, denom float64) float64 {
	if denom <= 0 {
		return 0
	}
	return num / denom
}

func maxOf(profiles []models.PerformanceProfile, val func(models.PerformanceProfile) float64) float64 {
	max := 0.0
	for _, p := range profiles {
		if v := val(p); v > max {
			max = v
		}
	}
	return max
}
