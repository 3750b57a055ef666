// Package analyticsvc - Test chấm điểm thành tích đa trục.
package analyticsvc

import (
	"math"
	"testing"

	"sales_insight/internal/api/analytics/models"
)

func TestComputePerformance_ThreeRepScenario(t *testing.T) {
	in := PerformanceInput{
		Sales: []models.SaleRecord{
			{PersonID: "p1", PersonName: "An", CustomerID: "c1", Date: "2024-01-10", Amount: 100},
			{PersonID: "p2", PersonName: "Bình", CustomerID: "c2", Date: "2024-01-11", Amount: 50},
			{PersonID: "p3", PersonName: "Chi", CustomerID: "c3", Date: "2024-01-12", Amount: 25},
		},
	}
	profiles := ComputePerformance(in)
	if len(profiles) != 3 {
		t.Fatalf("số profile = %d, muốn 3", len(profiles))
	}

	// Không có dữ liệu aging → 4 trục, mỗi trục tối đa 25 điểm
	if profiles[0].AxisCount != 4 || profiles[0].AxisMax != 25 {
		t.Errorf("AxisCount/AxisMax = %d/%v, muốn 4/25", profiles[0].AxisCount, profiles[0].AxisMax)
	}

	// Người bán tốt nhất đạt đúng AxisMax trên trục doanh thu
	if profiles[0].PersonID != "p1" || math.Abs(profiles[0].SalesScore-25) > 1e-9 {
		t.Errorf("rank 1 = %s với SalesScore %v, muốn p1 với 25", profiles[0].PersonID, profiles[0].SalesScore)
	}
	if math.Abs(profiles[1].SalesScore-12.5) > 1e-9 {
		t.Errorf("SalesScore p2 = %v, muốn 12.5", profiles[1].SalesScore)
	}
	if math.Abs(profiles[2].SalesScore-6.25) > 1e-9 {
		t.Errorf("SalesScore p3 = %v, muốn 6.25", profiles[2].SalesScore)
	}

	wantPercentiles := []float64{100, 50, 0}
	for i, p := range profiles {
		if p.Rank != i+1 {
			t.Errorf("rank của %s = %d, muốn %d", p.PersonID, p.Rank, i+1)
		}
		if math.Abs(p.Percentile-wantPercentiles[i]) > 1e-9 {
			t.Errorf("percentile của %s = %v, muốn %v", p.PersonID, p.Percentile, wantPercentiles[i])
		}
	}
}

func TestComputePerformance_FiveAxisWithAging(t *testing.T) {
	in := PerformanceInput{
		Sales: []models.SaleRecord{
			{PersonID: "p1", CustomerID: "c1", Date: "2024-01-10", Amount: 100},
		},
		Receivables: []models.ReceivableAgingRecord{
			{PersonID: "p1", Date: "2024-01-31", TotalOutstanding: 200, LongOverdue: 50},
		},
	}
	profiles := ComputePerformance(in)
	if len(profiles) != 1 {
		t.Fatalf("số profile = %d, muốn 1", len(profiles))
	}
	p := profiles[0]
	if p.AxisCount != 5 || p.AxisMax != 20 {
		t.Errorf("AxisCount/AxisMax = %d/%v, muốn 5/20", p.AxisCount, p.AxisMax)
	}
	if math.Abs(p.ReceivableHealth-0.75) > 1e-9 {
		t.Errorf("ReceivableHealth = %v, muốn 0.75", p.ReceivableHealth)
	}
	if math.Abs(p.ReceivableScore-20) > 1e-9 {
		t.Errorf("ReceivableScore = %v, muốn 20 (tốt nhất tập)", p.ReceivableScore)
	}
	if p.Percentile != 100 {
		t.Errorf("N=1 phải cho percentile 100, got %v", p.Percentile)
	}
}

func TestComputePerformance_TieKeepsInputOrder(t *testing.T) {
	in := PerformanceInput{
		Sales: []models.SaleRecord{
			{PersonID: "p2", CustomerID: "c1", Date: "2024-01-10", Amount: 100},
			{PersonID: "p1", CustomerID: "c2", Date: "2024-01-11", Amount: 100},
		},
	}
	profiles := ComputePerformance(in)
	if profiles[0].PersonID != "p2" || profiles[0].Rank != 1 {
		t.Errorf("khi bằng điểm người xuất hiện trước phải đứng trước: rank 1 = %s", profiles[0].PersonID)
	}
	if profiles[1].PersonID != "p1" || profiles[1].Rank != 2 {
		t.Errorf("rank 2 = %s/%d, muốn p1/2", profiles[1].PersonID, profiles[1].Rank)
	}
}

func TestComputePerformance_RatiosGuardZeroDenominator(t *testing.T) {
	in := PerformanceInput{
		Collections: []models.CollectionRecord{
			{PersonID: "p1", Date: "2024-01-10", Amount: models.PlanActual{Plan: 0, Actual: 80}},
		},
		Contributions: []models.TeamContributionRecord{
			{PersonID: "p1", Date: "2024-01-10",
				Revenue: models.PlanActual{Actual: 0}, Margin: models.PlanActual{Actual: 30}},
		},
	}
	profiles := ComputePerformance(in)
	if len(profiles) != 1 {
		t.Fatalf("số profile = %d, muốn 1", len(profiles))
	}
	p := profiles[0]
	if p.CollectionRate != 0 || p.MarginRate != 0 {
		t.Errorf("mẫu số 0 phải cho rate 0, got collection=%v margin=%v", p.CollectionRate, p.MarginRate)
	}
	if math.IsNaN(p.TotalScore) || math.IsInf(p.TotalScore, 0) {
		t.Errorf("TotalScore không được NaN/Inf, got %v", p.TotalScore)
	}
}

func TestComputePerformance_TopCustomersAndHHI(t *testing.T) {
	in := PerformanceInput{
		Sales: []models.SaleRecord{
			{PersonID: "p1", CustomerID: "c1", CustomerName: "Khách Một", Date: "2024-01-10", Amount: 80},
			{PersonID: "p1", CustomerID: "c2", Date: "2024-01-11", Amount: 20},
		},
	}
	profiles := ComputePerformance(in)
	p := profiles[0]
	if p.CustomerCount != 2 {
		t.Errorf("CustomerCount = %d, muốn 2", p.CustomerCount)
	}
	if math.Abs(p.HHI-0.68) > 1e-9 {
		t.Errorf("HHI = %v, muốn 0.68", p.HHI)
	}
	if p.RiskTier != "high" {
		t.Errorf("RiskTier = %q, muốn high", p.RiskTier)
	}
	if len(p.TopCustomers) != 2 || p.TopCustomers[0].CustomerID != "c1" {
		t.Fatalf("TopCustomers = %+v, muốn c1 đứng đầu", p.TopCustomers)
	}
	if math.Abs(p.TopCustomers[0].Share-0.8) > 1e-9 {
		t.Errorf("share của c1 = %v, muốn 0.8", p.TopCustomers[0].Share)
	}
}
