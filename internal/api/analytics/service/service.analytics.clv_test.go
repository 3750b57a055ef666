// Package analyticsvc - Test ước lượng CLV.
package analyticsvc

import (
	"math"
	"testing"

	"sales_insight/internal/api/analytics/models"
)

func TestComputeClv_FullFormula(t *testing.T) {
	sales := []models.SaleRecord{
		{CustomerID: "c1", OrgID: "org1", Date: "2024-01-10", Amount: 100},
		{CustomerID: "c1", OrgID: "org1", Date: "2024-02-10", Amount: 100},
		{CustomerID: "c1", OrgID: "org1", Date: "2024-03-10", Amount: 100},
	}
	profits := []models.OrgProfitRecord{
		{OrgID: "org1", Date: "2024-03-31",
			Revenue:         models.PlanActual{Actual: 1000},
			OperatingProfit: models.PlanActual{Actual: 200}},
	}
	results, summary := ComputeClv(sales, profits)
	if len(results) != 1 {
		t.Fatalf("số kết quả = %d, muốn 1", len(results))
	}
	r := results[0]
	if math.Abs(r.AvgTransaction-100) > 1e-9 {
		t.Errorf("AvgTransaction = %v, muốn 100", r.AvgTransaction)
	}
	// 3 giao dịch trong 3 tháng hoạt động → 12 giao dịch/năm
	if math.Abs(r.AnnualFrequency-12) > 1e-9 {
		t.Errorf("AnnualFrequency = %v, muốn 12", r.AnnualFrequency)
	}
	if math.Abs(r.MarginRate-0.2) > 1e-9 {
		t.Errorf("MarginRate = %v, muốn 0.2 (từ P&L org1)", r.MarginRate)
	}
	// 100 × 12 × 0.2 × 3 năm
	if math.Abs(r.Clv-720) > 1e-9 {
		t.Errorf("Clv = %v, muốn 720", r.Clv)
	}
	if math.Abs(summary.TotalClv-720) > 1e-9 || summary.Count != 1 {
		t.Errorf("summary = %+v, muốn count 1 / total 720", summary)
	}
}

func TestComputeClv_SkipsSingleTransactionCustomer(t *testing.T) {
	sales := []models.SaleRecord{
		{CustomerID: "mới", OrgID: "org1", Date: "2024-01-10", Amount: 999},
		{CustomerID: "quen", OrgID: "org1", Date: "2024-01-10", Amount: 100},
		{CustomerID: "quen", OrgID: "org1", Date: "2024-02-10", Amount: 100},
	}
	results, _ := ComputeClv(sales, nil)
	if len(results) != 1 || results[0].CustomerID != "quen" {
		t.Fatalf("khách 1 giao dịch phải bị loại khỏi output, got %+v", results)
	}
}

func TestComputeClv_FallbackMarginWhenNoOrgProfit(t *testing.T) {
	sales := []models.SaleRecord{
		{CustomerID: "c1", OrgID: "org-lạ", Date: "2024-01-10", Amount: 100},
		{CustomerID: "c1", OrgID: "org-lạ", Date: "2024-02-10", Amount: 100},
	}
	results, _ := ComputeClv(sales, nil)
	if len(results) != 1 {
		t.Fatalf("số kết quả = %d, muốn 1", len(results))
	}
	if math.Abs(results[0].MarginRate-0.15) > 1e-9 {
		t.Errorf("MarginRate = %v, muốn fallback 0.15", results[0].MarginRate)
	}
}

func TestComputeClv_IgnoresOrgWithNonPositiveRevenue(t *testing.T) {
	sales := []models.SaleRecord{
		{CustomerID: "c1", OrgID: "org1", Date: "2024-01-10", Amount: 100},
		{CustomerID: "c1", OrgID: "org1", Date: "2024-02-10", Amount: 100},
	}
	profits := []models.OrgProfitRecord{
		{OrgID: "org1", Date: "2024-02-28",
			Revenue:         models.PlanActual{Actual: 0},
			OperatingProfit: models.PlanActual{Actual: 50}},
	}
	results, _ := ComputeClv(sales, profits)
	if math.Abs(results[0].MarginRate-0.15) > 1e-9 {
		t.Errorf("doanh thu P&L = 0 phải rơi về fallback, got %v", results[0].MarginRate)
	}
}
