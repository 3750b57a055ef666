// Package analyticsvc - Test HHI và phân tầng rủi ro tập trung.
package analyticsvc

import (
	"math"
	"testing"
)

func TestComputeConcentration_SharesAndHHI(t *testing.T) {
	amounts := map[string]float64{"c1": 50, "c2": 30, "c3": 20}
	names := map[string]string{"c1": "Khách Một"}
	got := ComputeConcentration(amounts, names)

	if math.Abs(got.HHI-0.38) > 1e-9 {
		t.Errorf("HHI = %v, muốn 0.38", got.HHI)
	}
	if got.RiskTier != "high" {
		t.Errorf("RiskTier = %q, muốn high", got.RiskTier)
	}
	if len(got.Shares) != 3 {
		t.Fatalf("số share = %d, muốn 3", len(got.Shares))
	}
	if got.Shares[0].Key != "c1" || math.Abs(got.Shares[0].Share-0.5) > 1e-9 {
		t.Errorf("share lớn nhất = %+v, muốn c1 với share 0.5", got.Shares[0])
	}
	if got.Shares[0].Name != "Khách Một" {
		t.Errorf("thiếu tên khách: %+v", got.Shares[0])
	}
}

func TestComputeConcentration_Bounds(t *testing.T) {
	// n phần tử bằng nhau → HHI đạt cận dưới 1/n
	equal := map[string]float64{"a": 10, "b": 10, "c": 10, "d": 10}
	got := ComputeConcentration(equal, nil)
	if math.Abs(got.HHI-0.25) > 1e-9 {
		t.Errorf("4 phần tử bằng nhau: HHI = %v, muốn 0.25", got.HHI)
	}
	if got.RiskTier != "medium" {
		t.Errorf("HHI 0.25 phải là medium, got %q", got.RiskTier)
	}

	// 1 phần tử → HHI đạt cận trên 1
	single := ComputeConcentration(map[string]float64{"a": 99}, nil)
	if single.HHI != 1 {
		t.Errorf("1 phần tử: HHI = %v, muốn 1", single.HHI)
	}
	if single.RiskTier != "high" {
		t.Errorf("HHI 1 phải là high, got %q", single.RiskTier)
	}
}

func TestComputeConcentration_EmptyAndNegative(t *testing.T) {
	empty := ComputeConcentration(nil, nil)
	if empty.HHI != 0 || empty.RiskTier != "low" || len(empty.Shares) != 0 {
		t.Errorf("map rỗng phải cho HHI 0 / low, got %+v", empty)
	}

	// Giá trị <= 0 không tham gia phân phối
	mixed := ComputeConcentration(map[string]float64{"a": 100, "b": -40, "c": 0}, nil)
	if len(mixed.Shares) != 1 {
		t.Fatalf("chỉ phần tử dương được tính, got %d share", len(mixed.Shares))
	}
	if mixed.HHI != 1 {
		t.Errorf("HHI = %v, muốn 1", mixed.HHI)
	}
}
