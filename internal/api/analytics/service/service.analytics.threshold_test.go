// Package analyticsvc - Test percentile nội suy tuyến tính và ngưỡng hạng.
package analyticsvc

import (
	"math"
	"testing"

	"sales_insight/internal/api/analytics/models"
)

func TestPercentile_LinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{25, 20},
		{50, 30},
		{80, 42}, // index 3.2 → 40 + 0.2×10
		{100, 50},
	}
	for _, c := range cases {
		got := Percentile(sorted, c.p)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Percentile(%v, %.0f) = %v, muốn %v", sorted, c.p, got, c.want)
		}
	}
}

func TestPercentile_DegenerateCases(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile mảng rỗng = %v, muốn 0", got)
	}
	if got := Percentile([]float64{7}, 90); got != 7 {
		t.Errorf("Percentile 1 phần tử = %v, muốn 7", got)
	}
}

func TestComputeGradeThresholds_FiltersNonPositive(t *testing.T) {
	th := ComputeGradeThresholds([]float64{30, 10, 50, -5, 0, 20, 40})
	if math.Abs(th.High-42) > 1e-9 {
		t.Errorf("High = %v, muốn 42", th.High)
	}
	if math.Abs(th.Mid-34) > 1e-9 {
		t.Errorf("Mid = %v, muốn 34", th.Mid)
	}
	if math.Abs(th.Low-26) > 1e-9 {
		t.Errorf("Low = %v, muốn 26", th.Low)
	}
}

func TestComputeGradeThresholds_EmptySample(t *testing.T) {
	th := ComputeGradeThresholds(nil)
	if th.High != 0 || th.Mid != 0 || th.Low != 0 {
		t.Errorf("mẫu rỗng phải cho mọi ngưỡng = 0, got %+v", th)
	}
}

func TestGradeOf_Monotonic(t *testing.T) {
	th := models.GradeThresholds{High: 42, Mid: 34, Low: 26}
	cases := []struct {
		amount float64
		want   models.Grade
	}{
		{50, models.GradeA},
		{42, models.GradeA},
		{40, models.GradeB},
		{30, models.GradeC},
		{25, models.GradeD},
		{0, models.GradeN},
		{-5, models.GradeN},
	}
	prev := models.GradeA
	for _, c := range cases {
		got := GradeOf(c.amount, th)
		if got != c.want {
			t.Errorf("GradeOf(%v) = %v, muốn %v", c.amount, got, c.want)
		}
		if got > prev {
			t.Errorf("hạng phải không tăng khi doanh thu giảm: %v sau %v", got, prev)
		}
		prev = got
	}
}
