// Package analyticsvc - Engine phân tích dẫn xuất cho dashboard thành tích bán hàng.
//
// Toàn bộ hàm trong package là pure function: nhận mảng record đã lọc,
// trả về entity dẫn xuất, không I/O, không giữ state giữa các lần gọi.
// Mọi ngưỡng percentile tính lại từ chính dataset của lần gọi đó
// (dataset-relative) — không memoize, 2 phân tích song song với filter
// khác nhau không được can thiệp lẫn nhau.
package analyticsvc

import (
	"sort"

	"sales_insight/internal/api/analytics/models"
)

// SumBy gom nhóm và cộng dồn 1 lượt qua hash map — single pass, không quét
// lại mảng theo từng nhóm (dataset có thể hàng trăm nghìn dòng).
func SumBy[T any](rows []T, key func(T) string, val func(T) float64) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range rows {
		k := key(r)
		if k == "" {
			continue
		}
		out[k] += val(r)
	}
	return out
}

// CountBy đếm số record theo key, single pass.
func CountBy[T any](rows []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, r := range rows {
		k := key(r)
		if k == "" {
			continue
		}
		out[k]++
	}
	return out
}

// DistinctBy đếm số giá trị phân biệt của sub-key trong từng nhóm key.
// Vd: số sản phẩm phân biệt theo từng người bán.
func DistinctBy[T any](rows []T, key func(T) string, sub func(T) string) map[string]int {
	seen := make(map[string]map[string]struct{})
	for _, r := range rows {
		k := key(r)
		s := sub(r)
		if k == "" || s == "" {
			continue
		}
		if seen[k] == nil {
			seen[k] = make(map[string]struct{})
		}
		seen[k][s] = struct{}{}
	}
	out := make(map[string]int, len(seen))
	for k, set := range seen {
		out[k] = len(set)
	}
	return out
}

// monthlyNetByCustomer gom doanh thu net theo (khách, tháng) từ record bán hàng.
// Record không parse được ngày bị loại khỏi bucket tháng (chỉ khỏi view theo
// thời gian — các tổng không theo thời gian vẫn dùng SumBy trực tiếp).
func monthlyNetByCustomer(sales []models.SaleRecord) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, r := range sales {
		if r.CustomerID == "" {
			continue
		}
		month, ok := r.MonthKey()
		if !ok {
			continue
		}
		if out[r.CustomerID] == nil {
			out[r.CustomerID] = make(map[string]float64)
		}
		out[r.CustomerID][month] += r.Amount
	}
	return out
}

// sortedMonths trả về danh sách tháng phân biệt, tăng dần theo thời gian.
// Bucket "YYYY-MM" có format cố định nên sort chuỗi là đúng thứ tự thời gian.
func sortedMonths(byCustomer map[string]map[string]float64) []string {
	set := make(map[string]struct{})
	for _, months := range byCustomer {
		for m := range months {
			set[m] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// firstSeenOrder trả về danh sách key theo thứ tự xuất hiện đầu tiên —
// dùng làm thứ tự canonical khi output cần deterministic theo input.
type firstSeenOrder struct {
	keys []string
	seen map[string]struct{}
}

func newFirstSeenOrder() *firstSeenOrder {
	return &firstSeenOrder{seen: make(map[string]struct{})}
}

func (f *firstSeenOrder) add(key string) {
	if key == "" {
		return
	}
	if _, ok := f.seen[key]; ok {
		return
	}
	f.seen[key] = struct{}{}
	f.keys = append(f.keys, key)
}
