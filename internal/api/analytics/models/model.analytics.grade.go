// Package models - Grade khách hàng theo tháng (A/B/C/D/N).
package models

// Grade là hạng khách hàng trong 1 tháng, thứ tự nghiêm ngặt:
// N(0) < D(1) < C(2) < B(3) < A(4). N = không phát sinh (hoặc phát sinh âm).
type Grade int

const (
	GradeN Grade = iota // Không phát sinh
	GradeD              // Dưới ngưỡng thấp
	GradeC              // Từ ngưỡng thấp đến ngưỡng giữa
	GradeB              // Từ ngưỡng giữa đến ngưỡng cao
	GradeA              // Từ ngưỡng cao trở lên
)

// String trả về ký tự hạng dùng trong output và matrix key.
func (g Grade) String() string {
	switch g {
	case GradeA:
		return "A"
	case GradeB:
		return "B"
	case GradeC:
		return "C"
	case GradeD:
		return "D"
	default:
		return "N"
	}
}

// Active cho biết hạng có phải hạng hoạt động không (khác N).
func (g Grade) Active() bool {
	return g != GradeN
}

// GradeThresholds các ngưỡng cắt hạng, tính lại từ phân phối số dương của
// chính dataset đang lọc — không bao giờ cache giữa các lần gọi.
type GradeThresholds struct {
	High float64 `json:"high"` // Percentile cao (mặc định P80) — từ đây trở lên là A
	Mid  float64 `json:"mid"`  // Percentile giữa (mặc định P60) — từ đây là B
	Low  float64 `json:"low"`  // Percentile thấp (mặc định P40) — từ đây là C, dưới là D
}
