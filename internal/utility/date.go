// Package utility chứa các helper dùng chung, không phụ thuộc domain.
package utility

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ngày gốc của serial number kiểu spreadsheet (Excel dùng 1899-12-30
// để bù lỗi năm nhuận 1900 có sẵn trong format).
var spreadsheetEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// Khoảng serial chấp nhận: 1950-01-01 (18264) đến 2100-01-01 (73051).
// Ngoài khoảng này coi như không phải serial ngày tháng.
const (
	serialMin = 18264
	serialMax = 73051
)

// MonthKey chuẩn hóa một giá trị ngày tháng bất kỳ từ ERP export về bucket
// "YYYY-MM". Hỗ trợ các format thực tế gặp trong dữ liệu nguồn:
//
//	ISO:          2024-03-15, 2024-03-15T10:30:00, 2024-03
//	Slash:        2024/03/15, 2024/3/5, 2024/03
//	Compact:      20240315
//	Serial:       45123, 45123.5 (serial number kiểu spreadsheet)
//
// Trả về ("", false) khi không parse được — caller loại record khỏi các
// aggregation theo tháng nhưng vẫn tính vào tổng không theo thời gian.
func MonthKey(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	// ISO có phần time: cắt trước khi parse
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}

	// Dạng có dấu phân cách: YYYY-MM[-DD] hoặc YYYY/MM[/DD]
	if strings.ContainsAny(s, "-/") {
		return monthKeyFromDelimited(s)
	}

	// Chuỗi thuần số: compact YYYYMMDD hoặc serial spreadsheet
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return monthKeyFromNumeric(f, s)
	}

	return "", false
}

// monthKeyFromDelimited xử lý dạng YYYY-MM-DD, YYYY/MM/DD và biến thể
// thiếu ngày, tháng 1 chữ số.
func monthKeyFromDelimited(s string) (string, bool) {
	sep := "-"
	if strings.Contains(s, "/") {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) < 2 {
		return "", false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1900 || year > 2200 {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	// Ngày (nếu có) chỉ cần hợp lệ về số, không tham gia bucket
	if len(parts) >= 3 {
		day, err := strconv.Atoi(parts[2])
		if err != nil || day < 1 || day > 31 {
			return "", false
		}
	}
	return fmt.Sprintf("%04d-%02d", year, month), true
}

// monthKeyFromNumeric xử lý chuỗi thuần số: 8 chữ số = compact YYYYMMDD,
// còn lại thử serial spreadsheet trong khoảng hợp lệ.
func monthKeyFromNumeric(f float64, s string) (string, bool) {
	if len(s) == 8 && !strings.Contains(s, ".") {
		t, err := time.Parse("20060102", s)
		if err != nil {
			return "", false
		}
		return t.Format("2006-01"), true
	}

	if f >= serialMin && f <= serialMax {
		days := int(f)
		t := spreadsheetEpoch.AddDate(0, 0, days)
		return t.Format("2006-01"), true
	}

	return "", false
}

// CompareMonthKey so sánh 2 bucket tháng "YYYY-MM" theo thứ tự thời gian.
// Trả về -1/0/1. Format cố định nên so sánh chuỗi là đủ.
func CompareMonthKey(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MonthsBetween trả về số tháng từ bucket a đến bucket b (b sau a cho kết quả dương).
// Trả về 0 nếu một trong hai bucket không hợp lệ.
func MonthsBetween(a, b string) int {
	ay, am, ok := splitMonthKey(a)
	if !ok {
		return 0
	}
	by, bm, ok := splitMonthKey(b)
	if !ok {
		return 0
	}
	return (by-ay)*12 + (bm - am)
}

func splitMonthKey(key string) (year, month int, ok bool) {
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
