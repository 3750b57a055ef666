// Package utility - Test chuẩn hóa ngày tháng về bucket "YYYY-MM".
package utility

import "testing"

func TestMonthKey_SupportedFormats(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2024-03-15", "2024-03"},
		{"2024-03-15T10:30:00", "2024-03"},
		{"2024-03-15 10:30:00", "2024-03"},
		{"2024-03", "2024-03"},
		{"2024/03/15", "2024-03"},
		{"2024/3/5", "2024-03"},
		{"2024/12", "2024-12"},
		{"20240315", "2024-03"},
		{"45123", "2023-07"},   // serial spreadsheet
		{"45123.5", "2023-07"}, // serial có phần giờ
		{" 2024-03-15 ", "2024-03"},
	}
	for _, c := range cases {
		got, ok := MonthKey(c.raw)
		if !ok {
			t.Errorf("MonthKey(%q) không parse được, muốn %q", c.raw, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("MonthKey(%q) = %q, muốn %q", c.raw, got, c.want)
		}
	}
}

func TestMonthKey_RejectsInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"không rõ",
		"2024-13-01", // tháng 13
		"2024-00-01",
		"2024-02-32", // ngày 32
		"1899-05-01", // trước khoảng năm chấp nhận
		"100",        // serial ngoài khoảng 1950–2100
		"99999",
		"2024",
	}
	for _, c := range cases {
		if got, ok := MonthKey(c); ok {
			t.Errorf("MonthKey(%q) = %q, muốn không parse được", c, got)
		}
	}
}

func TestCompareMonthKey(t *testing.T) {
	if CompareMonthKey("2024-01", "2024-02") != -1 {
		t.Error("2024-01 phải nhỏ hơn 2024-02")
	}
	if CompareMonthKey("2024-12", "2024-02") != 1 {
		t.Error("2024-12 phải lớn hơn 2024-02")
	}
	if CompareMonthKey("2024-05", "2024-05") != 0 {
		t.Error("bucket trùng nhau phải bằng nhau")
	}
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024-01", "2024-05", 4},
		{"2023-11", "2024-02", 3},
		{"2024-05", "2024-01", -4},
		{"2024-05", "2024-05", 0},
		{"xxx", "2024-05", 0},
	}
	for _, c := range cases {
		if got := MonthsBetween(c.a, c.b); got != c.want {
			t.Errorf("MonthsBetween(%q, %q) = %d, muốn %d", c.a, c.b, got, c.want)
		}
	}
}
