package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// monthKeyRegex khớp bucket tháng dạng YYYY-MM (tháng 01–12).
var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("month_key", validateMonthKey)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

// validateMonthKey kiểm tra chuỗi là bucket tháng hợp lệ (YYYY-MM).
// Dùng cho periodKey của snapshot và các tham số lọc theo tháng.
func validateMonthKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Rỗng = optional, kết hợp required khi bắt buộc
	}
	return monthKeyRegex.MatchString(value)
}

// validateNoXSS kiểm tra XSS cho các trường text tự do (tên khách, tên người).
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
