// Package middleware chứa các middleware dùng chung của HTTP layer.
package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// Key lưu tổ chức đang thao tác trong fiber locals.
const OrganizationIDKey = "activeOrganizationId"

// OrganizationContextMiddleware đọc tổ chức đang thao tác từ header
// X-Organization-Id và lưu vào locals cho các handler phía sau.
// Header rỗng không phải lỗi — các route snapshot sẽ tự validate khi
// thao tác cần ownerOrganizationId.
func OrganizationContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if orgID := c.Get("X-Organization-Id"); orgID != "" {
			c.Locals(OrganizationIDKey, orgID)
		}
		return c.Next()
	}
}

// GetActiveOrganizationID lấy tổ chức đang thao tác từ locals, rỗng nếu chưa set.
func GetActiveOrganizationID(c fiber.Ctx) string {
	if v, ok := c.Locals(OrganizationIDKey).(string); ok {
		return v
	}
	return ""
}
