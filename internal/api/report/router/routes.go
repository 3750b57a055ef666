// Package router đăng ký các route thuộc domain Report: lưu và liệt kê
// snapshot kết quả phân tích.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"sales_insight/internal/api/middleware"
	reporthdl "sales_insight/internal/api/report/handler"
	apirouter "sales_insight/internal/api/router"
	"sales_insight/internal/global"
)

// Register đăng ký các route snapshot lên v1. Khi persistence tắt, route vẫn
// tồn tại nhưng trả 503 để client phân biệt được "tắt" với "không có".
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orgContextMiddleware := middleware.OrganizationContextMiddleware()

	if !global.PersistenceEnabled() {
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics-snapshot", "POST", "/compute", nil, reporthdl.HandlePersistenceDisabled)
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics-snapshot", "GET", "/list", nil, reporthdl.HandlePersistenceDisabled)
		return nil
	}

	snapshotHandler, err := reporthdl.NewAnalyticsSnapshotHandler()
	if err != nil {
		return fmt.Errorf("create analytics snapshot handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics-snapshot", "POST", "/compute", []fiber.Handler{orgContextMiddleware}, snapshotHandler.HandleComputeSnapshot)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics-snapshot", "GET", "/list", []fiber.Handler{orgContextMiddleware}, snapshotHandler.HandleListSnapshots)

	return nil
}
