// Package router đăng ký các route thuộc domain Analytics: các endpoint
// phân tích dẫn xuất (performance, rfm, clv, migration, concentration,
// variance, insights).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "sales_insight/internal/api/analytics/handler"
	apirouter "sales_insight/internal/api/router"
)

// Register đăng ký tất cả route analytics lên v1. Các endpoint đều là POST
// vì client gửi dataset trong body.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("create analytics handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/performance", nil, handler.HandlePerformance)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/rfm", nil, handler.HandleRfm)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/clv", nil, handler.HandleClv)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/migration", nil, handler.HandleMigration)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/concentration", nil, handler.HandleConcentration)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/variance", nil, handler.HandleVariance)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/insights", nil, handler.HandleInsights)

	return nil
}
