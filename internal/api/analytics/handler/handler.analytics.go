// Package analyticshdl - Handler các endpoint phân tích dẫn xuất.
package analyticshdl

import (
	"github.com/gofiber/fiber/v3"

	analyticsdto "sales_insight/internal/api/analytics/dto"
	"sales_insight/internal/api/analytics/models"
	analyticsvc "sales_insight/internal/api/analytics/service"
	basehdl "sales_insight/internal/api/base/handler"
	"sales_insight/internal/common"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"
)

// AnalyticsHandler xử lý các endpoint phân tích. Engine là pure function
// nên handler không giữ state — chỉ bind, validate, gọi engine, trả envelope.
type AnalyticsHandler struct{}

// NewAnalyticsHandler tạo AnalyticsHandler mới.
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	return &AnalyticsHandler{}, nil
}

// bindAndValidate bind body JSON vào input và validate theo tag.
// Trả về false nếu đã ghi response lỗi cho client.
func bindAndValidate(c fiber.Ctx, input interface{}) bool {
	if err := c.Bind().Body(input); err != nil {
		basehdl.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Dữ liệu gửi lên không đúng định dạng JSON",
			common.StatusBadRequest,
			nil,
		))
		return false
	}
	if err := global.Validate.Struct(input); err != nil {
		basehdl.HandleValidationError(c, err)
		return false
	}
	return true
}

// HandlePerformance xử lý POST /analytics/performance — chấm điểm thành tích
// đa trục cho người bán.
func (h *AnalyticsHandler) HandlePerformance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.PerformanceInput
		if !bindAndValidate(c, &input) {
			return nil
		}
		profiles := analyticsvc.ComputePerformance(analyticsvc.PerformanceInput{
			Sales:         input.Sales,
			Orders:        input.Orders,
			Collections:   input.Collections,
			Contributions: input.Contributions,
			Receivables:   input.Receivables,
		})
		logger.WithRequest(c).WithFields(map[string]interface{}{
			"persons": len(profiles),
			"sales":   len(input.Sales),
		}).Info("Tính xong bảng thành tích")
		basehdl.HandleResponse(c, fiber.Map{"profiles": profiles}, nil)
		return nil
	})
}

// HandleRfm xử lý POST /analytics/rfm — phân khúc khách theo RFM.
func (h *AnalyticsHandler) HandleRfm(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.RfmInput
		if !bindAndValidate(c, &input) {
			return nil
		}
		scores, summary := analyticsvc.ComputeRfm(input.Sales)
		basehdl.HandleResponse(c, fiber.Map{"scores": scores, "summary": summary}, nil)
		return nil
	})
}

// HandleClv xử lý POST /analytics/clv — ước lượng giá trị vòng đời khách.
func (h *AnalyticsHandler) HandleClv(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.ClvInput
		if !bindAndValidate(c, &input) {
			return nil
		}
		results, summary := analyticsvc.ComputeClv(input.Sales, input.OrgProfits)
		basehdl.HandleResponse(c, fiber.Map{"results": results, "summary": summary}, nil)
		return nil
	})
}

// HandleMigration xử lý POST /analytics/migration — matrix chuyển hạng
// giữa các tháng liên tiếp.
func (h *AnalyticsHandler) HandleMigration(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.MigrationInput
		if !bindAndValidate(c, &input) {
			return nil
		}
		result := analyticsvc.ComputeMigration(input.Sales)
		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleConcentration xử lý POST /analytics/concentration — HHI và phân phối
// share theo khách hoặc tổ chức.
func (h *AnalyticsHandler) HandleConcentration(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.ConcentrationInput
		if !bindAndValidate(c, &input) {
			return nil
		}

		keyOf := func(r models.SaleRecord) string { return r.CustomerID }
		if input.Dimension == "org" {
			keyOf = func(r models.SaleRecord) string { return r.OrgID }
		}
		amounts := analyticsvc.SumBy(input.Sales, keyOf,
			func(r models.SaleRecord) float64 { return r.Amount })
		names := make(map[string]string)
		for _, r := range input.Sales {
			k := keyOf(r)
			if k == "" || names[k] != "" {
				continue
			}
			if input.Dimension == "org" {
				names[k] = r.OrgName
			} else {
				names[k] = r.CustomerName
			}
		}
		result := analyticsvc.ComputeConcentration(amounts, names)
		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleVariance xử lý POST /analytics/variance — phân rã chênh lệch
// kế hoạch vs thực hiện thành price/volume/mix.
func (h *AnalyticsHandler) HandleVariance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.VarianceInput
		if !bindAndValidate(c, &input) {
			return nil
		}
		items, rollups := analyticsvc.ComputeVariance(input.Rows)
		basehdl.HandleResponse(c, fiber.Map{"items": items, "rollups": rollups}, nil)
		return nil
	})
}

// HandleInsights xử lý POST /analytics/insights — chạy toàn bộ phân tích
// trên dataset rồi trả về các phát hiện từ rule engine.
func (h *AnalyticsHandler) HandleInsights(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.InsightsInput
		if !bindAndValidate(c, &input) {
			return nil
		}
		insights := analyticsvc.ComputeDatasetInsights(analyticsvc.PerformanceInput{
			Sales:         input.Sales,
			Orders:        input.Orders,
			Collections:   input.Collections,
			Contributions: input.Contributions,
			Receivables:   input.Receivables,
		}, input.PlanActuals)
		basehdl.HandleResponse(c, fiber.Map{"insights": insights}, nil)
		return nil
	})
}
