// Package reporthdl - Handler cho Analytics Snapshot.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticsvc "sales_insight/internal/api/analytics/service"
	basehdl "sales_insight/internal/api/base/handler"
	"sales_insight/internal/api/middleware"
	reportdto "sales_insight/internal/api/report/dto"
	reportsvc "sales_insight/internal/api/report/service"
	"sales_insight/internal/common"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"
)

// AnalyticsSnapshotHandler xử lý tính-và-lưu và liệt kê snapshot kết quả phân tích.
type AnalyticsSnapshotHandler struct {
	SnapshotService *reportsvc.AnalyticsSnapshotService
}

// NewAnalyticsSnapshotHandler tạo AnalyticsSnapshotHandler mới.
func NewAnalyticsSnapshotHandler() (*AnalyticsSnapshotHandler, error) {
	svc, err := reportsvc.NewAnalyticsSnapshotService()
	if err != nil {
		return nil, fmt.Errorf("tạo AnalyticsSnapshotService: %w", err)
	}
	return &AnalyticsSnapshotHandler{SnapshotService: svc}, nil
}

// resolveOrgID lấy ownerOrganizationId từ input, rơi về org context từ header.
func resolveOrgID(c fiber.Ctx, fromInput string) string {
	if fromInput != "" {
		return fromInput
	}
	return middleware.GetActiveOrganizationID(c)
}

// computePayload chạy phân tích analysisKey trên dataset và trả về document
// kết quả để lưu. analysisKey đã qua validate oneof nên default không xảy ra.
func computePayload(input *reportdto.SnapshotComputeInput) map[string]interface{} {
	perfInput := analyticsvc.PerformanceInput{
		Sales:         input.Sales,
		Orders:        input.Orders,
		Collections:   input.Collections,
		Contributions: input.Contributions,
		Receivables:   input.Receivables,
	}

	switch input.AnalysisKey {
	case "performance":
		return map[string]interface{}{"profiles": analyticsvc.ComputePerformance(perfInput)}
	case "rfm":
		scores, summary := analyticsvc.ComputeRfm(input.Sales)
		return map[string]interface{}{"scores": scores, "summary": summary}
	case "clv":
		results, summary := analyticsvc.ComputeClv(input.Sales, input.OrgProfits)
		return map[string]interface{}{"results": results, "summary": summary}
	case "migration":
		result := analyticsvc.ComputeMigration(input.Sales)
		return map[string]interface{}{
			"thresholds": result.Thresholds,
			"months":     result.Months,
			"flows":      result.Flows,
			"summaries":  result.Summaries,
		}
	case "concentration":
		return map[string]interface{}{"result": analyticsvc.ComputeCustomerConcentration(input.Sales)}
	case "variance":
		items, rollups := analyticsvc.ComputeVariance(input.PlanActuals)
		return map[string]interface{}{"items": items, "rollups": rollups}
	case "insights":
		return map[string]interface{}{"insights": analyticsvc.ComputeDatasetInsights(perfInput, input.PlanActuals)}
	default:
		return nil
	}
}

// HandleComputeSnapshot xử lý POST /analytics-snapshot/compute — chạy phân tích
// trên dataset gửi kèm rồi upsert kết quả theo bộ (analysisKey, periodKey,
// ownerOrganizationId).
func (h *AnalyticsSnapshotHandler) HandleComputeSnapshot(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reportdto.SnapshotComputeInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Dữ liệu gửi lên không đúng định dạng JSON",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleValidationError(c, err)
			return nil
		}
		orgID := resolveOrgID(c, input.OwnerOrganizationID)
		if orgID == "" {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Vui lòng cung cấp ownerOrganizationId hoặc header X-Organization-Id",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		payload := computePayload(&input)
		snapshot, err := h.SnapshotService.UpsertSnapshot(c.Context(), input.AnalysisKey, input.PeriodKey, orgID, payload)
		if err == nil {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"analysisKey": input.AnalysisKey,
				"periodKey":   input.PeriodKey,
				"orgId":       orgID,
			}).Info("Đã tính và lưu snapshot")
		}
		basehdl.HandleResponse(c, snapshot, err)
		return nil
	})
}

// HandleListSnapshots xử lý GET /analytics-snapshot/list — liệt kê snapshot
// theo analysisKey/periodKey/ownerOrganizationId, mới nhất trước.
func (h *AnalyticsSnapshotHandler) HandleListSnapshots(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reportdto.SnapshotListInput
		if err := c.Bind().Query(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Query string không hợp lệ",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleValidationError(c, err)
			return nil
		}
		orgID := resolveOrgID(c, input.OwnerOrganizationID)
		snapshots, err := h.SnapshotService.ListSnapshots(c.Context(), input.AnalysisKey, input.PeriodKey, orgID, input.Limit)
		basehdl.HandleResponse(c, fiber.Map{"snapshots": snapshots, "count": len(snapshots)}, err)
		return nil
	})
}

// HandlePersistenceDisabled trả về 503 cho các route snapshot khi app chạy
// không có MongoDB (engine phân tích vẫn hoạt động bình thường).
func HandlePersistenceDisabled(c fiber.Ctx) error {
	basehdl.HandleResponse(c, nil, common.NewError(
		common.ErrCodeBusinessOperation,
		"Subsystem snapshot đang tắt — cấu hình MONGODB_CONNECTION_URI để bật",
		common.StatusServiceUnavailable,
		nil,
	))
	return nil
}
