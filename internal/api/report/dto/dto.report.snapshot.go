// Package dto - Input các endpoint Analytics Snapshot.
package dto

import (
	"sales_insight/internal/api/analytics/models"
)

// SnapshotComputeInput input tính và lưu 1 snapshot: chạy phân tích analysisKey
// trên dataset gửi kèm rồi upsert kết quả theo bộ (analysisKey, periodKey,
// ownerOrganizationId). Mảng nào phân tích không dùng đến thì bỏ trống.
type SnapshotComputeInput struct {
	AnalysisKey         string `json:"analysisKey" validate:"required,oneof=performance rfm clv migration concentration variance insights"`
	PeriodKey           string `json:"periodKey" validate:"required,month_key"`
	OwnerOrganizationID string `json:"ownerOrganizationId" validate:"omitempty,no_xss"`

	Sales         []models.SaleRecord             `json:"sales" validate:"omitempty,dive"`
	Orders        []models.OrderRecord            `json:"orders" validate:"omitempty,dive"`
	Collections   []models.CollectionRecord       `json:"collections" validate:"omitempty,dive"`
	Contributions []models.TeamContributionRecord `json:"contributions" validate:"omitempty,dive"`
	Receivables   []models.ReceivableAgingRecord  `json:"receivables" validate:"omitempty,dive"`
	OrgProfits    []models.OrgProfitRecord        `json:"orgProfits" validate:"omitempty,dive"`
	PlanActuals   []models.PlanActualRecord       `json:"planActuals" validate:"omitempty,dive"`
}

// SnapshotListInput input liệt kê snapshot (bind từ query string).
type SnapshotListInput struct {
	AnalysisKey         string `query:"analysisKey" validate:"omitempty,oneof=performance rfm clv migration concentration variance insights"`
	PeriodKey           string `query:"periodKey" validate:"omitempty,month_key"`
	OwnerOrganizationID string `query:"ownerOrganizationId" validate:"omitempty,no_xss"`
	Limit               int64  `query:"limit" validate:"omitempty,min=1,max=500"`
}
