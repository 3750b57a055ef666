// Package dto - Input của các endpoint phân tích.
//
// Mỗi endpoint nhận thẳng các mảng record đã lọc từ phía client (tầng ETL
// phía trước đã lọc theo tổ chức và khoảng thời gian). Mảng rỗng hợp lệ —
// engine trả output rỗng thay vì lỗi.
package dto

import (
	"sales_insight/internal/api/analytics/models"
)

// PerformanceInput input phân tích thành tích đa trục.
type PerformanceInput struct {
	Sales         []models.SaleRecord             `json:"sales" validate:"omitempty,dive"`
	Orders        []models.OrderRecord            `json:"orders" validate:"omitempty,dive"`
	Collections   []models.CollectionRecord       `json:"collections" validate:"omitempty,dive"`
	Contributions []models.TeamContributionRecord `json:"contributions" validate:"omitempty,dive"`
	Receivables   []models.ReceivableAgingRecord  `json:"receivables" validate:"omitempty,dive"`
}

// RfmInput input phân khúc RFM.
type RfmInput struct {
	Sales []models.SaleRecord `json:"sales" validate:"omitempty,dive"`
}

// ClvInput input ước lượng CLV.
type ClvInput struct {
	Sales      []models.SaleRecord      `json:"sales" validate:"omitempty,dive"`
	OrgProfits []models.OrgProfitRecord `json:"orgProfits" validate:"omitempty,dive"`
}

// MigrationInput input matrix chuyển hạng.
type MigrationInput struct {
	Sales []models.SaleRecord `json:"sales" validate:"omitempty,dive"`
}

// ConcentrationInput input đo tập trung doanh thu.
// Dimension chọn chiều phân tích: theo khách (mặc định) hoặc theo tổ chức.
type ConcentrationInput struct {
	Sales     []models.SaleRecord `json:"sales" validate:"omitempty,dive"`
	Dimension string              `json:"dimension" validate:"omitempty,oneof=customer org"`
}

// VarianceInput input phân rã chênh lệch kế hoạch vs thực hiện.
type VarianceInput struct {
	Rows []models.PlanActualRecord `json:"rows" validate:"omitempty,dive"`
}

// InsightsInput input rule engine — nhận toàn bộ dataset, các phân tích
// thành phần chạy nội bộ rồi đưa kết quả qua các rule.
type InsightsInput struct {
	Sales         []models.SaleRecord             `json:"sales" validate:"omitempty,dive"`
	Orders        []models.OrderRecord            `json:"orders" validate:"omitempty,dive"`
	Collections   []models.CollectionRecord       `json:"collections" validate:"omitempty,dive"`
	Contributions []models.TeamContributionRecord `json:"contributions" validate:"omitempty,dive"`
	Receivables   []models.ReceivableAgingRecord  `json:"receivables" validate:"omitempty,dive"`
	PlanActuals   []models.PlanActualRecord       `json:"planActuals" validate:"omitempty,dive"`
}
