// Package models - AnalyticsSnapshot thuộc domain Report.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsSnapshot lưu kết quả phân tích đã tính theo kỳ (analytics_snapshots).
// Unique theo bộ (analysisKey, periodKey, ownerOrganizationId) — tính lại
// cùng kỳ sẽ upsert đè, không tạo bản ghi trùng.
type AnalyticsSnapshot struct {
	ID                  primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	AnalysisKey         string                 `json:"analysisKey" bson:"analysisKey"`                 // performance | rfm | clv | migration | concentration | variance | insights
	PeriodKey           string                 `json:"periodKey" bson:"periodKey"`                     // Bucket "YYYY-MM"
	OwnerOrganizationID string                 `json:"ownerOrganizationId" bson:"ownerOrganizationId"` // ID tổ chức từ hệ thống nguồn
	Payload             map[string]interface{} `json:"payload" bson:"payload"`                         // Kết quả phân tích đã tính
	ComputedAt          int64                  `json:"computedAt" bson:"computedAt"`                   // Unix seconds
	CreatedAt           int64                  `json:"createdAt" bson:"createdAt"`                     // Unix seconds
	UpdatedAt           int64                  `json:"updatedAt" bson:"updatedAt"`                     // Unix seconds
}
