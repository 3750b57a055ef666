// Package reportsvc - Service cho Analytics Snapshot (analytics_snapshots).
package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	reportmodels "sales_insight/internal/api/report/models"
	basesvc "sales_insight/internal/api/base/service"
	"sales_insight/internal/global"
)

// Giới hạn mặc định khi liệt kê snapshot.
const defaultListLimit = 100

// AnalyticsSnapshotService service cho bảng analytics_snapshots.
type AnalyticsSnapshotService struct {
	*basesvc.MongoService[reportmodels.AnalyticsSnapshot]
}

// NewAnalyticsSnapshotService tạo mới AnalyticsSnapshotService.
// Trả về lỗi khi persistence tắt hoặc collection chưa đăng ký.
func NewAnalyticsSnapshotService() (*AnalyticsSnapshotService, error) {
	base, err := basesvc.NewMongoService[reportmodels.AnalyticsSnapshot](global.ColNames.AnalyticsSnapshots)
	if err != nil {
		return nil, err
	}
	return &AnalyticsSnapshotService{MongoService: base}, nil
}

// UpsertSnapshot upsert snapshot theo bộ key duy nhất
// (analysisKey, periodKey, ownerOrganizationId).
func (s *AnalyticsSnapshotService) UpsertSnapshot(ctx context.Context, analysisKey, periodKey, orgID string, payload map[string]interface{}) (reportmodels.AnalyticsSnapshot, error) {
	filter := bson.M{
		"analysisKey":         analysisKey,
		"periodKey":           periodKey,
		"ownerOrganizationId": orgID,
	}
	doc := bson.M{
		"analysisKey":         analysisKey,
		"periodKey":           periodKey,
		"ownerOrganizationId": orgID,
		"payload":             payload,
		"computedAt":          time.Now().Unix(),
	}
	return s.UpsertOne(ctx, filter, doc)
}

// ListSnapshots liệt kê snapshot theo filter tùy chọn, mới nhất trước
// (sort theo periodKey giảm dần rồi updatedAt giảm dần).
func (s *AnalyticsSnapshotService) ListSnapshots(ctx context.Context, analysisKey, periodKey, orgID string, limit int64) ([]reportmodels.AnalyticsSnapshot, error) {
	filter := bson.M{}
	if analysisKey != "" {
		filter["analysisKey"] = analysisKey
	}
	if periodKey != "" {
		filter["periodKey"] = periodKey
	}
	if orgID != "" {
		filter["ownerOrganizationId"] = orgID
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "periodKey", Value: -1}, {Key: "updatedAt", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, filter, opts)
}

// DeleteOlderThan xóa các snapshot không được ghi lại từ cutoff trở đi.
// Dùng bởi cleanup worker theo chính sách retention.
func (s *AnalyticsSnapshotService) DeleteOlderThan(ctx context.Context, cutoffUnix int64) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"updatedAt": bson.M{"$lt": cutoffUnix}})
}
