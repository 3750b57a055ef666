// Package worker chứa các background worker của ứng dụng.
package worker

import (
	"context"
	"time"

	reportsvc "sales_insight/internal/api/report/service"
	"sales_insight/internal/logger"
)

// SnapshotCleanupWorker worker dọn snapshot quá hạn retention.
// Chạy định kỳ và xóa các snapshot không được ghi lại trong khoảng retention.
type SnapshotCleanupWorker struct {
	snapshotService *reportsvc.AnalyticsSnapshotService
	interval        time.Duration // Khoảng thời gian giữa các lần chạy
	retention       time.Duration // Snapshot cũ hơn khoảng này bị xóa
}

// NewSnapshotCleanupWorker tạo mới SnapshotCleanupWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (tối thiểu 1 phút)
//   - retentionDays: Số ngày giữ snapshot (tối thiểu 1 ngày)
func NewSnapshotCleanupWorker(interval time.Duration, retentionDays int) (*SnapshotCleanupWorker, error) {
	snapshotService, err := reportsvc.NewAnalyticsSnapshotService()
	if err != nil {
		return nil, err
	}

	if interval < time.Minute {
		interval = time.Hour
	}
	if retentionDays < 1 {
		retentionDays = 90
	}

	return &SnapshotCleanupWorker{
		snapshotService: snapshotService,
		interval:        interval,
		retention:       time.Duration(retentionDays) * 24 * time.Hour,
	}, nil
}

// Start chạy worker cho đến khi ctx bị cancel. Panic trong 1 lần chạy được
// recover và worker tiếp tục ở lần chạy tiếp theo.
func (w *SnapshotCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"retention": w.retention.String(),
	}).Info("[SNAPSHOT_CLEANUP] Starting Snapshot Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("[SNAPSHOT_CLEANUP] Snapshot Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("[SNAPSHOT_CLEANUP] Panic khi dọn snapshot, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				cutoff := time.Now().Add(-w.retention).Unix()
				deleted, err := w.snapshotService.DeleteOlderThan(ctx, cutoff)
				if err != nil {
					log.WithError(err).Error("[SNAPSHOT_CLEANUP] Failed to delete expired snapshots")
					return
				}
				if deleted > 0 {
					log.WithFields(map[string]interface{}{
						"deleted": deleted,
						"cutoff":  cutoff,
					}).Info("[SNAPSHOT_CLEANUP] Deleted expired snapshots")
				}
			}()
		}
	}
}
