package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"sales_insight/internal/database"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"
	"sales_insight/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry (chỉ khi persistence bật)
	InitRegistry()

	log := logger.GetAppLogger()

	// Worker dọn snapshot quá hạn — chỉ chạy khi persistence bật
	if global.PersistenceEnabled() {
		interval := time.Duration(global.ServerConfig.SnapshotCleanupIntervalM) * time.Minute
		cleanupWorker, err := worker.NewSnapshotCleanupWorker(interval, global.ServerConfig.SnapshotRetentionDays)
		if err != nil {
			log.WithError(err).Error("Failed to create snapshot cleanup worker, continuing without cleanup")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("[SNAPSHOT_CLEANUP] Worker goroutine panic")
					}
				}()
				cleanupWorker.Start(ctx)
			}()
		}

		defer database.CloseInstance(global.MongoSession)
	} else {
		log.Info("Persistence disabled — chạy chế độ engine thuần, không lưu snapshot")
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
