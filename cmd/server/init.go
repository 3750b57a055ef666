package main

import (
	"github.com/sirupsen/logrus"

	"sales_insight/config"
	"sales_insight/internal/database"
	"sales_insight/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database (optional)
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: month_key, no_xss)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database. URI rỗng là chế độ hợp lệ: engine phân tích
// chạy bình thường, subsystem snapshot tắt.
func initDatabase_MongoDB() {
	if global.ServerConfig.MongoDB_ConnectionURI == "" {
		logrus.Info("MONGODB_CONNECTION_URI empty — snapshot persistence disabled")
		return
	}

	session, err := database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	global.MongoSession = session
	logrus.Info("Connected to MongoDB")
}
