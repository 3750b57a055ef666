// Package global chứa các biến toàn cục của ứng dụng: cấu hình server,
// phiên kết nối MongoDB, validator và các registry.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"sales_insight/config"
	"sales_insight/internal/registry"
)

// CollectionNames tên các collection MongoDB của ứng dụng.
type CollectionNames struct {
	AnalyticsSnapshots string
}

var (
	Validate     *validator.Validate   // Biến để xác thực dữ liệu
	ServerConfig *config.Configuration // Cấu hình của server
	MongoSession *mongo.Client         // Phiên kết nối tới MongoDB (nil nếu persistence tắt)

	// ColNames tên collection, gán giá trị mặc định khi init
	ColNames = CollectionNames{
		AnalyticsSnapshots: "analytics_snapshots",
	}

	// RegistryCollections chứa các collections đã đăng ký
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
	// RegistryDatabase chứa các databases đã đăng ký
	RegistryDatabase = registry.NewRegistry[*mongo.Database]()
)

// PersistenceEnabled cho biết subsystem snapshot có hoạt động không
// (true khi đã kết nối MongoDB thành công).
func PersistenceEnabled() bool {
	return MongoSession != nil
}
