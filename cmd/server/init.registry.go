package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"sales_insight/config"
	"sales_insight/internal/database"
	"sales_insight/internal/global"
)

// InitRegistry khởi tạo registry và đăng ký các collections.
// Không làm gì khi persistence tắt.
func InitRegistry() {
	if !global.PersistenceEnabled() {
		return
	}

	if err := InitCollections(global.MongoSession, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký các collections MongoDB và đảm bảo index.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName_Data)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName_Data, db); err != nil {
		return err
	}

	colNames := []string{
		global.ColNames.AnalyticsSnapshots,
	}
	for _, name := range colNames {
		coll := db.Collection(name)
		if _, err := global.RegistryCollections.Register(name, coll); err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		logrus.Infof("Collection %s registered successfully", name)
	}

	snapshotColl, _ := global.RegistryCollections.Get(global.ColNames.AnalyticsSnapshots)
	if err := database.EnsureSnapshotIndexes(snapshotColl); err != nil {
		return err
	}
	logrus.Info("Ensured snapshot indexes")

	return nil
}
