// Package basesvc cung cấp service cơ bản cho việc tương tác với MongoDB.
// Các domain service embed MongoService[T] để có sẵn các thao tác chung
// trên collection của mình.
package basesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sales_insight/internal/common"
	"sales_insight/internal/global"
)

// MongoService service generic trên 1 collection MongoDB.
// T là model type của collection.
type MongoService[T any] struct {
	collection *mongo.Collection
}

// NewMongoService tạo MongoService cho collection đã đăng ký trong registry.
// Trả về lỗi khi persistence tắt hoặc collection chưa được đăng ký.
func NewMongoService[T any](collectionName string) (*MongoService[T], error) {
	if !global.PersistenceEnabled() {
		return nil, fmt.Errorf("subsystem snapshot đang tắt: %w", common.ErrUnavailable)
	}
	coll, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký: %w", collectionName, common.ErrNotFound)
	}
	return &MongoService[T]{collection: coll}, nil
}

// Collection trả về collection gốc cho các thao tác ngoài bộ chung.
func (s *MongoService[T]) Collection() *mongo.Collection {
	return s.collection
}

// UpsertOne upsert 1 document theo filter, trả về document sau khi upsert.
// Trường createdAt chỉ set khi insert, updatedAt set mỗi lần ghi.
func (s *MongoService[T]) UpsertOne(ctx context.Context, filter bson.M, doc bson.M) (T, error) {
	var result T
	now := time.Now().Unix()
	doc["updatedAt"] = now

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOne tìm 1 document theo filter.
func (s *MongoService[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	var result T
	if err := s.collection.FindOne(ctx, filter).Decode(&result); err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find tìm nhiều document theo filter với sort/limit tùy chọn.
func (s *MongoService[T]) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// DeleteMany xóa các document khớp filter, trả về số document đã xóa.
func (s *MongoService[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// CountDocuments đếm số document khớp filter.
func (s *MongoService[T]) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}
