// package basesvc cung cấp các service cơ bản cho việc tương tác với document store
package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qrscanner_admin/internal/common"
)

// DocumentService định nghĩa interface chứa các phương thức cơ bản cho một
// collection của document store. Tất cả document được định danh bằng khóa chuỗi (_id).
//
// Type Parameters:
//   - Model: Kiểu dữ liệu của document
type DocumentService[Model any] interface {
	// Get lấy document theo khóa. Trả về common.ErrNotFound nếu không tồn tại.
	Get(ctx context.Context, id string) (Model, error)

	// Set ghi đè toàn bộ document theo khóa (tạo mới nếu chưa có).
	Set(ctx context.Context, id string, doc Model) error

	// Update merge các trường được đặt tên vào document theo khóa.
	// Trả về common.ErrNotFound nếu document chưa tồn tại — merge-update
	// không bao giờ tạo bản ghi mới.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// Delete xóa document theo khóa. Xóa khóa không tồn tại là no-op, không phải lỗi.
	Delete(ctx context.Context, id string) error

	// Stream lấy toàn bộ documents của collection.
	Stream(ctx context.Context) ([]Model, error)

	// Các thao tác bổ trợ
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// MongoDocumentService triển khai DocumentService trên một *mongo.Collection
type MongoDocumentService[T any] struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewMongoDocumentService tạo mới một MongoDocumentService trên collection được cung cấp
func NewMongoDocumentService[T any](collection *mongo.Collection) *MongoDocumentService[T] {
	return &MongoDocumentService[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB (dùng bởi bootstrap khi cần truy cập trực tiếp)
func (s *MongoDocumentService[T]) Collection() *mongo.Collection {
	return s.collection
}

// Get lấy một document theo khóa
func (s *MongoDocumentService[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return doc, common.ConvertMongoError(err)
	}
	return doc, nil
}

// Set ghi đè toàn bộ document theo khóa, tạo mới nếu chưa tồn tại (upsert)
func (s *MongoDocumentService[T]) Set(ctx context.Context, id string, doc T) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// Update merge các trường được đặt tên vào document ($set).
// Không upsert: update lên khóa không tồn tại trả về common.ErrNotFound,
// không âm thầm tạo bản ghi thiếu trường.
func (s *MongoDocumentService[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return common.ErrRequiredField
	}
	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Delete xóa document theo khóa. DeletedCount = 0 không được coi là lỗi.
func (s *MongoDocumentService[T]) Delete(ctx context.Context, id string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// Stream lấy toàn bộ documents của collection
func (s *MongoDocumentService[T]) Stream(ctx context.Context) ([]T, error) {
	return s.Find(ctx, bson.M{}, nil)
}

// Find tìm các documents theo filter
func (s *MongoDocumentService[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return docs, nil
}

// CountDocuments đếm số documents theo filter
func (s *MongoDocumentService[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists kiểm tra document có tồn tại theo filter không
func (s *MongoDocumentService[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
