package basesvc

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qrscanner_admin/internal/common"
	"qrscanner_admin/internal/utility"
)

// MemoryDocumentService triển khai DocumentService trên bộ nhớ trong.
// Dùng cho unit test và chạy thử cục bộ không cần MongoDB.
// Documents được lưu dưới dạng map để hỗ trợ merge-update từng trường.
type MemoryDocumentService[T any] struct {
	mu   sync.RWMutex
	docs map[string]map[string]interface{}
}

// NewMemoryDocumentService tạo mới một MemoryDocumentService rỗng
func NewMemoryDocumentService[T any]() *MemoryDocumentService[T] {
	return &MemoryDocumentService[T]{
		docs: make(map[string]map[string]interface{}),
	}
}

func encodeDoc[T any](doc T) (map[string]interface{}, error) {
	return utility.ToMap(doc)
}

func decodeDoc[T any](m map[string]interface{}) (T, error) {
	var doc T
	raw, err := bson.Marshal(m)
	if err != nil {
		return doc, err
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// Get lấy một document theo khóa
func (s *MemoryDocumentService[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	m, ok := s.docs[id]
	if !ok {
		return zero, common.ErrNotFound
	}
	return decodeDoc[T](m)
}

// Set ghi đè toàn bộ document theo khóa
func (s *MemoryDocumentService[T]) Set(ctx context.Context, id string, doc T) error {
	m, err := encodeDoc(doc)
	if err != nil {
		return err
	}
	m["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = m
	return nil
}

// Update merge các trường vào document đã tồn tại
func (s *MemoryDocumentService[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return common.ErrRequiredField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		m[k] = v
	}
	return nil
}

// Delete xóa document theo khóa, không lỗi khi khóa không tồn tại
func (s *MemoryDocumentService[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

// Stream lấy toàn bộ documents
func (s *MemoryDocumentService[T]) Stream(ctx context.Context) ([]T, error) {
	return s.Find(ctx, bson.M{}, nil)
}

// Find tìm documents theo filter. Chỉ hỗ trợ so sánh bằng trên các trường cấp một.
func (s *MemoryDocumentService[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	match := bson.M{}
	if filter != nil {
		if m, ok := filter.(bson.M); ok {
			match = m
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []T
	for _, m := range s.docs {
		if !matchesAll(m, match) {
			continue
		}
		doc, err := decodeDoc[T](m)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// CountDocuments đếm số documents theo filter
func (s *MemoryDocumentService[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	docs, err := s.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

// DocumentExists kiểm tra document có tồn tại theo filter không
func (s *MemoryDocumentService[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func matchesAll(doc map[string]interface{}, match bson.M) bool {
	for k, v := range match {
		if doc[k] != v {
			return false
		}
	}
	return true
}
