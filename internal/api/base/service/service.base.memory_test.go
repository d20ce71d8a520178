package basesvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"qrscanner_admin/internal/common"
)

type testDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
	Role string `bson:"role"`
}

// TestSetGetRoundTrip kiểm tra Set rồi Get trả về đúng tài liệu đã ghi
func TestSetGetRoundTrip(t *testing.T) {
	store := NewMemoryDocumentService[testDoc]()
	ctx := context.Background()

	doc := testDoc{ID: "u1", Name: "Alice", Role: "admin"}
	if err := store.Set(ctx, "u1", doc); err != nil {
		t.Fatalf("Set thất bại: %v", err)
	}

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get thất bại: %v", err)
	}
	if got != doc {
		t.Errorf("Tài liệu không khớp: got %+v, want %+v", got, doc)
	}
}

// TestSetOverwritesWholeDocument kiểm tra Set ghi đè toàn bộ tài liệu cũ
func TestSetOverwritesWholeDocument(t *testing.T) {
	store := NewMemoryDocumentService[testDoc]()
	ctx := context.Background()

	store.Set(ctx, "u1", testDoc{ID: "u1", Name: "Alice", Role: "admin"})
	store.Set(ctx, "u1", testDoc{ID: "u1", Name: "Bob"})

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get thất bại: %v", err)
	}
	if got.Role != "" {
		t.Errorf("Set phải ghi đè toàn bộ tài liệu, role cũ vẫn còn: %q", got.Role)
	}
}

// TestUpdateMergesFields kiểm tra Update chỉ thay các trường được đặt tên
func TestUpdateMergesFields(t *testing.T) {
	store := NewMemoryDocumentService[testDoc]()
	ctx := context.Background()

	store.Set(ctx, "u1", testDoc{ID: "u1", Name: "Alice", Role: "admin"})
	if err := store.Update(ctx, "u1", map[string]interface{}{"name": "Alicia"}); err != nil {
		t.Fatalf("Update thất bại: %v", err)
	}

	got, _ := store.Get(ctx, "u1")
	if got.Name != "Alicia" {
		t.Errorf("Name không được cập nhật: %q", got.Name)
	}
	if got.Role != "admin" {
		t.Errorf("Update phải giữ nguyên các trường khác, role = %q", got.Role)
	}
}

// TestUpdateMissingDocument kiểm tra Update lên khóa không tồn tại trả về ErrNotFound
func TestUpdateMissingDocument(t *testing.T) {
	store := NewMemoryDocumentService[testDoc]()
	ctx := context.Background()

	err := store.Update(ctx, "missing", map[string]interface{}{"name": "x"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Update khóa không tồn tại phải trả về ErrNotFound, got %v", err)
	}
}

// TestDeleteIdempotent kiểm tra xóa khóa không tồn tại vẫn thành công
func TestDeleteIdempotent(t *testing.T) {
	store := NewMemoryDocumentService[testDoc]()
	ctx := context.Background()

	store.Set(ctx, "u1", testDoc{ID: "u1", Name: "Alice"})
	if err := store.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete thất bại: %v", err)
	}
	if err := store.Delete(ctx, "u1"); err != nil {
		t.Errorf("Delete lần hai phải thành công, got %v", err)
	}
	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete khóa chưa từng tồn tại phải thành công, got %v", err)
	}

	if _, err := store.Get(ctx, "u1"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Tài liệu đã xóa vẫn còn, err = %v", err)
	}
}

// TestStreamReturnsAll kiểm tra Stream trả về toàn bộ tài liệu
func TestStreamReturnsAll(t *testing.T) {
	store := NewMemoryDocumentService[testDoc]()
	ctx := context.Background()

	store.Set(ctx, "u1", testDoc{ID: "u1", Name: "Alice"})
	store.Set(ctx, "u2", testDoc{ID: "u2", Name: "Bob"})

	docs, err := store.Stream(ctx)
	if err != nil {
		t.Fatalf("Stream thất bại: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("Stream phải trả về 2 tài liệu, got %d", len(docs))
	}
}

// TestFindWithFilter kiểm tra Find với filter so sánh bằng
func TestFindWithFilter(t *testing.T) {
	store := NewMemoryDocumentService[testDoc]()
	ctx := context.Background()

	store.Set(ctx, "u1", testDoc{ID: "u1", Name: "Alice", Role: "admin"})
	store.Set(ctx, "u2", testDoc{ID: "u2", Name: "Bob", Role: "viewer"})

	docs, err := store.Find(ctx, bson.M{"role": "admin"}, nil)
	if err != nil {
		t.Fatalf("Find thất bại: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "u1" {
		t.Errorf("Find trả về sai kết quả: %+v", docs)
	}

	exists, err := store.DocumentExists(ctx, bson.M{"role": "viewer"})
	if err != nil || !exists {
		t.Errorf("DocumentExists phải trả về true, got %v, %v", exists, err)
	}
}
