package registry

import (
	"testing"
)

// TestRegisterAndGet kiểm tra đăng ký và tra cứu item theo tên
func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("users", 1)
	if err != nil || !isNew {
		t.Fatalf("Register lần đầu phải là item mới, got isNew=%v err=%v", isNew, err)
	}

	isNew, err = r.Register("users", 2)
	if err != nil {
		t.Fatalf("Register ghi đè thất bại: %v", err)
	}
	if isNew {
		t.Error("Register tên đã tồn tại phải trả về isNew=false")
	}

	item, exists := r.Get("users")
	if !exists || item != 2 {
		t.Errorf("Get phải trả về giá trị mới nhất, got %v exists=%v", item, exists)
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("Get tên chưa đăng ký phải trả về exists=false")
	}
}

// TestRegisterEmptyName kiểm tra tên rỗng bị từ chối
func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	if _, err := r.Register("", "x"); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}
}

// TestGetOrCreate kiểm tra creator chỉ chạy khi tên chưa tồn tại
func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 7, nil
	}

	for i := 0; i < 3; i++ {
		item, err := r.GetOrCreate("col", creator)
		if err != nil || item != 7 {
			t.Fatalf("GetOrCreate thất bại: item=%v err=%v", item, err)
		}
	}
	if calls != 1 {
		t.Errorf("Creator phải chạy đúng một lần, got %d", calls)
	}
}

// TestClear kiểm tra xóa item với cleanup
func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("col", 1)

	cleaned := false
	deleted, err := r.Clear("col", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil || !deleted || !cleaned {
		t.Errorf("Clear phải xóa và chạy cleanup: deleted=%v cleaned=%v err=%v", deleted, cleaned, err)
	}
	if r.Len() != 0 {
		t.Errorf("Registry phải rỗng sau Clear, Len=%d", r.Len())
	}
}
