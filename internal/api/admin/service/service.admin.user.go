// Package adminsvc chứa business logic của dashboard: danh sách có lọc,
// các thao tác thêm/sửa/xóa trên user, video và cấu hình app.
package adminsvc

import (
	"context"
	"sort"
	"strings"

	admindto "qrscanner_admin/internal/api/admin/dto"
	"qrscanner_admin/internal/api/admin/models"
	basesvc "qrscanner_admin/internal/api/base/service"
)

// UserService quản lý collection users
type UserService struct {
	store basesvc.DocumentService[models.User]
}

// NewUserService tạo mới UserService trên store được inject
func NewUserService(store basesvc.DocumentService[models.User]) *UserService {
	return &UserService{store: store}
}

// List lấy toàn bộ users rồi áp bộ lọc substring trong bộ nhớ.
// Các bộ lọc không phân biệt hoa thường và kết hợp theo AND;
// bộ lọc rỗng không loại phần tử nào.
func (s *UserService) List(ctx context.Context, filter admindto.UserFilter) ([]models.User, error) {
	users, err := s.store.Stream(ctx)
	if err != nil {
		return nil, err
	}

	filtered := users[:0]
	for _, u := range users {
		if !containsFold(u.ID, filter.ID) {
			continue
		}
		if !containsFold(u.Name, filter.Name) {
			continue
		}
		if !containsFold(u.Role, filter.Role) {
			continue
		}
		filtered = append(filtered, u)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })
	return filtered, nil
}

// Create ghi đè toàn bộ tài liệu users/{id} (tạo mới nếu chưa có)
func (s *UserService) Create(ctx context.Context, input admindto.UserCreateInput) error {
	user := models.User{
		ID:   input.ID,
		Name: input.Name,
		Role: input.Role,
	}
	return s.store.Set(ctx, input.ID, user)
}

// Get lấy một user theo khóa
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.store.Get(ctx, id)
}

// Update merge name/role vào tài liệu users/{id} đã tồn tại
func (s *UserService) Update(ctx context.Context, id string, input admindto.UserUpdateInput) error {
	return s.store.Update(ctx, id, map[string]interface{}{
		"name": input.Name,
		"role": input.Role,
	})
}

// Delete xóa users/{id}; xóa khóa không tồn tại vẫn thành công
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// containsFold kiểm tra substring không phân biệt hoa thường; needle rỗng luôn khớp
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
