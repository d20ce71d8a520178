package adminhdl

import (
	"github.com/gofiber/fiber/v3"

	admindto "qrscanner_admin/internal/api/admin/dto"
	"qrscanner_admin/internal/api/admin/models"
	basehdl "qrscanner_admin/internal/api/base/handler"
	"qrscanner_admin/internal/logger"
)

// AddUserPage render form thêm user (GET /add_user/)
func (h *AdminHandler) AddUserPage(c fiber.Ctx) error {
	return c.Render("user_form.html", fiber.Map{
		"Title":  "Add User",
		"Action": "/add_user/",
		"ShowID": true,
		"User":   models.User{},
	})
}

// AddUser ghi tài liệu users/{id} mới từ form (POST /add_user/).
// Thiếu trường bắt buộc tạo notice lỗi và không gọi store.
func (h *AdminHandler) AddUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input admindto.UserCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		if err := h.userService.Create(c.Context(), input); err != nil {
			basehdl.SetErrorNotice(c, "Không thể thêm user: "+err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		logger.WithRequest(c).Infof("Đã thêm user %s", input.ID)
		basehdl.SetSuccessNotice(c, "Đã thêm user")
		return basehdl.RedirectToDashboard(c)
	})
}

// UpdateUserPage render form sửa user với dữ liệu hiện tại (GET /update_user/:id/)
func (h *AdminHandler) UpdateUserPage(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		user, err := h.userService.Get(c.Context(), id)
		if err != nil {
			basehdl.SetErrorNotice(c, "Không tìm thấy user: "+id)
			return basehdl.RedirectToDashboard(c)
		}
		return c.Render("user_form.html", fiber.Map{
			"Title":  "Update User",
			"Action": "/update_user/" + id + "/",
			"ShowID": false,
			"User":   user,
		})
	})
}

// UpdateUser merge name/role vào tài liệu users/{id} (POST /update_user/:id/)
func (h *AdminHandler) UpdateUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		var input admindto.UserUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		if err := h.userService.Update(c.Context(), id, input); err != nil {
			basehdl.SetErrorNotice(c, "Không thể cập nhật user: "+err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		logger.WithRequest(c).Infof("Đã cập nhật user %s", id)
		basehdl.SetSuccessNotice(c, "Đã cập nhật user")
		return basehdl.RedirectToDashboard(c)
	})
}
