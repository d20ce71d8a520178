package basehdl

// Package basehdl - các tiện ích chung cho handler của admin dashboard.
// Dashboard hoạt động theo kiểu form-post rồi redirect, thông báo kết quả
// được chuyển qua notice cookie (đọc một lần rồi xóa).

import (
	"fmt"
	"net/url"
	"runtime/debug"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"qrscanner_admin/internal/common"
	"qrscanner_admin/internal/global"
	"qrscanner_admin/internal/logger"
)

// Tên cookie chứa notice hiển thị một lần trên dashboard
const (
	noticeSuccessCookie = "notice_success"
	noticeErrorCookie   = "notice_error"
)

// Notice là một thông báo hiển thị một lần trên dashboard
type Notice struct {
	Level   string // "success" hoặc "error"
	Message string
}

// SafeHandler bọc handler với recover để bắt panic.
// Đảm bảo server luôn trả về response cho client kể cả khi có panic xảy ra.
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.WithRequest(c).Errorf("Panic trong handler: %v", r)
			SetErrorNotice(c, fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r))
			_ = RedirectToDashboard(c)
		}
	}()
	return handler()
}

// SetSuccessNotice ghi notice thành công vào cookie (hiển thị một lần)
func SetSuccessNotice(c fiber.Ctx, message string) {
	setNoticeCookie(c, noticeSuccessCookie, message)
}

// SetErrorNotice ghi notice lỗi vào cookie (hiển thị một lần)
func SetErrorNotice(c fiber.Ctx, message string) {
	setNoticeCookie(c, noticeErrorCookie, message)
}

func setNoticeCookie(c fiber.Ctx, name string, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// PopNotices đọc các notice từ cookie rồi xóa chúng.
// Gọi khi render dashboard để hiển thị kết quả của thao tác trước đó.
func PopNotices(c fiber.Ctx) []Notice {
	var notices []Notice
	for _, entry := range []struct {
		cookie string
		level  string
	}{
		{noticeSuccessCookie, "success"},
		{noticeErrorCookie, "error"},
	} {
		raw := c.Cookies(entry.cookie)
		if raw == "" {
			continue
		}
		message, err := url.QueryUnescape(raw)
		if err != nil {
			message = raw
		}
		notices = append(notices, Notice{Level: entry.level, Message: message})
		clearCookie(c, entry.cookie)
	}
	return notices
}

func clearCookie(c fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// RedirectToDashboard chuyển hướng về trang dashboard chính
func RedirectToDashboard(c fiber.Ctx) error {
	return c.Redirect().To("/")
}

// ParseRequestBody parse form hoặc JSON body vào struct input
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ValidateInput kiểm tra input theo các struct tag validate
func ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Trường '%s' không hợp lệ (quy tắc: %s)", first.Field(), first.Tag()),
				common.StatusBadRequest,
				err,
			)
		}
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}
