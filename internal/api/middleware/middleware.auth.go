// Package middleware chứa các middleware dùng chung của dashboard
package middleware

import (
	"github.com/gofiber/fiber/v3"

	authsvc "qrscanner_admin/internal/api/auth/service"
	"qrscanner_admin/internal/logger"
)

// SessionCookieName là tên cookie chứa session token của admin
const SessionCookieName = "admin_session"

// LocalAdminUID là key trong fiber Locals chứa UID của admin đã đăng nhập
const LocalAdminUID = "admin_uid"

// RequireSession kiểm tra session cookie trên mọi route của dashboard.
// Request chưa đăng nhập (thiếu cookie, token hỏng hoặc hết hạn) được
// chuyển hướng về trang đăng nhập.
func RequireSession(authService *authsvc.AuthService) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		uid, err := authService.ValidateSession(token)
		if err != nil {
			logger.WithRequest(c).Debugf("Session không hợp lệ: %v", err)
			return c.Redirect().To("/login/")
		}

		c.Locals(LocalAdminUID, uid)
		return c.Next()
	}
}
