// Package authhdl chứa các handler đăng nhập / đăng xuất của dashboard
package authhdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	authsvc "qrscanner_admin/internal/api/auth/service"
	basehdl "qrscanner_admin/internal/api/base/handler"
	"qrscanner_admin/internal/api/middleware"
	"qrscanner_admin/internal/logger"
)

// AuthHandler xử lý các route /login/ và /logout/
type AuthHandler struct {
	authService *authsvc.AuthService
}

// NewAuthHandler tạo mới AuthHandler với service được inject
func NewAuthHandler(authService *authsvc.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginPage render trang đăng nhập (GET /login/).
// Nếu đã có session hợp lệ thì chuyển thẳng về dashboard.
func (h *AuthHandler) LoginPage(c fiber.Ctx) error {
	if _, err := h.authService.ValidateSession(c.Cookies(middleware.SessionCookieName)); err == nil {
		return basehdl.RedirectToDashboard(c)
	}
	return c.Render("login.html", fiber.Map{
		"Notices": basehdl.PopNotices(c),
	})
}

// Login xác thực Firebase ID token và phát hành session cookie (POST /login/)
func (h *AuthHandler) Login(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		idToken := c.FormValue("id_token")

		sessionToken, err := h.authService.Login(c.Context(), idToken)
		if err != nil {
			logger.WithRequest(c).Warnf("Đăng nhập thất bại: %v", err)
			basehdl.SetErrorNotice(c, err.Error())
			return c.Redirect().To("/login/")
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    sessionToken,
			Path:     "/",
			Expires:  time.Now().Add(h.authService.SessionTTL()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		logger.WithRequest(c).Info("Admin đăng nhập thành công")
		return basehdl.RedirectToDashboard(c)
	})
}

// Logout xóa session cookie và chuyển về trang đăng nhập (GET /logout/)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect().To("/login/")
}
