// Package router đăng ký các route thuộc domain Auth: đăng nhập, đăng xuất.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "qrscanner_admin/internal/api/auth/handler"
)

// Register đăng ký các route auth lên app
func Register(app fiber.Router, handler *authhdl.AuthHandler) {
	app.Get("/login/", handler.LoginPage)
	app.Post("/login/", handler.Login)
	app.Get("/logout/", handler.Logout)
}
