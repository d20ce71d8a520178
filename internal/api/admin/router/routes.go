// Package router đăng ký các route thuộc domain Admin: dashboard và CRUD.
package router

import (
	"github.com/gofiber/fiber/v3"

	adminhdl "qrscanner_admin/internal/api/admin/handler"
)

// Register đăng ký các route dashboard lên app.
// requireSession được áp cho mọi route của domain này.
func Register(app fiber.Router, handler *adminhdl.AdminHandler, requireSession fiber.Handler) {
	app.Get("/", handler.Dashboard, requireSession)
	app.Post("/", handler.DashboardPost, requireSession)

	app.Get("/add_user/", handler.AddUserPage, requireSession)
	app.Post("/add_user/", handler.AddUser, requireSession)
	app.Get("/update_user/:id/", handler.UpdateUserPage, requireSession)
	app.Post("/update_user/:id/", handler.UpdateUser, requireSession)

	app.Get("/add_video/", handler.AddVideoPage, requireSession)
	app.Post("/add_video/", handler.AddVideo, requireSession)
	app.Get("/update_video/:id/", handler.UpdateVideoPage, requireSession)
	app.Post("/update_video/:id/", handler.UpdateVideo, requireSession)

	app.Get("/update_app_url/", handler.UpdateAppURLPage, requireSession)
	app.Post("/update_app_url/", handler.UpdateAppURL, requireSession)
}
