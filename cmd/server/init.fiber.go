package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	adminrouter "qrscanner_admin/internal/api/admin/router"
	authrouter "qrscanner_admin/internal/api/auth/router"
	"qrscanner_admin/internal/api/middleware"
	qrrouter "qrscanner_admin/internal/api/qr/router"
	"qrscanner_admin/internal/common"
	"qrscanner_admin/internal/logger"
	"qrscanner_admin/internal/views"
)

// InitFiberApp khởi tạo ứng dụng Fiber với middleware và route của dashboard
func (a *application) InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// Cấu hình cơ bản
		AppName:       "QR Scanner Admin",
		ServerHeader:  "QR Scanner Admin",
		StrictRouting: true, // /foo và /foo/ là khác nhau
		CaseSensitive: true, // /Foo và /foo là khác nhau
		UnescapePath:  true,

		// Template engine cho các trang dashboard
		Views: views.NewEngine(),

		// Giới hạn và timeout
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := common.MsgInternalError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":    code,
				"message": message,
			}).Error("Request error")

			return c.Status(code).SendString(message)
		},
	})

	// Request ID để trace mỗi request qua log
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	// CORS
	corsOrigins := a.cfg.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: a.cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
	}))

	// Rate limiting
	if a.cfg.RateLimit_Enabled && a.cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        a.cfg.RateLimit_Max,
			Expiration: time.Duration(a.cfg.RateLimit_Window) * time.Second,
		}))
	}

	// Recover để panic không làm chết server
	app.Use(recover.New())

	// Liveness check
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	requireSession := middleware.RequireSession(a.authService)
	authrouter.Register(app, a.authHandler)
	adminrouter.Register(app, a.adminHandler, requireSession)
	qrrouter.Register(app, a.qrHandler, requireSession)

	return app
}
