// Package router đăng ký route thuộc domain QR.
package router

import (
	"github.com/gofiber/fiber/v3"

	qrhdl "qrscanner_admin/internal/api/qr/handler"
)

// Register đăng ký route sinh poster QR lên app
func Register(app fiber.Router, handler *qrhdl.QRHandler, requireSession fiber.Handler) {
	app.Post("/generate_qr_code/", handler.GenerateQRCode, requireSession)
}
