// Package qrhdl chứa handler sinh poster QR
package qrhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "qrscanner_admin/internal/api/base/handler"
	qrsvc "qrscanner_admin/internal/api/qr/service"
	"qrscanner_admin/internal/logger"
)

// QRHandler xử lý route /generate_qr_code/
type QRHandler struct {
	posterService *qrsvc.PosterService
}

// NewQRHandler tạo mới QRHandler với service được inject
func NewQRHandler(posterService *qrsvc.PosterService) *QRHandler {
	return &QRHandler{posterService: posterService}
}

// GenerateQRCode sinh poster PDF từ nội dung qr_text (POST /generate_qr_code/).
// Thành công trả về PDF inline; thất bại tạo notice lỗi rồi quay về dashboard.
func (h *QRHandler) GenerateQRCode(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		qrText := c.FormValue("qr_text")

		pdfBytes, err := h.posterService.GeneratePoster(c.Context(), qrText)
		if err != nil {
			logger.WithRequest(c).Warnf("Sinh poster QR thất bại: %v", err)
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		logger.WithRequest(c).Infof("Đã sinh poster QR (%d bytes)", len(pdfBytes))
		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", `inline; filename="qr_code.pdf"`)
		return c.Send(pdfBytes)
	})
}
