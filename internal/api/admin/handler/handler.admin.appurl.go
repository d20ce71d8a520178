package adminhdl

import (
	"github.com/gofiber/fiber/v3"

	admindto "qrscanner_admin/internal/api/admin/dto"
	basehdl "qrscanner_admin/internal/api/base/handler"
	"qrscanner_admin/internal/logger"
)

// UpdateAppURLPage render form sửa URL tải app với giá trị hiện tại (GET /update_app_url/)
func (h *AdminHandler) UpdateAppURLPage(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		url, err := h.appConfigService.GetURL(c.Context())
		if err != nil {
			basehdl.SetErrorNotice(c, "Không thể tải URL app: "+err.Error())
			return basehdl.RedirectToDashboard(c)
		}
		return c.Render("app_url_form.html", fiber.Map{
			"URL": url,
		})
	})
}

// UpdateAppURL ghi đè tài liệu App/appurl với URL mới (POST /update_app_url/)
func (h *AdminHandler) UpdateAppURL(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input admindto.AppURLInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		if err := h.appConfigService.SetURL(c.Context(), input.URL); err != nil {
			basehdl.SetErrorNotice(c, "Không thể cập nhật URL app: "+err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		logger.WithRequest(c).Info("Đã cập nhật URL app")
		basehdl.SetSuccessNotice(c, "Đã cập nhật URL app")
		return basehdl.RedirectToDashboard(c)
	})
}
