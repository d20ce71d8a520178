package adminhdl

import (
	"github.com/gofiber/fiber/v3"

	admindto "qrscanner_admin/internal/api/admin/dto"
	"qrscanner_admin/internal/api/admin/models"
	basehdl "qrscanner_admin/internal/api/base/handler"
	"qrscanner_admin/internal/logger"
)

// AddVideoPage render form thêm video (GET /add_video/)
func (h *AdminHandler) AddVideoPage(c fiber.Ctx) error {
	return c.Render("video_form.html", fiber.Map{
		"Title":  "Add Video",
		"Action": "/add_video/",
		"ShowID": true,
		"Video":  models.Video{},
	})
}

// AddVideo ghi tài liệu videos/{id} mới từ form (POST /add_video/)
func (h *AdminHandler) AddVideo(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input admindto.VideoCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		if err := h.videoService.Create(c.Context(), input); err != nil {
			basehdl.SetErrorNotice(c, "Không thể thêm video: "+err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		logger.WithRequest(c).Infof("Đã thêm video %s", input.ID)
		basehdl.SetSuccessNotice(c, "Đã thêm video")
		return basehdl.RedirectToDashboard(c)
	})
}

// UpdateVideoPage render form sửa video với dữ liệu hiện tại (GET /update_video/:id/)
func (h *AdminHandler) UpdateVideoPage(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		video, err := h.videoService.Get(c.Context(), id)
		if err != nil {
			basehdl.SetErrorNotice(c, "Không tìm thấy video: "+id)
			return basehdl.RedirectToDashboard(c)
		}
		return c.Render("video_form.html", fiber.Map{
			"Title":  "Update Video",
			"Action": "/update_video/" + id + "/",
			"ShowID": false,
			"Video":  video,
		})
	})
}

// UpdateVideo merge videoUrl vào tài liệu videos/{id} (POST /update_video/:id/)
func (h *AdminHandler) UpdateVideo(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")

		var input admindto.VideoUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.SetErrorNotice(c, err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		if err := h.videoService.Update(c.Context(), id, input); err != nil {
			basehdl.SetErrorNotice(c, "Không thể cập nhật video: "+err.Error())
			return basehdl.RedirectToDashboard(c)
		}

		logger.WithRequest(c).Infof("Đã cập nhật video %s", id)
		basehdl.SetSuccessNotice(c, "Đã cập nhật video")
		return basehdl.RedirectToDashboard(c)
	})
}
