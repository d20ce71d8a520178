// Package adminhdl chứa các handler của dashboard quản trị
package adminhdl

import (
	"github.com/gofiber/fiber/v3"

	admindto "qrscanner_admin/internal/api/admin/dto"
	adminsvc "qrscanner_admin/internal/api/admin/service"
	basehdl "qrscanner_admin/internal/api/base/handler"
	"qrscanner_admin/internal/logger"
)

// AdminHandler xử lý các route CRUD của dashboard
type AdminHandler struct {
	userService      *adminsvc.UserService
	videoService     *adminsvc.VideoService
	appConfigService *adminsvc.AppConfigService
}

// NewAdminHandler tạo mới AdminHandler với các service được inject
func NewAdminHandler(userService *adminsvc.UserService, videoService *adminsvc.VideoService, appConfigService *adminsvc.AppConfigService) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		videoService:     videoService,
		appConfigService: appConfigService,
	}
}

// dashboardFilters giữ lại giá trị filter đang áp dụng để render lại vào form
type dashboardFilters struct {
	UserID   string
	UserName string
	UserRole string
	VideoID  string
}

// Dashboard render trang chính với hai bảng đã lọc và URL app hiện tại (GET /).
// Mọi lần đọc store đều được guard: lỗi store hiển thị notice lỗi
// thay vì làm hỏng cả trang.
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userFilter := admindto.UserFilter{
			ID:   c.Query("user_filter_id"),
			Name: c.Query("user_filter_name"),
			Role: c.Query("user_filter_role"),
		}
		videoFilter := admindto.VideoFilter{
			ID: c.Query("video_filter_id"),
		}

		notices := basehdl.PopNotices(c)

		users, err := h.userService.List(c.Context(), userFilter)
		if err != nil {
			logger.WithRequest(c).Errorf("Không thể tải danh sách user: %v", err)
			notices = append(notices, basehdl.Notice{Level: "error", Message: "Không thể tải danh sách user: " + err.Error()})
		}

		videos, err := h.videoService.List(c.Context(), videoFilter)
		if err != nil {
			logger.WithRequest(c).Errorf("Không thể tải danh sách video: %v", err)
			notices = append(notices, basehdl.Notice{Level: "error", Message: "Không thể tải danh sách video: " + err.Error()})
		}

		appURL, err := h.appConfigService.GetURL(c.Context())
		if err != nil {
			logger.WithRequest(c).Errorf("Không thể tải URL app: %v", err)
			notices = append(notices, basehdl.Notice{Level: "error", Message: "Không thể tải URL app: " + err.Error()})
		}

		return c.Render("dashboard.html", fiber.Map{
			"Notices": notices,
			"Users":   users,
			"Videos":  videos,
			"AppURL":  appURL,
			"Filters": dashboardFilters{
				UserID:   userFilter.ID,
				UserName: userFilter.Name,
				UserRole: userFilter.Role,
				VideoID:  videoFilter.ID,
			},
		})
	})
}

// DashboardPost xử lý các form xóa trên trang chính (POST /).
// Form gửi lên một trong hai action: delete_user (kèm user_id)
// hoặc delete_video (kèm video_id).
func (h *AdminHandler) DashboardPost(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		switch {
		case c.FormValue("delete_user") != "":
			userID := c.FormValue("user_id")
			if userID == "" {
				basehdl.SetErrorNotice(c, "Thiếu user_id")
				return basehdl.RedirectToDashboard(c)
			}
			if err := h.userService.Delete(c.Context(), userID); err != nil {
				basehdl.SetErrorNotice(c, "Không thể xóa user: "+err.Error())
				return basehdl.RedirectToDashboard(c)
			}
			logger.WithRequest(c).Infof("Đã xóa user %s", userID)
			basehdl.SetSuccessNotice(c, "Đã xóa user")

		case c.FormValue("delete_video") != "":
			videoID := c.FormValue("video_id")
			if videoID == "" {
				basehdl.SetErrorNotice(c, "Thiếu video_id")
				return basehdl.RedirectToDashboard(c)
			}
			if err := h.videoService.Delete(c.Context(), videoID); err != nil {
				basehdl.SetErrorNotice(c, "Không thể xóa video: "+err.Error())
				return basehdl.RedirectToDashboard(c)
			}
			logger.WithRequest(c).Infof("Đã xóa video %s", videoID)
			basehdl.SetSuccessNotice(c, "Đã xóa video")

		default:
			basehdl.SetErrorNotice(c, "Thao tác không được hỗ trợ")
		}
		return basehdl.RedirectToDashboard(c)
	})
}
