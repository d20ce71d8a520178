package admindto

// UserCreateInput dữ liệu form khi thêm mới user
type UserCreateInput struct {
	ID   string `form:"id" json:"id" validate:"required,no_xss"`
	Name string `form:"name" json:"name" validate:"required,no_xss"`
	Role string `form:"role" json:"role" validate:"required,no_xss"`
}

// UserUpdateInput dữ liệu form khi cập nhật user (khóa lấy từ URL)
type UserUpdateInput struct {
	Name string `form:"name" json:"name" validate:"required,no_xss"`
	Role string `form:"role" json:"role" validate:"required,no_xss"`
}

// VideoCreateInput dữ liệu form khi thêm mới video
type VideoCreateInput struct {
	ID       string `form:"id" json:"id" validate:"required,no_xss"`
	VideoURL string `form:"video_url" json:"videoUrl" validate:"required,no_xss"`
}

// VideoUpdateInput dữ liệu form khi cập nhật video (khóa lấy từ URL)
type VideoUpdateInput struct {
	VideoURL string `form:"video_url" json:"videoUrl" validate:"required,no_xss"`
}

// AppURLInput dữ liệu form khi cập nhật URL tải app
type AppURLInput struct {
	URL string `form:"app_url" json:"appUrl" validate:"required,no_xss"`
}

// UserFilter các bộ lọc substring (không phân biệt hoa thường, AND) cho bảng user
type UserFilter struct {
	ID   string `query:"user_filter_id"`
	Name string `query:"user_filter_name"`
	Role string `query:"user_filter_role"`
}

// VideoFilter bộ lọc substring cho bảng video
type VideoFilter struct {
	ID string `query:"video_filter_id"`
}
