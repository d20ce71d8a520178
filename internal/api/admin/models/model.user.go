package models

// User đại diện cho một người dùng của ứng dụng mobile.
// Khóa tài liệu (_id) là định danh thiết bị/người dùng do app sinh ra.
type User struct {
	ID   string `json:"id" bson:"_id"`   // Khóa tài liệu
	Name string `json:"name" bson:"name"` // Tên hiển thị
	Role string `json:"role" bson:"role"` // Vai trò (admin, viewer, ...)
}
