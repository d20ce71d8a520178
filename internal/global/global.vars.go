package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"qrscanner_admin/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Users  string // Tên collection cho người dùng của app (key = device id)
	Videos string // Tên collection cho video
	App    string // Tên collection cho cấu hình app (document singleton "appurl")
}

// Các biến toàn cục
var Validate *validator.Validate                  // Biến để xác thực dữ liệu
var ColNames CollectionName = CollectionName{}    // Tên các collection

// RegistryCollections chứa các collections đã đăng ký lúc khởi động,
// dùng cho các thành phần cần tra cứu collection theo tên (tests, bootstrap).
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
