package models

// AppConfigDocID là khóa của tài liệu singleton chứa cấu hình app
const AppConfigDocID = "appurl"

// AppConfig là tài liệu singleton App/appurl chứa URL tải ứng dụng.
// Tài liệu có thể chưa tồn tại; khi đó URL được coi là rỗng.
type AppConfig struct {
	ID  string `json:"id" bson:"_id"` // Luôn là "appurl"
	URL string `json:"url" bson:"url"` // URL tải ứng dụng
}
