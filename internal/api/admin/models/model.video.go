package models

// Video đại diện cho một video được quản lý trên dashboard.
// VideoID là trường suy diễn từ VideoURL, không lưu trong store.
type Video struct {
	ID       string `json:"id" bson:"_id"`             // Khóa tài liệu (composite id)
	VideoURL string `json:"videoUrl" bson:"videoUrl"`  // URL video gốc
	VideoID  string `json:"videoId,omitempty" bson:"-"` // YouTube video id (suy diễn, có thể rỗng)
}
