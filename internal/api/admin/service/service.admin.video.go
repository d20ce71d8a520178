package adminsvc

import (
	"context"
	"regexp"
	"sort"
	"strings"

	admindto "qrscanner_admin/internal/api/admin/dto"
	"qrscanner_admin/internal/api/admin/models"
	basesvc "qrscanner_admin/internal/api/base/service"
)

// Pattern trích xuất YouTube video id từ hai dạng URL được hỗ trợ
var (
	watchIDPattern   = regexp.MustCompile(`v=([^&]+)`)
	shortIDPattern   = regexp.MustCompile(`youtu\.be/([^?]+)`)
)

// ExtractVideoID trích xuất YouTube video id từ URL.
// Hỗ trợ dạng youtube.com/watch (tham số v, cắt tại '&') và dạng rút gọn
// youtu.be (phần path, cắt tại '?'). URL dạng khác trả về chuỗi rỗng.
func ExtractVideoID(videoURL string) string {
	if strings.Contains(videoURL, "youtube.com/watch") {
		if m := watchIDPattern.FindStringSubmatch(videoURL); m != nil {
			return m[1]
		}
		return ""
	}
	if strings.Contains(videoURL, "youtu.be/") {
		if m := shortIDPattern.FindStringSubmatch(videoURL); m != nil {
			return m[1]
		}
	}
	return ""
}

// VideoService quản lý collection videos
type VideoService struct {
	store basesvc.DocumentService[models.Video]
}

// NewVideoService tạo mới VideoService trên store được inject
func NewVideoService(store basesvc.DocumentService[models.Video]) *VideoService {
	return &VideoService{store: store}
}

// List lấy toàn bộ videos, áp bộ lọc substring theo khóa rồi gắn VideoID suy diễn
func (s *VideoService) List(ctx context.Context, filter admindto.VideoFilter) ([]models.Video, error) {
	videos, err := s.store.Stream(ctx)
	if err != nil {
		return nil, err
	}

	filtered := videos[:0]
	for _, v := range videos {
		if !containsFold(v.ID, filter.ID) {
			continue
		}
		v.VideoID = ExtractVideoID(v.VideoURL)
		filtered = append(filtered, v)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })
	return filtered, nil
}

// Create ghi đè toàn bộ tài liệu videos/{id} (tạo mới nếu chưa có)
func (s *VideoService) Create(ctx context.Context, input admindto.VideoCreateInput) error {
	video := models.Video{
		ID:       input.ID,
		VideoURL: input.VideoURL,
	}
	return s.store.Set(ctx, input.ID, video)
}

// Get lấy một video theo khóa, kèm VideoID suy diễn
func (s *VideoService) Get(ctx context.Context, id string) (models.Video, error) {
	video, err := s.store.Get(ctx, id)
	if err != nil {
		return video, err
	}
	video.VideoID = ExtractVideoID(video.VideoURL)
	return video, nil
}

// Update merge videoUrl vào tài liệu videos/{id} đã tồn tại
func (s *VideoService) Update(ctx context.Context, id string, input admindto.VideoUpdateInput) error {
	return s.store.Update(ctx, id, map[string]interface{}{
		"videoUrl": input.VideoURL,
	})
}

// Delete xóa videos/{id}; xóa khóa không tồn tại vẫn thành công
func (s *VideoService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
