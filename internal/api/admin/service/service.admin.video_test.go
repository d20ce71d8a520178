package adminsvc

import (
	"context"
	"testing"

	admindto "qrscanner_admin/internal/api/admin/dto"
	"qrscanner_admin/internal/api/admin/models"
	basesvc "qrscanner_admin/internal/api/base/service"
)

// TestExtractVideoID kiểm tra trích xuất YouTube video id từ các dạng URL
func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "dạng watch với tham số phụ",
			url:  "https://www.youtube.com/watch?v=ABC123&t=42s",
			want: "ABC123",
		},
		{
			name: "dạng watch không có tham số phụ",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "dạng rút gọn với query",
			url:  "https://youtu.be/XYZ789?si=share",
			want: "XYZ789",
		},
		{
			name: "dạng rút gọn không có query",
			url:  "https://youtu.be/XYZ789",
			want: "XYZ789",
		},
		{
			name: "URL không được hỗ trợ",
			url:  "https://vimeo.com/123456",
			want: "",
		},
		{
			name: "chuỗi rỗng",
			url:  "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractVideoID(tc.url); got != tc.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

// TestVideoListDecoratesVideoID kiểm tra List gắn VideoID suy diễn cho từng video
func TestVideoListDecoratesVideoID(t *testing.T) {
	store := basesvc.NewMemoryDocumentService[models.Video]()
	service := NewVideoService(store)
	ctx := context.Background()

	service.Create(ctx, admindto.VideoCreateInput{ID: "v1", VideoURL: "https://www.youtube.com/watch?v=ABC123&t=1"})
	service.Create(ctx, admindto.VideoCreateInput{ID: "v2", VideoURL: "https://example.com/clip"})

	videos, err := service.List(ctx, admindto.VideoFilter{})
	if err != nil {
		t.Fatalf("List thất bại: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("List phải trả về 2 video, got %d", len(videos))
	}
	if videos[0].ID != "v1" || videos[0].VideoID != "ABC123" {
		t.Errorf("Video v1 phải có VideoID suy diễn ABC123: %+v", videos[0])
	}
	if videos[1].VideoID != "" {
		t.Errorf("URL không được hỗ trợ phải cho VideoID rỗng: %+v", videos[1])
	}
}

// TestVideoListFilterByID kiểm tra bộ lọc substring theo khóa
func TestVideoListFilterByID(t *testing.T) {
	store := basesvc.NewMemoryDocumentService[models.Video]()
	service := NewVideoService(store)
	ctx := context.Background()

	service.Create(ctx, admindto.VideoCreateInput{ID: "device1_clip1", VideoURL: "https://youtu.be/a"})
	service.Create(ctx, admindto.VideoCreateInput{ID: "device2_clip1", VideoURL: "https://youtu.be/b"})

	videos, err := service.List(ctx, admindto.VideoFilter{ID: "DEVICE1"})
	if err != nil {
		t.Fatalf("List thất bại: %v", err)
	}
	if len(videos) != 1 || videos[0].ID != "device1_clip1" {
		t.Errorf("Bộ lọc phải không phân biệt hoa thường và khớp substring: %+v", videos)
	}
}
