package qrsvc

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	adminmodels "qrscanner_admin/internal/api/admin/models"
	adminsvc "qrscanner_admin/internal/api/admin/service"
	basesvc "qrscanner_admin/internal/api/base/service"
)

// writeTestPNG ghi một file PNG nhỏ có kênh alpha dùng làm badge/logo trong test
func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: 200, B: 80, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Không thể tạo file PNG test: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Không thể encode PNG test: %v", err)
	}
}

func newPosterService(t *testing.T) (*PosterService, *adminsvc.AppConfigService) {
	t.Helper()
	dir := t.TempDir()
	badgePath := filepath.Join(dir, "badge.png")
	logoPath := filepath.Join(dir, "logo.png")
	writeTestPNG(t, badgePath)
	writeTestPNG(t, logoPath)

	appConfig := adminsvc.NewAppConfigService(basesvc.NewMemoryDocumentService[adminmodels.AppConfig]())
	return NewPosterService(appConfig, badgePath, logoPath), appConfig
}

// TestGeneratePosterRejectsEmptyText kiểm tra nội dung rỗng bị từ chối
// trước khi chạm tới store hay thư viện render
func TestGeneratePosterRejectsEmptyText(t *testing.T) {
	service, _ := newPosterService(t)

	pdf, err := service.GeneratePoster(context.Background(), "")
	if err == nil {
		t.Fatal("Nội dung rỗng phải bị từ chối")
	}
	if pdf != nil {
		t.Error("Không được trả về tài liệu khi nội dung rỗng")
	}
}

// TestGeneratePosterProducesPDF kiểm tra poster sinh ra là tài liệu PDF hợp lệ
func TestGeneratePosterProducesPDF(t *testing.T) {
	service, appConfig := newPosterService(t)
	ctx := context.Background()

	if err := appConfig.SetURL(ctx, "https://example.com/app"); err != nil {
		t.Fatalf("SetURL thất bại: %v", err)
	}

	pdf, err := service.GeneratePoster(ctx, "device-42")
	if err != nil {
		t.Fatalf("GeneratePoster thất bại: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("Kết quả phải là tài liệu PDF, 8 byte đầu: %q", pdf[:min(8, len(pdf))])
	}
}

// TestGeneratePosterWithoutAppURL kiểm tra poster vẫn sinh được khi
// tài liệu App/appurl chưa tồn tại
func TestGeneratePosterWithoutAppURL(t *testing.T) {
	service, _ := newPosterService(t)

	pdf, err := service.GeneratePoster(context.Background(), "device-42")
	if err != nil {
		t.Fatalf("GeneratePoster không có app URL thất bại: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Kết quả phải là tài liệu PDF")
	}
}

// TestGeneratePosterMissingAssets kiểm tra thiếu file badge/logo cho lỗi rõ ràng
func TestGeneratePosterMissingAssets(t *testing.T) {
	appConfig := adminsvc.NewAppConfigService(basesvc.NewMemoryDocumentService[adminmodels.AppConfig]())
	service := NewPosterService(appConfig, "/nonexistent/badge.png", "/nonexistent/logo.png")

	if _, err := service.GeneratePoster(context.Background(), "device-42"); err == nil {
		t.Error("Thiếu file asset phải trả về lỗi")
	}
}
