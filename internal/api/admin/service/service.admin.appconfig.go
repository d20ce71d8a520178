package adminsvc

import (
	"context"
	"errors"

	"qrscanner_admin/internal/api/admin/models"
	basesvc "qrscanner_admin/internal/api/base/service"
	"qrscanner_admin/internal/common"
)

// AppConfigService quản lý tài liệu singleton App/appurl
type AppConfigService struct {
	store basesvc.DocumentService[models.AppConfig]
}

// NewAppConfigService tạo mới AppConfigService trên store được inject
func NewAppConfigService(store basesvc.DocumentService[models.AppConfig]) *AppConfigService {
	return &AppConfigService{store: store}
}

// GetURL trả về URL tải app hiện tại.
// Tài liệu chưa tồn tại là trạng thái hợp lệ: trả về chuỗi rỗng, không lỗi.
func (s *AppConfigService) GetURL(ctx context.Context) (string, error) {
	doc, err := s.store.Get(ctx, models.AppConfigDocID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return doc.URL, nil
}

// SetURL ghi đè toàn bộ tài liệu App/appurl với URL mới
func (s *AppConfigService) SetURL(ctx context.Context, url string) error {
	doc := models.AppConfig{
		ID:  models.AppConfigDocID,
		URL: url,
	}
	return s.store.Set(ctx, models.AppConfigDocID, doc)
}
