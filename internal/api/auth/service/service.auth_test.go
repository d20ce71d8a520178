package authsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"qrscanner_admin/internal/common"
)

// fakeVerifier trả về UID cố định hoặc lỗi, thay cho Firebase trong test
type fakeVerifier struct {
	uid string
	err error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.uid, nil
}

// TestLoginIssuesValidSession kiểm tra đăng nhập thành công phát hành session hợp lệ
func TestLoginIssuesValidSession(t *testing.T) {
	service := NewAuthService(&fakeVerifier{uid: "admin-1"}, "test-secret", time.Hour, []string{"admin-1"})

	token, err := service.Login(context.Background(), "some-id-token")
	if err != nil {
		t.Fatalf("Login thất bại: %v", err)
	}

	uid, err := service.ValidateSession(token)
	if err != nil {
		t.Fatalf("ValidateSession thất bại: %v", err)
	}
	if uid != "admin-1" {
		t.Errorf("UID không khớp: %q", uid)
	}
}

// TestLoginRejectsUnlistedUID kiểm tra UID ngoài allowlist bị từ chối
func TestLoginRejectsUnlistedUID(t *testing.T) {
	service := NewAuthService(&fakeVerifier{uid: "stranger"}, "test-secret", time.Hour, []string{"admin-1"})

	_, err := service.Login(context.Background(), "some-id-token")
	if err == nil {
		t.Fatal("Login với UID ngoài allowlist phải bị từ chối")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusForbidden {
		t.Errorf("Lỗi phải có status 403, got %v", err)
	}
}

// TestLoginEmptyAllowlistAcceptsAnyVerifiedUID kiểm tra allowlist rỗng cho phép
// mọi tài khoản đã xác thực
func TestLoginEmptyAllowlistAcceptsAnyVerifiedUID(t *testing.T) {
	service := NewAuthService(&fakeVerifier{uid: "anyone"}, "test-secret", time.Hour, nil)

	if _, err := service.Login(context.Background(), "some-id-token"); err != nil {
		t.Errorf("Allowlist rỗng phải cho phép tài khoản đã xác thực, got %v", err)
	}
}

// TestLoginRejectsInvalidIDToken kiểm tra ID token hỏng bị từ chối
func TestLoginRejectsInvalidIDToken(t *testing.T) {
	service := NewAuthService(&fakeVerifier{err: errors.New("bad token")}, "test-secret", time.Hour, nil)

	_, err := service.Login(context.Background(), "broken")
	if err == nil {
		t.Fatal("ID token hỏng phải bị từ chối")
	}

	if _, err := service.Login(context.Background(), ""); !errors.Is(err, common.ErrTokenMissing) {
		t.Errorf("ID token rỗng phải trả về ErrTokenMissing, got %v", err)
	}
}

// TestValidateSessionRejectsTampering kiểm tra session bị sửa hoặc sai secret bị từ chối
func TestValidateSessionRejectsTampering(t *testing.T) {
	service := NewAuthService(&fakeVerifier{uid: "admin-1"}, "test-secret", time.Hour, nil)
	other := NewAuthService(&fakeVerifier{uid: "admin-1"}, "other-secret", time.Hour, nil)

	token, err := service.Login(context.Background(), "some-id-token")
	if err != nil {
		t.Fatalf("Login thất bại: %v", err)
	}

	if _, err := other.ValidateSession(token); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token ký bằng secret khác phải bị từ chối, got %v", err)
	}
	if _, err := service.ValidateSession(token + "x"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token bị sửa phải bị từ chối, got %v", err)
	}
	if _, err := service.ValidateSession(""); !errors.Is(err, common.ErrTokenMissing) {
		t.Errorf("Token rỗng phải trả về ErrTokenMissing, got %v", err)
	}
}

// TestValidateSessionExpired kiểm tra session hết hạn trả về ErrTokenExpired
func TestValidateSessionExpired(t *testing.T) {
	service := NewAuthService(&fakeVerifier{uid: "admin-1"}, "test-secret", -time.Minute, nil)

	token, err := service.Login(context.Background(), "some-id-token")
	if err != nil {
		t.Fatalf("Login thất bại: %v", err)
	}

	if _, err := service.ValidateSession(token); !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("Session hết hạn phải trả về ErrTokenExpired, got %v", err)
	}
}
