// Package authsvc xử lý đăng nhập admin: xác thực Firebase ID token
// và phát hành session token cho dashboard.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"

	"qrscanner_admin/internal/common"
)

// TokenVerifier xác thực một Firebase ID token và trả về UID của người dùng.
// Interface để test có thể thay bằng verifier giả.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// FirebaseVerifier triển khai TokenVerifier trên Firebase Admin SDK
type FirebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier tạo verifier trên một Firebase Auth client đã khởi tạo
func NewFirebaseVerifier(client *firebaseauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// VerifyIDToken xác thực ID token với Firebase và trả về UID
func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %v", err)
	}
	return token.UID, nil
}

// AuthService phát hành và kiểm tra session token của dashboard
type AuthService struct {
	verifier   TokenVerifier
	jwtSecret  []byte
	sessionTTL time.Duration
	adminUIDs  map[string]struct{}
}

// NewAuthService tạo mới AuthService.
// adminUIDs là danh sách UID được phép đăng nhập; danh sách rỗng cho phép
// mọi tài khoản Firebase đã xác thực.
func NewAuthService(verifier TokenVerifier, jwtSecret string, sessionTTL time.Duration, adminUIDs []string) *AuthService {
	allow := make(map[string]struct{}, len(adminUIDs))
	for _, uid := range adminUIDs {
		if uid != "" {
			allow[uid] = struct{}{}
		}
	}
	return &AuthService{
		verifier:   verifier,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		adminUIDs:  allow,
	}
}

// Login xác thực ID token, kiểm tra allowlist rồi phát hành session token (HS256)
func (s *AuthService) Login(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", common.ErrTokenMissing
	}

	uid, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeAuthToken,
			common.MsgTokenInvalid,
			common.StatusUnauthorized,
			err.Error(),
		)
	}

	if _, ok := s.adminUIDs[uid]; len(s.adminUIDs) > 0 && !ok {
		return "", common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản không có quyền truy cập dashboard",
			common.StatusForbidden,
			nil,
		)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không thể ký session token: %v", err),
			common.StatusInternalServerError,
			nil,
		)
	}
	return signed, nil
}

// ValidateSession kiểm tra session token và trả về UID nếu hợp lệ
func (s *AuthService) ValidateSession(tokenString string) (string, error) {
	if tokenString == "" {
		return "", common.ErrTokenMissing
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenInvalid
	}
	return claims.Subject, nil
}

// SessionTTL trả về thời gian sống của session (dùng khi set cookie)
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
