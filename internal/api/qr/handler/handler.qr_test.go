package qrhdl_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminmodels "qrscanner_admin/internal/api/admin/models"
	adminsvc "qrscanner_admin/internal/api/admin/service"
	authsvc "qrscanner_admin/internal/api/auth/service"
	basesvc "qrscanner_admin/internal/api/base/service"
	"qrscanner_admin/internal/api/middleware"
	qrhdl "qrscanner_admin/internal/api/qr/handler"
	qrrouter "qrscanner_admin/internal/api/qr/router"
	qrsvc "qrscanner_admin/internal/api/qr/service"
)

type staticVerifier struct{ uid string }

func (v *staticVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	return v.uid, nil
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 180, B: 90, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newQRTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	badgePath := filepath.Join(dir, "badge.png")
	logoPath := filepath.Join(dir, "logo.png")
	writeTestPNG(t, badgePath)
	writeTestPNG(t, logoPath)

	appConfig := adminsvc.NewAppConfigService(basesvc.NewMemoryDocumentService[adminmodels.AppConfig]())
	require.NoError(t, appConfig.SetURL(context.Background(), "https://example.com/app"))

	posterService := qrsvc.NewPosterService(appConfig, badgePath, logoPath)
	authService := authsvc.NewAuthService(&staticVerifier{uid: "admin-1"}, "test-secret", time.Hour, nil)
	session, err := authService.Login(context.Background(), "fake-id-token")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	qrrouter.Register(app, qrhdl.NewQRHandler(posterService), middleware.RequireSession(authService))

	return app, middleware.SessionCookieName + "=" + session
}

// TestGenerateQRCodeReturnsInlinePDF kiểm tra response PDF với header đúng
func TestGenerateQRCodeReturnsInlinePDF(t *testing.T) {
	app, cookie := newQRTestApp(t)

	form := url.Values{"qr_text": {"device-42"}}
	req := httptest.NewRequest(http.MethodPost, "/generate_qr_code/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", cookie)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `inline; filename="qr_code.pdf"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"), "Body phải là tài liệu PDF")
}

// TestGenerateQRCodeEmptyTextRedirects kiểm tra qr_text rỗng quay về dashboard
func TestGenerateQRCodeEmptyTextRedirects(t *testing.T) {
	app, cookie := newQRTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/generate_qr_code/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", cookie)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

// TestGenerateQRCodeRequiresSession kiểm tra route được bảo vệ bởi session
func TestGenerateQRCodeRequiresSession(t *testing.T) {
	app, _ := newQRTestApp(t)

	form := url.Values{"qr_text": {"device-42"}}
	req := httptest.NewRequest(http.MethodPost, "/generate_qr_code/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login/", resp.Header.Get("Location"))
}
