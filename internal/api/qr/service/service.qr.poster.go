// Package qrsvc sinh poster QR dưới dạng tài liệu PDF một trang (khổ A4).
// Poster gồm QR chính (nội dung nhập từ dashboard), QR phụ trỏ đến URL tải
// app với badge ở giữa, logo góc phải trên và footer thời gian sinh.
package qrsvc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"

	adminsvc "qrscanner_admin/internal/api/admin/service"
	"qrscanner_admin/internal/common"
)

// Hằng số bố cục poster (đơn vị point, gốc tọa độ góc trái trên của trang A4)
const (
	headerFontSize = 24
	headerBaseline = 160

	mainQRSize   = 300.0
	mainQRScale  = 10 // pixel mỗi module của QR chính
	borderMargin = 10.0

	appQRSize      = 100.0
	appQRScale     = 5 // pixel mỗi module của QR phụ
	appQRGap       = 180.0
	appBorderSize  = 110.0
	badgeRatio     = 0.2 // badge chiếm 20% bề rộng pixel của QR phụ
	captionOffset  = 20.0

	logoSize      = 70.0
	logoRightPad  = 15.0
	logoTopPad    = 8.0
	footerBottom  = 30.0
)

// PosterService sinh poster QR. URL tải app được đọc từ tài liệu singleton
// App/appurl tại thời điểm sinh poster.
type PosterService struct {
	appConfigService *adminsvc.AppConfigService
	badgePath        string
	logoPath         string
}

// NewPosterService tạo mới PosterService.
// badgePath và logoPath là đường dẫn tới hai file PNG trong config.
func NewPosterService(appConfigService *adminsvc.AppConfigService, badgePath, logoPath string) *PosterService {
	return &PosterService{
		appConfigService: appConfigService,
		badgePath:        badgePath,
		logoPath:         logoPath,
	}
}

// GeneratePoster sinh tài liệu PDF cho nội dung qrText.
// qrText rỗng bị từ chối trước khi chạm tới store hay thư viện render.
func (s *PosterService) GeneratePoster(ctx context.Context, qrText string) ([]byte, error) {
	if qrText == "" {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Chưa nhập nội dung cho QR code",
			common.StatusBadRequest,
			nil,
		)
	}

	mainPNG, err := encodeQRPNG(qrText, mainQRScale)
	if err != nil {
		return nil, renderError("mã hóa QR chính", err)
	}

	appURL, err := s.appConfigService.GetURL(ctx)
	if err != nil {
		return nil, err
	}
	appPNG, err := s.buildAppQR(appURL)
	if err != nil {
		return nil, err
	}

	logoPNG, err := os.ReadFile(s.logoPath)
	if err != nil {
		return nil, renderError("đọc file logo", err)
	}

	return composePDF(qrText, mainPNG, appPNG, logoPNG, time.Now())
}

// buildAppQR mã hóa URL tải app và ghép badge vào giữa symbol.
// Khi chưa có URL app thì payload là một dấu cách (thư viện QR
// không mã hóa được chuỗi rỗng), nên symbol quét ra " ".
func (s *PosterService) buildAppQR(appURL string) ([]byte, error) {
	payload := appURL
	if payload == "" {
		// thư viện không mã hóa được chuỗi rỗng
		payload = " "
	}

	code, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, renderError("mã hóa QR app", err)
	}
	qrImg := code.Image(-appQRScale)

	badgeFile, err := os.Open(s.badgePath)
	if err != nil {
		return nil, renderError("đọc file badge", err)
	}
	defer badgeFile.Close()

	badge, _, err := image.Decode(badgeFile)
	if err != nil {
		return nil, renderError("decode file badge", err)
	}

	combined := overlayBadge(qrImg, badge)

	var buf bytes.Buffer
	if err := png.Encode(&buf, combined); err != nil {
		return nil, renderError("encode QR app", err)
	}
	return buf.Bytes(), nil
}

// encodeQRPNG mã hóa nội dung thành PNG với error correction Low,
// kích thước version tự chọn theo độ dài nội dung.
// Quiet zone luôn là 4 module (cố định trong thư viện), nên phần
// vẽ được của symbol hơi nhỏ hơn so với khung chứa trên trang.
func encodeQRPNG(content string, moduleScale int) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code.Image(-moduleScale)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// overlayBadge resize badge về 20% bề rộng của symbol rồi ghép vào giữa
func overlayBadge(qrImg image.Image, badge image.Image) image.Image {
	bounds := qrImg.Bounds()
	size := bounds.Dx()
	badgeSize := int(float64(size) * badgeRatio)

	scaled := image.NewRGBA(image.Rect(0, 0, badgeSize, badgeSize))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), badge, badge.Bounds(), xdraw.Over, nil)

	combined := image.NewRGBA(bounds)
	xdraw.Draw(combined, bounds, qrImg, bounds.Min, xdraw.Src)

	offset := (size - badgeSize) / 2
	target := image.Rect(offset, offset, offset+badgeSize, offset+badgeSize)
	xdraw.Draw(combined, target, scaled, image.Point{}, xdraw.Over)

	return combined
}

// composePDF dựng trang A4 với bố cục cố định của poster
func composePDF(qrText string, mainPNG, appPNG, logoPNG []byte, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	pngOpts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("main_qr", pngOpts, bytes.NewReader(mainPNG))
	pdf.RegisterImageOptionsReader("app_qr", pngOpts, bytes.NewReader(appPNG))
	pdf.RegisterImageOptionsReader("logo", pngOpts, bytes.NewReader(logoPNG))

	// Header: nội dung QR, đậm, xanh đậm, căn giữa
	pdf.SetFont("Helvetica", "B", headerFontSize)
	pdf.SetTextColor(0, 0, 139)
	drawCentered(pdf, pageW, headerBaseline, qrText)

	// QR chính với khung xám
	mainX := (pageW - mainQRSize) / 2
	mainTop := (pageH-mainQRSize)/2 - 90
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(2)
	pdf.Rect(mainX-borderMargin, mainTop-borderMargin, mainQRSize+2*borderMargin, mainQRSize+2*borderMargin, "D")
	pdf.ImageOptions("main_qr", mainX, mainTop, mainQRSize, mainQRSize, false, pngOpts, 0, "")

	// QR app với khung xám nhỏ hơn, nằm dưới QR chính
	appX := (pageW - appQRSize) / 2
	appTop := mainTop + mainQRSize + appQRGap
	borderX := (pageW - appBorderSize) / 2
	pdf.Rect(borderX, appTop-5, appBorderSize, appBorderSize, "D")
	pdf.ImageOptions("app_qr", appX, appTop, appQRSize, appQRSize, false, pngOpts, 0, "")

	// Nhãn dưới QR app
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	drawCentered(pdf, pageW, appTop+appQRSize+captionOffset, "Download Our App")

	// Logo góc phải trên (PNG giữ kênh alpha)
	pdf.ImageOptions("logo", pageW-logoSize-logoRightPad, logoTopPad, logoSize, logoSize, false, pngOpts, 0, "")

	// Footer thời gian sinh
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(128, 128, 128)
	footer := "Generated on: " + generatedAt.Format("2006-01-02 15:04:05")
	drawCentered(pdf, pageW, pageH-footerBottom, footer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, renderError("xuất PDF", err)
	}
	return buf.Bytes(), nil
}

// drawCentered vẽ chuỗi căn giữa theo chiều ngang với baseline tại y
func drawCentered(pdf *fpdf.Fpdf, pageW, y float64, text string) {
	textW := pdf.GetStringWidth(text)
	pdf.Text((pageW-textW)/2, y, text)
}

func renderError(step string, err error) error {
	return common.NewError(
		common.ErrCodeRender,
		fmt.Sprintf("Không thể sinh poster QR (%s): %v", step, err),
		common.StatusInternalServerError,
		err.Error(),
	)
}
