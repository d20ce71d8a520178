// Package views cung cấp engine render template cho Fiber.
// Các template HTML được nhúng vào binary qua embed để deploy chỉ cần một file.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Engine triển khai interface fiber.Views trên html/template
type Engine struct {
	templates *template.Template
}

// NewEngine tạo mới một Engine (template được parse khi Fiber gọi Load)
func NewEngine() *Engine {
	return &Engine{}
}

// Load parse toàn bộ template đã nhúng. Fiber gọi hàm này một lần khi khởi động.
func (e *Engine) Load() error {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("không thể parse template: %w", err)
	}
	e.templates = templates
	return nil
}

// Render thực thi template theo tên file (ví dụ "dashboard.html")
func (e *Engine) Render(w io.Writer, name string, binding interface{}, layouts ...string) error {
	if e.templates == nil {
		if err := e.Load(); err != nil {
			return err
		}
	}
	return e.templates.ExecuteTemplate(w, name, binding)
}
