package pdf

import (
	"bytes"
	"context"
	"time"
)

// Формат A4 в миллиметрах
const (
	A4Width  = 210
	A4Height = 297
)

// Margins поля страницы в миллиметрах
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// ContractMargins поля договора: 20 мм сверху и снизу, 25 мм слева и справа
var ContractMargins = Margins{Top: 20, Right: 25, Bottom: 20, Left: 25}

type RenderRequest struct {
	HTML    string
	Title   string
	Margins Margins
	// Timeout переопределяет таймаут рендерера
	Timeout time.Duration
}

type RenderResult struct {
	PDFData        []byte
	PageCount      int
	RenderDuration time.Duration
}

// PDFRenderer превращает HTML в PDF
type PDFRenderer interface {
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}

type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeRenderTimeout  = "RENDER_TIMEOUT"
	ErrCodeRenderFailed   = "RENDER_FAILED"
	ErrCodeInvalidHTML    = "INVALID_HTML"
	ErrCodeTemplateFailed = "TEMPLATE_FAILED"
	ErrCodeFormFailed     = "FORM_FAILED"
)

func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// estimatePageCount считает объекты /Type /Page без учёта корневого /Type /Pages
func estimatePageCount(pdfData []byte) int {
	count := bytes.Count(pdfData, []byte("/Type /Page"))
	count -= bytes.Count(pdfData, []byte("/Type /Pages"))
	return max(count, 1)
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}

func mmToPoints(mm float64) float64 {
	return mm * 72 / 25.4
}
