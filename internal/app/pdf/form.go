package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FieldBox область страницы подписей в миллиметрах от левого верхнего угла области текста
type FieldBox struct {
	Name      string
	Tip       string
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Multiline bool
}

// signatureFields общая раскладка для HTML-рамок и полей формы
var signatureFields = []FieldBox{
	{Name: "lieu", Tip: "Lieu de signature", X: 0, Y: 14, Width: 75, Height: 8},
	{Name: "date", Tip: "Date de signature", X: 85, Y: 14, Width: 75, Height: 8},
	{Name: "mention_cedant", Tip: "Mention « Lu et approuvé »", X: 0, Y: 72, Width: 75, Height: 10},
	{Name: "mention_cessionnaire", Tip: "Mention « Lu et approuvé »", X: 85, Y: 72, Width: 75, Height: 10},
	{Name: "signature_cedant", Tip: "Signature de %s", X: 0, Y: 86, Width: 75, Height: 30, Multiline: true},
	{Name: "signature_cessionnaire", Tip: "Signature du Cessionnaire", X: 85, Y: 86, Width: 75, Height: 30, Multiline: true},
}

// Парафы в нижнем поле страницы, координаты от левого верхнего угла листа
const (
	paraphWidth  = 20
	paraphHeight = 8
	paraphTop    = A4Height - 6 - paraphHeight
)

// FormField поле AcroForm в пунктах PDF, начало координат в левом нижнем углу
type FormField struct {
	Name      string
	Tip       string
	Page      int
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Multiline bool
	Border    bool
}

// grantorName "Pour l'Auteur :" -> "l'Auteur"
func grantorName(label string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(label), "Pour "), " :")
	if name == "" {
		return "le Cédant"
	}
	return name
}

func pageField(name, tip string, page int, x, y, w, h float64) FormField {
	return FormField{
		Name:   name,
		Tip:    tip,
		Page:   page,
		X:      mmToPoints(x),
		Y:      mmToPoints(A4Height - y - h),
		Width:  mmToPoints(w),
		Height: mmToPoints(h),
	}
}

// FormFields поля подписей на последней странице и парафы на всех предыдущих
func FormFields(pageCount int, grantorLabel string) []FormField {
	pageCount = max(pageCount, 1)
	grantor := grantorName(grantorLabel)

	fields := make([]FormField, 0, len(signatureFields)+2*(pageCount-1))
	for page := 1; page < pageCount; page++ {
		n := strconv.Itoa(page)
		cedant := pageField("paraphe_cedant_"+n, fmt.Sprintf("Paraphe %s - page %d", grantor, page),
			page, ContractMargins.Left, paraphTop, paraphWidth, paraphHeight)
		cessionnaire := pageField("paraphe_cessionnaire_"+n, fmt.Sprintf("Paraphe Cessionnaire - page %d", page),
			page, A4Width-ContractMargins.Right-paraphWidth, paraphTop, paraphWidth, paraphHeight)
		cedant.Border, cessionnaire.Border = true, true
		fields = append(fields, cedant, cessionnaire)
	}

	for _, box := range signatureFields {
		tip := box.Tip
		if strings.Contains(tip, "%s") {
			tip = fmt.Sprintf(tip, grantor)
		}
		f := pageField(box.Name, tip, pageCount,
			ContractMargins.Left+box.X, ContractMargins.Top+box.Y, box.Width, box.Height)
		f.Multiline = box.Multiline
		fields = append(fields, f)
	}
	return fields
}

// Описание полей в формате pdfcpu create
type formSpec struct {
	Paper  string              `json:"paper"`
	Origin string              `json:"origin"`
	Pages  map[string]formPage `json:"pages"`
}

type formPage struct {
	Content formContent `json:"content"`
}

type formContent struct {
	TextFields []formTextField `json:"textfield"`
}

type formTextField struct {
	ID        string      `json:"id"`
	Tip       string      `json:"tip,omitempty"`
	Pos       [2]float64  `json:"pos"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height,omitempty"`
	Multiline bool        `json:"multiline,omitempty"`
	Font      formFont    `json:"font"`
	Border    *formBorder `json:"border,omitempty"`
}

type formFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type formBorder struct {
	Width int    `json:"width"`
	Color string `json:"col"`
}

func formJSON(fields []FormField) ([]byte, error) {
	spec := formSpec{Paper: "A4P", Origin: "LowerLeft", Pages: map[string]formPage{}}
	for _, f := range fields {
		key := strconv.Itoa(f.Page)
		page := spec.Pages[key]
		tf := formTextField{
			ID:        f.Name,
			Tip:       f.Tip,
			Pos:       [2]float64{f.X, f.Y},
			Width:     f.Width,
			Height:    f.Height,
			Multiline: f.Multiline,
			Font:      formFont{Name: "Helvetica", Size: 10},
		}
		if f.Border {
			tf.Border = &formBorder{Width: 1, Color: "#888888"}
		}
		page.Content.TextFields = append(page.Content.TextFields, tf)
		spec.Pages[key] = page
	}
	return json.Marshal(spec)
}

// FormWriter добавляет поля формы в готовый PDF и возвращает число страниц
type FormWriter interface {
	AddFields(pdfData []byte, grantorLabel string) ([]byte, int, error)
}

// PdfcpuForms пишет AcroForm средствами pdfcpu
type PdfcpuForms struct {
	// конфигурация на каждый вызов: pdfcpu меняет ее во время работы
	newConfig func() *model.Configuration
}

func NewPdfcpuForms() *PdfcpuForms {
	api.DisableConfigDir()
	return &PdfcpuForms{newConfig: model.NewDefaultConfiguration}
}

func (f *PdfcpuForms) AddFields(pdfData []byte, grantorLabel string) ([]byte, int, error) {
	pages, err := api.PageCount(bytes.NewReader(pdfData), f.newConfig())
	if err != nil {
		return nil, 0, NewRenderError(ErrCodeFormFailed, "read rendered pdf", err)
	}

	spec, err := formJSON(FormFields(pages, grantorLabel))
	if err != nil {
		return nil, 0, NewRenderError(ErrCodeFormFailed, "encode form fields", err)
	}

	var out bytes.Buffer
	if err = api.Create(bytes.NewReader(pdfData), bytes.NewReader(spec), &out, f.newConfig()); err != nil {
		return nil, 0, NewRenderError(ErrCodeFormFailed, "add form fields", err)
	}
	return out.Bytes(), pages, nil
}
