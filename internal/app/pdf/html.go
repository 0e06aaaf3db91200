package pdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"lexforge/internal/app/contract"
)

//go:embed templates/*.html
var templateFS embed.FS

// Block кусок абзаца: обычный текст или список из строк "- ..."
type Block struct {
	List  bool
	Lines []string
}

// blocks разбивает абзац на текст и списки
func blocks(paragraph string) []Block {
	var out []Block
	for _, line := range strings.Split(paragraph, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		item, isItem := strings.CutPrefix(line, "- ")
		if n := len(out); n > 0 && out[n-1].List == isItem {
			if isItem {
				out[n-1].Lines = append(out[n-1].Lines, item)
			} else {
				out[n-1].Lines = append(out[n-1].Lines, line)
			}
			continue
		}
		if isItem {
			out = append(out, Block{List: true, Lines: []string{item}})
		} else {
			out = append(out, Block{Lines: []string{line}})
		}
	}
	return out
}

// HTMLEngine рендерит договор в самостоятельную HTML-страницу
type HTMLEngine struct {
	tmpl *template.Template
}

func NewHTMLEngine() (*HTMLEngine, error) {
	funcs := template.FuncMap{
		"blocks": blocks,
		"upper":  strings.ToUpper,
		"mm":     func(v float64) string { return fmt.Sprintf("%gmm", v) },
	}
	tmpl, err := template.New("contract.html").Funcs(funcs).ParseFS(templateFS, "templates/contract.html")
	if err != nil {
		return nil, fmt.Errorf("parse contract template: %w", err)
	}
	return &HTMLEngine{tmpl: tmpl}, nil
}

type pageData struct {
	Doc     *contract.Document
	Margins Margins
	Fields  []FieldBox
}

func (e *HTMLEngine) Render(doc *contract.Document) (string, error) {
	var buf bytes.Buffer
	data := pageData{Doc: doc, Margins: ContractMargins, Fields: signatureFields}
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "execute contract template", err)
	}
	return buf.String(), nil
}

// Generator собирает HTML и печатает его в PDF
type Generator struct {
	engine   *HTMLEngine
	renderer PDFRenderer
	forms    FormWriter
}

type GeneratorOption func(*Generator)

// WithFormWriter добавляет в напечатанный PDF поля для подписей и парафов
func WithFormWriter(forms FormWriter) GeneratorOption {
	return func(g *Generator) {
		g.forms = forms
	}
}

func NewGenerator(engine *HTMLEngine, renderer PDFRenderer, opts ...GeneratorOption) *Generator {
	g := &Generator{engine: engine, renderer: renderer}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Generate(ctx context.Context, doc *contract.Document) (*RenderResult, error) {
	html, err := g.engine.Render(doc)
	if err != nil {
		return nil, err
	}
	result, err := g.renderer.Render(ctx, &RenderRequest{
		HTML:    html,
		Title:   doc.Title,
		Margins: ContractMargins,
	})
	if err != nil || g.forms == nil {
		return result, err
	}

	data, pages, err := g.forms.AddFields(result.PDFData, doc.Signatures.GrantorLabel)
	if err != nil {
		return nil, err
	}
	result.PDFData = data
	result.PageCount = pages
	return result, nil
}

func (g *Generator) Close() error {
	return g.renderer.Close()
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename имя файла для Content-Disposition: без диакритики, только ASCII,
// с расширением .pdf
func Filename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".pdf")
	name = contract.Fold(name)
	name = unsafeFilename.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	if name == "" {
		name = "contrat"
	}
	return name + ".pdf"
}
