package contract

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Document собранный договор. Номера статей и разделов проставлены.
// Абзац может содержать строки "- ...", они выводятся списком.
type Document struct {
	Title      string     `json:"title"`
	Parties    []string   `json:"parties"`
	Recitals   []string   `json:"recitals"`
	Articles   []Article  `json:"articles"`
	Signatures Signatures `json:"signatures"`
}

type Article struct {
	Number   int       `json:"number"`
	Key      string    `json:"key"`
	Heading  string    `json:"heading"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Number      string    `json:"number"`
	Key         string    `json:"key"`
	Heading     string    `json:"heading"`
	Paragraphs  []string  `json:"paragraphs,omitempty"`
	Items       []Item    `json:"items,omitempty"`
	Subsections []Section `json:"subsections,omitempty"`
}

// Item пункт с буквой: a) Droit de reproduction
type Item struct {
	Letter     string   `json:"letter"`
	Key        string   `json:"key"`
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
}

type Signatures struct {
	PlaceDate         string `json:"place_date"`
	Copies            string `json:"copies"`
	GrantorLabel      string `json:"grantor_label"`
	GrantorHint       string `json:"grantor_hint"`
	CessionnaireLabel string `json:"cessionnaire_label"`
	CessionnaireHint  string `json:"cessionnaire_hint"`
	Mention           string `json:"mention"`
	Approval          string `json:"approval"`
}

const (
	recitalsHeading = "PRÉAMBULE"
	closingLine     = "CECI EXPOSÉ, IL A ÉTÉ CONVENU CE QUI SUIT :"
	signatureColumn = 57
)

func (a Article) Title() string {
	return fmt.Sprintf("ARTICLE %d – %s", a.Number, a.Heading)
}

func (s Section) Title() string {
	return s.Number + " " + s.Heading
}

func (i Item) Title() string {
	return i.Letter + ") " + i.Heading
}

// Article возвращает статью по ключу.
func (d *Document) Article(key string) (Article, bool) {
	for _, a := range d.Articles {
		if a.Key == key {
			return a, true
		}
	}
	return Article{}, false
}

// SectionKeys ключи всех разделов, в том числе вложенных, в порядке документа.
// Этими ключами адресуются правки из редактора.
func (d *Document) SectionKeys() []string {
	var keys []string
	var walk func([]Section)
	walk = func(sections []Section) {
		for _, s := range sections {
			keys = append(keys, s.Key)
			walk(s.Subsections)
		}
	}
	for _, a := range d.Articles {
		walk(a.Sections)
	}
	return keys
}

// ApplyElements заменяет текст разделов отредактированным текстом.
// Абзацы в правке разделяются пустой строкой. Неизвестные ключи игнорируются.
func (d *Document) ApplyElements(elements map[string]string) {
	if len(elements) == 0 {
		return
	}
	var walk func([]Section)
	walk = func(sections []Section) {
		for i := range sections {
			if text, ok := elements[sections[i].Key]; ok {
				sections[i].Paragraphs = splitParagraphs(text)
				sections[i].Items = nil
				sections[i].Subsections = nil
				continue
			}
			walk(sections[i].Subsections)
		}
	}
	for i := range d.Articles {
		walk(d.Articles[i].Sections)
	}
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Text текстовое представление договора. Для одинакового входа результат
// совпадает побайтно.
func (d *Document) Text() string {
	var b strings.Builder
	para := func(s string) {
		b.WriteString(s)
		b.WriteString("\n\n")
	}

	para(d.Title)
	para("ENTRE LES SOUSSIGNÉS :")
	for _, p := range d.Parties {
		para(p)
	}
	para(recitalsHeading)
	for _, p := range d.Recitals {
		para(p)
	}
	para(closingLine)

	var section func(Section)
	section = func(s Section) {
		para(s.Title())
		for _, p := range s.Paragraphs {
			para(p)
		}
		for _, it := range s.Items {
			para(it.Title())
			for _, p := range it.Paragraphs {
				para(p)
			}
		}
		for _, sub := range s.Subsections {
			section(sub)
		}
	}
	for _, a := range d.Articles {
		para(a.Title())
		for _, s := range a.Sections {
			section(s)
		}
	}

	sig := d.Signatures
	para(sig.PlaceDate)
	para(sig.Copies)
	b.WriteString(twoColumns(sig.GrantorLabel, sig.CessionnaireLabel))
	b.WriteString(twoColumns(sig.GrantorHint, sig.CessionnaireHint))
	b.WriteString(twoColumns(sig.Mention, sig.Mention))
	b.WriteString(twoColumns(sig.Approval, sig.Approval))
	return b.String()
}

func twoColumns(left, right string) string {
	pad := signatureColumn - utf8.RuneCountInString(left)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right + "\n"
}
