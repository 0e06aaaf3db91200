package contract

import (
	"lexforge/internal/app/ds"
)

// Ключи статей в порядке следования
const (
	ArticleObject       = "objet"
	ArticleAuthorRights = "droits_auteur"
	ArticleImageRights  = "droit_image"
	ArticleDuration     = "duree_territoire"
	ArticleSupports     = "supports"
	ArticleRemuneration = "remuneration"
	ArticleWarranties   = "garanties"
	ArticleTermination  = "resiliation"
	ArticleMisc         = "dispositions_diverses"
	ArticleLaw          = "loi_applicable"
)

var articleOrder = []string{
	ArticleObject,
	ArticleAuthorRights,
	ArticleImageRights,
	ArticleDuration,
	ArticleSupports,
	ArticleRemuneration,
	ArticleWarranties,
	ArticleTermination,
	ArticleMisc,
	ArticleLaw,
}

type Option func(*Builder)

// WithDefaultCessionnaire заменяет контрагента по умолчанию. Пустое имя игнорируется.
func WithDefaultCessionnaire(c Counterparty) Option {
	return func(b *Builder) {
		if c.Name != "" {
			b.cessionnaire = c
		}
	}
}

// Builder собирает договор из шаблонов. Без состояния между вызовами,
// безопасен для конкурентного использования.
type Builder struct {
	cessionnaire Counterparty
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{cessionnaire: Tellers}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// plan какие статьи и разделы войдут в договор и под какими номерами.
// Считается до генерации текста, чтобы ссылки "article N" совпадали с нумерацией.
type plan struct {
	req       ds.ContractRequest
	author    bool
	image     bool
	free      bool
	exclusive bool
	rights    []Right
	articles  map[string]int
	keys      []string
	objectSec map[string]int
}

func newPlan(req ds.ContractRequest) *plan {
	p := &plan{
		req:       req,
		author:    req.IsAuthor(),
		image:     req.IsImage(),
		free:      req.IsFree(),
		exclusive: req.EffectiveExclusive(),
		rights:    SelectedRights(req.EffectiveRights()),
		articles:  make(map[string]int, len(articleOrder)),
		objectSec: make(map[string]int, 3),
	}
	for _, key := range articleOrder {
		if key == ArticleAuthorRights && !p.author || key == ArticleImageRights && !p.image {
			continue
		}
		p.keys = append(p.keys, key)
		p.articles[key] = len(p.keys)
	}
	n := 0
	for _, key := range []string{objectWork, objectImages, objectPurpose} {
		if key == objectWork && !p.author || key == objectImages && !p.image {
			continue
		}
		n++
		p.objectSec[key] = n
	}
	return p
}

func (p *plan) number(article string) int {
	return p.articles[article]
}

// Build собирает договор.
func (b *Builder) Build(req ds.ContractRequest) *Document {
	p := newPlan(req)

	doc := &Document{
		Title:      Title(req),
		Parties:    b.parties(req),
		Recitals:   recitals(req),
		Signatures: signatures(req),
	}

	for _, key := range p.keys {
		var a Article
		switch key {
		case ArticleObject:
			a = objectArticle(p)
		case ArticleAuthorRights:
			a = authorRightsArticle(p)
		case ArticleImageRights:
			a = imageRightsArticle(p)
		case ArticleDuration:
			a = durationArticle(p)
		case ArticleSupports:
			a = supportsArticle(p)
		case ArticleRemuneration:
			a = remunerationArticle(p)
		case ArticleWarranties:
			a = warrantiesArticle(p)
		case ArticleTermination:
			a = terminationArticle(p)
		case ArticleMisc:
			a = miscArticle(p)
		case ArticleLaw:
			a = lawArticle(p)
		}
		a.Key = key
		number(&a, p.number(key))
		doc.Articles = append(doc.Articles, a)
	}
	return doc
}

// number проставляет номера: статья N, разделы N.1, N.2, подразделы N.2.1 ...
// Буквы пунктов идут подряд через все подразделы одного раздела.
func number(a *Article, n int) {
	a.Number = n
	for i := range a.Sections {
		numberSection(&a.Sections[i], itoa(n)+"."+itoa(i+1), a.Key)
	}
}

func numberSection(s *Section, num, parent string) {
	s.Number = num
	if s.Key == "" {
		s.Key = parent + "." + num
	} else {
		s.Key = parent + "." + s.Key
	}
	letters := 0
	for i := range s.Items {
		s.Items[i].Letter = letter(letters)
		letters++
	}
	for i := range s.Subsections {
		sub := &s.Subsections[i]
		numberSection(sub, num+"."+itoa(i+1), s.Key)
		for j := range sub.Items {
			sub.Items[j].Letter = letter(letters)
			letters++
		}
	}
}

// Title заголовок договора по выбранным типам
func Title(req ds.ContractRequest) string {
	switch {
	case req.IsCombined():
		return "CONTRAT DE CESSION DE DROITS D'AUTEUR ET DE DROITS À L'IMAGE"
	case req.IsAuthor():
		return "CONTRAT DE CESSION DE DROITS D'AUTEUR"
	default:
		return "CONTRAT DE CESSION DE DROITS À L'IMAGE"
	}
}

func signatures(req ds.ContractRequest) Signatures {
	label := "Pour le Modèle :"
	switch {
	case req.IsCombined():
		label = "Pour l'Auteur et Modèle :"
	case req.IsAuthor():
		label = "Pour l'Auteur :"
	}
	return Signatures{
		PlaceDate:         "Fait à ________________, le ________________",
		Copies:            "En deux exemplaires originaux, dont un pour chaque Partie.",
		GrantorLabel:      label,
		GrantorHint:       placeholderName,
		CessionnaireLabel: "Pour le Cessionnaire :",
		CessionnaireHint:  "[Nom, Prénom et qualité]",
		Mention:           "Signature précédée de la mention",
		Approval:          "« Lu et approuvé »",
	}
}
