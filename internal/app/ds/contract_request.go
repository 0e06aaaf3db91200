package ds

import "strings"

const (
	ContractTypeAuthor = "Auteur (droits d'auteur)"
	ContractTypeImage  = "Image (droit à l'image)"

	CessionFree = "Gratuite"
	CessionPaid = "Onéreuse"

	AuthorPhysical = "Personne physique"
	AuthorLegal    = "Personne morale"
)

// ContractRequest ответы анкеты. Одна и та же структура идёт на сборку договора
// и сохраняется как есть.
type ContractRequest struct {
	ContractTypes    []string `json:"type_contrat" binding:"omitempty,dive,contract_type"`
	CessionMode      string   `json:"type_cession" binding:"omitempty,cession_mode"`
	AuthorType       string   `json:"auteur_type" binding:"omitempty,author_type"`
	AuthorInfo       Party    `json:"auteur_info"`
	WorkDescription  string   `json:"description_oeuvre"`
	ImageDescription string   `json:"description_image"`
	Supports         []string `json:"supports"`
	AdditionalRights []string `json:"droits_cedes"`
	Remuneration     string   `json:"remuneration"`
	Exclusive        bool     `json:"exclusivite"`
	CessionnaireInfo Party    `json:"cessionnaire_info,omitempty"`
	CompanyInfo      Party    `json:"entreprise_info,omitempty"`
}

func (r ContractRequest) HasType(t string) bool {
	for _, ct := range r.ContractTypes {
		if ct == t {
			return true
		}
	}
	return false
}

func (r ContractRequest) IsAuthor() bool {
	return r.HasType(ContractTypeAuthor)
}

// IsImage истинно и тогда, когда не выбран ни один тип: пустой выбор
// даёт договор о праве на изображение.
func (r ContractRequest) IsImage() bool {
	return r.HasType(ContractTypeImage) || !r.IsAuthor()
}

func (r ContractRequest) IsCombined() bool {
	return r.IsAuthor() && r.IsImage()
}

func (r ContractRequest) IsFree() bool {
	return r.CessionMode == "" || r.CessionMode == CessionFree
}

// EffectiveExclusive безвозмездная уступка никогда не бывает исключительной
func (r ContractRequest) EffectiveExclusive() bool {
	return r.Exclusive && !r.IsFree()
}

// EffectiveRights дополнительные права только для возмездной уступки
func (r ContractRequest) EffectiveRights() []string {
	if r.IsFree() {
		return nil
	}
	return r.AdditionalRights
}

func (r ContractRequest) IsLegalPerson() bool {
	return r.AuthorType == AuthorLegal
}

// Cessionnaire возвращает указанного контрагента или nil, если нужен контрагент по умолчанию
func (r ContractRequest) Cessionnaire() Party {
	if r.CessionnaireInfo.Get("nom") != "" {
		return r.CessionnaireInfo
	}
	if r.CompanyInfo.Get("nom") != "" {
		return r.CompanyInfo
	}
	return nil
}

// WithDefaults копия анкеты с явными значениями вместо пустых:
// изображение, безвозмездная уступка, физическое лицо
func (r ContractRequest) WithDefaults() ContractRequest {
	if len(r.ContractTypes) == 0 {
		r.ContractTypes = []string{ContractTypeImage}
	}
	if r.CessionMode == "" {
		r.CessionMode = CessionFree
	}
	if r.AuthorType == "" {
		r.AuthorType = AuthorPhysical
	}
	return r
}

func IsKnownContractType(s string) bool {
	return s == ContractTypeAuthor || s == ContractTypeImage
}

func IsKnownCessionMode(s string) bool {
	return s == CessionFree || s == CessionPaid
}

func IsKnownAuthorType(s string) bool {
	return s == AuthorPhysical || s == AuthorLegal
}

// NormalizeCivility приводит обращение к "M." или "Mme"
func NormalizeCivility(s string) string {
	switch strings.ToLower(strings.TrimSpace(strings.TrimSuffix(s, "."))) {
	case "mme", "madame", "mlle":
		return "Mme"
	case "", "m", "monsieur", "mr":
		return "M."
	}
	return strings.TrimSpace(s)
}
