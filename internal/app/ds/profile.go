package ds

import "time"

const (
	EntityPhysicalPerson = "physical_person"
	EntityLegalEntity    = "legal_entity"
)

// UserProfile данные пользователя, которые подставляются как Cessionnaire
type UserProfile struct {
	UserID             string    `json:"user_id"`
	PhysicalPerson     Party     `json:"physical_person"`
	LegalEntity        Party     `json:"legal_entity"`
	SelectedEntityType string    `json:"selected_entity_type"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Selected сторона выбранного типа
func (p *UserProfile) Selected() Party {
	if p.SelectedEntityType == EntityLegalEntity {
		return p.LegalEntity
	}
	return p.PhysicalPerson
}

func (p *UserProfile) IsConfigured() bool {
	return p.Selected().Configured()
}

// Cessionnaire переводит выбранную сторону профиля в формат контрагента.
// У физлица всегда есть ключ prenom, у юрлица наименование лежит в nom.
func (p *UserProfile) Cessionnaire() Party {
	if !p.IsConfigured() {
		return nil
	}
	src := p.Selected()
	out := Party{}
	for k, v := range src {
		if k == "is_configured" {
			continue
		}
		out[k] = v
	}
	if p.SelectedEntityType == EntityLegalEntity {
		delete(out, "prenom")
		if out.Get("nom") == "" {
			out["nom"] = src.Get("nom_societe")
		}
		if !out.Has("adresse") && src.Has("siege") {
			out["adresse"] = src["siege"]
		}
		if !out.Has("representant_nom") && src.Has("representant") {
			out["representant_nom"] = src["representant"]
		}
		return out
	}
	if !out.Has("prenom") {
		out["prenom"] = ""
	}
	return out
}
