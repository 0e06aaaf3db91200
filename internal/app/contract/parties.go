package contract

import (
	"fmt"
	"strings"

	"lexforge/internal/app/ds"
)

const (
	placeholderName    = "[Nom, Prénom]"
	placeholderCompany = "[Dénomination sociale]"
)

// describePhysical "M. DUPONT Jean, né(e) le ... à ..., de nationalité ..., domicilié(e) au ..., joignable à ..."
func describePhysical(info ds.Party, withContact bool) string {
	name := joinNonEmpty(" ", strings.ToUpper(info.Get("nom")), info.Get("prenom"))
	text := ds.NormalizeCivility(info.Get("gentille")) + " " + orPlaceholder(name, placeholderName)

	if birth := info.Get("date_naissance"); birth != "" {
		text += ", né(e) le " + birth
		if place := info.Get("lieu_naissance"); place != "" {
			text += " à " + place
		}
	}
	if nat := info.Get("nationalite"); nat != "" {
		text += ", de nationalité " + nat
	}
	if addr := addressLine(info.Get("adresse"), info.Get("code_postal"), info.Get("ville")); addr != "" {
		text += ", domicilié(e) au " + addr
	}
	if contact := info.Get("contact"); withContact && contact != "" {
		text += ", joignable à " + contact
	}
	return text
}

// describeLegal описание юрлица. prefix "La société " для Cédant, пустой для Cessionnaire.
func describeLegal(info ds.Party, prefix string, withContact bool) string {
	text := prefix + orPlaceholder(info.First("nom_societe", "nom"), placeholderCompany)

	if form := info.First("statut", "forme_juridique"); form != "" {
		text += ", " + form
	}
	if capital := info.Get("capital"); capital != "" {
		text += ", au capital de " + capital
	}
	if siren := info.First("siren", "rcs"); siren != "" {
		if city := info.Get("rcs_ville"); city != "" {
			text += fmt.Sprintf(", immatriculée sous le numéro %s R.C.S %s", siren, city)
		} else {
			text += fmt.Sprintf(", immatriculée sous le numéro %s au Registre du Commerce et des Sociétés", siren)
		}
	}
	if addr := addressLine(info.First("adresse", "siege"), info.Get("code_postal"), info.Get("ville")); addr != "" {
		text += ", dont le siège social est situé au " + addr
	}

	repName := strings.ToUpper(info.First("representant_nom", "representant"))
	repFirst := info.Get("representant_prenom")
	quality := info.Get("qualite_representant")
	if (repName != "" || repFirst != "") && quality != "" {
		rep := joinNonEmpty(" ", ds.NormalizeCivility(info.Get("representant_civilite")), repName, repFirst)
		text += fmt.Sprintf(", représentée par %s, en sa qualité de %s", rep, quality)
	}
	if contact := info.Get("contact"); withContact && contact != "" {
		text += ", joignable à " + contact
	}
	return text
}

// Describe текст контрагента по умолчанию для преамбулы
func (c Counterparty) Describe() string {
	text := orPlaceholder(c.Name, placeholderCompany)
	if c.LegalForm != "" {
		text += ", " + c.LegalForm
	}
	if c.Capital != "" {
		text += " au capital de " + c.Capital
	}
	if c.Registration != "" {
		text += ", immatriculée sous le numéro " + c.Registration
	}
	if c.Seat != "" {
		text += ", et dont le siège social est situé au : " + c.Seat
	}
	if c.Representation != "" {
		text += ", " + c.Representation
	}
	return text
}

func grantorDenomination(req ds.ContractRequest) string {
	switch {
	case req.IsCombined():
		return `"l'Auteur et le Modèle"`
	case req.IsAuthor():
		return `"l'Auteur"`
	default:
		return `"le Modèle"`
	}
}

func (b *Builder) parties(req ds.ContractRequest) []string {
	var grantor string
	if req.IsLegalPerson() {
		grantor = describeLegal(req.AuthorInfo, "La société ", true)
	} else {
		grantor = describePhysical(req.AuthorInfo, true)
	}
	grantor += ", ci-après dénommé(e) " + grantorDenomination(req) + ","

	var cessionnaire string
	switch info := req.Cessionnaire(); {
	case info == nil:
		cessionnaire = b.cessionnaire.Describe()
	case info.Has("prenom"):
		cessionnaire = describePhysical(info, false)
	default:
		cessionnaire = describeLegal(info, "", false)
	}
	cessionnaire += `, ci-après dénommée "le Cessionnaire",`

	return []string{
		grantor,
		cessionnaire,
		`Ci-après dénommées ensemble "les Parties" ou individuellement "la Partie",`,
	}
}

func recitals(req ds.ContractRequest) []string {
	var intro string
	switch {
	case req.IsCombined():
		intro = "L'Auteur a créé une œuvre originale et est titulaire des droits d'auteur sur cette œuvre. " +
			"Il figure également en tant que Modèle dans des images ou vidéos qu'il souhaite inclure dans la présente cession. " +
			"Le Cessionnaire souhaite obtenir certains droits sur cette œuvre et sur l'image de l'Auteur/Modèle " +
			"afin de l'exploiter dans le cadre de ses activités."
	case req.IsAuthor():
		intro = "L'Auteur a créé une œuvre originale et est titulaire exclusif des droits d'auteur sur cette œuvre. " +
			"Le Cessionnaire souhaite obtenir certains droits sur cette œuvre afin de l'exploiter dans le cadre de ses activités."
	default:
		intro = "Le Modèle dispose de droits exclusifs sur son image et son apparence. " +
			"Le Cessionnaire souhaite obtenir l'autorisation d'utiliser et d'exploiter l'image du Modèle " +
			"dans le cadre de ses activités."
	}
	return []string{
		intro,
		"Après s'être présenté et avoir échangé sur les conditions de leur collaboration, les Parties ont convenu ce qui suit.",
	}
}
