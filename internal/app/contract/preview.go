package contract

import (
	"fmt"
	"strings"

	"lexforge/internal/app/ds"
)

// Preview краткое изложение договора для экрана. Номера статей те же, что в Build.
func (b *Builder) Preview(req ds.ContractRequest) string {
	p := newPlan(req)

	var out strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&out, format, args...)
		out.WriteString("\n")
	}
	heading := func(key, title string) {
		line("Article %d – %s", p.number(key), title)
	}
	consideration := "gratuitement"
	if !p.free {
		consideration = fmt.Sprintf("moyennant la rémunération précisée à l'article %d", p.number(ArticleRemuneration))
	}

	line("%s\n", Title(req))
	for _, para := range b.parties(req) {
		line("%s\n", para)
	}

	heading(ArticleObject, "OBJET")
	if p.author {
		line("L'Auteur déclare être le créateur et titulaire exclusif des droits d'auteur sur l'œuvre suivante : %s.",
			orPlaceholder(Sanitize(req.WorkDescription), placeholderWork))
	}
	if p.image {
		line("Le Modèle autorise l'utilisation et l'exploitation de son image telle qu'elle apparaît dans les photographies/vidéos suivantes : %s.",
			orPlaceholder(Sanitize(req.ImageDescription), placeholderImages))
	}
	switch {
	case p.author && p.image:
		line("Par le présent contrat, l'Auteur cède au Cessionnaire certains droits sur son œuvre, et le Modèle autorise l'exploitation de son image, dans les conditions définies ci-après.\n")
	case p.author:
		line("Par le présent contrat, l'Auteur cède au Cessionnaire certains droits sur son œuvre dans les conditions définies ci-après.\n")
	default:
		line("Par le présent contrat, le Modèle autorise l'exploitation de son image dans les conditions définies ci-après.\n")
	}

	if p.author {
		heading(ArticleAuthorRights, "ÉTENDUE DES DROITS CÉDÉS")
		line("L'Auteur cède au Cessionnaire, %s, pour la durée précisée à l'article %d et %s, les droits patrimoniaux suivants :\n",
			exclusivity(p.exclusive), p.number(ArticleDuration), consideration)
		line("- Le droit de reproduction")
		line("- Le droit de représentation")
		if !p.free {
			for _, r := range p.rights {
				line("- %s", r.Summary)
			}
		}
		out.WriteString("\n")
		if p.exclusive {
			line("Pendant la durée de la présente cession, l'Auteur s'engage à ne pas céder les mêmes droits à des tiers et à ne pas exploiter lui-même l'œuvre selon les modalités cédées au Cessionnaire.\n")
		} else {
			line("La présente cession étant non exclusive, l'Auteur conserve le droit d'exploiter l'œuvre et de céder les mêmes droits à des tiers.\n")
		}
	}

	if p.image {
		heading(ArticleImageRights, "AUTORISATION D'EXPLOITATION DE L'IMAGE")
		line("Le Modèle autorise le Cessionnaire à fixer, reproduire et communiquer au public son image. "+
			"Cette autorisation est consentie %s, %s, pour la durée et sur le territoire mentionnés à l'article %d.\n",
			exclusivity(p.exclusive), consideration, p.number(ArticleDuration))
		line("Le Cessionnaire s'engage expressément à ne pas porter atteinte à la dignité, à l'honneur ou à la réputation du Modèle. " +
			"Les parties s'engagent mutuellement à ne pas tenir de propos dénigrants l'une envers l'autre.\n")
		if p.exclusive {
			line("Le Modèle s'engage à ne pas autoriser l'exploitation de son image à des tiers pendant la durée du présent contrat.\n")
		} else {
			line("La présente autorisation étant non exclusive, le Modèle conserve le droit d'autoriser l'exploitation de son image à des tiers.\n")
		}
	}

	heading(ArticleDuration, "DURÉE ET TERRITOIRE")
	line("Durée : 1 an, renouvelable par tacite reconduction")
	line("Territoire : %s\n", DefaultTerritory)

	heading(ArticleSupports, "SUPPORTS D'EXPLOITATION")
	line("Supports autorisés : %s\n", strings.Join(EnsureDefaultSupports(req.Supports), ", "))

	heading(ArticleRemuneration, "RÉMUNÉRATION")
	if p.free {
		line("La présente cession est consentie à titre gratuit.\n")
	} else {
		line("Rémunération : %s\n", orPlaceholder(Sanitize(req.Remuneration), placeholderRemuneration))
	}

	heading(ArticleWarranties, "GARANTIES")
	heading(ArticleTermination, "RÉSILIATION")
	heading(ArticleMisc, "DISPOSITIONS DIVERSES")
	heading(ArticleLaw, "LOI APPLICABLE ET JURIDICTION COMPÉTENTE")
	out.WriteString("\n")

	sig := signatures(req)
	line("%s\n", sig.PlaceDate)
	out.WriteString(strings.TrimRight(twoColumns(
		strings.TrimSuffix(strings.TrimPrefix(sig.GrantorLabel, "Pour "), " :"),
		"le Cessionnaire",
	), "\n"))
	return out.String()
}
