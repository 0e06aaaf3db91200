package contract

import "lexforge/internal/app/ds"

const (
	DefaultDuration  = "un (1) an"
	DefaultRenewal   = "renouvellement par tacite reconduction pour des périodes successives d'un (1) an"
	DefaultTerritory = "monde entier"
)

// Справочники для мастера (GET /api/options)
var (
	ContractTypes = []string{ds.ContractTypeAuthor, ds.ContractTypeImage}
	CessionModes  = []string{ds.CessionFree, ds.CessionPaid}
	AuthorTypes   = []string{ds.AuthorPhysical, ds.AuthorLegal}
	Civilities    = []string{"M.", "Mme"}

	SupportOptions = []string{
		"Réseaux sociaux (Facebook, Instagram, Twitter, etc.)",
		"Applications mobiles",
		"Plateformes de diffusion vidéo (YouTube, Twitch, etc.)",
		"Supports imprimés (catalogues, flyers, affiches)",
		"Présentations lors d'événements",
		"Publicités en ligne",
		"Plateformes tierces (marketplaces, sites partenaires)",
		"Emails et newsletters",
	}

	// DefaultSupports всегда входят в договор
	DefaultSupports = []string{"site web", "Discord"}
)

// Right дополнительное имущественное право (только для возмездной уступки)
type Right struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Heading    string   `json:"-"`
	Summary    string   `json:"-"`
	Paragraphs []string `json:"-"`
}

var Rights = []Right{
	{
		Key:     "distribution",
		Label:   "distribution - droit de distribuer l'original ou les copies de l'œuvre au public",
		Heading: "Droit de distribution",
		Summary: "Le droit de distribution",
		Paragraphs: []string{
			"L'Auteur cède au Cessionnaire le droit de distribution qui s'entend comme le droit de mettre à disposition du public l'original de l'Œuvre ou ses copies, par la vente, la location, le prêt ou tout autre mode de mise à disposition. Ce droit comprend notamment :\n" +
				"- Le droit de vendre ou faire vendre, d'offrir à la vente tout ou partie de l'Œuvre ;\n" +
				"- Le droit de diffuser et de faire diffuser tout ou partie de l'Œuvre par tous moyens et sur tous supports ;\n" +
				"- Le droit de distribuer l'Œuvre à des fins commerciales ou non commerciales.",
		},
	},
	{
		Key:     "usage",
		Label:   "usage - droit d'utiliser l'œuvre pour les besoins du cessionnaire",
		Heading: "Droit d'usage",
		Summary: "Le droit d'usage",
		Paragraphs: []string{
			"L'Auteur cède au Cessionnaire le droit d'usage qui s'entend comme le droit d'utiliser l'Œuvre pour les besoins propres du Cessionnaire, notamment :\n" +
				"- Dans le cadre de ses activités professionnelles, commerciales ou promotionnelles ;\n" +
				"- À des fins d'illustration de ses services ou produits ;\n" +
				"- Pour toute communication interne ou externe en lien avec son activité ;\n" +
				"- Pour l'intégration dans ses outils, bases de données ou systèmes d'information.",
		},
	},
	{
		Key:     "adaptation",
		Label:   "adaptation - droit de modifier, transformer, traduire l'œuvre",
		Heading: "Droit d'adaptation",
		Summary: "Le droit d'adaptation",
		Paragraphs: []string{
			"L'Auteur cède au Cessionnaire le droit d'adaptation qui s'entend comme le droit de modifier, transformer, arranger, traduire l'Œuvre ou de l'incorporer dans toute autre œuvre ou création, notamment :\n" +
				"- Le droit de traduire tout ou partie de l'Œuvre en toutes langues ;\n" +
				"- Le droit d'adapter tout ou partie de l'Œuvre pour tous types de supports et formats ;\n" +
				"- Le droit de modifier le format, les couleurs, les dimensions de l'Œuvre ;\n" +
				"- Le droit d'intégrer tout ou partie de l'Œuvre au sein d'une œuvre composite ou collective ;\n" +
				"- Le droit de modifier tout ou partie de l'Œuvre nécessaire à des fins d'exploitation techniques.",
			"Ces adaptations seront réalisées dans le respect du droit moral de l'Auteur.",
		},
	},
	{
		Key:     "pret",
		Label:   "pret - droit de mettre l'œuvre à disposition pour un usage temporaire",
		Heading: "Droit de prêt",
		Summary: "Le droit de prêt",
		Paragraphs: []string{
			"L'Auteur cède au Cessionnaire le droit de prêt qui s'entend comme le droit de mettre l'Œuvre à disposition des utilisateurs pour un usage temporaire et non commercial :\n" +
				"- Le droit de prêter l'Œuvre ou ses reproductions à des tiers, à titre gratuit ;\n" +
				"- Le droit d'autoriser le prêt public de l'Œuvre ou de ses reproductions.",
		},
	},
	{
		Key:     "location",
		Label:   "location - droit de mettre l'œuvre à disposition contre rémunération",
		Heading: "Droit de location",
		Summary: "Le droit de location",
		Paragraphs: []string{
			"L'Auteur cède au Cessionnaire le droit de location qui s'entend comme le droit de mettre l'Œuvre à disposition des utilisateurs pour un usage temporaire et moyennant une contrepartie économique directe ou indirecte :\n" +
				"- Le droit de louer l'Œuvre ou ses reproductions à des tiers, à titre onéreux ;\n" +
				"- Le droit d'autoriser la location de l'Œuvre ou de ses reproductions.",
		},
	},
	{
		Key:     "suite",
		Label:   "suite - droit de percevoir un pourcentage lors de reventes (œuvres graphiques/plastiques uniquement)",
		Heading: "Droit de suite",
		Summary: "Le droit de suite (pour œuvres graphiques et plastiques)",
		Paragraphs: []string{
			"Les parties reconnaissent l'existence du droit de suite, qui s'applique aux œuvres graphiques et plastiques. " +
				"Conformément aux articles L. 122-8 et R. 122-1 à R. 122-12 du Code de la propriété intellectuelle, ce droit inaliénable permet à l'auteur d'une œuvre graphique ou plastique de percevoir un pourcentage sur le prix de revente de son œuvre lorsque intervient un professionnel du marché de l'art. " +
				"Les parties s'engagent à respecter les dispositions légales en vigueur concernant le droit de suite.",
		},
	},
}

// Counterparty контрагент по умолчанию, когда в анкете нет своего Cessionnaire
type Counterparty struct {
	Name           string `mapstructure:"name"`
	LegalForm      string `mapstructure:"legal_form"`
	Capital        string `mapstructure:"capital"`
	Registration   string `mapstructure:"registration"`
	Seat           string `mapstructure:"seat"`
	Representation string `mapstructure:"representation"`
}

var Tellers = Counterparty{
	Name:           "Tellers",
	LegalForm:      "société par actions simplifiée unipersonnelle",
	Capital:        "1000 €",
	Registration:   "932 553 266 R.C.S. Lyon",
	Seat:           "12 RUE DE LA PART-DIEU, 69003 LYON",
	Representation: "représentée par son Président en exercice dûment habilité à l'effet des présentes",
}
