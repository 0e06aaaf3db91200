package contract

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	objectWork    = "oeuvre"
	objectImages  = "images"
	objectPurpose = "objet"

	placeholderWork         = "[Description de l'œuvre à compléter]"
	placeholderImages       = "[Description des images à compléter]"
	placeholderRemuneration = "[Montant et modalités de la rémunération à compléter]"
)

func itoa(n int) string { return strconv.Itoa(n) }

// lines склеивает строки абзаца, строки "- " выводятся списком
func lines(l ...string) string { return strings.Join(l, "\n") }

func exclusivity(exclusive bool) string {
	if exclusive {
		return "à titre exclusif"
	}
	return "à titre non exclusif"
}

func objectArticle(p *plan) Article {
	a := Article{Heading: "OBJET DU CONTRAT"}

	if p.author {
		a.Sections = append(a.Sections, Section{
			Key:     objectWork,
			Heading: "Œuvre concernée",
			Paragraphs: []string{
				"L'Auteur déclare être le créateur et titulaire exclusif des droits d'auteur sur l'œuvre suivante (ci-après \"l'Œuvre\") :",
				orPlaceholder(Sanitize(p.req.WorkDescription), placeholderWork),
				"L'Auteur garantit que l'Œuvre présente un caractère original au sens de la législation sur le droit d'auteur et qu'il détient l'intégralité des droits nécessaires pour conclure le présent contrat.",
			},
		})
	}
	if p.image {
		a.Sections = append(a.Sections, Section{
			Key:     objectImages,
			Heading: "Images concernées",
			Paragraphs: []string{
				"Le Modèle autorise expressément l'utilisation et l'exploitation de son image telle qu'elle apparaît dans les photographies, vidéos ou autres supports visuels suivants (ci-après \"les Images\") :",
				orPlaceholder(Sanitize(p.req.ImageDescription), placeholderImages),
				"Le Modèle déclare être pleinement informé des implications de la présente autorisation et l'accorde en toute connaissance de cause.",
			},
		})
	}

	var purpose string
	switch {
	case p.author && p.image:
		purpose = lines(
			"Par le présent contrat :",
			"- L'Auteur cède au Cessionnaire certains droits d'exploitation sur l'Œuvre ;",
			"- Le Modèle autorise le Cessionnaire à exploiter son image ;",
			"Le tout dans les conditions et limites définies ci-après.",
		)
	case p.author:
		purpose = "Par le présent contrat, l'Auteur cède au Cessionnaire certains droits d'exploitation sur l'Œuvre, dans les conditions et limites définies ci-après."
	default:
		purpose = "Par le présent contrat, le Modèle autorise le Cessionnaire à exploiter son image, dans les conditions et limites définies ci-après."
	}
	a.Sections = append(a.Sections, Section{
		Key:     objectPurpose,
		Heading: "Objet de la cession",
		Paragraphs: []string{
			purpose,
			"Le présent contrat définit les modalités de cette cession, notamment en termes de droits cédés, de durée, d'étendue territoriale, de supports d'exploitation, ainsi que les obligations réciproques des Parties.",
		},
	})
	return a
}

func authorRightsArticle(p *plan) Article {
	consideration := "gratuitement"
	if !p.free {
		consideration = fmt.Sprintf("moyennant la rémunération précisée à l'article %d", p.number(ArticleRemuneration))
	}

	patrimonial := Section{
		Key:     "droits_patrimoniaux",
		Heading: "Droits patrimoniaux cédés",
		Subsections: []Section{{
			Key:     "droits_base",
			Heading: "Droits de base",
			Items: []Item{
				{
					Key:     "reproduction",
					Heading: "Droit de reproduction",
					Paragraphs: []string{lines(
						"L'Auteur cède au Cessionnaire le droit de reproduction qui s'entend comme le droit de reproduire ou de faire reproduire l'Œuvre :",
						"- Par tous procédés techniques connus ou inconnus à ce jour, notamment par impression, numérisation, enregistrement magnétique, optique, numérique ou électronique ;",
						"- Sur tous supports connus ou inconnus à ce jour, notamment papier, électronique, magnétique, optique, numérique, CD-ROM, DVD, disques durs, serveurs informatiques, réseaux, cloud ;",
						"- En tous formats ;",
						"- En autant d'exemplaires que le Cessionnaire le souhaitera, selon les besoins de son activité et les finalités précisées au présent contrat.",
					)},
				},
				{
					Key:     "representation",
					Heading: "Droit de représentation",
					Paragraphs: []string{lines(
						"L'Auteur cède au Cessionnaire le droit de représentation qui s'entend comme le droit de communiquer l'Œuvre au public :",
						"- Par tous moyens de diffusion connus ou inconnus à ce jour, notamment exposition, projection publique, transmission dans un lieu public de l'Œuvre télédiffusée, présentation au public sur écran accessible en ligne ;",
						"- Par tous procédés connus ou inconnus à ce jour, notamment par diffusion numérique en ligne sur Internet (sites web, réseaux sociaux, blogs, plateformes de partage, applications mobiles), diffusion par satellite, câble, réseaux informatiques, etc. ;",
						"- À destination de tout public, restreint ou non.",
					)},
				},
			},
		}},
	}
	if !p.free && len(p.rights) > 0 {
		extra := Section{Key: "droits_supplementaires", Heading: "Droits supplémentaires"}
		for _, r := range p.rights {
			extra.Items = append(extra.Items, Item{Key: r.Key, Heading: r.Heading, Paragraphs: r.Paragraphs})
		}
		patrimonial.Subsections = append(patrimonial.Subsections, extra)
	}

	var terms []string
	if p.exclusive {
		terms = []string{
			lines(
				"La présente cession est consentie à titre exclusif. En conséquence, pendant toute la durée du présent contrat :",
				"- L'Auteur s'interdit de céder à un tiers l'un quelconque des droits faisant l'objet de la présente cession ;",
				"- L'Auteur s'interdit d'exploiter lui-même l'Œuvre selon les modalités cédées au Cessionnaire.",
			),
			"Cette exclusivité constitue un élément essentiel du présent contrat, sans lequel le Cessionnaire n'aurait pas contracté.",
		}
	} else {
		terms = []string{lines(
			"La présente cession est consentie à titre non exclusif. En conséquence :",
			"- L'Auteur conserve le droit d'exploiter lui-même l'Œuvre et d'en autoriser l'exploitation par des tiers ;",
			"- L'Auteur s'engage toutefois à ne pas céder ces droits selon des modalités susceptibles de concurrencer directement et significativement l'exploitation par le Cessionnaire.",
		)}
	}

	return Article{
		Heading: "ÉTENDUE DES DROITS CÉDÉS",
		Sections: []Section{
			{
				Key:     "nature",
				Heading: "Nature de la cession",
				Paragraphs: []string{fmt.Sprintf(
					"L'Auteur cède au Cessionnaire, %s, pour la durée précisée à l'article %d et %s, les droits patrimoniaux détaillés ci-après.",
					exclusivity(p.exclusive), p.number(ArticleDuration), consideration,
				)},
			},
			patrimonial,
			{
				Key:     "droits_reserves",
				Heading: "Droits réservés",
				Paragraphs: []string{
					"Tous les droits non expressément cédés par le présent contrat demeurent la propriété exclusive de l'Auteur. " +
						"Toute exploitation non prévue au présent contrat devra faire l'objet d'un accord complémentaire entre les Parties.",
				},
			},
			{
				Key:        "modalites",
				Heading:    "Modalités d'exploitation",
				Paragraphs: terms,
			},
		},
	}
}

func imageRightsArticle(p *plan) Article {
	images := fmt.Sprintf("1.%d", p.objectSec[objectImages])

	consideration := "gratuitement"
	if !p.free {
		consideration = fmt.Sprintf("moyennant la rémunération précisée à l'article %d", p.number(ArticleRemuneration))
	}

	var exclusive Section
	if p.exclusive {
		exclusive = Section{
			Key:     "exclusivite",
			Heading: "Exclusivité",
			Paragraphs: []string{
				lines(
					"Compte tenu du caractère exclusif de la présente autorisation, le Modèle s'engage, pendant toute la durée du présent contrat :",
					"- À ne pas autoriser l'exploitation de son image telle que décrite à l'article "+images+" à des tiers ;",
					"- À ne pas utiliser ou exploiter lui-même son image dans des conditions similaires à celles autorisées au Cessionnaire.",
				),
				"Cette exclusivité constitue un élément essentiel du présent contrat, sans lequel le Cessionnaire n'aurait pas contracté.",
			},
		}
	} else {
		exclusive = Section{
			Key:     "exclusivite",
			Heading: "Non-exclusivité",
			Paragraphs: []string{
				"La présente autorisation étant non exclusive, le Modèle conserve le droit d'autoriser l'exploitation de son image à des tiers, " +
					"sous réserve que cela ne nuise pas directement aux intérêts légitimes du Cessionnaire.",
			},
		}
	}

	return Article{
		Heading: "AUTORISATION D'EXPLOITATION DE L'IMAGE",
		Sections: []Section{
			{
				Key:     "objet",
				Heading: "Objet de l'autorisation",
				Paragraphs: []string{
					"Le Modèle autorise expressément le Cessionnaire à fixer, reproduire, diffuser et exploiter son image telle qu'elle figure dans les supports visuels décrits à l'article " + images + ".",
					lines(
						"Cette autorisation comprend notamment :",
						"- Le droit de reproduire et faire reproduire les Images par tous procédés techniques connus ou inconnus à ce jour (photographie, imprimerie, numérisation, etc.) sur tous supports (papier, tissu, plastique, céramique, supports électroniques, optiques, magnétiques, numériques, etc.) et en tous formats ;",
						"- Le droit de représenter et faire représenter publiquement les Images par tous moyens de diffusion et de communication connus ou inconnus à ce jour, notamment exposition, télédiffusion, cinéma, Internet (sites web, réseaux sociaux, applications mobiles), affichage, projection publique, présentation au public, etc.",
					),
				},
			},
			{
				Key:     "conditions",
				Heading: "Conditions de l'autorisation",
				Paragraphs: []string{fmt.Sprintf(
					"La présente autorisation est consentie %s, %s, pour la durée et sur le territoire mentionnés à l'article %d.",
					exclusivity(p.exclusive), consideration, p.number(ArticleDuration),
				)},
			},
			{
				Key:     "restrictions",
				Heading: "Restrictions et engagements",
				Paragraphs: []string{
					lines(
						"Le Cessionnaire s'engage expressément à :",
						"- Ne pas porter atteinte à la dignité, à l'honneur ou à la réputation du Modèle ;",
						"- Ne pas utiliser les Images dans un contexte diffamatoire, pornographique, injurieux ou contraire aux bonnes mœurs ;",
						"- Ne pas associer les Images à des opinions politiques, religieuses ou idéologiques sans l'accord préalable et écrit du Modèle ;",
						"- Informer le Modèle, sur simple demande, des utilisations faites de son image.",
					),
					"Les parties s'engagent mutuellement à ne pas tenir de propos dénigrants l'une envers l'autre, que ce soit en public ou en privé, notamment sur les réseaux sociaux ou dans les médias.",
				},
			},
			exclusive,
		},
	}
}

func durationArticle(p *plan) Article {
	return Article{
		Heading: "DURÉE ET TERRITOIRE",
		Sections: []Section{
			{
				Key:     "duree",
				Heading: "Durée",
				Paragraphs: []string{
					"La présente cession est consentie pour une durée initiale de " + DefaultDuration + " à compter de la date de signature du présent contrat.",
					"Elle se renouvellera ensuite automatiquement par " + DefaultRenewal + ", " +
						"sauf dénonciation par l'une ou l'autre des Parties par lettre recommandée avec accusé de réception, " +
						"adressée à l'autre Partie au moins trois (3) mois avant l'expiration de la période en cours.",
				},
			},
			{
				Key:     "territoire",
				Heading: "Territoire",
				Paragraphs: []string{
					"La présente cession est consentie pour le " + DefaultTerritory + ", sans restriction géographique. " +
						"Cette étendue territoriale se justifie par la nature numérique et dématérialisée des services fournis par le Cessionnaire, " +
						"susceptibles d'être accessibles depuis n'importe quel point du globe, sans possibilité technique de limitation géographique efficace.",
				},
			},
		},
	}
}

func supportsArticle(p *plan) Article {
	var list []string
	for _, s := range EnsureDefaultSupports(p.req.Supports) {
		list = append(list, "- "+Sanitize(s))
	}
	return Article{
		Heading: "SUPPORTS D'EXPLOITATION",
		Sections: []Section{
			{
				Key:     "autorises",
				Heading: "Supports autorisés",
				Paragraphs: []string{
					"Le Cessionnaire est autorisé à exploiter l'œuvre et/ou l'image sur les supports suivants :",
					lines(list...),
				},
			},
			{
				Key:     "nature",
				Heading: "Nature des exploitations",
				Paragraphs: []string{lines(
					"Le Cessionnaire pourra notamment, sans que cette liste soit limitative :",
					"- Publier l'œuvre et/ou l'image sur son site web et ses plateformes numériques ;",
					"- Inclure l'œuvre et/ou l'image dans des communications internes ou externes ;",
					"- Utiliser l'œuvre et/ou l'image à des fins promotionnelles ou publicitaires ;",
					"- Intégrer l'œuvre et/ou l'image dans des créations dérivées en lien avec son activité ;",
					"- Partager l'œuvre et/ou l'image sur les réseaux sociaux et plateformes de partage.",
				)},
			},
			{
				Key:     "limitation",
				Heading: "Limitation d'usage",
				Paragraphs: []string{
					"Cette liste est limitative et le Cessionnaire s'engage à ne pas utiliser l'œuvre et/ou l'image sur d'autres supports " +
						"sans l'autorisation préalable et écrite du Cédant.",
					"Le Cessionnaire s'interdit expressément toute exploitation susceptible de porter atteinte à la dignité humaine, " +
						"à l'ordre public ou aux bonnes mœurs.",
				},
			},
		},
	}
}

// PaymentKind вид вознаграждения по ключевым словам в тексте
type PaymentKind int

const (
	PaymentGeneric PaymentKind = iota
	PaymentLumpSum
	PaymentProportional
)

func ClassifyRemuneration(text string) PaymentKind {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "forfaitaire") || strings.Contains(text, "€") || strings.Contains(lower, "euros"):
		return PaymentLumpSum
	case strings.Contains(lower, "proportionnelle") || strings.Contains(text, "%"):
		return PaymentProportional
	}
	return PaymentGeneric
}

func remunerationArticle(p *plan) Article {
	a := Article{Heading: "RÉMUNÉRATION"}
	if p.free {
		a.Sections = []Section{
			{
				Key:     "gratuite",
				Heading: "Cession à titre gratuit",
				Paragraphs: []string{
					"La présente cession est consentie à titre gratuit, sans contrepartie financière. " +
						"Le Cédant déclare expressément renoncer à toute rémunération au titre de la présente cession et être pleinement informé " +
						"de la portée de cette gratuité.",
				},
			},
			{
				Key:     "motivation",
				Heading: "Motivation de la gratuité",
				Paragraphs: []string{
					lines(
						"Les Parties reconnaissent que cette gratuité se justifie par :",
						"- L'intérêt réciproque des Parties à cette collaboration ;",
						"- La visibilité et la promotion apportées par le Cessionnaire à l'œuvre et/ou à l'image du Cédant ;",
						"- Le caractère non lucratif de certaines exploitations envisagées.",
					),
					"Le Cédant reconnaît avoir été pleinement informé de son droit à rémunération et y renoncer librement.",
				},
			},
		}
		return a
	}

	amount := orPlaceholder(Sanitize(p.req.Remuneration), placeholderRemuneration)
	var terms []string
	switch ClassifyRemuneration(p.req.Remuneration) {
	case PaymentLumpSum:
		terms = []string{
			"Cette rémunération forfaitaire est réputée définitive, forfaitaire et non révisable. " +
				"Elle inclut tout montant dû au titre de l'ensemble des droits cédés, tels que définis dans le présent contrat.",
			"Le paiement sera effectué par virement bancaire sur le compte du Cédant, dont les coordonnées seront " +
				"communiquées séparément, dans un délai de trente (30) jours suivant la signature du présent contrat " +
				"et réception d'une facture ou note d'honoraires conforme.",
		}
	case PaymentProportional:
		terms = []string{
			"Cette rémunération proportionnelle sera calculée et versée selon les termes indiqués ci-dessus. " +
				"Le Cessionnaire s'engage à tenir une comptabilité précise des exploitations donnant lieu à rémunération " +
				"et à fournir au Cédant, sur simple demande, un état récapitulatif des exploitations réalisées.",
			"Les versements seront effectués par virement bancaire sur le compte du Cédant, dont les coordonnées seront " +
				"communiquées séparément, selon la périodicité indiquée ci-dessus et sur présentation d'une facture " +
				"ou note d'honoraires conforme.",
		}
	default:
		terms = []string{
			"Le paiement sera effectué selon les modalités indiquées ci-dessus. " +
				"Le Cessionnaire s'engage à respecter strictement ces conditions de rémunération, qui constituent " +
				"un élément essentiel du consentement du Cédant.",
		}
	}

	a.Sections = []Section{
		{
			Key:     "montant",
			Heading: "Rémunération",
			Paragraphs: []string{
				"En contrepartie de la présente cession, le Cessionnaire versera au Cédant la rémunération suivante :",
				amount,
			},
		},
		{Key: "modalites", Heading: "Modalités de paiement", Paragraphs: terms},
		{
			Key:     "justification",
			Heading: "Justification de la rémunération",
			Paragraphs: []string{
				"Les Parties reconnaissent que cette rémunération est équitable et proportionnée aux exploitations prévues. " +
					"Elle a été déterminée en tenant compte notamment de l'étendue des droits cédés, de la durée de la cession, " +
					"du territoire concerné et des investissements nécessaires à l'exploitation de l'œuvre/image.",
			},
		},
	}
	return a
}

func warrantiesArticle(p *plan) Article {
	a := Article{Heading: "GARANTIES ET RESPONSABILITÉS"}
	if p.author {
		a.Sections = append(a.Sections, Section{
			Key:     "auteur",
			Heading: "Garanties de l'Auteur",
			Paragraphs: []string{
				lines(
					"L'Auteur garantit au Cessionnaire :",
					"- Qu'il est bien l'auteur de l'œuvre et le titulaire exclusif des droits de propriété intellectuelle sur celle-ci ;",
					"- Que l'œuvre est originale et ne constitue pas une contrefaçon d'une œuvre préexistante ;",
					"- Qu'il n'a préalablement consenti aucune cession ou licence de droits à un tiers qui serait incompatible avec la présente cession ;",
					"- Que l'œuvre ne contient aucun élément susceptible de tomber sous le coup des lois et règlements relatifs à la diffamation, "+
						"l'injure, la protection de la vie privée, le droit à l'image, les droits de la personnalité ou la contrefaçon ;",
					"- Qu'il n'existe aucune restriction légale ou contractuelle qui pourrait limiter ou interdire l'exploitation de l'œuvre "+
						"dans les conditions prévues au présent contrat.",
				),
				"En conséquence, l'Auteur garantit le Cessionnaire contre toute éviction, revendication ou action de tiers, " +
					"fondée sur la propriété intellectuelle ou tout autre fondement, qui troublerait l'exploitation paisible des droits cédés. " +
					"Il s'engage à indemniser le Cessionnaire de tous frais et indemnités qui pourraient résulter de telles actions.",
			},
		})
	}
	if p.image {
		a.Sections = append(a.Sections, Section{
			Key:     "modele",
			Heading: "Garanties du Modèle",
			Paragraphs: []string{
				lines(
					"Le Modèle garantit au Cessionnaire :",
					"- Qu'il est libre de consentir à la présente autorisation et dispose de la pleine capacité juridique à cet effet ;",
					"- Que son image n'est pas liée à d'autres engagements exclusifs incompatibles avec le présent contrat ;",
					"- Qu'aucun tiers ne détient de droits sur son image susceptibles d'entraver l'exploitation prévue par le présent contrat.",
				),
				"En conséquence, le Modèle garantit le Cessionnaire contre tout recours ou action émanant de tiers qui allégueraient " +
					"disposer de droits sur l'image du Modèle. Il s'engage à indemniser le Cessionnaire de tous frais et indemnités " +
					"qui pourraient résulter de telles actions.",
			},
		})
	}

	obligations := []string{
		"Le Cessionnaire s'engage à :",
		"- Respecter l'intégrité de l'œuvre et/ou de l'image dans le cadre des exploitations autorisées ;",
	}
	if p.author {
		obligations = append(obligations,
			"- Mentionner le nom de l'Auteur lors de toute exploitation de l'œuvre, sauf lorsque cela est techniquement impossible "+
				"ou inapproprié compte tenu du support d'exploitation ;")
	}
	obligations = append(obligations,
		"- N'effectuer aucune modification substantielle de l'œuvre et/ou de l'image sans l'accord préalable du Cédant, "+
			"à l'exception des adaptations techniques nécessaires à l'exploitation ;",
		"- Exploiter l'œuvre et/ou l'image conformément aux usages professionnels et aux dispositions du présent contrat.",
	)
	a.Sections = append(a.Sections, Section{
		Key:        "cessionnaire",
		Heading:    "Obligations du Cessionnaire",
		Paragraphs: []string{lines(obligations...)},
	})
	return a
}

func terminationArticle(_ *plan) Article {
	return Article{
		Heading: "RÉSILIATION",
		Sections: []Section{
			{
				Key:     "inexecution",
				Heading: "Résiliation pour inexécution",
				Paragraphs: []string{
					"Le présent contrat pourra être résilié de plein droit par l'une des parties en cas d'inexécution " +
						"par l'autre partie de l'une quelconque de ses obligations contractuelles. " +
						"Cette résiliation deviendra effective trois (3) mois après l'envoi par la partie plaignante " +
						"d'une lettre recommandée avec accusé de réception exposant les motifs de la plainte, " +
						"à moins que, dans ce délai, la partie défaillante n'ait satisfait à ses obligations ou " +
						"n'ait apporté la preuve d'un empêchement consécutif à un cas de force majeure.",
				},
			},
			{
				Key:     "anticipee",
				Heading: "Résiliation anticipée",
				Paragraphs: []string{
					"Chacune des parties pourra également mettre fin au présent contrat avant son terme, " +
						"moyennant un préavis de trois (3) mois notifié par lettre recommandée avec accusé de réception. " +
						"Dans ce cas, la résiliation ne prendra effet qu'à l'expiration du préavis.",
				},
			},
			{
				Key:     "consequences",
				Heading: "Conséquences de la résiliation",
				Paragraphs: []string{
					lines(
						"En cas de résiliation du contrat, pour quelque cause que ce soit :",
						"- Le Cessionnaire devra cesser toute nouvelle exploitation de l'œuvre et/ou de l'image ;",
						"- Le Cessionnaire sera néanmoins autorisé à écouler les stocks existants pendant une période maximale de trois (3) mois ;",
						"- Les exploitations déjà réalisées demeureront acquises au Cessionnaire, qui n'aura pas à les retirer ;",
						"- Les sommes déjà versées resteront définitivement acquises au Cédant ;",
						"- Les sommes encore dues au titre d'exploitations déjà réalisées devront être versées au Cédant.",
					),
					"L'exercice de cette faculté de résiliation ne dispense pas la partie défaillante de remplir " +
						"les obligations contractées jusqu'à la date de prise d'effet de la résiliation et ce, " +
						"sous réserve des dommages éventuellement subis par la partie plaignante du fait de la résiliation anticipée du contrat.",
				},
			},
		},
	}
}

func miscArticle(_ *plan) Article {
	return Article{
		Heading: "DISPOSITIONS DIVERSES",
		Sections: []Section{
			{
				Key:     "non_denigrement",
				Heading: "Clause de non-dénigrement",
				Paragraphs: []string{
					"Les Parties s'engagent mutuellement à ne pas tenir de propos négatifs ou diffamatoires l'une envers l'autre, " +
						"que ce soit en privé ou en public, notamment sur les réseaux sociaux, dans les médias ou auprès de partenaires commerciaux. " +
						"Cette obligation survivra à la fin du présent contrat pour une durée de deux (2) ans.",
				},
			},
			{
				Key:     "intuitu_personae",
				Heading: "Intuitu personae",
				Paragraphs: []string{
					"Le présent contrat est conclu intuitu personae. Les droits et obligations en résultant ne pourront être cédés ou transférés " +
						"par l'une des Parties sans l'accord préalable et écrit de l'autre Partie.",
					"Toutefois, en cas de cession ou de transfert de son activité à un tiers, le Cessionnaire pourra transférer le bénéfice " +
						"du présent contrat à ce tiers, à condition d'en informer préalablement le Cédant par écrit.",
				},
			},
			{
				Key:     "integralite",
				Heading: "Intégralité de l'accord",
				Paragraphs: []string{
					"Le présent contrat et ses éventuelles annexes constituent l'intégralité de l'accord entre les Parties relativement à son objet. " +
						"Il remplace et annule tout engagement oral ou écrit antérieur relatif à l'objet des présentes.",
				},
			},
			{
				Key:     "nullite_partielle",
				Heading: "Nullité partielle",
				Paragraphs: []string{
					"Si l'une quelconque des stipulations du présent contrat était déclarée nulle au regard d'une règle de droit en vigueur " +
						"ou d'une décision judiciaire devenue définitive, elle serait alors réputée non écrite, sans pour autant entraîner la nullité " +
						"du contrat ni altérer la validité de ses autres dispositions.",
				},
			},
			{
				Key:     "modification",
				Heading: "Modification du contrat",
				Paragraphs: []string{
					"Toute modification du présent contrat ne pourra résulter que d'un document écrit et signé par les Parties. " +
						"Aucune modification ne pourra être déduite de la passivité de l'une des Parties.",
				},
			},
		},
	}
}

func lawArticle(_ *plan) Article {
	return Article{
		Heading: "LOI APPLICABLE ET JURIDICTION COMPÉTENTE",
		Sections: []Section{
			{
				Key:        "loi",
				Heading:    "Loi applicable",
				Paragraphs: []string{"Le présent contrat est soumis au droit français."},
			},
			{
				Key:     "amiable",
				Heading: "Résolution amiable des litiges",
				Paragraphs: []string{
					"En cas de différend entre les Parties relatif à l'interprétation, l'exécution ou la résiliation du présent contrat, " +
						"les Parties s'efforceront de résoudre leur différend à l'amiable.",
					"À cet effet, la Partie la plus diligente adressera à l'autre Partie une notification précisant la nature et l'étendue du différend. " +
						"Les Parties s'engagent à se réunir dans les trente (30) jours suivant cette notification pour tenter de résoudre le litige.",
				},
			},
			{
				Key:     "juridiction",
				Heading: "Attribution de juridiction",
				Paragraphs: []string{
					"À défaut d'accord amiable dans un délai de soixante (60) jours à compter de la notification du différend, " +
						"tout litige relatif à l'existence, la validité, l'interprétation, l'exécution ou la résiliation du présent contrat " +
						"sera soumis à la compétence exclusive des tribunaux de Lyon, y compris en cas de référé, d'appel en garantie " +
						"ou de pluralité de défendeurs.",
				},
			},
		},
	}
}
