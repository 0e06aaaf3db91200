package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexforge/internal/app/ds"
)

func TestPreviewUsesDocumentNumbering(t *testing.T) {
	req := authorRequest()
	req.ContractTypes = []string{ds.ContractTypeAuthor, ds.ContractTypeImage}
	req.AdditionalRights = []string{"location"}

	doc := NewBuilder().Build(req)
	text := NewBuilder().Preview(req)
	for _, a := range doc.Articles {
		assert.Contains(t, text, "Article "+itoa(a.Number)+" – ")
	}
	assert.Contains(t, text, "Article 3 – AUTORISATION D'EXPLOITATION DE L'IMAGE")
	assert.Contains(t, text, "Article 6 – RÉMUNÉRATION\nRémunération : 500 euros forfaitaires")
	assert.Contains(t, text, "- Le droit de location")
	assert.Contains(t, text, "Supports autorisés : Applications mobiles, site web, Discord")
	assert.True(t, strings.HasPrefix(text, "CONTRAT DE CESSION DE DROITS D'AUTEUR ET DE DROITS À L'IMAGE\n\n"))
	assert.True(t, strings.HasSuffix(text, "le Cessionnaire"))
}

func TestPreviewFree(t *testing.T) {
	req := authorRequest()
	req.CessionMode = ds.CessionFree
	req.AdditionalRights = []string{"location"}

	text := NewBuilder().Preview(req)
	assert.Contains(t, text, "La présente cession est consentie à titre gratuit.")
	assert.Contains(t, text, "à titre non exclusif, pour la durée précisée à l'article 3 et gratuitement")
	assert.NotContains(t, text, "Le droit de location")
}
