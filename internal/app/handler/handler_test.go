package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexforge/internal/app/config"
	"lexforge/internal/app/contract"
	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
	"lexforge/internal/app/middleware"
	"lexforge/internal/app/pdf"
	"lexforge/internal/app/repository"
	"lexforge/internal/app/storage"
)

type fakeGenerator struct {
	docs []*contract.Document
	err  error
}

func (f *fakeGenerator) Generate(_ context.Context, doc *contract.Document) (*pdf.RenderResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.docs = append(f.docs, doc)
	return &pdf.RenderResult{PDFData: []byte("%PDF-1.4 fake"), PageCount: 1}, nil
}

type fakeArchive struct {
	objects map[string][]byte
}

func (f *fakeArchive) PutPDF(_ context.Context, key string, data []byte) error {
	f.objects[key] = data
	return nil
}

func (f *fakeArchive) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeArchive) PresignedURL(_ context.Context, key string) (string, error) {
	return "http://minio.local/" + key + "?sig=1", nil
}

func (f *fakeArchive) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

type fakeBlacklist struct {
	revoked map[string]time.Duration
}

func (f *fakeBlacklist) IsBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := f.revoked[token]
	return ok, nil
}

func (f *fakeBlacklist) WriteJWTToBlacklist(_ context.Context, token string, ttl time.Duration) error {
	f.revoked[token] = ttl
	return nil
}

type testServer struct {
	router    *gin.Engine
	handler   *Handler
	generator *fakeGenerator
	archive   *fakeArchive
	blacklist *fakeBlacklist
	cfg       *config.Config
}

func newTestServer(t *testing.T, withArchive bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{JWT: config.JWTConfig{
		Token:         "test-secret",
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}}
	ts := &testServer{
		generator: &fakeGenerator{},
		blacklist: &fakeBlacklist{revoked: map[string]time.Duration{}},
		cfg:       cfg,
	}
	var archive Archive
	if withArchive {
		ts.archive = &fakeArchive{objects: map[string][]byte{}}
		archive = ts.archive
	}
	auth := middleware.NewAuthMiddleware(ts.blacklist, cfg)
	ts.handler = NewHandler(store, contract.NewBuilder(), ts.generator, archive, auth, cfg)
	ts.router = gin.New()
	ts.handler.RegisterAPIRoutes(ts.router)
	return ts
}

func (ts *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.NewToken(ts.cfg.JWT, userID)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func anon(id string) map[string]string {
	return map[string]string{middleware.AnonymousHeader: id}
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func paidAuthorRequest() ds.ContractRequest {
	return ds.ContractRequest{
		ContractTypes:    []string{ds.ContractTypeAuthor},
		CessionMode:      ds.CessionPaid,
		AuthorType:       ds.AuthorPhysical,
		AuthorInfo:       ds.Party{"gentille": "Mme", "nom": "Durand", "prenom": "Claire"},
		WorkDescription:  "Une série de trois illustrations",
		Supports:         []string{"Applications mobiles"},
		AdditionalRights: []string{"distribution", "adaptation"},
		Remuneration:     "forfaitaire de 500 euros",
		Exclusive:        true,
	}
}

func TestHealthRoutes(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = ts.do(t, http.MethodGet, "/api", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"online","message":"LexForge API is running"}`, w.Body.String())
}

func TestOptions(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodGet, "/api/options", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	options := decode[dto.OptionsResponse](t, w)
	assert.Equal(t, contract.ContractTypes, options.ContractTypes)
	assert.Len(t, options.Rights, len(contract.Rights))
	assert.Equal(t, []string{"site web", "Discord"}, options.DefaultSupport)
}

func TestPreviewAndContractText(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/preview", paidAuthorRequest(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	preview := decode[dto.PreviewResponse](t, w)
	assert.Contains(t, preview.Preview, "Article 1")

	w = ts.do(t, http.MethodPost, "/api/contract-text", paidAuthorRequest(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	text := decode[dto.ContractTextResponse](t, w)
	assert.Equal(t, contract.Title(paidAuthorRequest()), text.Title)
	assert.NotEmpty(t, text.Articles)
	assert.Contains(t, text.Text, "Tellers")
}

func TestValidationErrors(t *testing.T) {
	ts := newTestServer(t, false)

	tests := []struct {
		name string
		path string
		body any
	}{
		{"unknown contract type", "/api/preview", `{"type_contrat":["Musique"]}`},
		{"unknown cession mode", "/api/contract-text", `{"type_cession":"Partielle"}`},
		{"unknown author type", "/api/preview", `{"auteur_type":"Association"}`},
		{"malformed json", "/api/preview", `{"type_contrat":`},
		{"client without name", "/api/clients", `{"type":"legal_entity"}`},
		{"client bad type", "/api/clients", `{"name":"X","type":"robot"}`},
		{"import without version", "/api/contracts/import", `{"version":0}`},
		{"import without contract", "/api/contracts/import", `{"version":1}`},
		{"contract without questionnaire", "/api/contracts", `{}`},
		{"contract with null questionnaire", "/api/contracts", `{"title":"X","data":null}`},
		{"pdf without questionnaire", "/api/generate-pdf", `{}`},
		{"pdf with unknown type", "/api/generate-pdf", `{"contractData":{"type_contrat":["Musique"]}}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, tt.path, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			envelope := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, "fail", envelope.Status)
			assert.NotEmpty(t, envelope.Message)
		})
	}
	assert.Empty(t, ts.generator.docs)

	w := ts.do(t, http.MethodGet, "/api/contracts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[dto.ContractListResponse](t, w).Total)
}

func TestEmptyQuestionnaireStoredWithDefaults(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/contracts", `{"data":{}}`, anon("anon_empty"))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[ds.Contract](t, w)
	assert.Equal(t, []string{ds.ContractTypeImage}, created.Data.ContractTypes)
	assert.Equal(t, ds.CessionFree, created.Data.CessionMode)
	assert.Equal(t, ds.AuthorPhysical, created.Data.AuthorType)
	assert.Equal(t, contract.Title(ds.ContractRequest{}), created.Title)

	w = ts.do(t, http.MethodPost, "/api/generate-pdf", `{"contractData":{}}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ts.generator.docs, 1)
	assert.Equal(t, contract.Title(ds.ContractRequest{}), ts.generator.docs[0].Title)
}

func TestEmptyTypeSelectionIsImageContract(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/contract-text", `{}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	text := decode[dto.ContractTextResponse](t, w)
	assert.Equal(t, contract.Title(ds.ContractRequest{ContractTypes: []string{ds.ContractTypeImage}}), text.Title)
}

func TestProfileCessionnaireIsInjected(t *testing.T) {
	ts := newTestServer(t, false)
	headers := anon("anon_studio")

	w := ts.do(t, http.MethodPut, "/api/profile", gin.H{
		"legal_entity":         gin.H{"nom_societe": "Studio Lumière", "is_configured": true},
		"selected_entity_type": "legal_entity",
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/contract-text", paidAuthorRequest(), headers)
	require.Equal(t, http.StatusOK, w.Code)
	text := decode[dto.ContractTextResponse](t, w).Text
	assert.Contains(t, text, "Studio Lumière")
	assert.NotContains(t, text, "Tellers")

	// явный контрагент в анкете важнее профиля
	req := paidAuthorRequest()
	req.CessionnaireInfo = ds.Party{"nom": "Agence Nord"}
	w = ts.do(t, http.MethodPost, "/api/contract-text", req, headers)
	text = decode[dto.ContractTextResponse](t, w).Text
	assert.Contains(t, text, "Agence Nord")
	assert.NotContains(t, text, "Studio Lumière")
}

func TestGeneratePDF(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/generate-pdf", gin.H{
		"contractData": paidAuthorRequest(),
		"filename":     "Contrat été",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="contrat_ete.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
	require.Len(t, ts.generator.docs, 1)
	assert.Equal(t, contract.Title(paidAuthorRequest()), ts.generator.docs[0].Title)
}

func TestGeneratePDFRenderFailure(t *testing.T) {
	ts := newTestServer(t, false)
	ts.generator.err = pdf.NewRenderError(pdf.ErrCodeRenderTimeout, "timeout", context.DeadlineExceeded)

	w := ts.do(t, http.MethodPost, "/api/generate-pdf", gin.H{"contractData": paidAuthorRequest()}, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	envelope := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "fail", envelope.Status)
	assert.NotContains(t, envelope.Message, "timeout")
}

func TestContractLifecycle(t *testing.T) {
	ts := newTestServer(t, false)
	headers := anon("anon_owner")

	w := ts.do(t, http.MethodPost, "/api/contracts", gin.H{"data": paidAuthorRequest()}, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[ds.Contract](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "anon_owner", created.UserID)
	assert.Equal(t, contract.Title(paidAuthorRequest()), created.Title)

	w = ts.do(t, http.MethodGet, "/api/contracts/"+created.ID, nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, paidAuthorRequest().AuthorInfo.Get("nom"), decode[ds.Contract](t, w).Data.AuthorInfo.Get("nom"))

	title := "Cession illustrations"
	w = ts.do(t, http.MethodPut, "/api/contracts/"+created.ID, gin.H{
		"title":           title,
		"updatedElements": gin.H{"duree": "Durée négociée séparément."},
		"comments":        []gin.H{{"section_id": "duree", "text": "À vérifier"}},
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[ds.Contract](t, w)
	assert.Equal(t, title, updated.Title)
	require.Len(t, updated.Comments, 1)
	assert.NotEmpty(t, updated.Comments[0].ID)
	assert.Equal(t, "anon_owner", updated.Comments[0].Author)

	w = ts.do(t, http.MethodGet, "/api/contracts/"+created.ID+"/elements", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	elements := decode[dto.ElementsResponse](t, w)
	assert.Equal(t, map[string]string{"duree": "Durée négociée séparément."}, elements.Elements)
	assert.Len(t, elements.Comments, 1)

	// пустой текст сбрасывает правку
	w = ts.do(t, http.MethodPut, "/api/contracts/"+created.ID, gin.H{"updatedElements": gin.H{"duree": ""}}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[ds.Contract](t, w).Elements)

	w = ts.do(t, http.MethodGet, "/api/contracts", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.ContractListResponse](t, w).Total)

	w = ts.do(t, http.MethodDelete, "/api/contracts/"+created.ID, nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode[dto.SuccessResponse](t, w).Status)

	w = ts.do(t, http.MethodGet, "/api/contracts/"+created.ID, nil, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContractIsolation(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/contracts", gin.H{"data": paidAuthorRequest()}, anon("anon_alice"))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[ds.Contract](t, w).ID

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w = ts.do(t, method, "/api/contracts/"+id, nil, anon("anon_bob"))
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
	w = ts.do(t, http.MethodPut, "/api/contracts/"+id, gin.H{"title": "x"}, anon("anon_bob"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/contracts", nil, anon("anon_bob"))
	assert.Equal(t, 0, decode[dto.ContractListResponse](t, w).Total)

	w = ts.do(t, http.MethodGet, "/api/contracts/not-a-uuid", nil, anon("anon_bob"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportImport(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/contracts", gin.H{"title": "Partagé", "data": paidAuthorRequest()}, anon("anon_alice"))
	require.Equal(t, http.StatusCreated, w.Code)
	original := decode[ds.Contract](t, w)

	w = ts.do(t, http.MethodGet, "/api/contracts/"+original.ID+"/export", nil, anon("anon_alice"))
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decode[dto.ShareEnvelope](t, w)
	assert.Equal(t, 1, envelope.Version)

	w = ts.do(t, http.MethodPost, "/api/contracts/import", envelope, anon("anon_bob"))
	require.Equal(t, http.StatusCreated, w.Code)
	imported := decode[ds.Contract](t, w)
	assert.NotEqual(t, original.ID, imported.ID)
	assert.Equal(t, "anon_bob", imported.UserID)
	assert.Equal(t, "Partagé", imported.Title)

	envelope.Version = 7
	w = ts.do(t, http.MethodPost, "/api/contracts/import", envelope, anon("anon_bob"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContractPDFArchive(t *testing.T) {
	ts := newTestServer(t, true)
	headers := anon("anon_owner")

	w := ts.do(t, http.MethodPost, "/api/contracts", gin.H{"title": "Contrat Durand", "data": paidAuthorRequest()}, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[ds.Contract](t, w).ID
	key := storage.ContractKey(id)

	w = ts.do(t, http.MethodGet, "/api/contracts/"+id+"/pdf-url", nil, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPut, "/api/contracts/"+id, gin.H{"updatedElements": gin.H{"duree": "Six mois."}}, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/contracts/"+id+"/pdf", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, key, w.Header().Get("X-Archive-Key"))
	assert.Equal(t, `attachment; filename="contrat_durand.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, ts.archive.objects, key)
	require.Len(t, ts.generator.docs, 1)
	assert.Contains(t, ts.generator.docs[0].Text(), "Six mois.")

	w = ts.do(t, http.MethodGet, "/api/contracts/"+id+"/pdf-url", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	url := decode[dto.PDFURLResponse](t, w)
	assert.Contains(t, url.URL, key)
	assert.True(t, url.ExpiresAt.After(time.Now()))

	w = ts.do(t, http.MethodDelete, "/api/contracts/"+id, nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, ts.archive.objects, key)
}

func TestPDFURLWithoutArchive(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/contracts", gin.H{"data": paidAuthorRequest()}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[ds.Contract](t, w).ID

	w = ts.do(t, http.MethodGet, "/api/contracts/"+id+"/pdf-url", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/api/contracts/"+id+"/pdf", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Archive-Key"))
}

func TestFinalization(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodGet, "/api/profile/finalization", nil, anon("anon_x"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.FinalizationResponse](t, w).Allowed)

	headers := bearer(ts.token(t, "user-1"))
	w = ts.do(t, http.MethodGet, "/api/profile/finalization", nil, headers)
	result := decode[dto.FinalizationResponse](t, w)
	assert.False(t, result.Allowed)
	assert.NotEmpty(t, result.Reason)

	w = ts.do(t, http.MethodPut, "/api/profile", gin.H{
		"physical_person": gin.H{"nom": "Martin", "prenom": "Léa", "is_configured": true},
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[ds.UserProfile](t, w)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, ds.EntityPhysicalPerson, profile.SelectedEntityType)

	w = ts.do(t, http.MethodGet, "/api/profile/finalization", nil, headers)
	assert.True(t, decode[dto.FinalizationResponse](t, w).Allowed)
}

func TestProfileDefaults(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodGet, "/api/profile", nil, anon("anon_new"))
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[ds.UserProfile](t, w)
	assert.Equal(t, "anon_new", profile.UserID)
	assert.Equal(t, ds.EntityPhysicalPerson, profile.SelectedEntityType)

	w = ts.do(t, http.MethodPut, "/api/profile", gin.H{"selected_entity_type": "robot"}, anon("anon_new"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClients(t *testing.T) {
	ts := newTestServer(t, false)
	headers := anon("anon_agency")

	w := ts.do(t, http.MethodPost, "/api/clients", gin.H{
		"name": "Claire Durand",
		"info": gin.H{"nom": "Durand", "prenom": "Claire", "age": 31},
	}, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	client := decode[ds.Client](t, w)
	assert.Equal(t, ds.EntityPhysicalPerson, client.Type)
	assert.Equal(t, "31", client.Info.Get("age"))

	w = ts.do(t, http.MethodPut, "/api/clients/"+client.ID, gin.H{"name": "Studio Durand", "type": "legal_entity"}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[ds.Client](t, w)
	assert.Equal(t, ds.EntityLegalEntity, updated.Type)
	assert.Equal(t, "Durand", updated.Info.Get("nom"))

	w = ts.do(t, http.MethodPut, "/api/clients/"+client.ID, gin.H{"name": "Vol"}, anon("anon_other"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/clients", nil, headers)
	assert.Equal(t, 1, decode[dto.ClientListResponse](t, w).Total)

	w = ts.do(t, http.MethodDelete, "/api/clients/"+client.ID, nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(t, http.MethodDelete, "/api/clients/"+client.ID, nil, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMigrateAnonymous(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodPost, "/api/contracts", gin.H{"data": paidAuthorRequest()}, anon("anon_draft"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodPost, "/api/auth/migrate", gin.H{"anonymous_id": "anon_draft"}, anon("anon_draft"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	headers := bearer(ts.token(t, "user-7"))
	w = ts.do(t, http.MethodPost, "/api/auth/migrate", gin.H{"anonymous_id": "user-8"}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/auth/migrate", gin.H{"anonymous_id": "anon_draft"}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.MigrateResponse](t, w).Migrated)

	w = ts.do(t, http.MethodGet, "/api/contracts", nil, headers)
	assert.Equal(t, 1, decode[dto.ContractListResponse](t, w).Total)
	w = ts.do(t, http.MethodGet, "/api/contracts", nil, anon("anon_draft"))
	assert.Equal(t, 0, decode[dto.ContractListResponse](t, w).Total)
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.token(t, "user-9")

	w := ts.do(t, http.MethodPost, "/api/auth/logout", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, ts.blacklist.revoked, token)
	assert.Greater(t, ts.blacklist.revoked[token], time.Duration(0))

	w = ts.do(t, http.MethodGet, "/api/contracts", nil, bearer(token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenWithoutExpiryRejected(t *testing.T) {
	ts := newTestServer(t, false)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{UserID: "user-1"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := ts.do(t, http.MethodGet, "/api/contracts", nil, bearer(token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/auth/logout", nil, bearer(token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, ts.blacklist.revoked)
}

func TestErrorHandlerMapping(t *testing.T) {
	ts := newTestServer(t, false)
	tests := []struct {
		err    error
		status int
	}{
		{repository.ErrNotFound, http.StatusNotFound},
		{pdf.NewRenderError(pdf.ErrCodeRenderFailed, "boom", nil), http.StatusInternalServerError},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		ts.handler.errorHandler(c, tt.err)
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
		assert.NotContains(t, w.Body.String(), tt.err.Error())
	}
}
