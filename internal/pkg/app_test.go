package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexforge/internal/app/config"
	"lexforge/internal/app/contract"
	"lexforge/internal/app/handler"
	"lexforge/internal/app/middleware"
	"lexforge/internal/app/repository"
)

func TestCorsConfig(t *testing.T) {
	cc := corsConfig(config.CORSConfig{AllowOrigins: []string{"*"}})
	assert.True(t, cc.AllowAllOrigins)
	assert.Empty(t, cc.AllowOrigins)

	cc = corsConfig(config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}})
	assert.False(t, cc.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, cc.AllowOrigins)
	assert.Contains(t, cc.AllowHeaders, middleware.AnonymousHeader)
	assert.Contains(t, cc.ExposeHeaders, "Content-Disposition")
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{CORS: config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}}}
	h := handler.NewHandler(store, contract.NewBuilder(), nil, nil, middleware.NewAuthMiddleware(nil, cfg), cfg)
	router, err := NewApp(cfg, NewRouter(cfg), h).Routes()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/contracts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
