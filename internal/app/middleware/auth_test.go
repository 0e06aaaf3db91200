package middleware

import (
	"context"
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
	"lexforge/internal/app/ds"
)

type fakeBlacklist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeBlacklist) IsBlacklisted(_ context.Context, token string) (bool, error) {
	return f.revoked[token], f.err
}

func (f *fakeBlacklist) WriteJWTToBlacklist(_ context.Context, token string, _ time.Duration) error {
	f.revoked[token] = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{
		Token:         "secret",
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}}
}

func newRouter(am *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(am.Identify())
	handlers := append(extra, func(c *gin.Context) {
		u := GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": u.ID, "authenticated": u.Authenticated})
	})
	r.GET("/me", handlers...)
	return r
}

func get(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentify(t *testing.T) {
	cfg := testConfig()
	blacklist := &fakeBlacklist{revoked: map[string]bool{}}
	am := NewAuthMiddleware(blacklist, cfg)
	r := newRouter(am)

	token, err := NewToken(cfg.JWT, "user-42")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
		UserID:         "user-42",
	})
	expiredStr, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{UserID: "user-42"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	otherKey, err := NewToken(config.JWTConfig{Token: "other", ExpiresIn: time.Hour}, "user-42")
	require.NoError(t, err)

	anonClaims, err := NewToken(cfg.JWT, "anon_123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		headers map[string]string
		status  int
		body    string
	}{
		{"no headers", nil, http.StatusOK, `{"authenticated":false,"user_id":"anonymous"}`},
		{"anonymous id", map[string]string{AnonymousHeader: "anon_abc"}, http.StatusOK, `{"authenticated":false,"user_id":"anon_abc"}`},
		{"foreign anonymous id", map[string]string{AnonymousHeader: "user-42"}, http.StatusOK, `{"authenticated":false,"user_id":"anonymous"}`},
		{"bare prefix", map[string]string{AnonymousHeader: "anon_"}, http.StatusOK, `{"authenticated":false,"user_id":"anonymous"}`},
		{"valid token", map[string]string{"Authorization": "Bearer " + token, AnonymousHeader: "anon_abc"}, http.StatusOK, `{"authenticated":true,"user_id":"user-42"}`},
		{"expired token", map[string]string{"Authorization": "Bearer " + expiredStr}, http.StatusUnauthorized, ""},
		{"token without expiry", map[string]string{"Authorization": "Bearer " + noExpiry}, http.StatusUnauthorized, ""},
		{"wrong key", map[string]string{"Authorization": "Bearer " + otherKey}, http.StatusUnauthorized, ""},
		{"anonymous claim", map[string]string{"Authorization": "Bearer " + anonClaims}, http.StatusUnauthorized, ""},
		{"garbage", map[string]string{"Authorization": "Bearer abc.def"}, http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.headers)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"status":"fail"`)
			}
		})
	}

	require.NoError(t, blacklist.WriteJWTToBlacklist(context.Background(), token, time.Hour))
	w := get(r, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentifyBlacklistUnavailable(t *testing.T) {
	cfg := testConfig()
	am := NewAuthMiddleware(&fakeBlacklist{revoked: map[string]bool{}, err: errors.New("connection refused")}, cfg)
	token, err := NewToken(cfg.JWT, "user-1")
	require.NoError(t, err)

	w := get(newRouter(am), map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth(t *testing.T) {
	cfg := testConfig()
	am := NewAuthMiddleware(nil, cfg)
	r := newRouter(am, am.RequireAuth())

	w := get(r, map[string]string{AnonymousHeader: "anon_abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := NewToken(cfg.JWT, "user-1")
	require.NoError(t, err)
	w = get(r, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewTokenRequiresSecret(t *testing.T) {
	_, err := NewToken(config.JWTConfig{}, "user")
	assert.Error(t, err)

	am := NewAuthMiddleware(nil, &config.Config{})
	_, err = am.ParseToken("whatever")
	assert.Error(t, err)
}

func TestGetUserFromContextFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, ds.AnonymousUser, GetUserFromContext(c).ID)
}
