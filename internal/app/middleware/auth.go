package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"

	"lexforge/internal/app/config"
	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
)

const (
	AnonymousHeader = "X-Anonymous-ID"
	tokenIssuer     = "lexforge"
)

// Blacklist отозванные токены
type Blacklist interface {
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	WriteJWTToBlacklist(ctx context.Context, token string, ttl time.Duration) error
}

type AuthMiddleware struct {
	Blacklist Blacklist
	Config    *config.Config
}

// NewAuthMiddleware blacklist может быть nil, тогда отзыв токенов не проверяется
func NewAuthMiddleware(blacklist Blacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

func unauthorized(gCtx *gin.Context, message string) {
	gCtx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

// BearerToken токен из заголовка Authorization без префикса "Bearer "
func BearerToken(gCtx *gin.Context) string {
	jwtStr := strings.TrimSpace(gCtx.GetHeader("Authorization"))
	if len(jwtStr) > 7 && strings.EqualFold(jwtStr[:7], "Bearer ") {
		jwtStr = strings.TrimSpace(jwtStr[7:])
	}
	return jwtStr
}

// Identify определяет пользователя: JWT, затем X-Anonymous-ID, иначе "anonymous".
// Неверный или отозванный токен дает 401.
func (am *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		jwtStr := BearerToken(gCtx)
		if jwtStr == "" {
			user := &CurrentUser{ID: ds.AnonymousUser}
			if anon := strings.TrimSpace(gCtx.GetHeader(AnonymousHeader)); strings.HasPrefix(anon, ds.AnonymousPrefix) && len(anon) > len(ds.AnonymousPrefix) {
				user.ID = anon
			}
			setCurrentUser(gCtx, user)
			gCtx.Next()
			return
		}

		if am.Blacklist != nil {
			revoked, err := am.Blacklist.IsBlacklisted(gCtx.Request.Context(), jwtStr)
			if err != nil {
				logrus.WithError(err).Warn("blacklist check failed")
			}
			if revoked {
				unauthorized(gCtx, "Jeton révoqué")
				return
			}
		}

		claims, err := am.ParseToken(jwtStr)
		if err != nil {
			unauthorized(gCtx, "Jeton invalide")
			return
		}

		setCurrentUser(gCtx, &CurrentUser{
			ID:            claims.UserID,
			Authenticated: true,
			Token:         jwtStr,
			ExpiresAt:     time.Unix(claims.ExpiresAt, 0),
		})
		gCtx.Next()
	}
}

// RequireAuth пропускает только пользователей с JWT
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		if !GetUserFromContext(gCtx).Authenticated {
			unauthorized(gCtx, "Authentification requise")
			return
		}
		gCtx.Next()
	}
}

// ParseToken парсит и валидирует JWT токен
func (am *AuthMiddleware) ParseToken(tokenString string) (*ds.JWTClaims, error) {
	if am.Config.JWT.Token == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(am.Config.JWT.Token), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid || claims.UserID == "" || ds.IsAnonymous(claims.UserID) {
		return nil, errors.New("invalid token claims")
	}
	// без exp токен нельзя отозвать: blacklist хранит запись только до истечения
	if claims.ExpiresAt == 0 {
		return nil, errors.New("token has no expiry")
	}
	return claims, nil
}

// NewToken выпускает JWT для userID
func NewToken(cfg config.JWTConfig, userID string) (string, error) {
	if cfg.Token == "" {
		return "", errors.New("jwt secret is not configured")
	}
	method := cfg.SigningMethod
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	now := time.Now()
	token := jwt.NewWithClaims(method, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(cfg.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		UserID: userID,
	})
	return token.SignedString([]byte(cfg.Token))
}
