package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"lexforge/internal/app/ds"
)

const currentUserKey = "current_user"

// CurrentUser пользователь текущего запроса
type CurrentUser struct {
	ID            string
	Authenticated bool
	// Token и ExpiresAt заполнены только для JWT
	Token     string
	ExpiresAt time.Time
}

func setCurrentUser(c *gin.Context, user *CurrentUser) {
	c.Set(currentUserKey, user)
}

// GetUserFromContext извлекает пользователя из контекста
func GetUserFromContext(c *gin.Context) *CurrentUser {
	if user, exists := c.Get(currentUserKey); exists {
		if u, ok := user.(*CurrentUser); ok {
			return u
		}
	}
	return &CurrentUser{ID: ds.AnonymousUser} // Fallback
}
