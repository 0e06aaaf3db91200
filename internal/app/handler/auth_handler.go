package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lexforge/internal/app/dto"
	"lexforge/internal/app/middleware"
)

// MigrateAnonymous переносит черновики анонимного пользователя в аккаунт
// @Summary Перенос анонимных черновиков
// @Description Договоры, клиенты и профиль anon_* переходят авторизованному пользователю
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MigrateRequest true "Анонимный идентификатор"
// @Success 200 {object} dto.MigrateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/migrate [post]
func (h *Handler) MigrateAnonymous(ctx *gin.Context) {
	var request dto.MigrateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.badRequest(ctx, err)
		return
	}
	user := middleware.GetUserFromContext(ctx)

	migrated, err := h.Store.MigrateUser(ctx.Request.Context(), request.AnonymousID, user.ID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"from":     request.AnonymousID,
		"to":       user.ID,
		"migrated": migrated,
	}).Info("anonymous data migrated")

	ctx.JSON(http.StatusOK, dto.MigrateResponse{Migrated: migrated})
}

// Logout выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса пользователя с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *Handler) Logout(ctx *gin.Context) {
	user := middleware.GetUserFromContext(ctx)

	// Вычисление TTL до истечения токена
	ttl := time.Until(user.ExpiresAt)
	if ttl <= 0 || h.Auth.Blacklist == nil {
		if h.Auth.Blacklist == nil {
			logrus.Warn("logout without blacklist: token stays valid until expiry")
		}
		h.successResponse(ctx, http.StatusOK, "Déconnexion réussie", nil)
		return
	}

	// Добавление токена в blacklist
	if err := h.Auth.Blacklist.WriteJWTToBlacklist(ctx.Request.Context(), user.Token, ttl); err != nil {
		h.errorHandler(ctx, err)
		return
	}

	h.successResponse(ctx, http.StatusOK, "Déconnexion réussie", nil)
}
