package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
	"lexforge/internal/app/middleware"
	"lexforge/internal/app/repository"
)

// loadProfile пустой профиль, если пользователь его еще не заполнял
func (h *Handler) loadProfile(c *gin.Context, userID string) (*ds.UserProfile, error) {
	profile, err := h.Store.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &ds.UserProfile{
			UserID:             userID,
			PhysicalPerson:     ds.Party{},
			LegalEntity:        ds.Party{},
			SelectedEntityType: ds.EntityPhysicalPerson,
		}, nil
	}
	return profile, err
}

// GetProfile
// @Summary Профиль пользователя
// @Tags Profile
// @Produce json
// @Success 200 {object} ds.UserProfile
// @Router /api/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.loadProfile(c, middleware.GetUserFromContext(c).ID)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile
// @Summary Сохранение профиля
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Профиль"
// @Success 200 {object} ds.UserProfile
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	userID := middleware.GetUserFromContext(c).ID
	profile, err := h.loadProfile(c, userID)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	if req.PhysicalPerson != nil {
		profile.PhysicalPerson = req.PhysicalPerson
	}
	if req.LegalEntity != nil {
		profile.LegalEntity = req.LegalEntity
	}
	if req.SelectedEntityType != "" {
		profile.SelectedEntityType = req.SelectedEntityType
	}
	profile.UserID = userID

	if err = h.Store.SaveProfile(c.Request.Context(), profile); err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetFinalization можно ли финализировать договор. Авторизованному пользователю нужен заполненный профиль.
// @Summary Проверка перед финализацией
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.FinalizationResponse
// @Router /api/profile/finalization [get]
func (h *Handler) GetFinalization(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	if !user.Authenticated {
		c.JSON(http.StatusOK, dto.FinalizationResponse{Allowed: true})
		return
	}
	profile, err := h.loadProfile(c, user.ID)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	if !profile.IsConfigured() {
		c.JSON(http.StatusOK, dto.FinalizationResponse{
			Allowed: false,
			Reason:  "Veuillez compléter votre profil avant de finaliser le contrat",
		})
		return
	}
	c.JSON(http.StatusOK, dto.FinalizationResponse{Allowed: true})
}
