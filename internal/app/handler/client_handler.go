package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
	"lexforge/internal/app/middleware"
)

// ============ КЛИЕНТЫ ============

// clientType по умолчанию физическое лицо
func clientType(t string) string {
	if t == ds.EntityLegalEntity {
		return t
	}
	return ds.EntityPhysicalPerson
}

// GetClients
// @Summary Список клиентов
// @Tags Clients
// @Produce json
// @Success 200 {object} dto.ClientListResponse
// @Router /api/clients [get]
func (h *Handler) GetClients(c *gin.Context) {
	clients, err := h.Store.ListClients(c.Request.Context(), middleware.GetUserFromContext(c).ID)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: clients,
		Total:   len(clients),
	})
}

// CreateClient
// @Summary Создание клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.ClientRequest true "Клиент"
// @Success 201 {object} ds.Client
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/clients [post]
func (h *Handler) CreateClient(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	client := &ds.Client{
		UserID: middleware.GetUserFromContext(c).ID,
		Name:   req.Name,
		Type:   clientType(req.Type),
		Info:   req.Info,
	}
	if err := h.Store.CreateClient(c.Request.Context(), client); err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient
// @Summary Обновление клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "ID клиента"
// @Param request body dto.ClientRequest true "Клиент"
// @Success 200 {object} ds.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [put]
func (h *Handler) UpdateClient(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	client, err := h.ownedClient(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	client.Name = req.Name
	if req.Type != "" {
		client.Type = clientType(req.Type)
	}
	if req.Info != nil {
		client.Info = req.Info
	}
	if err = h.Store.UpdateClient(c.Request.Context(), client); err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient
// @Summary Удаление клиента
// @Tags Clients
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *Handler) DeleteClient(c *gin.Context) {
	client, err := h.ownedClient(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	if err = h.Store.DeleteClient(c.Request.Context(), client.ID); err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "Client supprimé", nil)
}
