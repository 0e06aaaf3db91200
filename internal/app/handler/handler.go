package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lexforge/internal/app/config"
	"lexforge/internal/app/contract"
	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
	"lexforge/internal/app/middleware"
	"lexforge/internal/app/pdf"
	"lexforge/internal/app/repository"
)

// Generator печатает собранный договор в PDF
type Generator interface {
	Generate(ctx context.Context, doc *contract.Document) (*pdf.RenderResult, error)
}

// Archive хранилище готовых PDF (MinIO)
type Archive interface {
	PutPDF(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type Handler struct {
	Store     repository.Store
	Builder   *contract.Builder
	Generator Generator
	// Archive nil, если MinIO не настроен
	Archive Archive
	Auth    *middleware.AuthMiddleware
	Config  *config.Config
}

func NewHandler(store repository.Store, builder *contract.Builder, generator Generator, archive Archive, auth *middleware.AuthMiddleware, cfg *config.Config) *Handler {
	return &Handler{
		Store:     store,
		Builder:   builder,
		Generator: generator,
		Archive:   archive,
		Auth:      auth,
		Config:    cfg,
	}
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// badRequest ошибки биндинга и валидации уходят клиенту как есть
func (h *Handler) badRequest(c *gin.Context, err error) {
	logrus.WithField("path", c.FullPath()).Warn(err.Error())
	h.errorResponse(c, http.StatusBadRequest, err.Error())
}

// Централизованная обработка ошибок
func (h *Handler) errorHandler(c *gin.Context, err error) {
	var renderErr *pdf.RenderError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, "Ressource introuvable")
	case errors.As(err, &renderErr):
		logrus.WithField("code", renderErr.Code).Error(err.Error())
		h.errorResponse(c, http.StatusInternalServerError, "Erreur lors de la génération du PDF")
	default:
		logrus.Error(err.Error())
		h.errorResponse(c, http.StatusInternalServerError, "Erreur interne du serveur")
	}
}

// withProfileCessionnaire подставляет профиль пользователя как Cessionnaire,
// если в анкете контрагент не указан
func (h *Handler) withProfileCessionnaire(c *gin.Context, req ds.ContractRequest) ds.ContractRequest {
	if req.Cessionnaire() != nil {
		return req
	}
	user := middleware.GetUserFromContext(c)
	profile, err := h.Store.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logrus.WithError(err).Warn("cant load profile")
		}
		return req
	}
	if party := profile.Cessionnaire(); party != nil {
		req.CessionnaireInfo = party
	}
	return req
}

// ownedContract договор текущего пользователя. Чужой договор неотличим от отсутствующего.
func (h *Handler) ownedContract(c *gin.Context) (*ds.Contract, error) {
	record, err := h.Store.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, err
	}
	if record.Owner() != middleware.GetUserFromContext(c).ID {
		return nil, repository.ErrNotFound
	}
	return record, nil
}

func (h *Handler) ownedClient(c *gin.Context) (*ds.Client, error) {
	client, err := h.Store.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, err
	}
	if client.UserID != middleware.GetUserFromContext(c).ID {
		return nil, repository.ErrNotFound
	}
	return client, nil
}

func sendPDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename(filename)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
