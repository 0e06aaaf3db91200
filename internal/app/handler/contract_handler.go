package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"lexforge/internal/app/contract"
	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
	"lexforge/internal/app/middleware"
	"lexforge/internal/app/repository"
	"lexforge/internal/app/storage"
)

// shareVersion версия формата экспорта
const shareVersion = 1

// ============ ДОГОВОРЫ ============

// GetContracts
// @Summary Список договоров пользователя
// @Description Новые сверху
// @Tags Contracts
// @Produce json
// @Success 200 {object} dto.ContractListResponse
// @Router /api/contracts [get]
func (h *Handler) GetContracts(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	contracts, err := h.Store.ListContracts(c.Request.Context(), user.ID)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContractListResponse{
		Contracts: contracts,
		Total:     len(contracts),
	})
}

// CreateContract
// @Summary Сохранение договора
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body dto.CreateContractRequest true "Название и анкета"
// @Success 201 {object} ds.Contract
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/contracts [post]
func (h *Handler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	record := &ds.Contract{
		UserID: middleware.GetUserFromContext(c).ID,
		Title:  req.Title,
		Data:   req.Data.WithDefaults(),
	}
	if record.Title == "" {
		record.Title = contract.Title(record.Data)
	}
	if err := h.Store.CreateContract(c.Request.Context(), record); err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetContract
// @Summary Договор по ID
// @Tags Contracts
// @Produce json
// @Param id path string true "ID договора"
// @Success 200 {object} ds.Contract
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contracts/{id} [get]
func (h *Handler) GetContract(c *gin.Context) {
	record, err := h.ownedContract(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateContract частичное обновление: название, анкета, правки разделов, комментарии
// @Summary Обновление договора
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path string true "ID договора"
// @Param request body dto.UpdateContractRequest true "Изменяемые поля"
// @Success 200 {object} ds.Contract
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contracts/{id} [put]
func (h *Handler) UpdateContract(c *gin.Context) {
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	record, err := h.ownedContract(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Data != nil {
		record.Data = req.Data.WithDefaults()
	}
	if len(req.UpdatedElements) > 0 {
		if record.Elements == nil {
			record.Elements = make(map[string]string, len(req.UpdatedElements))
		}
		for key, text := range req.UpdatedElements {
			// пустой текст возвращает раздел к шаблону
			if text == "" {
				delete(record.Elements, key)
				continue
			}
			record.Elements[key] = text
		}
	}
	if req.Comments != nil {
		record.Comments = stampComments(*req.Comments, middleware.GetUserFromContext(c).ID)
	}

	if err = h.Store.UpdateContract(c.Request.Context(), record); err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func stampComments(comments []ds.Comment, author string) []ds.Comment {
	out := make([]ds.Comment, len(comments))
	for i, cm := range comments {
		if cm.ID == "" {
			cm.ID = uuid.NewString()
		}
		if cm.Author == "" {
			cm.Author = author
		}
		if cm.CreatedAt.IsZero() {
			cm.CreatedAt = time.Now().UTC()
		}
		out[i] = cm
	}
	return out
}

// DeleteContract удаляет договор и его PDF из архива
// @Summary Удаление договора
// @Tags Contracts
// @Produce json
// @Param id path string true "ID договора"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contracts/{id} [delete]
func (h *Handler) DeleteContract(c *gin.Context) {
	record, err := h.ownedContract(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	if err = h.Store.DeleteContract(c.Request.Context(), record.ID); err != nil {
		h.errorHandler(c, err)
		return
	}
	if h.Archive != nil {
		if err = h.Archive.Delete(c.Request.Context(), storage.ContractKey(record.ID)); err != nil {
			logrus.WithError(err).WithField("contract", record.ID).Warn("cant delete archived pdf")
		}
	}
	h.successResponse(c, http.StatusOK, "Contrat supprimé", nil)
}

// GetContractElements
// @Summary Правки разделов и комментарии
// @Tags Contracts
// @Produce json
// @Param id path string true "ID договора"
// @Success 200 {object} dto.ElementsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contracts/{id}/elements [get]
func (h *Handler) GetContractElements(c *gin.Context) {
	record, err := h.ownedContract(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	elements := record.Elements
	if elements == nil {
		elements = map[string]string{}
	}
	comments := record.Comments
	if comments == nil {
		comments = []ds.Comment{}
	}
	c.JSON(http.StatusOK, dto.ElementsResponse{
		Elements: elements,
		Comments: comments,
	})
}

// ExportContract
// @Summary Экспорт договора для передачи
// @Tags Contracts
// @Produce json
// @Param id path string true "ID договора"
// @Success 200 {object} dto.ShareEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contracts/{id}/export [get]
func (h *Handler) ExportContract(c *gin.Context) {
	record, err := h.ownedContract(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ShareEnvelope{
		Version:    shareVersion,
		ExportedAt: time.Now().UTC(),
		Contract:   record,
	})
}

// ImportContract создает копию экспортированного договора у текущего пользователя
// @Summary Импорт договора
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body dto.ShareEnvelope true "Экспортированный договор"
// @Success 201 {object} ds.Contract
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/contracts/import [post]
func (h *Handler) ImportContract(c *gin.Context) {
	var envelope dto.ShareEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.badRequest(c, err)
		return
	}
	if envelope.Version != shareVersion {
		h.errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Version d'export non prise en charge : %d", envelope.Version))
		return
	}

	src := envelope.Contract
	record := &ds.Contract{
		UserID:   middleware.GetUserFromContext(c).ID,
		Title:    src.Title,
		Data:     src.Data,
		Elements: src.Elements,
		Comments: src.Comments,
	}
	if err := h.Store.CreateContract(c.Request.Context(), record); err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ContractPDF PDF сохраненного договора с учетом правок. Копия уходит в архив, если он настроен.
// @Summary PDF сохраненного договора
// @Tags Contracts
// @Produce application/pdf
// @Param id path string true "ID договора"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/contracts/{id}/pdf [post]
func (h *Handler) ContractPDF(c *gin.Context) {
	record, err := h.ownedContract(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	doc := h.Builder.Build(h.withProfileCessionnaire(c, record.Data))
	doc.ApplyElements(record.Elements)

	result, err := h.Generator.Generate(c.Request.Context(), doc)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	if h.Archive != nil {
		key := storage.ContractKey(record.ID)
		if err = h.Archive.PutPDF(c.Request.Context(), key, result.PDFData); err != nil {
			logrus.WithError(err).WithField("contract", record.ID).Error("cant archive pdf")
		} else {
			c.Header("X-Archive-Key", key)
		}
	}

	sendPDF(c, record.Title, result.PDFData)
}

// ContractPDFURL ссылка на скачивание PDF из архива
// @Summary Ссылка на архивный PDF
// @Tags Contracts
// @Produce json
// @Param id path string true "ID договора"
// @Success 200 {object} dto.PDFURLResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/contracts/{id}/pdf-url [get]
func (h *Handler) ContractPDFURL(c *gin.Context) {
	if h.Archive == nil {
		h.errorResponse(c, http.StatusNotFound, "Archivage des PDF désactivé")
		return
	}
	record, err := h.ownedContract(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	url, err := h.archivedURL(c.Request.Context(), storage.ContractKey(record.ID))
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PDFURLResponse{
		URL:       url,
		ExpiresAt: time.Now().UTC().Add(storage.PresignTTL),
	})
}

func (h *Handler) archivedURL(ctx context.Context, key string) (string, error) {
	exists, err := h.Archive.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("pdf %s not archived: %w", key, repository.ErrNotFound)
	}
	return h.Archive.PresignedURL(ctx, key)
}
