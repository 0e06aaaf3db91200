package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lexforge/internal/app/contract"
	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
)

// ============ ГЕНЕРАЦИЯ ============

// GetOptions справочники для мастера
// @Summary Справочники анкеты
// @Description Типы договоров, режимы уступки, типы авторов, права и носители
// @Tags Contract
// @Produce json
// @Success 200 {object} dto.OptionsResponse
// @Router /api/options [get]
func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OptionsResponse{
		ContractTypes:  contract.ContractTypes,
		CessionModes:   contract.CessionModes,
		AuthorTypes:    contract.AuthorTypes,
		Civilities:     contract.Civilities,
		Rights:         contract.Rights,
		Supports:       contract.SupportOptions,
		DefaultSupport: contract.DefaultSupports,
	})
}

// Preview краткое содержание договора для экрана
// @Summary Предпросмотр договора
// @Tags Contract
// @Accept json
// @Produce json
// @Param request body ds.ContractRequest true "Ответы анкеты"
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	var req ds.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	req = h.withProfileCessionnaire(c, req)

	c.JSON(http.StatusOK, dto.PreviewResponse{Preview: h.Builder.Preview(req)})
}

// ContractText полный текст договора
// @Summary Полный текст договора
// @Tags Contract
// @Accept json
// @Produce json
// @Param request body ds.ContractRequest true "Ответы анкеты"
// @Success 200 {object} dto.ContractTextResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/contract-text [post]
func (h *Handler) ContractText(c *gin.Context) {
	var req ds.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	doc := h.Builder.Build(h.withProfileCessionnaire(c, req))

	c.JSON(http.StatusOK, dto.ContractTextResponse{
		Title:    doc.Title,
		Text:     doc.Text(),
		Articles: doc.Articles,
	})
}

// GeneratePDF PDF договора без сохранения
// @Summary Генерация PDF
// @Tags Contract
// @Accept json
// @Produce application/pdf
// @Param request body dto.GeneratePDFRequest true "Анкета и имя файла"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate-pdf [post]
func (h *Handler) GeneratePDF(c *gin.Context) {
	var req dto.GeneratePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	doc := h.Builder.Build(h.withProfileCessionnaire(c, req.ContractData.WithDefaults()))

	result, err := h.Generator.Generate(c.Request.Context(), doc)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"pages":    result.PageCount,
		"bytes":    len(result.PDFData),
		"duration": result.RenderDuration,
	}).Info("pdf generated")

	sendPDF(c, req.Filename, result.PDFData)
}
