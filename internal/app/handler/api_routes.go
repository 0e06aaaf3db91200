package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"lexforge/internal/app/ds"
	"lexforge/internal/app/dto"
)

// RegisterValidators регистрирует теги contract_type, cession_mode и author_type
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	rules := map[string]func(string) bool{
		"contract_type": ds.IsKnownContractType,
		"cession_mode":  ds.IsKnownCessionMode,
		"author_type":   ds.IsKnownAuthorType,
	}
	for tag, known := range rules {
		known := known
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return known(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// RegisterAPIRoutes регистрирует все REST API маршруты
func (h *Handler) RegisterAPIRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(h.Auth.Identify())

	api.GET("", h.Status)

	// ============ Генерация (без сохранения) ============
	api.GET("/options", h.GetOptions)
	api.POST("/preview", h.Preview)
	api.POST("/contract-text", h.ContractText)
	api.POST("/generate-pdf", h.GeneratePDF)

	// ============ Договоры ============
	contracts := api.Group("/contracts")
	{
		contracts.GET("", h.GetContracts)
		contracts.POST("", h.CreateContract)
		contracts.POST("/import", h.ImportContract)
		contracts.GET("/:id", h.GetContract)
		contracts.PUT("/:id", h.UpdateContract)
		contracts.DELETE("/:id", h.DeleteContract)
		contracts.GET("/:id/elements", h.GetContractElements)
		contracts.GET("/:id/export", h.ExportContract)
		contracts.POST("/:id/pdf", h.ContractPDF)
		contracts.GET("/:id/pdf-url", h.ContractPDFURL)
	}

	// ============ Профиль и клиенты ============
	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)
	api.GET("/profile/finalization", h.GetFinalization)

	clients := api.Group("/clients")
	{
		clients.GET("", h.GetClients)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	auth.Use(h.Auth.RequireAuth())
	{
		auth.POST("/migrate", h.MigrateAnonymous)
		auth.POST("/logout", h.Logout)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Status
// @Summary Статус API
// @Tags Health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api [get]
func (h *Handler) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "online",
		Message: "LexForge API is running",
	})
}
