package dto

import (
	"time"

	"lexforge/internal/app/contract"
	"lexforge/internal/app/ds"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ============ Справочники ============

type OptionsResponse struct {
	ContractTypes  []string         `json:"contract_types"`
	CessionModes   []string         `json:"cession_modes"`
	AuthorTypes    []string         `json:"author_types"`
	Civilities     []string         `json:"civilities"`
	Rights         []contract.Right `json:"rights"`
	Supports       []string         `json:"supports"`
	DefaultSupport []string         `json:"default_supports"`
}

// ============ Генерация ============

type PreviewResponse struct {
	Preview string `json:"preview"`
}

type ContractTextResponse struct {
	Title    string             `json:"title"`
	Text     string             `json:"text"`
	Articles []contract.Article `json:"articles"`
}

type GeneratePDFRequest struct {
	ContractData *ds.ContractRequest `json:"contractData" binding:"required"`
	Filename     string              `json:"filename"`
}

// ============ Договоры ============

type CreateContractRequest struct {
	Title string              `json:"title" binding:"max=255"`
	Data  *ds.ContractRequest `json:"data" binding:"required"`
}

// UpdateContractRequest все поля необязательные
type UpdateContractRequest struct {
	Title           *string             `json:"title" binding:"omitempty,max=255"`
	Data            *ds.ContractRequest `json:"data"`
	UpdatedElements map[string]string   `json:"updatedElements"`
	Comments        *[]ds.Comment       `json:"comments"`
}

type ContractListResponse struct {
	Contracts []ds.Contract `json:"contracts"`
	Total     int           `json:"total"`
}

type ElementsResponse struct {
	Elements map[string]string `json:"elements"`
	Comments []ds.Comment      `json:"comments"`
}

// ShareEnvelope формат экспорта договора для передачи другому пользователю
type ShareEnvelope struct {
	Version    int          `json:"version" binding:"required"`
	ExportedAt time.Time    `json:"exported_at"`
	Contract   *ds.Contract `json:"contract" binding:"required"`
}

type PDFURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ============ Профиль и клиенты ============

type ProfileRequest struct {
	PhysicalPerson     ds.Party `json:"physical_person"`
	LegalEntity        ds.Party `json:"legal_entity"`
	SelectedEntityType string   `json:"selected_entity_type" binding:"omitempty,oneof=physical_person legal_entity"`
}

type FinalizationResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

type ClientRequest struct {
	Name string   `json:"name" binding:"required,max=255"`
	Type string   `json:"type" binding:"omitempty,oneof=physical_person legal_entity"`
	Info ds.Party `json:"info"`
}

type ClientListResponse struct {
	Clients []ds.Client `json:"clients"`
	Total   int         `json:"total"`
}

// ============ Авторизация ============

type MigrateRequest struct {
	AnonymousID string `json:"anonymous_id" binding:"required,startswith=anon_"`
}

type MigrateResponse struct {
	Migrated int `json:"migrated"`
}
