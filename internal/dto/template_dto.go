package dto

import (
	"time"

	"quotecraft/internal/pricing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateTemplateRequest struct {
	Name        string           `json:"name"        validate:"required,min=2,max=120"`
	Description *string          `json:"description"`
	Items       []QuoteLineInput `json:"items"       validate:"dive"`
}

type UpdateTemplateRequest struct {
	Name        *string           `json:"name"        validate:"omitempty,min=2,max=120"`
	Description *string           `json:"description"`
	Items       *[]QuoteLineInput `json:"items"       validate:"omitempty,dive"`
	Active      *bool             `json:"active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TemplateResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	Items       []pricing.LineItem `json:"items"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"created_at"`
}
