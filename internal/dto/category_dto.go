package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Key         string  `json:"key"         validate:"required,min=2,max=60,lowercase"`
	Name        string  `json:"name"        validate:"required,min=2,max=120"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sort_order"  validate:"min=0"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2,max=120"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"  validate:"omitempty,min=0"`
	Active      *bool   `json:"active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sort_order"`
	Active      bool    `json:"active"`
	// CostModel mirrors the pricing engine's classification for this key so
	// the client knows which editor to open.
	CostModel      string `json:"cost_model"`
	IgnoreQuantity bool   `json:"ignore_quantity"`
	RequireName    bool   `json:"require_name"`
}
