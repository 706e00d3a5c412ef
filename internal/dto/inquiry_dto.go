package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateInquiryRequest comes in on the public contact endpoint, unauthenticated.
type CreateInquiryRequest struct {
	Name    string  `json:"name"    validate:"required,min=2,max=120"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"   validate:"omitempty,min=6,max=30"`
	Subject string  `json:"subject" validate:"required,min=2,max=200"`
	Message string  `json:"message" validate:"required,min=2,max=5000"`
}

type UpdateInquiryRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=new contacted converted closed"`
	Notes  *string `json:"notes"  validate:"omitempty,max=5000"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type InquiryFilter struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type InquiryListResponse struct {
	Data       []InquiryResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
