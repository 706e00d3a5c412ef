package model

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry statuses.
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusConverted = "converted"
	InquiryStatusClosed    = "closed"
)

// CustomerInquiry is a lead submitted through the public contact form.
type CustomerInquiry struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name    string    `gorm:"not null"`
	Email   string    `gorm:"not null"`
	Phone   *string
	Subject string `gorm:"not null"`
	Message string `gorm:"not null"`
	Status  string `gorm:"index;not null;default:'new'"`
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's pluralization ("customer_inquiries").
func (CustomerInquiry) TableName() string { return "customer_inquiries" }
