package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Email       string  `json:"email"        validate:"required,email"`
	Password    string  `json:"password"     validate:"required,min=8"`
	FullName    string  `json:"full_name"    validate:"required,min=2,max=120"`
	Phone       *string `json:"phone"        validate:"omitempty,min=6,max=30"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateUserRequest struct {
	Email       string  `json:"email"        validate:"required,email"`
	Password    string  `json:"password"     validate:"required,min=8"`
	FullName    string  `json:"full_name"    validate:"required,min=2,max=120"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"company_name"`
	Role        string  `json:"role"         validate:"required,oneof=user admin"`
}

type UpdateUserRequest struct {
	FullName    *string `json:"full_name"    validate:"omitempty,min=2,max=120"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"company_name"`
	Role        *string `json:"role"         validate:"omitempty,oneof=user admin"`
	Password    *string `json:"password"     validate:"omitempty,min=8"`
	Active      *bool   `json:"active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"company_name"`
	Role        string  `json:"role"`
	Active      bool    `json:"active"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}
