package types

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SaveLinkRequest struct {
	PlatformName string `json:"platform_name" validate:"required"`
	PlatformURL  string `json:"platform_url" validate:"required"`
}

// UpdateLinkRequest is a partial patch; empty fields are left unchanged.
type UpdateLinkRequest struct {
	PlatformName string `json:"platform_name"`
	PlatformURL  string `json:"platform_url"`
}
