package dto

// LoginDTO is the operator's credential exchange request.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponseDTO returns the bearer token gating the admin surface.
type TokenResponseDTO struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}
