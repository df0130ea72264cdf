package models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  UserPlayer `json:"user"`
	Token string     `json:"token"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username,omitempty"`
}

type GuestLoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}
