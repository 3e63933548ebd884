package dto

import "github.com/finance-tracker/client/internal/domain/entity"

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required"`
}

// LoginForm represents the form-encoded login request. The username
// field carries the email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse represents the response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt Timestamp `json:"created_at"`
}

// ToRegisterRequest converts a registration to its request body.
func ToRegisterRequest(r entity.Registration) RegisterRequest {
	return RegisterRequest{
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
	}
}

// ToEntity converts the response to a domain User.
func (r UserResponse) ToEntity() entity.User {
	return entity.User{
		ID:        r.ID,
		Email:     r.Email,
		FullName:  r.FullName,
		Active:    r.IsActive,
		CreatedAt: r.CreatedAt.Time,
	}
}

// ToUserResponse converts a domain User to its response.
func ToUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.Active,
		CreatedAt: NewTimestamp(u.CreatedAt),
	}
}
