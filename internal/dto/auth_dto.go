package dto

import (
	"time"

	"github.com/google/uuid"
)

// SignupRequest represents the account creation form
// @Description username: up to 150 characters, letters, digits and @/./+/-/_ only
// @Description password1 and password2 must match and be at least 8 characters long
type SignupRequest struct {
	Username  string `form:"username" json:"username" binding:"required,max=150,username" example:"alice"`
	Password1 string `form:"password1" json:"password1" binding:"required,min=8" example:"correct-horse"`
	Password2 string `form:"password2" json:"password2" binding:"required,eqfield=Password1" example:"correct-horse"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required" example:"alice"`
	Password string `form:"password" json:"password" binding:"required" example:"correct-horse"`
}

// UserResponse represents a user account
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Username  string    `json:"username" example:"alice"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// IndexResponse is returned by the landing page
type IndexResponse struct {
	IsAuthenticated bool          `json:"is_authenticated"`
	User            *UserResponse `json:"user,omitempty"`
}

// RedirectResponse carries the location the client should navigate to next
type RedirectResponse struct {
	Redirect string `json:"redirect" example:"/kanban_list/"`
}

// AuthResponse is returned after login and signup
type AuthResponse struct {
	User     UserResponse `json:"user"`
	Redirect string       `json:"redirect" example:"/kanban_list/"`
}
