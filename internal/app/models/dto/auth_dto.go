package dto

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"admin"`
	Password string `json:"password" form:"password" binding:"required" example:"admin123"`
}

// AuthUser is the public view of the signed-in administrator
type AuthUser struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	OK   bool     `json:"ok" example:"true"`
	User AuthUser `json:"user"`
}

// MeResponse carries the current user, null when not signed in
type MeResponse struct {
	User *AuthUser `json:"user"`
}
