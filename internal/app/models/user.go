package models

// User is an administrator account from the 'users' table
type User struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Username     string `json:"username" db:"username" example:"admin"`
	PasswordHash string `json:"-" db:"password_hash"`
	CreatedAt    string `json:"created_at" db:"created_at" example:"2025-01-15T10:00:00.000Z"`
}
