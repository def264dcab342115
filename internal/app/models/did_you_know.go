package models

// DidYouKnow is a short pharmacy fact from the 'did_you_know' table
type DidYouKnow struct {
	ID        int64   `json:"id" db:"id" example:"1"`
	Title     string  `json:"title" db:"title"`
	Content   string  `json:"content" db:"content"`
	Category  string  `json:"category" db:"category" example:"علم الأدوية"`
	ImageURL  *string `json:"image_url" db:"image_url"`
	Status    string  `json:"status" db:"status" example:"active"`
	CreatedAt string  `json:"created_at" db:"created_at"`
	UpdatedAt string  `json:"updated_at" db:"updated_at"`
}
