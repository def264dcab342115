package models

import "github.com/pharmahub/backend/internal/pkg/jsonfield"

// Internship is a training programme from the 'internships' table
type Internship struct {
	ID           int64                `json:"id" db:"id" example:"1"`
	Title        string               `json:"title" db:"title"`
	Type         string               `json:"type" db:"type" example:"تدريب صيفي"`
	Duration     string               `json:"duration" db:"duration" example:"8 أسابيع"`
	Deadline     *string              `json:"deadline" db:"deadline"`
	Description  string               `json:"description" db:"description"`
	Requirements jsonfield.StringList `json:"requirements" db:"requirements"`
	Benefits     jsonfield.StringList `json:"benefits" db:"benefits"`
	Status       string               `json:"status" db:"status" example:"active"`
	ImageURL     *string              `json:"image_url" db:"image_url"`
	CreatedAt    string               `json:"created_at" db:"created_at"`
	UpdatedAt    string               `json:"updated_at" db:"updated_at"`
}
