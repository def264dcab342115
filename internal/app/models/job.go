package models

import "github.com/pharmahub/backend/internal/pkg/jsonfield"

// Job is a job posting from the 'jobs' table
type Job struct {
	ID            int64                `json:"id" db:"id" example:"1"`
	Title         string               `json:"title" db:"title" example:"صيدلي"`
	Description   string               `json:"description" db:"description"`
	Location      *string              `json:"location" db:"location"`
	Type          *string              `json:"type" db:"type" example:"دوام كامل"`
	Salary        *string              `json:"salary" db:"salary"`
	Deadline      *string              `json:"deadline" db:"deadline" example:"2025-03-01"`
	Experience    *string              `json:"experience" db:"experience"`
	Qualification *string              `json:"qualification" db:"qualification"`
	Requirements  jsonfield.StringList `json:"requirements" db:"requirements"`
	Benefits      jsonfield.StringList `json:"benefits" db:"benefits"`
	Status        string               `json:"status" db:"status" example:"active"`
	CreatedAt     string               `json:"created_at" db:"created_at"`
	UpdatedAt     string               `json:"updated_at" db:"updated_at"`
}
