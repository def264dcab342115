package models

import "github.com/pharmahub/backend/internal/pkg/jsonfield"

// Announcement is a conference, competition or workshop notice from the
// 'announcements' table. List fields are nil when never supplied.
type Announcement struct {
	ID           int64                 `json:"id" db:"id" example:"1"`
	Title        string                `json:"title" db:"title"`
	Type         string                `json:"type" db:"type" example:"مؤتمر"`
	Date         string                `json:"date" db:"date" example:"2025-04-10"`
	Deadline     *string               `json:"deadline" db:"deadline"`
	Level        *string               `json:"level" db:"level"`
	Location     *string               `json:"location" db:"location"`
	Duration     *string               `json:"duration" db:"duration"`
	Field        *string               `json:"field" db:"field"`
	Prize        *string               `json:"prize" db:"prize"`
	Description  string                `json:"description" db:"description"`
	Details      string                `json:"details" db:"details"`
	Requirements *jsonfield.StringList `json:"requirements" db:"requirements"`
	Benefits     *jsonfield.StringList `json:"benefits" db:"benefits"`
	Topics       *jsonfield.StringList `json:"topics" db:"topics"`
	Speakers     *jsonfield.StringList `json:"speakers" db:"speakers"`
	Activities   *jsonfield.StringList `json:"activities" db:"activities"`
	Prizes       *jsonfield.StringList `json:"prizes" db:"prizes"`
	Criteria     *jsonfield.StringList `json:"criteria" db:"criteria"`
	ImageURL     *string               `json:"image_url" db:"image_url"`
	Status       string                `json:"status" db:"status" example:"active"`
	CreatedAt    string                `json:"created_at" db:"created_at"`
	UpdatedAt    string                `json:"updated_at" db:"updated_at"`
}
