package models

// Lecture is a scheduled lecture from the 'lectures' table.
// PDFURL is derived from PDFPath and never stored.
type Lecture struct {
	ID          int64   `json:"id" db:"id" example:"1"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Type        string  `json:"type" db:"type" example:"محاضرة نظرية"`
	Mode        string  `json:"mode" db:"mode" example:"حضوري"`
	Date        string  `json:"date" db:"date" example:"2025-02-15"`
	Time        *string `json:"time" db:"time" example:"10:00 صباحاً"`
	Location    string  `json:"location" db:"location"`
	Instructor  *string `json:"instructor" db:"instructor"`
	PDFPath     *string `json:"pdf_path" db:"pdf_path"`
	VideoURL    *string `json:"video_url" db:"video_url"`
	PDFURL      *string `json:"pdf_url"`
	CreatedAt   string  `json:"created_at" db:"created_at"`
	UpdatedAt   string  `json:"updated_at" db:"updated_at"`
}
