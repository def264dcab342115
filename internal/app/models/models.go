package models

// Status values shared by jobs, announcements, internships and facts
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
