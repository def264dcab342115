package dto

import "github.com/pharmahub/backend/internal/pkg/jsonfield"

// JobRequest is the body of job create and update calls. The short text
// fields also take numbers, e.g. a salary of 1500.
type JobRequest struct {
	Title         string               `json:"title" binding:"required" example:"صيدلي سريري"`
	Type          jsonfield.Text       `json:"type" binding:"required" swaggertype:"string" example:"دوام كامل"`
	Salary        jsonfield.Text       `json:"salary" binding:"required" swaggertype:"string" example:"حسب الخبرة"`
	Deadline      jsonfield.Text       `json:"deadline" binding:"required" swaggertype:"string" example:"2025-03-01"`
	Experience    jsonfield.Text       `json:"experience" binding:"required" swaggertype:"string" example:"سنتان"`
	Qualification jsonfield.Text       `json:"qualification" binding:"required" swaggertype:"string" example:"بكالوريوس صيدلة"`
	Description   string               `json:"description" binding:"required"`
	Location      *string              `json:"location"`
	Requirements  jsonfield.StringList `json:"requirements" swaggertype:"array,string"`
	Benefits      jsonfield.StringList `json:"benefits" swaggertype:"array,string"`
	Status        string               `json:"status" example:"active"`
}
