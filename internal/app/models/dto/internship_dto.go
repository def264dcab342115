package dto

import "github.com/pharmahub/backend/internal/pkg/jsonfield"

// InternshipRequest is the body of internship create and update calls.
// Requirements and benefits take an array or a single string.
type InternshipRequest struct {
	Title        string               `json:"title" binding:"required" example:"تدريب صيفي في صيدلية المستشفى"`
	Type         string               `json:"type" binding:"required" example:"تدريب صيفي"`
	Duration     jsonfield.Text       `json:"duration" binding:"required" swaggertype:"string" example:"8 أسابيع"`
	Description  string               `json:"description" binding:"required"`
	Deadline     *string              `json:"deadline"`
	Requirements jsonfield.StringList `json:"requirements" swaggertype:"array,string"`
	Benefits     jsonfield.StringList `json:"benefits" swaggertype:"array,string"`
	ImageURL     *string              `json:"image_url"`
	Status       string               `json:"status" example:"active"`
}
