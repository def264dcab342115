package dto

import "github.com/pharmahub/backend/internal/pkg/jsonfield"

// AnnouncementRequest is the body of announcement create and update calls
type AnnouncementRequest struct {
	Title        string                `json:"title" binding:"required" example:"المؤتمر العلمي السنوي"`
	Type         string                `json:"type" binding:"required" example:"مؤتمر"`
	Date         string                `json:"date" binding:"required" example:"2025-04-10"`
	Description  string                `json:"description" binding:"required"`
	Details      string                `json:"details" binding:"required"`
	Deadline     *string               `json:"deadline"`
	Level        *string               `json:"level"`
	Location     *string               `json:"location"`
	Duration     *string               `json:"duration"`
	Field        *string               `json:"field"`
	Prize        *string               `json:"prize"`
	Requirements *jsonfield.StringList `json:"requirements" swaggertype:"array,string"`
	Benefits     *jsonfield.StringList `json:"benefits" swaggertype:"array,string"`
	Topics       *jsonfield.StringList `json:"topics" swaggertype:"array,string"`
	Speakers     *jsonfield.StringList `json:"speakers" swaggertype:"array,string"`
	Activities   *jsonfield.StringList `json:"activities" swaggertype:"array,string"`
	Prizes       *jsonfield.StringList `json:"prizes" swaggertype:"array,string"`
	Criteria     *jsonfield.StringList `json:"criteria" swaggertype:"array,string"`
	ImageURL     *string               `json:"image_url"`
	Status       string                `json:"status" example:"active"`
}
