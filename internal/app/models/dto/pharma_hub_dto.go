package dto

import (
	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/pkg/jsonfield"
)

// QuestionRequest is the body of question creation
type QuestionRequest struct {
	Title    string               `json:"title" binding:"required"`
	Content  string               `json:"content" binding:"required"`
	Category string               `json:"category" binding:"required" example:"pharmacology"`
	Author   string               `json:"author" binding:"required"`
	Tags     jsonfield.StringList `json:"tags" swaggertype:"array,string"`
}

// QuestionUpdateRequest replaces the editable fields of a question
type QuestionUpdateRequest struct {
	Title    string               `json:"title" binding:"required"`
	Content  string               `json:"content" binding:"required"`
	Category string               `json:"category" binding:"required"`
	Tags     jsonfield.StringList `json:"tags" swaggertype:"array,string"`
}

// CommentRequest is the body of comment creation
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
	Author  string `json:"author" binding:"required"`
}

// CommentUpdateRequest edits a comment's content
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

// QuestionDetailResponse is a question together with its comments
type QuestionDetailResponse struct {
	Question *models.Question `json:"question"`
	Comments []models.Comment `json:"comments"`
}

// QuestionListParams are the query options of the question listing
type QuestionListParams struct {
	Category string `form:"category"`
	Sort     string `form:"sort" binding:"omitempty,oneof=latest oldest most-answers most-views"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}
