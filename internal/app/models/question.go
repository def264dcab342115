package models

import "github.com/pharmahub/backend/internal/pkg/jsonfield"

// Question is a Pharma Hub forum question from the 'questions' table
type Question struct {
	ID          int64                `json:"id" db:"id" example:"1"`
	Title       string               `json:"title" db:"title"`
	Content     string               `json:"content" db:"content"`
	Category    string               `json:"category" db:"category" example:"pharmacology"`
	Author      string               `json:"author" db:"author"`
	Tags        jsonfield.StringList `json:"tags" db:"tags"`
	Views       int64                `json:"views" db:"views"`
	AnswerCount *int64               `json:"answer_count,omitempty"`
	CreatedAt   string               `json:"created_at" db:"created_at"`
	UpdatedAt   string               `json:"updated_at" db:"updated_at"`
}

// Comment is an answer to a question from the 'comments' table
type Comment struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	QuestionID int64  `json:"question_id" db:"question_id" example:"1"`
	Content    string `json:"content" db:"content"`
	Author     string `json:"author" db:"author"`
	CreatedAt  string `json:"created_at" db:"created_at"`
	UpdatedAt  string `json:"updated_at" db:"updated_at"`
}

// CategoryCount is one row of the per-category question breakdown
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ForumStats summarises forum activity
type ForumStats struct {
	TotalQuestions int64           `json:"totalQuestions"`
	TotalComments  int64           `json:"totalComments"`
	CategoryStats  []CategoryCount `json:"categoryStats"`
}
