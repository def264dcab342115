package services

import (
	"context"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/repositories"
)

// Pharma Hub messages
const (
	MsgQuestionNotFound = "Question not found"
	MsgQuestionDeleted  = "Question deleted successfully"
	MsgQuestionRequired = "Title, content, category, and author are required"
	MsgCommentNotFound  = "Comment not found"
	MsgCommentDeleted   = "Comment deleted successfully"
	MsgCommentRequired  = "Content and author are required"
	MsgContentRequired  = "Content is required"
)

// DefaultQuestionLimit caps question listings when no limit is given
const DefaultQuestionLimit = 50

// PharmaHubService defines forum operations
type PharmaHubService interface {
	ListQuestions(ctx context.Context, params dto.QuestionListParams) ([]models.Question, error)
	ViewQuestion(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error)
	CreateQuestion(ctx context.Context, req *dto.QuestionRequest) (*models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, req *dto.QuestionUpdateRequest) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	ListComments(ctx context.Context, questionID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, questionID int64, req *dto.CommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, id int64, req *dto.CommentUpdateRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.ForumStats, error)
}

type pharmaHubServiceImpl struct {
	questions *repositories.QuestionRepository
	comments  *repositories.CommentRepository
}

// NewPharmaHubService creates a new forum service
func NewPharmaHubService(questions *repositories.QuestionRepository, comments *repositories.CommentRepository) PharmaHubService {
	return &pharmaHubServiceImpl{questions: questions, comments: comments}
}

func (s *pharmaHubServiceImpl) ListQuestions(ctx context.Context, params dto.QuestionListParams) ([]models.Question, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	return s.questions.List(ctx, repositories.QuestionFilter{
		Category: params.Category,
		Sort:     params.Sort,
		Limit:    uint64(limit),
	})
}

// ViewQuestion counts a view and returns the question with its comments.
// The returned view count includes this visit.
func (s *pharmaHubServiceImpl) ViewQuestion(ctx context.Context, id int64) (*dto.QuestionDetailResponse, error) {
	if err := s.questions.IncrementViews(ctx, id); err != nil {
		return nil, notFound(err, MsgQuestionNotFound)
	}
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgQuestionNotFound)
	}
	comments, err := s.comments.ListByQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionDetailResponse{Question: q, Comments: comments}, nil
}

func (s *pharmaHubServiceImpl) CreateQuestion(ctx context.Context, req *dto.QuestionRequest) (*models.Question, error) {
	id, err := s.questions.Create(ctx, &models.Question{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		Tags:     req.Tags,
	})
	if err != nil {
		return nil, err
	}
	return s.questions.GetByID(ctx, id)
}

func (s *pharmaHubServiceImpl) UpdateQuestion(ctx context.Context, id int64, req *dto.QuestionUpdateRequest) (*models.Question, error) {
	err := s.questions.Update(ctx, &models.Question{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return nil, notFound(err, MsgQuestionNotFound)
	}
	return s.questions.GetByID(ctx, id)
}

func (s *pharmaHubServiceImpl) DeleteQuestion(ctx context.Context, id int64) error {
	return notFound(s.questions.Delete(ctx, id), MsgQuestionNotFound)
}

func (s *pharmaHubServiceImpl) ListComments(ctx context.Context, questionID int64) ([]models.Comment, error) {
	return s.comments.ListByQuestion(ctx, questionID)
}

func (s *pharmaHubServiceImpl) AddComment(ctx context.Context, questionID int64, req *dto.CommentRequest) (*models.Comment, error) {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, notFound(err, MsgQuestionNotFound)
	}
	id, err := s.comments.Create(ctx, &models.Comment{
		QuestionID: questionID,
		Content:    req.Content,
		Author:     req.Author,
	})
	if err != nil {
		return nil, notFound(err, MsgQuestionNotFound)
	}
	return s.comments.GetByID(ctx, id)
}

func (s *pharmaHubServiceImpl) UpdateComment(ctx context.Context, id int64, req *dto.CommentUpdateRequest) (*models.Comment, error) {
	if err := s.comments.UpdateContent(ctx, id, req.Content); err != nil {
		return nil, notFound(err, MsgCommentNotFound)
	}
	return s.comments.GetByID(ctx, id)
}

func (s *pharmaHubServiceImpl) DeleteComment(ctx context.Context, id int64) error {
	return notFound(s.comments.Delete(ctx, id), MsgCommentNotFound)
}

func (s *pharmaHubServiceImpl) Stats(ctx context.Context) (*models.ForumStats, error) {
	return s.questions.Stats(ctx)
}
