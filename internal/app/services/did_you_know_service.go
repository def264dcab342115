package services

import (
	"context"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/repositories"
)

// Did-you-know messages
const (
	MsgFactCreated  = "تم إنشاء المعلومة بنجاح"
	MsgFactUpdated  = "تم تحديث المعلومة بنجاح"
	MsgFactDeleted  = "تم حذف المعلومة بنجاح"
	MsgFactNotFound = "المعلومة غير موجودة"
	MsgFactRequired = "العنوان والمحتوى والفئة مطلوبة"
)

// DidYouKnowService defines operations on pharmacy facts
type DidYouKnowService interface {
	ListActive(ctx context.Context) ([]models.DidYouKnow, error)
	Get(ctx context.Context, id int64) (*models.DidYouKnow, error)
	Create(ctx context.Context, req *dto.DidYouKnowRequest) (int64, error)
	Update(ctx context.Context, id int64, req *dto.DidYouKnowRequest) error
	Delete(ctx context.Context, id int64) error
}

type didYouKnowServiceImpl struct {
	repo *repositories.DidYouKnowRepository
}

// NewDidYouKnowService creates a new did-you-know service
func NewDidYouKnowService(repo *repositories.DidYouKnowRepository) DidYouKnowService {
	return &didYouKnowServiceImpl{repo: repo}
}

func factFromRequest(req *dto.DidYouKnowRequest) *models.DidYouKnow {
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	return &models.DidYouKnow{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Status:   status,
	}
}

func (s *didYouKnowServiceImpl) ListActive(ctx context.Context) ([]models.DidYouKnow, error) {
	return s.repo.ListActive(ctx)
}

func (s *didYouKnowServiceImpl) Get(ctx context.Context, id int64) (*models.DidYouKnow, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgFactNotFound)
	}
	return d, nil
}

func (s *didYouKnowServiceImpl) Create(ctx context.Context, req *dto.DidYouKnowRequest) (int64, error) {
	return s.repo.Create(ctx, factFromRequest(req))
}

func (s *didYouKnowServiceImpl) Update(ctx context.Context, id int64, req *dto.DidYouKnowRequest) error {
	d := factFromRequest(req)
	d.ID = id
	return notFound(s.repo.Update(ctx, d), MsgFactNotFound)
}

func (s *didYouKnowServiceImpl) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), MsgFactNotFound)
}
