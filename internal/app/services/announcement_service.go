package services

import (
	"context"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/repositories"
)

// Announcement messages shown to site visitors
const (
	MsgAnnouncementCreated  = "تم إنشاء الإعلان بنجاح"
	MsgAnnouncementUpdated  = "تم تحديث الإعلان بنجاح"
	MsgAnnouncementDeleted  = "تم حذف الإعلان بنجاح"
	MsgAnnouncementNotFound = "الإعلان غير موجود"
)

// AnnouncementService defines announcement operations
type AnnouncementService interface {
	ListActive(ctx context.Context) ([]models.Announcement, error)
	ListAll(ctx context.Context) ([]models.Announcement, error)
	GetActive(ctx context.Context, id int64) (*models.Announcement, error)
	Create(ctx context.Context, req *dto.AnnouncementRequest) (int64, error)
	Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) error
	Delete(ctx context.Context, id int64) error
}

type announcementServiceImpl struct {
	repo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo *repositories.AnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{repo: repo}
}

// announcementFromRequest copies the request; absent lists stay nil and are stored as NULL
func announcementFromRequest(req *dto.AnnouncementRequest) *models.Announcement {
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	return &models.Announcement{
		Title:        req.Title,
		Type:         req.Type,
		Date:         req.Date,
		Deadline:     req.Deadline,
		Level:        req.Level,
		Location:     req.Location,
		Duration:     req.Duration,
		Field:        req.Field,
		Prize:        req.Prize,
		Description:  req.Description,
		Details:      req.Details,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Topics:       req.Topics,
		Speakers:     req.Speakers,
		Activities:   req.Activities,
		Prizes:       req.Prizes,
		Criteria:     req.Criteria,
		ImageURL:     req.ImageURL,
		Status:       status,
	}
}

func (s *announcementServiceImpl) ListActive(ctx context.Context) ([]models.Announcement, error) {
	return s.repo.ListActive(ctx)
}

func (s *announcementServiceImpl) ListAll(ctx context.Context) ([]models.Announcement, error) {
	return s.repo.ListAll(ctx)
}

func (s *announcementServiceImpl) GetActive(ctx context.Context, id int64) (*models.Announcement, error) {
	a, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgAnnouncementNotFound)
	}
	return a, nil
}

func (s *announcementServiceImpl) Create(ctx context.Context, req *dto.AnnouncementRequest) (int64, error) {
	return s.repo.Create(ctx, announcementFromRequest(req))
}

func (s *announcementServiceImpl) Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) error {
	a := announcementFromRequest(req)
	a.ID = id
	return notFound(s.repo.Update(ctx, a), MsgAnnouncementNotFound)
}

func (s *announcementServiceImpl) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), MsgAnnouncementNotFound)
}
