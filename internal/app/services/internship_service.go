package services

import (
	"context"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/pkg/jsonfield"
)

// Internship messages
const (
	MsgInternshipCreated  = "Internship created successfully"
	MsgInternshipUpdated  = "Internship updated successfully"
	MsgInternshipDeleted  = "Internship deleted successfully"
	MsgInternshipNotFound = "Internship not found"
	MsgInternshipRequired = "Title, type, duration, and description are required"
)

// InternshipService defines internship operations
type InternshipService interface {
	ListActive(ctx context.Context) ([]models.Internship, error)
	ListAll(ctx context.Context) ([]models.Internship, error)
	Get(ctx context.Context, id int64) (*models.Internship, error)
	Create(ctx context.Context, req *dto.InternshipRequest) (int64, error)
	Update(ctx context.Context, id int64, req *dto.InternshipRequest) error
	Delete(ctx context.Context, id int64) error
}

type internshipServiceImpl struct {
	repo *repositories.InternshipRepository
}

// NewInternshipService creates a new internship service
func NewInternshipService(repo *repositories.InternshipRepository) InternshipService {
	return &internshipServiceImpl{repo: repo}
}

func internshipFromRequest(req *dto.InternshipRequest) *models.Internship {
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	requirements := req.Requirements
	if requirements == nil {
		requirements = jsonfield.StringList{}
	}
	benefits := req.Benefits
	if benefits == nil {
		benefits = jsonfield.StringList{}
	}
	return &models.Internship{
		Title:        req.Title,
		Type:         req.Type,
		Duration:     string(req.Duration),
		Deadline:     req.Deadline,
		Description:  req.Description,
		Requirements: requirements,
		Benefits:     benefits,
		Status:       status,
		ImageURL:     req.ImageURL,
	}
}

func (s *internshipServiceImpl) ListActive(ctx context.Context) ([]models.Internship, error) {
	return s.repo.ListActive(ctx)
}

func (s *internshipServiceImpl) ListAll(ctx context.Context) ([]models.Internship, error) {
	return s.repo.ListAll(ctx)
}

func (s *internshipServiceImpl) Get(ctx context.Context, id int64) (*models.Internship, error) {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgInternshipNotFound)
	}
	return in, nil
}

func (s *internshipServiceImpl) Create(ctx context.Context, req *dto.InternshipRequest) (int64, error) {
	return s.repo.Create(ctx, internshipFromRequest(req))
}

func (s *internshipServiceImpl) Update(ctx context.Context, id int64, req *dto.InternshipRequest) error {
	in := internshipFromRequest(req)
	in.ID = id
	return notFound(s.repo.Update(ctx, in), MsgInternshipNotFound)
}

func (s *internshipServiceImpl) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), MsgInternshipNotFound)
}
