package services

import (
	"context"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/pkg/jsonfield"
)

// Job messages shown to site visitors
const (
	MsgJobCreated  = "تم إنشاء الوظيفة بنجاح"
	MsgJobUpdated  = "تم تحديث الوظيفة بنجاح"
	MsgJobDeleted  = "تم حذف الوظيفة بنجاح"
	MsgJobNotFound = "الوظيفة غير موجودة"
	// MsgRequiredFields is shared by jobs and announcements
	MsgRequiredFields = "جميع الحقول المطلوبة يجب أن تكون مملوءة"
)

// JobService defines job posting operations
type JobService interface {
	ListActive(ctx context.Context) ([]models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	GetActive(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, req *dto.JobRequest) (int64, error)
	Update(ctx context.Context, id int64, req *dto.JobRequest) error
	Delete(ctx context.Context, id int64) error
}

type jobServiceImpl struct {
	jobRepo *repositories.JobRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo *repositories.JobRepository) JobService {
	return &jobServiceImpl{jobRepo: jobRepo}
}

func jobFromRequest(req *dto.JobRequest) *models.Job {
	requirements := req.Requirements
	if requirements == nil {
		requirements = jsonfield.StringList{}
	}
	benefits := req.Benefits
	if benefits == nil {
		benefits = jsonfield.StringList{}
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	return &models.Job{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Type:          req.Type.Ptr(),
		Salary:        req.Salary.Ptr(),
		Deadline:      req.Deadline.Ptr(),
		Experience:    req.Experience.Ptr(),
		Qualification: req.Qualification.Ptr(),
		Requirements:  requirements,
		Benefits:      benefits,
		Status:        status,
	}
}

func (s *jobServiceImpl) ListActive(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.ListActive(ctx)
}

func (s *jobServiceImpl) ListAll(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.ListAll(ctx)
}

func (s *jobServiceImpl) GetActive(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.jobRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgJobNotFound)
	}
	return job, nil
}

func (s *jobServiceImpl) Create(ctx context.Context, req *dto.JobRequest) (int64, error) {
	return s.jobRepo.Create(ctx, jobFromRequest(req))
}

// Update replaces the whole posting; an empty status means active
func (s *jobServiceImpl) Update(ctx context.Context, id int64, req *dto.JobRequest) error {
	job := jobFromRequest(req)
	job.ID = id
	return notFound(s.jobRepo.Update(ctx, job), MsgJobNotFound)
}

func (s *jobServiceImpl) Delete(ctx context.Context, id int64) error {
	return notFound(s.jobRepo.Delete(ctx, id), MsgJobNotFound)
}
