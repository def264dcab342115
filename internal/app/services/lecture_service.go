package services

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/filestorage"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

// Lecture messages
const (
	MsgLectureCreated  = "Lecture created successfully"
	MsgLectureUpdated  = "Lecture updated successfully"
	MsgLectureDeleted  = "Lecture deleted successfully"
	MsgLectureNotFound = "Lecture not found"
	MsgLectureRequired = "Missing required fields: title, description, type, mode, date, location"
)

const (
	lectureDir    = "lectures"
	lecturePrefix = "lecture-"
	// MaxLecturePDFSize is the largest accepted lecture PDF
	MaxLecturePDFSize = 10 << 20
)

// LectureService defines lecture operations
type LectureService interface {
	List(ctx context.Context, order repositories.LectureOrder) ([]models.Lecture, error)
	Get(ctx context.Context, id int64) (*models.Lecture, error)
	Create(ctx context.Context, req *dto.LectureRequest, pdf *multipart.FileHeader) (int64, error)
	Update(ctx context.Context, id int64, req *dto.LectureRequest, pdf *multipart.FileHeader) error
	Delete(ctx context.Context, id int64) error
}

type lectureServiceImpl struct {
	repo    *repositories.LectureRepository
	storage filestorage.FileStorage
}

// NewLectureService creates a new lecture service
func NewLectureService(repo *repositories.LectureRepository, storage filestorage.FileStorage) LectureService {
	return &lectureServiceImpl{repo: repo, storage: storage}
}

// withPDFURL fills the public URL of the lecture's PDF, if any
func (s *lectureServiceImpl) withPDFURL(l *models.Lecture) {
	if l.PDFPath == nil || *l.PDFPath == "" {
		l.PDFURL = nil
		return
	}
	url := s.storage.PublicURL(lectureDir + "/" + path.Base(*l.PDFPath))
	l.PDFURL = &url
}

func (s *lectureServiceImpl) List(ctx context.Context, order repositories.LectureOrder) ([]models.Lecture, error) {
	lectures, err := s.repo.List(ctx, order)
	if err != nil {
		return nil, err
	}
	for i := range lectures {
		s.withPDFURL(&lectures[i])
	}
	return lectures, nil
}

func (s *lectureServiceImpl) Get(ctx context.Context, id int64) (*models.Lecture, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, MsgLectureNotFound)
	}
	s.withPDFURL(l)
	return l, nil
}

// checkPDF accepts only application/pdf uploads within the size limit
func checkPDF(fh *multipart.FileHeader) error {
	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/pdf" {
		return &apperrors.CustomError{
			Err:     apperrors.ErrUnsupportedFileType,
			Message: "Only PDF files are allowed for lecture materials",
		}
	}
	if fh.Size > MaxLecturePDFSize {
		return &apperrors.CustomError{
			Err:     apperrors.ErrFileTooLarge,
			Message: fmt.Sprintf("PDF exceeds the %d MB limit", MaxLecturePDFSize>>20),
		}
	}
	return nil
}

// storePDF saves an uploaded PDF and returns its path relative to the storage root
func (s *lectureServiceImpl) storePDF(fh *multipart.FileHeader) (*string, error) {
	if err := checkPDF(fh); err != nil {
		return nil, err
	}
	stored, err := s.storage.SaveFileWithPath(fh, lectureDir, lecturePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to store lecture PDF: %w", err)
	}
	return &stored.RelativePath, nil
}

func (s *lectureServiceImpl) removeFile(p *string) {
	if p == nil || *p == "" {
		return
	}
	if err := s.storage.DeleteFile(*p); err != nil {
		logger.Warn().Err(err).Str("file", *p).Msg("Failed to remove lecture PDF")
	}
}

func lectureFromRequest(req *dto.LectureRequest) *models.Lecture {
	return &models.Lecture{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Mode:        req.Mode,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Instructor:  req.Instructor,
		VideoURL:    req.VideoURL,
	}
}

// Create inserts a lecture. A stored PDF is removed again if the insert fails.
func (s *lectureServiceImpl) Create(ctx context.Context, req *dto.LectureRequest, pdf *multipart.FileHeader) (int64, error) {
	l := lectureFromRequest(req)
	if pdf != nil {
		p, err := s.storePDF(pdf)
		if err != nil {
			return 0, err
		}
		l.PDFPath = p
	}

	id, err := s.repo.Create(ctx, l)
	if err != nil {
		s.removeFile(l.PDFPath)
		return 0, err
	}
	return id, nil
}

// Update replaces the lecture. A new PDF replaces the old one, which is only
// deleted once the row has been updated.
func (s *lectureServiceImpl) Update(ctx context.Context, id int64, req *dto.LectureRequest, pdf *multipart.FileHeader) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, MsgLectureNotFound)
	}

	l := lectureFromRequest(req)
	l.ID = id
	l.PDFPath = current.PDFPath

	var replaced *string
	if pdf != nil {
		p, err := s.storePDF(pdf)
		if err != nil {
			return err
		}
		replaced = current.PDFPath
		l.PDFPath = p
	}

	if err := s.repo.Update(ctx, l); err != nil {
		if pdf != nil {
			s.removeFile(l.PDFPath)
		}
		return notFound(err, MsgLectureNotFound)
	}
	s.removeFile(replaced)
	return nil
}

// Delete removes the lecture row and then its PDF
func (s *lectureServiceImpl) Delete(ctx context.Context, id int64) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, MsgLectureNotFound)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, MsgLectureNotFound)
	}
	s.removeFile(current.PDFPath)
	return nil
}
