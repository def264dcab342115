package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/filestorage"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

// FileService defines operations on admin uploads
type FileService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*models.File, error)
	List(ctx context.Context) ([]models.File, error)
	Delete(ctx context.Context, id int64) error
}

type fileServiceImpl struct {
	fileRepo *repositories.FileRepository
	storage  filestorage.FileStorage
	now      func() time.Time
}

// NewFileService creates a new file service
func NewFileService(fileRepo *repositories.FileRepository, storage filestorage.FileStorage) FileService {
	return &fileServiceImpl{
		fileRepo: fileRepo,
		storage:  storage,
		now:      time.Now,
	}
}

// Upload stores the file at the storage root and records its metadata
func (s *fileServiceImpl) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*models.File, error) {
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("No file uploaded")
	}

	name := filestorage.TimestampedName(fileHeader.Filename, s.now())
	stored, err := s.storage.SaveFileAs(fileHeader, "", name)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	file := &models.File{
		Filename:     stored.Name,
		OriginalName: &stored.OriginalName,
		MimeType:     &stored.MimeType,
		Size:         &stored.Size,
		URL:          stored.URL,
	}
	id, err := s.fileRepo.Create(ctx, file)
	if err != nil {
		if delErr := s.storage.DeleteFile(stored.RelativePath); delErr != nil {
			logger.Warn().Err(delErr).Str("file", stored.RelativePath).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}
	file.ID = id
	return file, nil
}

// List returns every recorded upload, newest first
func (s *fileServiceImpl) List(ctx context.Context) ([]models.File, error) {
	return s.fileRepo.List(ctx)
}

// Delete removes the stored file and then its row
func (s *fileServiceImpl) Delete(ctx context.Context, id int64) error {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "File not found")
	}

	if err := s.storage.DeleteFile(file.URL); err != nil {
		if !errors.Is(err, filestorage.ErrInvalidPath) {
			return err
		}
		logger.Warn().Err(err).Int64("fileID", id).Msg("Stored file path is invalid, removing row only")
	}
	return notFound(s.fileRepo.Delete(ctx, id), "File not found")
}
