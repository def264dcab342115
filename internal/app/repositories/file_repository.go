package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

var fileColumns = []string{"id", "filename", "originalname", "mimetype", "size", "url", "created_at"}

// FileRepository handles upload metadata in the 'files' table
type FileRepository struct {
	db *db.DB
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(database *db.DB) *FileRepository {
	return &FileRepository{db: database}
}

func scanFile(s rowScanner) (models.File, error) {
	var f models.File
	err := s.Scan(&f.ID, &f.Filename, &f.OriginalName, &f.MimeType, &f.Size, &f.URL, &f.CreatedAt)
	return f, err
}

// Create records an uploaded file
func (r *FileRepository) Create(ctx context.Context, file *models.File) (int64, error) {
	now := helpers.Now()
	id, err := r.db.InsertReturningID(ctx, r.db.SQL, r.db.Builder().
		Insert("files").
		Columns("filename", "originalname", "mimetype", "size", "url", "created_at", "updated_at").
		Values(file.Filename, file.OriginalName, file.MimeType, file.Size, file.URL, now, now))
	if err != nil {
		return 0, fmt.Errorf("error creating file: %w", err)
	}
	return id, nil
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(fileColumns...).
		From("files").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	f, err := scanFile(row)
	if err != nil {
		return nil, notFoundOr(err, "file")
	}
	return &f, nil
}

// List returns every file, newest first
func (r *FileRepository) List(ctx context.Context) ([]models.File, error) {
	rows, err := queryRows(ctx, r.db.SQL, r.db.Builder().
		Select(fileColumns...).
		From("files").
		OrderBy("created_at DESC", "id DESC"))
	if err != nil {
		return nil, fmt.Errorf("error querying files: %w", err)
	}
	return scanAll(rows, scanFile)
}

// Delete removes a file row
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().Delete("files").Where(squirrel.Eq{"id": id}), "file")
}
