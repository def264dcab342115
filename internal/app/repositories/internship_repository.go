package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/helpers"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

var internshipColumns = []string{
	"id", "title", "type", "duration", "deadline", "description", "requirements", "benefits",
	"status", "image_url", "created_at", "updated_at",
}

// InternshipRepository handles training programmes
type InternshipRepository struct {
	db *db.DB
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(database *db.DB) *InternshipRepository {
	return &InternshipRepository{db: database}
}

func scanInternship(s rowScanner) (models.Internship, error) {
	var i models.Internship
	err := s.Scan(&i.ID, &i.Title, &i.Type, &i.Duration, &i.Deadline, &i.Description,
		&i.Requirements, &i.Benefits, &i.Status, &i.ImageURL, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *InternshipRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Internship, error) {
	q := r.db.Builder().Select(internshipColumns...).From("internships").OrderBy("created_at DESC", "id DESC")
	if where != nil {
		q = q.Where(where)
	}
	rows, err := queryRows(ctx, r.db.SQL, q)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list internships query")
		return nil, fmt.Errorf("error querying internships: %w", err)
	}
	return scanAll(rows, scanInternship)
}

// ListActive returns active internships, newest first
func (r *InternshipRepository) ListActive(ctx context.Context) ([]models.Internship, error) {
	return r.list(ctx, squirrel.Eq{"status": models.StatusActive})
}

// ListAll returns internships of every status
func (r *InternshipRepository) ListAll(ctx context.Context) ([]models.Internship, error) {
	return r.list(ctx, nil)
}

// GetByID retrieves an internship regardless of status
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(internshipColumns...).
		From("internships").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	i, err := scanInternship(row)
	if err != nil {
		return nil, notFoundOr(err, "internship")
	}
	return &i, nil
}

// Count returns the number of internships
func (r *InternshipRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "internships")
}

// Create inserts an internship and returns its id
func (r *InternshipRepository) Create(ctx context.Context, in *models.Internship) (int64, error) {
	now := helpers.Now()
	id, err := r.db.InsertReturningID(ctx, r.db.SQL, r.db.Builder().
		Insert("internships").
		Columns("title", "type", "duration", "deadline", "description", "requirements", "benefits",
			"status", "image_url", "created_at", "updated_at").
		Values(in.Title, in.Type, in.Duration, in.Deadline, in.Description, in.Requirements, in.Benefits,
			in.Status, in.ImageURL, now, now))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create internship query")
		return 0, fmt.Errorf("error creating internship: %w", err)
	}
	return id, nil
}

// Update replaces every editable field of an internship
func (r *InternshipRepository) Update(ctx context.Context, in *models.Internship) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("internships").
		SetMap(map[string]interface{}{
			"title":        in.Title,
			"type":         in.Type,
			"duration":     in.Duration,
			"deadline":     in.Deadline,
			"description":  in.Description,
			"requirements": in.Requirements,
			"benefits":     in.Benefits,
			"status":       in.Status,
			"image_url":    in.ImageURL,
			"updated_at":   helpers.Now(),
		}).
		Where(squirrel.Eq{"id": in.ID}), "internship")
}

// Delete removes an internship
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().Delete("internships").Where(squirrel.Eq{"id": id}), "internship")
}
