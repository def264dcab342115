package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

var didYouKnowColumns = []string{"id", "title", "content", "category", "image_url", "status", "created_at", "updated_at"}

// DidYouKnowRepository handles the pharmacy facts in 'did_you_know'
type DidYouKnowRepository struct {
	db *db.DB
}

// NewDidYouKnowRepository creates a new DidYouKnowRepository
func NewDidYouKnowRepository(database *db.DB) *DidYouKnowRepository {
	return &DidYouKnowRepository{db: database}
}

func scanDidYouKnow(s rowScanner) (models.DidYouKnow, error) {
	var d models.DidYouKnow
	err := s.Scan(&d.ID, &d.Title, &d.Content, &d.Category, &d.ImageURL, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// ListActive returns active facts, newest first
func (r *DidYouKnowRepository) ListActive(ctx context.Context) ([]models.DidYouKnow, error) {
	rows, err := queryRows(ctx, r.db.SQL, r.db.Builder().
		Select(didYouKnowColumns...).
		From("did_you_know").
		Where(squirrel.Eq{"status": models.StatusActive}).
		OrderBy("created_at DESC", "id DESC"))
	if err != nil {
		return nil, fmt.Errorf("error querying facts: %w", err)
	}
	return scanAll(rows, scanDidYouKnow)
}

// GetByID retrieves a fact regardless of status
func (r *DidYouKnowRepository) GetByID(ctx context.Context, id int64) (*models.DidYouKnow, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(didYouKnowColumns...).
		From("did_you_know").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	d, err := scanDidYouKnow(row)
	if err != nil {
		return nil, notFoundOr(err, "fact")
	}
	return &d, nil
}

// Create inserts a fact and returns its id
func (r *DidYouKnowRepository) Create(ctx context.Context, d *models.DidYouKnow) (int64, error) {
	now := helpers.Now()
	id, err := r.db.InsertReturningID(ctx, r.db.SQL, r.db.Builder().
		Insert("did_you_know").
		Columns("title", "content", "category", "image_url", "status", "created_at", "updated_at").
		Values(d.Title, d.Content, d.Category, d.ImageURL, d.Status, now, now))
	if err != nil {
		return 0, fmt.Errorf("error creating fact: %w", err)
	}
	return id, nil
}

// Update replaces every editable field of a fact
func (r *DidYouKnowRepository) Update(ctx context.Context, d *models.DidYouKnow) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("did_you_know").
		SetMap(map[string]interface{}{
			"title":      d.Title,
			"content":    d.Content,
			"category":   d.Category,
			"image_url":  d.ImageURL,
			"status":     d.Status,
			"updated_at": helpers.Now(),
		}).
		Where(squirrel.Eq{"id": d.ID}), "fact")
}

// Delete removes a fact
func (r *DidYouKnowRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().Delete("did_you_know").Where(squirrel.Eq{"id": id}), "fact")
}
