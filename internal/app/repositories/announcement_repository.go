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

var announcementColumns = []string{
	"id", "title", "type", "date", "deadline", "level", "location", "duration", "field", "prize",
	"description", "details", "requirements", "benefits", "topics", "speakers", "activities",
	"prizes", "criteria", "image_url", "status", "created_at", "updated_at",
}

// AnnouncementRepository handles conference, competition and workshop notices
type AnnouncementRepository struct {
	db *db.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(database *db.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: database}
}

func scanAnnouncement(s rowScanner) (models.Announcement, error) {
	var a models.Announcement
	err := s.Scan(&a.ID, &a.Title, &a.Type, &a.Date, &a.Deadline, &a.Level, &a.Location, &a.Duration,
		&a.Field, &a.Prize, &a.Description, &a.Details, &a.Requirements, &a.Benefits, &a.Topics,
		&a.Speakers, &a.Activities, &a.Prizes, &a.Criteria, &a.ImageURL, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// announcementFields returns the writable columns of a
func announcementFields(a *models.Announcement) map[string]interface{} {
	return map[string]interface{}{
		"title":        a.Title,
		"type":         a.Type,
		"date":         a.Date,
		"deadline":     a.Deadline,
		"level":        a.Level,
		"location":     a.Location,
		"duration":     a.Duration,
		"field":        a.Field,
		"prize":        a.Prize,
		"description":  a.Description,
		"details":      a.Details,
		"requirements": a.Requirements,
		"benefits":     a.Benefits,
		"topics":       a.Topics,
		"speakers":     a.Speakers,
		"activities":   a.Activities,
		"prizes":       a.Prizes,
		"criteria":     a.Criteria,
		"image_url":    a.ImageURL,
		"status":       a.Status,
	}
}

func (r *AnnouncementRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Announcement, error) {
	q := r.db.Builder().Select(announcementColumns...).From("announcements").OrderBy("created_at DESC", "id DESC")
	if where != nil {
		q = q.Where(where)
	}
	rows, err := queryRows(ctx, r.db.SQL, q)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	return scanAll(rows, scanAnnouncement)
}

// ListActive returns active announcements, newest first
func (r *AnnouncementRepository) ListActive(ctx context.Context) ([]models.Announcement, error) {
	return r.list(ctx, squirrel.Eq{"status": models.StatusActive})
}

// ListAll returns announcements of every status
func (r *AnnouncementRepository) ListAll(ctx context.Context) ([]models.Announcement, error) {
	return r.list(ctx, nil)
}

// GetActiveByID retrieves an active announcement by ID
func (r *AnnouncementRepository) GetActiveByID(ctx context.Context, id int64) (*models.Announcement, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(announcementColumns...).
		From("announcements").
		Where(squirrel.Eq{"id": id, "status": models.StatusActive}))
	if err != nil {
		return nil, err
	}
	a, err := scanAnnouncement(row)
	if err != nil {
		return nil, notFoundOr(err, "announcement")
	}
	return &a, nil
}

// Create inserts an announcement and returns its id
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) (int64, error) {
	fields := announcementFields(a)
	now := helpers.Now()
	fields["created_at"] = now
	fields["updated_at"] = now

	id, err := r.db.InsertReturningID(ctx, r.db.SQL, r.db.Builder().Insert("announcements").SetMap(fields))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}
	return id, nil
}

// Update replaces every editable field of an announcement
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	fields := announcementFields(a)
	fields["updated_at"] = helpers.Now()
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("announcements").
		SetMap(fields).
		Where(squirrel.Eq{"id": a.ID}), "announcement")
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().Delete("announcements").Where(squirrel.Eq{"id": id}), "announcement")
}
