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

var lectureColumns = []string{
	"id", "title", "description", "type", "mode", "date", "time", "location", "instructor",
	"pdf_path", "video_url", "created_at", "updated_at",
}

// LectureOrder selects the ordering of a lecture listing
type LectureOrder int

const (
	// LecturesNewestFirst orders by date then creation time, both descending
	LecturesNewestFirst LectureOrder = iota
	// LecturesUpcomingFirst orders by date then time, both ascending
	LecturesUpcomingFirst
)

// LectureRepository handles scheduled lectures
type LectureRepository struct {
	db *db.DB
}

// NewLectureRepository creates a new LectureRepository
func NewLectureRepository(database *db.DB) *LectureRepository {
	return &LectureRepository{db: database}
}

func scanLecture(s rowScanner) (models.Lecture, error) {
	var l models.Lecture
	err := s.Scan(&l.ID, &l.Title, &l.Description, &l.Type, &l.Mode, &l.Date, &l.Time, &l.Location,
		&l.Instructor, &l.PDFPath, &l.VideoURL, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// List returns every lecture in the requested order
func (r *LectureRepository) List(ctx context.Context, order LectureOrder) ([]models.Lecture, error) {
	q := r.db.Builder().Select(lectureColumns...).From("lectures")
	switch order {
	case LecturesUpcomingFirst:
		q = q.OrderBy("date ASC", "time ASC")
	default:
		q = q.OrderBy("date DESC", "created_at DESC")
	}

	rows, err := queryRows(ctx, r.db.SQL, q)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list lectures query")
		return nil, fmt.Errorf("error querying lectures: %w", err)
	}
	return scanAll(rows, scanLecture)
}

// GetByID retrieves a lecture by ID
func (r *LectureRepository) GetByID(ctx context.Context, id int64) (*models.Lecture, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(lectureColumns...).
		From("lectures").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	l, err := scanLecture(row)
	if err != nil {
		return nil, notFoundOr(err, "lecture")
	}
	return &l, nil
}

// Count returns the number of lectures
func (r *LectureRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "lectures")
}

// Create inserts a lecture and returns its id
func (r *LectureRepository) Create(ctx context.Context, l *models.Lecture) (int64, error) {
	now := helpers.Now()
	id, err := r.db.InsertReturningID(ctx, r.db.SQL, r.db.Builder().
		Insert("lectures").
		Columns("title", "description", "type", "mode", "date", "time", "location", "instructor",
			"pdf_path", "video_url", "created_at", "updated_at").
		Values(l.Title, l.Description, l.Type, l.Mode, l.Date, l.Time, l.Location, l.Instructor,
			l.PDFPath, l.VideoURL, now, now))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create lecture query")
		return 0, fmt.Errorf("error creating lecture: %w", err)
	}
	return id, nil
}

// Update replaces every editable field of a lecture, including pdf_path
func (r *LectureRepository) Update(ctx context.Context, l *models.Lecture) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("lectures").
		SetMap(map[string]interface{}{
			"title":       l.Title,
			"description": l.Description,
			"type":        l.Type,
			"mode":        l.Mode,
			"date":        l.Date,
			"time":        l.Time,
			"location":    l.Location,
			"instructor":  l.Instructor,
			"pdf_path":    l.PDFPath,
			"video_url":   l.VideoURL,
			"updated_at":  helpers.Now(),
		}).
		Where(squirrel.Eq{"id": l.ID}), "lecture")
}

// Delete removes a lecture
func (r *LectureRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().Delete("lectures").Where(squirrel.Eq{"id": id}), "lecture")
}
