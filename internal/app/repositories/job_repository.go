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

var jobColumns = []string{
	"id", "title", "description", "location", "type", "salary", "deadline",
	"experience", "qualification", "requirements", "benefits", "status",
	"created_at", "updated_at",
}

// JobRepository handles job postings
type JobRepository struct {
	db *db.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *db.DB) *JobRepository {
	return &JobRepository{db: database}
}

func scanJob(s rowScanner) (models.Job, error) {
	var j models.Job
	err := s.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.Type, &j.Salary, &j.Deadline,
		&j.Experience, &j.Qualification, &j.Requirements, &j.Benefits, &j.Status,
		&j.CreatedAt, &j.UpdatedAt)
	return j, err
}

func (r *JobRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Job, error) {
	q := r.db.Builder().Select(jobColumns...).From("jobs").OrderBy("created_at DESC", "id DESC")
	if where != nil {
		q = q.Where(where)
	}
	rows, err := queryRows(ctx, r.db.SQL, q)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list jobs query")
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	return scanAll(rows, scanJob)
}

// ListActive returns active jobs, newest first
func (r *JobRepository) ListActive(ctx context.Context) ([]models.Job, error) {
	return r.list(ctx, squirrel.Eq{"status": models.StatusActive})
}

// ListAll returns jobs of every status, newest first
func (r *JobRepository) ListAll(ctx context.Context) ([]models.Job, error) {
	return r.list(ctx, nil)
}

// GetActiveByID retrieves an active job by ID
func (r *JobRepository) GetActiveByID(ctx context.Context, id int64) (*models.Job, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"id": id, "status": models.StatusActive}))
	if err != nil {
		return nil, err
	}
	j, err := scanJob(row)
	if err != nil {
		return nil, notFoundOr(err, "job")
	}
	return &j, nil
}

// Create inserts a job and returns its id
func (r *JobRepository) Create(ctx context.Context, job *models.Job) (int64, error) {
	now := helpers.Now()
	id, err := r.db.InsertReturningID(ctx, r.db.SQL, r.db.Builder().
		Insert("jobs").
		Columns("title", "description", "location", "type", "salary", "deadline", "experience",
			"qualification", "requirements", "benefits", "status", "created_at", "updated_at").
		Values(job.Title, job.Description, job.Location, job.Type, job.Salary, job.Deadline, job.Experience,
			job.Qualification, job.Requirements, job.Benefits, job.Status, now, now))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create job query")
		return 0, fmt.Errorf("error creating job: %w", err)
	}
	return id, nil
}

// Update replaces every editable field of a job
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("jobs").
		SetMap(map[string]interface{}{
			"title":         job.Title,
			"description":   job.Description,
			"location":      job.Location,
			"type":          job.Type,
			"salary":        job.Salary,
			"deadline":      job.Deadline,
			"experience":    job.Experience,
			"qualification": job.Qualification,
			"requirements":  job.Requirements,
			"benefits":      job.Benefits,
			"status":        job.Status,
			"updated_at":    helpers.Now(),
		}).
		Where(squirrel.Eq{"id": job.ID}), "job")
}

// Delete removes a job
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().Delete("jobs").Where(squirrel.Eq{"id": id}), "job")
}
