package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/dberrors"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

var commentColumns = []string{"id", "question_id", "content", "author", "created_at", "updated_at"}

// CommentRepository handles answers to Pharma Hub questions
type CommentRepository struct {
	db *db.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(database *db.DB) *CommentRepository {
	return &CommentRepository{db: database}
}

func scanComment(s rowScanner) (models.Comment, error) {
	var c models.Comment
	err := s.Scan(&c.ID, &c.QuestionID, &c.Content, &c.Author, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func insertComment(ctx context.Context, database *db.DB, q db.Querier, c *models.Comment) (int64, error) {
	created := c.CreatedAt
	if created == "" {
		created = helpers.Now()
	}
	id, err := database.InsertReturningID(ctx, q, database.Builder().
		Insert("comments").
		Columns("question_id", "content", "author", "created_at", "updated_at").
		Values(c.QuestionID, c.Content, c.Author, created, created))
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("error creating comment: %w", err)
	}
	return id, nil
}

// ListByQuestion returns the comments of a question, oldest first
func (r *CommentRepository) ListByQuestion(ctx context.Context, questionID int64) ([]models.Comment, error) {
	rows, err := queryRows(ctx, r.db.SQL, r.db.Builder().
		Select(commentColumns...).
		From("comments").
		Where(squirrel.Eq{"question_id": questionID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	return scanAll(rows, scanComment)
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(commentColumns...).
		From("comments").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	c, err := scanComment(row)
	if err != nil {
		return nil, notFoundOr(err, "comment")
	}
	return &c, nil
}

// Create inserts a comment. A missing question gives ErrNotFound.
func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) (int64, error) {
	return insertComment(ctx, r.db, r.db.SQL, c)
}

// UpdateContent replaces the content of a comment
func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("comments").
		Set("content", content).
		Set("updated_at", helpers.Now()).
		Where(squirrel.Eq{"id": id}), "comment")
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().Delete("comments").Where(squirrel.Eq{"id": id}), "comment")
}
