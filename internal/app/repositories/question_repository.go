package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/helpers"
	"github.com/pharmahub/backend/internal/pkg/jsonfield"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

// Question list sort keys
const (
	SortLatest      = "latest"
	SortOldest      = "oldest"
	SortMostAnswers = "most-answers"
	SortMostViews   = "most-views"
)

var questionColumns = []string{"id", "title", "content", "category", "author", "tags", "views", "created_at", "updated_at"}

// QuestionFilter narrows a question listing
type QuestionFilter struct {
	Category string
	Sort     string
	Limit    uint64
}

// QuestionRepository handles Pharma Hub questions
type QuestionRepository struct {
	db *db.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(database *db.DB) *QuestionRepository {
	return &QuestionRepository{db: database}
}

// scanQuestion reads the questionColumns, plus answer_count when withCount is set.
// Tags that are absent or not a JSON array come back as an empty list.
func scanQuestion(s rowScanner, withCount bool) (models.Question, error) {
	var q models.Question
	var tags sql.NullString
	dest := []interface{}{&q.ID, &q.Title, &q.Content, &q.Category, &q.Author, &tags, &q.Views, &q.CreatedAt, &q.UpdatedAt}
	var count int64
	if withCount {
		dest = append(dest, &count)
	}
	if err := s.Scan(dest...); err != nil {
		return q, err
	}
	q.Tags = jsonfield.ParseStrict(tags.String)
	if withCount {
		q.AnswerCount = &count
	}
	return q, nil
}

func orderForSort(sort string) []string {
	switch sort {
	case SortOldest:
		return []string{"q.created_at ASC", "q.id ASC"}
	case SortMostAnswers:
		return []string{"answer_count DESC", "q.created_at DESC"}
	case SortMostViews:
		return []string{"q.views DESC", "q.created_at DESC"}
	default:
		return []string{"q.created_at DESC", "q.id DESC"}
	}
}

// List returns questions with their answer counts
func (r *QuestionRepository) List(ctx context.Context, f QuestionFilter) ([]models.Question, error) {
	cols := make([]string, 0, len(questionColumns)+1)
	for _, c := range questionColumns {
		cols = append(cols, "q."+c)
	}
	cols = append(cols, "COUNT(c.id) AS answer_count")

	q := r.db.Builder().
		Select(cols...).
		From("questions q").
		LeftJoin("comments c ON q.id = c.question_id")
	if f.Category != "" {
		q = q.Where(squirrel.Eq{"q.category": f.Category})
	}
	q = q.GroupBy("q.id").OrderBy(orderForSort(f.Sort)...)
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := queryRows(ctx, r.db.SQL, q)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list questions query")
		return nil, fmt.Errorf("error querying questions: %w", err)
	}
	return scanAll(rows, func(s rowScanner) (models.Question, error) {
		return scanQuestion(s, true)
	})
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select(questionColumns...).
		From("questions").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	q, err := scanQuestion(row, false)
	if err != nil {
		return nil, notFoundOr(err, "question")
	}
	return &q, nil
}

// IncrementViews bumps the view counter of a question
func (r *QuestionRepository) IncrementViews(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("questions").
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": id}), "question")
}

// Count returns the number of questions
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "questions")
}

// Create inserts a question and returns its id
func (r *QuestionRepository) Create(ctx context.Context, q *models.Question) (int64, error) {
	return r.create(ctx, r.db.SQL, q)
}

func (r *QuestionRepository) create(ctx context.Context, exec db.Querier, q *models.Question) (int64, error) {
	created := q.CreatedAt
	if created == "" {
		created = helpers.Now()
	}
	tags := q.Tags
	if tags == nil {
		tags = jsonfield.StringList{}
	}
	id, err := r.db.InsertReturningID(ctx, exec, r.db.Builder().
		Insert("questions").
		Columns("title", "content", "category", "author", "tags", "views", "created_at", "updated_at").
		Values(q.Title, q.Content, q.Category, q.Author, tags, q.Views, created, created))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create question query")
		return 0, fmt.Errorf("error creating question: %w", err)
	}
	return id, nil
}

// Update replaces the title, content, category and tags of a question
func (r *QuestionRepository) Update(ctx context.Context, q *models.Question) error {
	tags := q.Tags
	if tags == nil {
		tags = jsonfield.StringList{}
	}
	return execAffecting(ctx, r.db.SQL, r.db.Builder().
		Update("questions").
		SetMap(map[string]interface{}{
			"title":      q.Title,
			"content":    q.Content,
			"category":   q.Category,
			"tags":       tags,
			"updated_at": helpers.Now(),
		}).
		Where(squirrel.Eq{"id": q.ID}), "question")
}

// Delete removes a question and its comments in one transaction
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := db.Exec(ctx, tx, r.db.Builder().Delete("comments").Where(squirrel.Eq{"question_id": id})); err != nil {
			return fmt.Errorf("error deleting question comments: %w", err)
		}
		return execAffecting(ctx, tx, r.db.Builder().Delete("questions").Where(squirrel.Eq{"id": id}), "question")
	})
}

// CreateWithComments inserts a question and its comments atomically
func (r *QuestionRepository) CreateWithComments(ctx context.Context, q *models.Question, comments []models.Comment) (int64, error) {
	var id int64
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		id, err = r.create(ctx, tx, q)
		if err != nil {
			return err
		}
		for i := range comments {
			comments[i].QuestionID = id
			if _, err := insertComment(ctx, r.db, tx, &comments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return id, err
}

// Stats summarises questions and comments
func (r *QuestionRepository) Stats(ctx context.Context) (*models.ForumStats, error) {
	stats := &models.ForumStats{CategoryStats: []models.CategoryCount{}}

	var err error
	if stats.TotalQuestions, err = countRows(ctx, r.db, "questions"); err != nil {
		return nil, err
	}
	if stats.TotalComments, err = countRows(ctx, r.db, "comments"); err != nil {
		return nil, err
	}

	rows, err := queryRows(ctx, r.db.SQL, r.db.Builder().
		Select("category", "COUNT(*)").
		From("questions").
		GroupBy("category").
		OrderBy("category"))
	if err != nil {
		return nil, fmt.Errorf("error querying category stats: %w", err)
	}
	stats.CategoryStats, err = scanAll(rows, func(s rowScanner) (models.CategoryCount, error) {
		var cc models.CategoryCount
		err := s.Scan(&cc.Category, &cc.Count)
		return cc, err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
