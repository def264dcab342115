package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/jsonfield"
)

// Row is a table row keyed by column name
type Row = map[string]interface{}

// publicJSONColumns are decoded from JSON text when they hold valid JSON
var publicJSONColumns = []string{"keywords", "authors"}

// PublicRepository reads the site content published to visitors
type PublicRepository struct {
	db *db.DB
}

// NewPublicRepository creates a new PublicRepository
func NewPublicRepository(database *db.DB) *PublicRepository {
	return &PublicRepository{db: database}
}

func (r *PublicRepository) rows(ctx context.Context, q squirrel.SelectBuilder, table string) ([]Row, error) {
	rows, err := db.QueryMaps(ctx, r.db.SQL, q)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", table, err)
	}
	for _, row := range rows {
		for _, col := range publicJSONColumns {
			if s, ok := row[col].(string); ok && s != "" {
				row[col] = jsonfield.DecodeText(s)
			}
		}
	}
	return rows, nil
}

// PublishedNews returns up to limit published news items, latest date first
func (r *PublicRepository) PublishedNews(ctx context.Context, limit uint64) ([]Row, error) {
	return r.rows(ctx, r.db.Builder().
		Select("*").
		From("news").
		Where(squirrel.Eq{"published": 1}).
		OrderBy("date DESC", "id DESC").
		Limit(limit), "news")
}

// Publications returns every publication, newest year first
func (r *PublicRepository) Publications(ctx context.Context) ([]Row, error) {
	return r.rows(ctx, r.db.Builder().Select("*").From("publications").OrderBy("year DESC", "id DESC"), "publications")
}

// Lectures returns every lecture, latest date first
func (r *PublicRepository) Lectures(ctx context.Context) ([]Row, error) {
	return r.rows(ctx, r.db.Builder().Select("*").From("lectures").OrderBy("date DESC", "id DESC"), "lectures")
}

// Graduates returns every graduate, latest cohort first
func (r *PublicRepository) Graduates(ctx context.Context) ([]Row, error) {
	return r.rows(ctx, r.db.Builder().Select("*").From("graduates").OrderBy("cohort DESC", "id DESC"), "graduates")
}
