package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/dberrors"
	"github.com/pharmahub/backend/internal/pkg/helpers"
)

// UserRepository handles administrator accounts
type UserRepository struct {
	db *db.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.DB) *UserRepository {
	return &UserRepository{db: database}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row, err := queryRow(ctx, r.db.SQL, r.db.Builder().
		Select("id", "username", "password_hash", "created_at").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1))
	if err != nil {
		return nil, err
	}

	user := &models.User{}
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

// Count returns the number of user accounts
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "users")
}

// Create inserts a user with an already hashed password
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	now := helpers.Now()
	id, err := r.db.InsertReturningID(ctx, r.db.SQL, r.db.Builder().
		Insert("users").
		Columns("username", "password_hash", "created_at", "updated_at").
		Values(username, passwordHash, now, now))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}
