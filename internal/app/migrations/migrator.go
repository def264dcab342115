package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/helpers"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

//go:embed schema/sqlite/*.sql schema/postgres/*.sql
var schemaFS embed.FS

// Migrator applies the embedded schema files for a database's dialect
type Migrator struct {
	db  *db.DB
	fs  fs.FS
	dir string
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.DB) *Migrator {
	return &Migrator{
		db:  database,
		fs:  schemaFS,
		dir: path.Join("schema", string(database.Dialect)),
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	_, err := m.db.SQL.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := m.db.Builder().
		Select("COUNT(*)").
		From("schema_migrations").
		Where("version = ?", version).
		ToSql()
	if err != nil {
		return false, err
	}
	var count int
	if err := m.db.SQL.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// Files lists the schema files for the dialect in version order
func (m *Migrator) Files() ([]string, error) {
	entries, err := fs.ReadDir(m.fs, m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Migrate applies every schema file not yet recorded in schema_migrations.
// Each file runs in its own transaction.
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	files, err := m.Files()
	if err != nil {
		return err
	}

	for _, name := range files {
		// "001_init.sql" => "001"
		version := strings.SplitN(name, "_", 2)[0]

		applied, err := m.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("file", name).Msg("Migration already applied, skipping")
			continue
		}

		content, err := fs.ReadFile(m.fs, path.Join(m.dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration file: %w", err)
		}

		err = m.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("error occurred during SQL migration %s: %w", name, err)
			}
			insert := m.db.Builder().
				Insert("schema_migrations").
				Columns("version", "applied_at").
				Values(version, helpers.Now())
			if _, err := db.Exec(ctx, tx, insert); err != nil {
				return fmt.Errorf("failed to record migration: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		logger.Info().Str("file", name).Str("dialect", string(m.db.Dialect)).Msg("Migration applied")
	}
	return nil
}
