package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.SQL.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL, note BLOB)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return d
}

func TestBuilderPlaceholders(t *testing.T) {
	lite := &DB{Dialect: DialectSQLite}
	pg := &DB{Dialect: DialectPostgres}

	q, _, _ := lite.Builder().Select("*").From("items").Where(squirrel.Eq{"id": 1}).ToSql()
	if q != "SELECT * FROM items WHERE id = ?" {
		t.Errorf("sqlite query = %q", q)
	}
	q, _, _ = pg.Builder().Select("*").From("items").Where(squirrel.Eq{"id": 1}).ToSql()
	if q != "SELECT * FROM items WHERE id = $1" {
		t.Errorf("postgres query = %q", q)
	}
}

func TestInsertAndQueryMaps(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	id, err := d.InsertReturningID(ctx, d.SQL, d.Builder().Insert("items").Columns("name", "note").Values("first", []byte("raw")))
	if err != nil {
		t.Fatalf("InsertReturningID: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}

	rows, err := QueryMaps(ctx, d.SQL, d.Builder().Select("*").From("items"))
	if err != nil {
		t.Fatalf("QueryMaps: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0]["name"] != "first" || rows[0]["note"] != "raw" || rows[0]["id"] != int64(1) {
		t.Errorf("unexpected row %#v", rows[0])
	}

	n, err := Exec(ctx, d.SQL, d.Builder().Delete("items").Where(squirrel.Eq{"id": 99}))
	if err != nil || n != 0 {
		t.Errorf("Exec delete missing = %d, %v", n, err)
	}
}

func TestWithTransactionRollsBack(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := d.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := d.InsertReturningID(ctx, tx, d.Builder().Insert("items").Columns("name").Values("doomed")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	var count int
	if err := d.SQL.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("rolled back insert is visible, count = %d", count)
	}

	err = d.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		_, err := d.InsertReturningID(ctx, tx, d.Builder().Insert("items").Columns("name").Values("kept"))
		return err
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := d.SQL.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
