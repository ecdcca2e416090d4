package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("store: nil db")
	}
	if err := MigrateUp(db); err != nil {
		return nil, err
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) ListRecords(ctx context.Context, filter RecordListFilter) ([]model.Record, error) {
	query := `SELECT id, category, text, done, created_at, current, target, deadline, mood, sign, note FROM records`
	args := make([]any, 0, 3)
	if filter.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(filter.Category))
	}
	query += ` ORDER BY position ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Record, 0)
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ReplaceRecords rewrites the table inside one transaction.
func (r *SQLiteRepository) ReplaceRecords(ctx context.Context, records []model.Record) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (position, id, category, text, done, created_at, current, target, deadline, mood, sign, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range records {
		in := toRow(rec)
		if _, err = stmt.ExecContext(ctx,
			i, in.ID, in.Category, in.Text, boolInt(in.Done), in.Created,
			nullFloat(in.Current), nullFloat(in.Target), nullString(in.Deadline),
			in.Mood, in.Sign, in.Note,
		); err != nil {
			return fmt.Errorf("insert record %s: %w", in.ID, err)
		}
	}
	return tx.Commit()
}

// SQLiteBackend opens the database on first use so that a missing file
// loads as an empty table and is only created by the first write.
type SQLiteBackend struct {
	path string
	repo *SQLiteRepository
}

func (b *SQLiteBackend) Read(ctx context.Context) ([]model.Record, error) {
	return b.List(ctx, RecordListFilter{})
}

// List pushes the filter down to the query. A missing file lists nothing.
func (b *SQLiteBackend) List(ctx context.Context, filter RecordListFilter) ([]model.Record, error) {
	if b.repo == nil {
		if _, err := os.Stat(b.path); err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
	}
	repo, err := b.open()
	if err != nil {
		return nil, err
	}
	return repo.ListRecords(ctx, filter)
}

func (b *SQLiteBackend) Write(ctx context.Context, records []model.Record) error {
	repo, err := b.open()
	if err != nil {
		return err
	}
	return repo.ReplaceRecords(ctx, records)
}

func (b *SQLiteBackend) Close() error {
	if b.repo == nil {
		return nil
	}
	err := b.repo.Close()
	b.repo = nil
	return err
}

func (b *SQLiteBackend) open() (*SQLiteRepository, error) {
	if b.repo != nil {
		return b.repo, nil
	}
	if err := ensureDir(b.path); err != nil {
		return nil, err
	}
	repo, err := OpenSQLite(b.path)
	if err != nil {
		return nil, err
	}
	b.repo = repo
	return repo, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (model.Record, error) {
	var out row
	var done int
	var current, target sql.NullFloat64
	var deadline sql.NullString
	if err := s.Scan(&out.ID, &out.Category, &out.Text, &done, &out.Created, &current, &target, &deadline, &out.Mood, &out.Sign, &out.Note); err != nil {
		return model.Record{}, err
	}
	out.Done = done == 1
	if current.Valid {
		out.Current = &current.Float64
	}
	if target.Valid {
		out.Target = &target.Float64
	}
	out.Deadline = deadline.String
	return out.record()
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			sql += " LIMIT -1"
		}
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}
