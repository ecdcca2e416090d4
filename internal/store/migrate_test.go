package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo after down: %v", err)
	}

	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	rec := model.Record{ID: "rec-rt-1", Created: now, Entry: model.TaskItem{Text: "Roundtrip task"}}
	if err := repo.ReplaceRecords(t.Context(), []model.Record{rec}); err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}

	got, err := repo.ListRecords(t.Context(), RecordListFilter{})
	if err != nil {
		t.Fatalf("list after roundtrip failed: %v", err)
	}
	if len(got) != 1 || got[0].Text() != "Roundtrip task" {
		t.Fatalf("unexpected records after roundtrip: %#v", got)
	}
}
