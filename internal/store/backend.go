package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatSQLite:
		return true
	default:
		return false
	}
}

func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return FormatJSON, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("store: unknown format %q", raw)
	}
	return f, nil
}

// Backend reads and rewrites the whole table. Read on a location that does
// not exist yet returns no records and no error.
type Backend interface {
	Read(ctx context.Context) ([]model.Record, error)
	Write(ctx context.Context, records []model.Record) error
	Close() error
}

// RecordListFilter narrows a listing to one category and a page of it.
// Zero values mean every category, no limit and no offset.
type RecordListFilter struct {
	Category model.Category
	Limit    int
	Offset   int
}

// Apply filters records already in memory, keeping their order.
func (f RecordListFilter) Apply(records []model.Record) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if f.Category == "" || rec.Category() == f.Category {
			out = append(out, rec)
		}
	}
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []model.Record{}
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out
}

// lister is implemented by backends that can filter without reading the
// whole table.
type lister interface {
	List(ctx context.Context, filter RecordListFilter) ([]model.Record, error)
}

func NewBackend(format Format, path string) (Backend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store: empty path")
	}
	switch format {
	case FormatJSON, "":
		return &JSONBackend{path: path}, nil
	case FormatCSV:
		return &CSVBackend{path: path}, nil
	case FormatSQLite:
		return &SQLiteBackend{path: path}, nil
	default:
		return nil, fmt.Errorf("store: unknown format %q", format)
	}
}

func readFileIfExists(path string) ([]byte, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// writeFileAtomic writes next to path and renames over it, so readers see
// either the old table or the new one.
func writeFileAtomic(path string, payload []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
