package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/store"
)

func openStore(t *testing.T, path string) *store.Store {
	t.Helper()
	s, err := store.Open(store.Options{Path: path, Format: store.FormatJSON})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRunPersistsEachCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayboard.json")
	s := openStore(t, path)
	ctx := t.Context()

	res, err := Run(ctx, s, "add checklist Buy milk", model.SignLeo)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res.Focus != "checklist" || res.RecordID == "" {
		t.Fatalf("unexpected add result: %+v", res)
	}
	if _, err := Run(ctx, s, "done "+ShortID(res.RecordID), model.SignLeo); err != nil {
		t.Fatalf("done: %v", err)
	}
	if _, err := Run(ctx, s, "mood happy", model.SignLeo); err != nil {
		t.Fatalf("mood: %v", err)
	}

	fresh := openStore(t, path).Load(ctx)
	items := fresh.Category(model.CategoryChecklist)
	if len(items) != 1 || !items[0].Done() {
		t.Fatalf("expected persisted done item, got %#v", items)
	}
	moods := fresh.Category(model.CategoryMood)
	if len(moods) != 1 || moods[0].Entry.(model.MoodEntry).Sign != model.SignLeo {
		t.Fatalf("expected default sign on mood, got %#v", moods)
	}
}

func TestRunGoalProgressRejectsOverflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayboard.json")
	s := openStore(t, path)
	ctx := t.Context()

	res, err := Run(ctx, s, "goal 500 read pages", "")
	if err != nil {
		t.Fatalf("goal: %v", err)
	}
	_, err = Run(ctx, s, "progress "+res.RecordID+" 600", "")
	if !errors.Is(err, store.ErrInvalidProgress) {
		t.Fatalf("expected ErrInvalidProgress, got %v", err)
	}
	out, err := Run(ctx, s, "progress "+res.RecordID+" 500", "")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if out.Message != `"read pages" at 100%` {
		t.Fatalf("unexpected message: %q", out.Message)
	}
	summary := openStore(t, path).Load(ctx).Aggregate(model.CategoryGoal, model.FieldCurrent)
	if summary.Percent() != 100 {
		t.Fatalf("expected 100%%, got %v", summary.Percent())
	}
}

func TestRunRemoveAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayboard.json")
	s := openStore(t, path)
	ctx := t.Context()

	res, err := Run(ctx, s, "add task file taxes", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, in := range []string{"mood sad", "mood calm"} {
		if _, err := Run(ctx, s, in, ""); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
	}
	if _, err := Run(ctx, s, "rm "+res.RecordID, ""); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if _, err := Run(ctx, s, "rm "+res.RecordID, ""); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second rm, got %v", err)
	}
	cleared, err := Run(ctx, s, "clear mood", "")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared.Message != "cleared 2 mood records" {
		t.Fatalf("unexpected clear message: %q", cleared.Message)
	}
	if n := openStore(t, path).Load(ctx).Len(); n != 0 {
		t.Fatalf("expected empty store, got %d records", n)
	}
}

func TestRunShowDoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.json")
	s := openStore(t, path)
	res, err := Run(t.Context(), s, "show goals", "")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if res.Focus != "goal" {
		t.Fatalf("unexpected focus: %q", res.Focus)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("show must not create the data file, stat err=%v", err)
	}
	if s.LoadErr() != nil {
		t.Fatalf("unexpected load error: %v", s.LoadErr())
	}
}
