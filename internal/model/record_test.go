package model

import (
	"errors"
	"testing"
	"time"
)

func TestRecordValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	rec := Record{ID: "rec-1", Created: now, Entry: ChecklistItem{Text: "Buy milk"}}
	if err := rec.Validate(); err != nil {
		t.Fatalf("expected valid record, got error: %v", err)
	}
	if rec.Category() != CategoryChecklist {
		t.Fatalf("unexpected category: %q", rec.Category())
	}
}

func TestRecordValidateRequiresText(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	rec := Record{ID: "rec-1", Created: now, Entry: TaskItem{Text: "   "}}
	err := rec.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: text is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecordSetDoneLeavesOriginal(t *testing.T) {
	rec := Record{ID: "rec-1", Created: time.Now(), Entry: ShoppingItem{Text: "Eggs"}}
	next, err := rec.Set(FieldDone, true)
	if err != nil {
		t.Fatalf("set done: %v", err)
	}
	if !next.Done() {
		t.Fatal("expected copy to be done")
	}
	if rec.Done() {
		t.Fatal("expected original to stay open")
	}
}

func TestRecordSetRejectsWrongField(t *testing.T) {
	rec := Record{ID: "rec-1", Created: time.Now(), Entry: MoodEntry{Mood: MoodCalm}}
	if _, err := rec.Set(FieldDone, true); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for mood done, got: %v", err)
	}
	task := Record{ID: "rec-2", Created: time.Now(), Entry: TaskItem{Text: "x"}}
	if _, err := task.Set(FieldCurrent, 3); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for task current, got: %v", err)
	}
	if _, err := task.Set(FieldDone, "yes"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got: %v", err)
	}
	if _, err := task.Set(Field("colour"), "red"); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for unknown field, got: %v", err)
	}
}

func TestGoalProgressBounds(t *testing.T) {
	g, err := NewGoal("Read pages", 500, nil)
	if err != nil {
		t.Fatalf("new goal: %v", err)
	}
	rec := Record{ID: "g-1", Created: time.Now(), Entry: g}

	same, err := rec.Set(FieldCurrent, 600)
	if !errors.Is(err, ErrInvalidProgress) {
		t.Fatalf("expected ErrInvalidProgress, got: %v", err)
	}
	if same.Entry.(Goal).Current != 0 {
		t.Fatalf("expected current to stay 0, got %v", same.Entry.(Goal).Current)
	}
	if _, err := rec.Set(FieldCurrent, -1.0); !errors.Is(err, ErrInvalidProgress) {
		t.Fatalf("expected ErrInvalidProgress for negative, got: %v", err)
	}

	done, err := rec.Set(FieldCurrent, int64(500))
	if err != nil {
		t.Fatalf("set current: %v", err)
	}
	if !done.Done() {
		t.Fatal("expected goal at target to be done")
	}
	if _, err := done.Set(FieldTarget, 100); !errors.Is(err, ErrInvalidProgress) {
		t.Fatalf("expected target below current to fail, got: %v", err)
	}
}

func TestGoalOverdue(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	g, err := NewGoal("Ship", 10, &deadline)
	if err != nil {
		t.Fatalf("new goal: %v", err)
	}
	if g.Deadline.Hour() != 0 {
		t.Fatalf("expected deadline truncated to date, got %v", g.Deadline)
	}
	if g.Overdue(time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)) {
		t.Fatal("goal is not overdue on its deadline day")
	}
	if !g.Overdue(time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC)) {
		t.Fatal("expected goal overdue the day after")
	}
}

func TestParseCategoryAliases(t *testing.T) {
	cases := map[string]Category{
		"checklist": CategoryChecklist,
		"Compras":   CategoryShopping,
		" tasks ":   CategoryTask,
		"mood":      CategoryMood,
		"goals":     CategoryGoal,
	}
	for raw, want := range cases {
		got, err := ParseCategory(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %q want %q", raw, got, want)
		}
	}
	if _, err := ParseCategory("bills"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got: %v", err)
	}
}
