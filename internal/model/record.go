package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidCategory = errors.New("model: invalid category")
	ErrInvalidField    = errors.New("model: field not applicable")
	ErrInvalidValue    = errors.New("model: invalid field value")
	ErrInvalidProgress = errors.New("model: progress out of range")
)

type Category string

const (
	CategoryChecklist Category = "checklist"
	CategoryShopping  Category = "shopping"
	CategoryTask      Category = "task"
	CategoryMood      Category = "mood"
	CategoryGoal      Category = "goal"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryChecklist, CategoryShopping, CategoryTask, CategoryMood, CategoryGoal}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryChecklist, CategoryShopping, CategoryTask, CategoryMood, CategoryGoal:
		return true
	default:
		return false
	}
}

func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "checklist", "check":
		return CategoryChecklist, nil
	case "shopping", "shop", "compras":
		return CategoryShopping, nil
	case "task", "tasks", "tarefas":
		return CategoryTask, nil
	case "mood", "moods", "humor":
		return CategoryMood, nil
	case "goal", "goals":
		return CategoryGoal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
}

type Field string

const (
	FieldDone    Field = "done"
	FieldCurrent Field = "current"
	FieldTarget  Field = "target"
	// FieldMood is only meaningful for aggregation.
	FieldMood Field = "mood"
)

// Entry is the category-specific payload of a record. The concrete types are
// ChecklistItem, ShoppingItem, TaskItem, MoodEntry and Goal.
type Entry interface {
	Category() Category
	Validate() error
}

type ChecklistItem struct {
	Text string
	Done bool
}

func (ChecklistItem) Category() Category { return CategoryChecklist }
func (i ChecklistItem) Validate() error  { return validateText(i.Text) }

type ShoppingItem struct {
	Text string
	Done bool
}

func (ShoppingItem) Category() Category { return CategoryShopping }
func (i ShoppingItem) Validate() error  { return validateText(i.Text) }

type TaskItem struct {
	Text string
	Done bool
}

func (TaskItem) Category() Category { return CategoryTask }
func (i TaskItem) Validate() error  { return validateText(i.Text) }

type Record struct {
	ID      string
	Created time.Time
	Entry   Entry
}

func (r Record) Category() Category {
	if r.Entry == nil {
		return ""
	}
	return r.Entry.Category()
}

// Done reports completion. Mood entries are complete when logged; goals are
// complete once current reaches target.
func (r Record) Done() bool {
	switch e := r.Entry.(type) {
	case ChecklistItem:
		return e.Done
	case ShoppingItem:
		return e.Done
	case TaskItem:
		return e.Done
	case MoodEntry:
		return true
	case Goal:
		return e.Complete()
	default:
		return false
	}
}

// Text is the free-text label shown for the record.
func (r Record) Text() string {
	switch e := r.Entry.(type) {
	case ChecklistItem:
		return e.Text
	case ShoppingItem:
		return e.Text
	case TaskItem:
		return e.Text
	case MoodEntry:
		if e.Note != "" {
			return e.Note
		}
		return string(e.Mood)
	case Goal:
		return e.Text
	default:
		return ""
	}
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: record id is required")
	}
	if r.Created.IsZero() {
		return errors.New("model: record created is required")
	}
	if r.Entry == nil {
		return errors.New("model: record entry is required")
	}
	return r.Entry.Validate()
}

// Set returns a copy of r with one field changed. The receiver is never
// modified, so a rejected change leaves the caller's record intact.
func (r Record) Set(field Field, value any) (Record, error) {
	switch field {
	case FieldDone:
		done, ok := value.(bool)
		if !ok {
			return r, fmt.Errorf("%w: %s wants bool, got %T", ErrInvalidValue, field, value)
		}
		return r.withDone(done)
	case FieldCurrent, FieldTarget:
		n, ok := toFloat(value)
		if !ok {
			return r, fmt.Errorf("%w: %s wants number, got %T", ErrInvalidValue, field, value)
		}
		g, isGoal := r.Entry.(Goal)
		if !isGoal {
			return r, fmt.Errorf("%w: %s on %s", ErrInvalidField, field, r.Category())
		}
		var err error
		if field == FieldCurrent {
			g, err = g.WithCurrent(n)
		} else {
			g, err = g.WithTarget(n)
		}
		if err != nil {
			return r, err
		}
		r.Entry = g
		return r, nil
	default:
		return r, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
}

func (r Record) withDone(done bool) (Record, error) {
	switch e := r.Entry.(type) {
	case ChecklistItem:
		e.Done = done
		r.Entry = e
	case ShoppingItem:
		e.Done = done
		r.Entry = e
	case TaskItem:
		e.Done = done
		r.Entry = e
	default:
		return r, fmt.Errorf("%w: done on %s", ErrInvalidField, r.Category())
	}
	return r, nil
}

// NewItem builds the plain text entry for the checklist, shopping and task
// categories.
func NewItem(c Category, text string) (Entry, error) {
	text = strings.TrimSpace(text)
	switch c {
	case CategoryChecklist:
		return ChecklistItem{Text: text}, nil
	case CategoryShopping:
		return ShoppingItem{Text: text}, nil
	case CategoryTask:
		return TaskItem{Text: text}, nil
	default:
		return nil, fmt.Errorf("%w: %q is not a plain item category", ErrInvalidCategory, c)
	}
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("model: text is required")
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
