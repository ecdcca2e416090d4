package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

const timeLayout = time.RFC3339Nano

// row is the flat on-disk shape shared by every backend. Goal and mood
// columns stay empty for the other categories.
type row struct {
	// Position is only written by the json layout, which groups rows by
	// category. The other layouts keep rows in insertion order.
	Position *int     `json:"position,omitempty"`
	ID       string   `json:"id"`
	Category string   `json:"-"`
	Text     string   `json:"text,omitempty"`
	Done     bool     `json:"done"`
	Created  string   `json:"created"`
	Current  *float64 `json:"current,omitempty"`
	Target   *float64 `json:"target,omitempty"`
	Deadline string   `json:"deadline,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	Sign     string   `json:"sign,omitempty"`
	Note     string   `json:"note,omitempty"`
}

func toRow(rec model.Record) row {
	out := row{
		ID:       rec.ID,
		Category: string(rec.Category()),
		Done:     rec.Done(),
		Created:  formatTime(rec.Created),
	}
	switch e := rec.Entry.(type) {
	case model.ChecklistItem:
		out.Text = e.Text
	case model.ShoppingItem:
		out.Text = e.Text
	case model.TaskItem:
		out.Text = e.Text
	case model.MoodEntry:
		out.Mood = string(e.Mood)
		out.Sign = string(e.Sign)
		out.Note = e.Note
	case model.Goal:
		out.Text = e.Text
		current, target := e.Current, e.Target
		out.Current = &current
		out.Target = &target
		if e.Deadline != nil {
			out.Deadline = e.Deadline.Format(model.DateLayout)
		}
	}
	return out
}

func (r row) record() (model.Record, error) {
	category, err := model.ParseCategory(r.Category)
	if err != nil {
		return model.Record{}, err
	}
	created, err := parseTime(r.Created)
	if err != nil {
		return model.Record{}, fmt.Errorf("record %s: created: %w", r.ID, err)
	}

	var entry model.Entry
	switch category {
	case model.CategoryChecklist:
		entry = model.ChecklistItem{Text: r.Text, Done: r.Done}
	case model.CategoryShopping:
		entry = model.ShoppingItem{Text: r.Text, Done: r.Done}
	case model.CategoryTask:
		entry = model.TaskItem{Text: r.Text, Done: r.Done}
	case model.CategoryMood:
		entry = model.MoodEntry{Mood: model.Mood(r.Mood), Sign: model.Sign(r.Sign), Note: r.Note}
	case model.CategoryGoal:
		g := model.Goal{Text: r.Text}
		if r.Current != nil {
			g.Current = *r.Current
		}
		if r.Target != nil {
			g.Target = *r.Target
		}
		if strings.TrimSpace(r.Deadline) != "" {
			d, dateErr := model.ParseDate(r.Deadline)
			if dateErr != nil {
				return model.Record{}, fmt.Errorf("record %s: deadline: %w", r.ID, dateErr)
			}
			g.Deadline = &d
		}
		entry = g
	}

	rec := model.Record{ID: r.ID, Created: created, Entry: entry}
	if err := rec.Validate(); err != nil {
		return model.Record{}, fmt.Errorf("record %s: %w", r.ID, err)
	}
	return rec, nil
}

func formatTime(v time.Time) string {
	return v.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	return time.Parse(timeLayout, strings.TrimSpace(v))
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func parseFloat(v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
