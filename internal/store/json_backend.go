package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

// jsonDocument keeps one key per category. Every key is always written.
type jsonDocument struct {
	Checklist []row `json:"checklist"`
	Shopping  []row `json:"shopping"`
	Task      []row `json:"task"`
	Mood      []row `json:"mood"`
	Goal      []row `json:"goal"`
}

func (d *jsonDocument) slot(c model.Category) *[]row {
	switch c {
	case model.CategoryChecklist:
		return &d.Checklist
	case model.CategoryShopping:
		return &d.Shopping
	case model.CategoryTask:
		return &d.Task
	case model.CategoryMood:
		return &d.Mood
	case model.CategoryGoal:
		return &d.Goal
	default:
		return nil
	}
}

type JSONBackend struct {
	path string
}

func (b *JSONBackend) Read(_ context.Context) ([]model.Record, error) {
	raw, ok, err := readFileIfExists(b.path)
	if err != nil || !ok {
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}
	var doc jsonDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	type placed struct {
		position int
		rec      model.Record
	}
	all := make([]placed, 0)
	for _, c := range model.Categories() {
		for _, r := range *doc.slot(c) {
			r.Category = string(c)
			rec, recErr := r.record()
			if recErr != nil {
				return nil, recErr
			}
			position := math.MaxInt
			if r.Position != nil {
				position = *r.Position
			}
			all = append(all, placed{position: position, rec: rec})
		}
	}
	// The document groups by category; position restores insertion order
	// across categories. Rows without one keep document order at the end.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].position < all[j].position
	})
	out := make([]model.Record, 0, len(all))
	for _, p := range all {
		out = append(out, p.rec)
	}
	return out, nil
}

func (b *JSONBackend) Write(_ context.Context, records []model.Record) error {
	doc := jsonDocument{
		Checklist: []row{},
		Shopping:  []row{},
		Task:      []row{},
		Mood:      []row{},
		Goal:      []row{},
	}
	for i, rec := range records {
		slot := doc.slot(rec.Category())
		if slot == nil {
			return fmt.Errorf("record %s: %w", rec.ID, model.ErrInvalidCategory)
		}
		r := toRow(rec)
		position := i
		r.Position = &position
		*slot = append(*slot, r)
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(b.path, append(payload, '\n'))
}

func (b *JSONBackend) Close() error { return nil }
