package store

import "github.com/sandeepkv93/dayboard/internal/model"

// RecordSet is an immutable view of the store at one point in time.
type RecordSet struct {
	records []model.Record
}

func newRecordSet(records []model.Record) RecordSet {
	out := make([]model.Record, len(records))
	copy(out, records)
	return RecordSet{records: out}
}

func (s RecordSet) Len() int { return len(s.records) }

// All returns every record in insertion order.
func (s RecordSet) All() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Category returns the records of c in insertion order, never nil.
func (s RecordSet) Category(c model.Category) []model.Record {
	out := make([]model.Record, 0)
	for _, rec := range s.records {
		if rec.Category() == c {
			out = append(out, rec)
		}
	}
	return out
}

// Grouped always carries a key for every category.
func (s RecordSet) Grouped() map[model.Category][]model.Record {
	out := make(map[model.Category][]model.Record, len(model.Categories()))
	for _, c := range model.Categories() {
		out[c] = s.Category(c)
	}
	return out
}

func (s RecordSet) Aggregate(c model.Category, field model.Field) Summary {
	return Aggregate(s.Category(c), c, field)
}
