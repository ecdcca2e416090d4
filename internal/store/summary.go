package store

import "github.com/sandeepkv93/dayboard/internal/model"

// Summary is Value over Total for the records of one category.
//
//	done:    completed records over record count
//	current: sum of goal progress over sum of goal targets
//	mood:    sum of mood scores over entry count (Ratio is the mean)
type Summary struct {
	Category model.Category
	Field    model.Field
	Count    int
	Value    float64
	Total    float64
}

func (s Summary) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return s.Value / s.Total
}

func (s Summary) Percent() float64 {
	return s.Ratio() * 100
}

func Aggregate(records []model.Record, c model.Category, field model.Field) Summary {
	out := Summary{Category: c, Field: field}
	for _, rec := range records {
		if rec.Category() != c {
			continue
		}
		out.Count++
		switch field {
		case model.FieldDone:
			out.Total++
			if rec.Done() {
				out.Value++
			}
		case model.FieldCurrent, model.FieldTarget:
			if g, ok := rec.Entry.(model.Goal); ok {
				out.Value += g.Current
				out.Total += g.Target
			}
		case model.FieldMood:
			if e, ok := rec.Entry.(model.MoodEntry); ok {
				out.Value += float64(e.Mood.Score())
				out.Total++
			}
		}
	}
	return out
}
