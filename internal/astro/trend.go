package astro

import (
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

const DefaultTrendDays = 30

type DayScore struct {
	Day     time.Time
	Mean    float64
	Entries int
}

type Trend struct {
	Sign model.Sign
	// Days runs from the first to the last day with data. Days without
	// entries are kept with Entries == 0.
	Days []DayScore
	Mean float64
	// Count is the number of entries behind Mean.
	Count int
	// FullHistory is set when the window held nothing and the whole history
	// of the sign was used instead.
	FullHistory bool
}

// BuildTrend averages mood scores per calendar day over the last days days
// ending today. An empty window falls back to every entry of the sign.
func BuildTrend(records []model.Record, sign model.Sign, today time.Time, days int) Trend {
	if days <= 0 {
		days = DefaultTrendDays
	}
	out := Trend{Sign: sign}

	all := make([]model.Record, 0)
	for _, rec := range records {
		entry, ok := rec.Entry.(model.MoodEntry)
		if !ok || (sign != "" && entry.Sign != sign) {
			continue
		}
		all = append(all, rec)
	}
	if len(all) == 0 {
		return out
	}

	end := dayOf(today)
	start := end.AddDate(0, 0, -(days - 1))
	window := make([]model.Record, 0, len(all))
	for _, rec := range all {
		d := dayOf(rec.Created)
		if !d.Before(start) && !d.After(end) {
			window = append(window, rec)
		}
	}
	if len(window) == 0 {
		window = all
		out.FullHistory = true
	}

	sums := map[time.Time]float64{}
	counts := map[time.Time]int{}
	first, last := dayOf(window[0].Created), dayOf(window[0].Created)
	total := 0.0
	for _, rec := range window {
		d := dayOf(rec.Created)
		score := float64(rec.Entry.(model.MoodEntry).Mood.Score())
		sums[d] += score
		counts[d]++
		total += score
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		point := DayScore{Day: d, Entries: counts[d]}
		if point.Entries > 0 {
			point.Mean = sums[d] / float64(point.Entries)
		}
		out.Days = append(out.Days, point)
	}
	out.Count = len(window)
	out.Mean = total / float64(len(window))
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
