package scheduler

import (
	"sort"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

// Plan returns one event per open goal with a deadline, lead before the
// deadline. Triggers already in the past are moved to now so overdue goals
// still surface once.
func Plan(records []model.Record, lead time.Duration, now time.Time) []DeadlineEvent {
	out := make([]DeadlineEvent, 0)
	for _, rec := range records {
		g, ok := rec.Entry.(model.Goal)
		if !ok || g.Deadline == nil || g.Complete() {
			continue
		}
		trigger := g.Deadline.Add(-lead)
		if trigger.Before(now) {
			trigger = now
		}
		out = append(out, DeadlineEvent{
			RecordID:  rec.ID,
			Text:      g.Text,
			Deadline:  *g.Deadline,
			TriggerAt: trigger.UTC(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TriggerAt.Before(out[j].TriggerAt)
	})
	return out
}
