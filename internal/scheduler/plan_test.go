package scheduler

import (
	"testing"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func TestPlanSkipsClosedAndUndatedGoals(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	soon := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	records := []model.Record{
		{ID: "later", Created: now, Entry: model.Goal{Text: "Later", Target: 10, Deadline: &later}},
		{ID: "done", Created: now, Entry: model.Goal{Text: "Done", Current: 10, Target: 10, Deadline: &soon}},
		{ID: "undated", Created: now, Entry: model.Goal{Text: "Undated", Target: 10}},
		{ID: "soon", Created: now, Entry: model.Goal{Text: "Soon", Target: 10, Deadline: &soon}},
		{ID: "overdue", Created: now, Entry: model.Goal{Text: "Overdue", Target: 10, Deadline: &past}},
		{ID: "task", Created: now, Entry: model.TaskItem{Text: "not a goal"}},
	}

	events := Plan(records, 24*time.Hour, now)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %#v", len(events), events)
	}
	if events[0].RecordID != "overdue" || !events[0].TriggerAt.Equal(now) {
		t.Fatalf("expected overdue goal first at now, got %#v", events[0])
	}
	if events[1].RecordID != "soon" || !events[1].TriggerAt.Equal(soon.Add(-24*time.Hour)) {
		t.Fatalf("unexpected second event: %#v", events[1])
	}
	if events[2].RecordID != "later" {
		t.Fatalf("unexpected third event: %#v", events[2])
	}
}
