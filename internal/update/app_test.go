package update

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/jurisprudence"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/store"
	"github.com/sandeepkv93/dayboard/internal/watch"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T, path string) *store.Store {
	t.Helper()
	s, err := store.Open(store.Options{Path: path, Format: store.FormatJSON})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedStore(t *testing.T, path string, entries ...model.Entry) []model.Record {
	t.Helper()
	s := openTestStore(t, path)
	s.Load(context.Background())
	out := make([]model.Record, 0, len(entries))
	for _, e := range entries {
		rec, err := s.Add(e)
		if err != nil {
			t.Fatalf("seed add: %v", err)
		}
		out = append(out, rec)
	}
	if err := s.Persist(context.Background()); err != nil {
		t.Fatalf("seed persist: %v", err)
	}
	return out
}

func newTestModel(t *testing.T, path string, engine *scheduler.Engine) Model {
	t.Helper()
	return NewModel(Options{
		Store:     openTestStore(t, path),
		Scheduler: engine,
		Now:       func() time.Time { return fixedNow },
		Picker:    func(int) int { return 0 },
	})
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func persisted(t *testing.T, path string) store.RecordSet {
	t.Helper()
	return openTestStore(t, path).Load(context.Background())
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	if m.CurrentView != ViewOverview {
		t.Fatalf("expected default view %q, got %q", ViewOverview, m.CurrentView)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if m.Sign != model.SignLibra {
		t.Fatalf("expected default sign libra, got %q", m.Sign)
	}
	if m.Records.Len() != 0 || m.Status.IsError {
		t.Fatalf("expected empty board without error, got %d records, status %+v", m.Records.Len(), m.Status)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	next := press(t, m, "2")
	if next.CurrentView != ViewChecklist {
		t.Fatalf("expected checklist view, got %q", next.CurrentView)
	}
	next = press(t, next, "7")
	if next.CurrentView != ViewTerms {
		t.Fatalf("expected terms view, got %q", next.CurrentView)
	}
	next = press(t, next, "tab")
	if next.CurrentView != ViewOverview {
		t.Fatalf("expected tab to wrap to overview, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	updated, _ := m.Update(SwitchViewMsg{View: ViewGoals})
	next := updated.(Model)
	if next.CurrentView != ViewGoals {
		t.Fatalf("expected goals view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewGoals {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestPaletteAddPersistsAndFocusesCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	m := newTestModel(t, path, nil)

	m = press(t, m, "/", "add task write tests", "enter")
	if m.Palette.Active {
		t.Fatal("expected palette closed after enter")
	}
	if m.Status.IsError {
		t.Fatalf("unexpected error status: %q", m.Status.Text)
	}
	if m.CurrentView != ViewTasks {
		t.Fatalf("expected tasks view after add, got %q", m.CurrentView)
	}
	tasks := m.Records.Category(model.CategoryTask)
	if len(tasks) != 1 || tasks[0].Text() != "write tests" || tasks[0].Done() {
		t.Fatalf("unexpected tasks in view: %+v", tasks)
	}
	if got := persisted(t, path).Category(model.CategoryTask); len(got) != 1 || got[0].ID != tasks[0].ID {
		t.Fatalf("expected task persisted, got %+v", got)
	}
	if !strings.Contains(m.View(), "write tests") {
		t.Fatal("expected new task rendered")
	}
}

func TestPaletteParseErrorLeavesStoreUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	m := newTestModel(t, path, nil)

	m = press(t, m, "/", "bogus thing", "enter")
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unsupported command") {
		t.Fatalf("expected parse error status, got %+v", m.Status)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no data file after failed command, stat err=%v", err)
	}
}

func TestPaletteEscCloses(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	m = press(t, m, "/", "add task x", "esc")
	if m.Palette.Active || m.commandInput.Value() != "" {
		t.Fatalf("expected closed, empty palette, got %+v", m.Palette)
	}
	if m.Records.Len() != 0 {
		t.Fatal("esc must not run the command")
	}
}

func TestListToggleAndDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	seeded := seedStore(t, path,
		model.ChecklistItem{Text: "pack bag"},
		model.ChecklistItem{Text: "water plants"},
	)
	m := newTestModel(t, path, nil)

	m = press(t, m, "2", "space")
	first := persisted(t, path).Category(model.CategoryChecklist)[0]
	if first.ID != seeded[0].ID || !first.Done() {
		t.Fatalf("expected first item toggled on disk, got %+v", first)
	}

	m = press(t, m, "j", "d")
	left := persisted(t, path).Category(model.CategoryChecklist)
	if len(left) != 1 || left[0].ID != seeded[0].ID {
		t.Fatalf("expected second item deleted, got %+v", left)
	}
	if m.Cursors[ViewChecklist] != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.Cursors[ViewChecklist])
	}
}

func TestGoalStepStaysInRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	seedStore(t, path, model.Goal{Text: "read books", Target: 2})
	m := newTestModel(t, path, nil)

	m = press(t, m, "6", "+", "+", "+")
	g := m.Records.Category(model.CategoryGoal)[0].Entry.(model.Goal)
	if g.Current != 2 || !g.Complete() {
		t.Fatalf("expected goal capped at target, got %+v", g)
	}

	m = press(t, m, "-")
	g = persisted(t, path).Category(model.CategoryGoal)[0].Entry.(model.Goal)
	if g.Current != 1 {
		t.Fatalf("expected persisted progress 1, got %v", g.Current)
	}
	if !strings.Contains(m.View(), "read books") {
		t.Fatal("expected goal rendered")
	}
}

func TestMoodViewSignAndRecommendation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	seedStore(t, path, model.MoodEntry{Mood: model.MoodHappy, Sign: model.SignLibra, Note: "sunny"})
	m := newTestModel(t, path, nil)

	m = press(t, m, "5")
	if m.recommendation == nil || m.recommendation.Mood != model.MoodHappy {
		t.Fatalf("expected happy recommendation, got %+v", m.recommendation)
	}
	if out := m.View(); !strings.Contains(out, "Libra") || !strings.Contains(out, "sunny") {
		t.Fatalf("expected libra card and entry, got:\n%s", out)
	}

	m = press(t, m, "s")
	if m.Sign != model.SignScorpio {
		t.Fatalf("expected next sign scorpio, got %q", m.Sign)
	}
	if m.recommendation != nil || len(m.visibleRecords()) != 0 {
		t.Fatal("expected no scorpio entries")
	}

	m = press(t, m, "/", "mood calm tired but fine", "enter")
	rows := m.visibleRecords()
	if len(rows) != 1 || rows[0].Entry.(model.MoodEntry).Sign != model.SignScorpio {
		t.Fatalf("expected mood tagged with selected sign, got %+v", rows)
	}
}

func TestInitWithSchedulerReturnsDeadlineCmd(t *testing.T) {
	engine := scheduler.NewEngine(1, nil)
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), engine)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected deadline wait cmd when scheduler is attached")
	}
}

func TestReloadPlansDeadlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	due := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	seedStore(t, path,
		model.Goal{Text: "ship release", Target: 1, Deadline: &due},
		model.Goal{Text: "no deadline", Target: 1},
	)
	engine := scheduler.NewEngine(4, nil)
	newTestModel(t, path, engine)
	if engine.Pending() != 1 {
		t.Fatalf("expected one planned reminder, got %d", engine.Pending())
	}
}

func TestDeadlineDueMsgUpdatesStatusAndRearms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	due := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	recs := seedStore(t, path, model.Goal{Text: "ship release", Target: 1, Deadline: &due})
	engine := scheduler.NewEngine(1, nil)
	m := newTestModel(t, path, engine)

	ev := scheduler.DeadlineEvent{RecordID: recs[0].ID, Text: "ship release", Deadline: due, TriggerAt: fixedNow}
	updated, cmd := m.Update(DeadlineDueMsg{Event: ev})
	next := updated.(Model)
	if len(next.DeadlineLog) != 1 || next.DeadlineLog[0].RecordID != recs[0].ID {
		t.Fatalf("unexpected deadline log: %#v", next.DeadlineLog)
	}
	if cmd == nil {
		t.Fatal("expected deadline listener rearm cmd")
	}
	if !strings.Contains(next.Status.Text, "ship release") || next.Status.IsError {
		t.Fatalf("unexpected deadline status: %+v", next.Status)
	}

	updated, _ = next.Update(ReloadMsg{})
	next = updated.(Model)
	if engine.Pending() != 0 {
		t.Fatalf("expected reminded goal not re-planned, got %d pending", engine.Pending())
	}
}

func TestOverdueDeadlineIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	recs := seedStore(t, path, model.Goal{Text: "file taxes", Target: 1, Deadline: &due})
	m := newTestModel(t, path, nil)

	m.applyDeadline(scheduler.DeadlineEvent{RecordID: recs[0].ID, Text: "file taxes", Deadline: due, TriggerAt: fixedNow})
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "overdue") {
		t.Fatalf("expected overdue error status, got %+v", m.Status)
	}
	if !strings.Contains(m.View(), "overdue: file taxes") {
		t.Fatal("expected overdue goal on the overview")
	}
}

func TestStoreChangedMsgReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	m := newTestModel(t, path, nil)

	seedStore(t, path, model.ShoppingItem{Text: "milk"})
	updated, cmd := m.Update(StoreChangedMsg{Event: watch.Event{Path: path, At: fixedNow}})
	next := updated.(Model)
	if next.Records.Len() != 1 {
		t.Fatalf("expected reload to pick up external record, got %d", next.Records.Len())
	}
	if cmd != nil {
		t.Fatal("expected no rearm without a watcher")
	}
	if !strings.Contains(next.Status.Text, "reloaded") {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
}

func TestLoadFailureShownInStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, path, nil)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "could not read") {
		t.Fatalf("expected load error status, got %+v", m.Status)
	}
	if m.Records.Len() != 0 {
		t.Fatal("expected empty set on malformed file")
	}
}

func TestTermsViewCourtAndEdit(t *testing.T) {
	loaded := []jurisprudence.Decision{
		{ID: "1", Court: jurisprudence.CourtSTF, Summary: "Dano moral reconhecido.", Outcome: "Procedente"},
	}
	m := NewModel(Options{
		Store:     openTestStore(t, filepath.Join(t.TempDir(), "board.json")),
		Decisions: loaded,
		Now:       func() time.Time { return fixedNow },
	})
	m = press(t, m, "7", "c")
	if m.Terms.Filter != jurisprudence.FilterSTF || m.Terms.Report.Total != 1 {
		t.Fatalf("expected stf filter over loaded decisions, got %s / %d", m.Terms.Filter, m.Terms.Report.Total)
	}
	if m.Terms.Report.Terms[0].Term != "dano moral" || m.Terms.Report.Terms[0].Count != 1 {
		t.Fatalf("unexpected term counts: %+v", m.Terms.Report.Terms)
	}

	m = press(t, m, "e")
	if !m.Terms.Editing {
		t.Fatal("expected terms editor open")
	}
	m.termsInput.SetValue("Reconhecido")
	m = press(t, m, "enter")
	if m.Terms.Editing || m.Terms.Raw != "Reconhecido" {
		t.Fatalf("expected terms applied, got %+v", m.Terms)
	}
	if len(m.Terms.Report.Terms) != 1 || m.Terms.Report.Terms[0].Count != 1 {
		t.Fatalf("unexpected recount: %+v", m.Terms.Report.Terms)
	}
	if !strings.Contains(m.View(), "jurisprudence") {
		t.Fatal("expected terms panel rendered")
	}
}

func TestTermsViewDecisionCount(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	m = press(t, m, "7", "c", "c")
	if m.Terms.Filter != jurisprudence.FilterSTJ {
		t.Fatalf("expected stj filter, got %s", m.Terms.Filter)
	}
	if m.Terms.Count != 200 || m.Terms.Report.Total != 200 {
		t.Fatalf("expected 200 decisions by default, got %d / %d", m.Terms.Count, m.Terms.Report.Total)
	}

	m = press(t, m, "+")
	if m.Terms.Report.Total != 250 || m.Status.Text != "analysing 250 decisions" {
		t.Fatalf("expected 250 decisions, got %d (%q)", m.Terms.Report.Total, m.Status.Text)
	}
	m = press(t, m, "-", "-")
	if m.Terms.Report.Total != 150 {
		t.Fatalf("expected 150 decisions, got %d", m.Terms.Report.Total)
	}
	if !strings.Contains(m.View(), "decisions: 150 of 150") {
		t.Fatalf("expected count in terms panel, got:\n%s", m.View())
	}

	for range 5 {
		m = press(t, m, "-")
	}
	if m.Terms.Count != 50 || m.Terms.Report.Total != 50 {
		t.Fatalf("expected count clamped at 50, got %d / %d", m.Terms.Count, m.Terms.Report.Total)
	}
	for range 30 {
		m = press(t, m, "=")
	}
	if m.Terms.Count != 1000 || m.Status.Text != "decision count stays at 1000" {
		t.Fatalf("expected count clamped at 1000, got %d (%q)", m.Terms.Count, m.Status.Text)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, filepath.Join(t.TempDir(), "board.json"), nil)
	m = press(t, m, "?")
	if !m.HelpVisible || !strings.Contains(m.View(), "help:") {
		t.Fatal("expected help panel visible")
	}
	m = press(t, m, "?")
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}
}
