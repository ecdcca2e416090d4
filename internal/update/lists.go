package update

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/views"
)

// visibleRecords is what the current view lists, in insertion order. The
// mood view only lists entries of the selected sign and unsigned ones.
func (m Model) visibleRecords() []model.Record {
	c, ok := m.CurrentView.Category()
	if !ok {
		return nil
	}
	records := m.Records.Category(c)
	if c != model.CategoryMood {
		return records
	}
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if sign := rec.Entry.(model.MoodEntry).Sign; sign == m.Sign || sign == "" {
			out = append(out, rec)
		}
	}
	return out
}

func (m Model) selectedRecord() (model.Record, bool) {
	records := m.visibleRecords()
	idx := m.Cursors[m.CurrentView]
	if idx < 0 || idx >= len(records) {
		return model.Record{}, false
	}
	return records[idx], true
}

func (m *Model) moveCursor(delta int) {
	m.Cursors[m.CurrentView] += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.visibleRecords())
	idx := m.Cursors[m.CurrentView]
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.Cursors[m.CurrentView] = idx
}

func (m *Model) focusRecord(id string) {
	if id == "" {
		return
	}
	for i, rec := range m.visibleRecords() {
		if rec.ID == id {
			m.Cursors[m.CurrentView] = i
			return
		}
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.Cursors[m.CurrentView] = 0
	case "G", "end":
		m.Cursors[m.CurrentView] = len(m.visibleRecords()) - 1
		m.clampCursor()
	case " ", "x":
		rec, ok := m.selectedRecord()
		if !ok || rec.Category() == model.CategoryMood || rec.Category() == model.CategoryGoal {
			return m
		}
		return m.runCommand(commands.Command{Type: commands.TypeDone, Done: &commands.DoneArgs{Target: rec.ID}})
	case "d":
		rec, ok := m.selectedRecord()
		if !ok {
			return m
		}
		return m.runCommand(commands.Command{Type: commands.TypeRemove, Remove: &commands.RemoveArgs{Target: rec.ID}})
	case "+", "=":
		return m.stepGoal(1)
	case "-":
		return m.stepGoal(-1)
	case "s":
		if m.CurrentView == ViewMood {
			m.Sign = nextSign(m.Sign)
			m.clampCursor()
			m.refreshRecommendation()
			m.Status = StatusBar{Text: "sign: " + string(m.Sign)}
		}
	}
	return m
}

// stepGoal moves the selected goal's progress by delta, kept inside
// [0, target].
func (m Model) stepGoal(delta float64) Model {
	if m.CurrentView != ViewGoals {
		return m
	}
	rec, ok := m.selectedRecord()
	if !ok {
		return m
	}
	g := rec.Entry.(model.Goal)
	next := math.Min(math.Max(g.Current+delta, 0), g.Target)
	if next == g.Current {
		return m
	}
	return m.runCommand(commands.Command{
		Type:     commands.TypeProgress,
		Progress: &commands.ProgressArgs{Target: rec.ID, Value: next},
	})
}

func nextSign(current model.Sign) model.Sign {
	signs := model.Signs()
	for i, s := range signs {
		if s == current {
			return signs[(i+1)%len(signs)]
		}
	}
	return signs[0]
}

func (m Model) itemRows() []views.ItemRow {
	records := m.visibleRecords()
	cursor := m.Cursors[m.CurrentView]
	rows := make([]views.ItemRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, views.ItemRow{
			ID:       commands.ShortID(rec.ID),
			Text:     rec.Text(),
			Done:     rec.Done(),
			Selected: i == cursor,
			Detail:   rec.Created.Local().Format("Jan 02"),
		})
	}
	return rows
}
