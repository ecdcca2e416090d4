package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/astro"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/watch"
)

const deadlineLogSize = 20

func waitForDeadlineCmd(ch <-chan scheduler.DeadlineEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DeadlineDueMsg{Event: ev}
	}
}

func waitForChangeCmd(ch <-chan watch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return StoreChangedMsg{Event: ev}
	}
}

// reload re-reads the backing table. A table that cannot be read shows up
// empty with the cause in the status bar.
func (m *Model) reload() {
	if m.store == nil {
		return
	}
	m.Records = m.store.Load(m.ctx)
	if err := m.store.LoadErr(); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("could not read %s: %v", m.store.Path(), err), IsError: true}
	}
	m.recordsChanged()
}

// recordsChanged refreshes everything derived from Records.
func (m *Model) recordsChanged() {
	m.replan()
	m.clampCursor()
	m.refreshRecommendation()
}

// refreshRecommendation picks the song once per change so re-renders stay
// stable.
func (m *Model) refreshRecommendation() {
	rec, ok := astro.Recommend(m.Records.All(), m.Sign, m.pick)
	if !ok {
		m.recommendation = nil
		return
	}
	m.recommendation = &rec
}

// replan hands the scheduler one reminder per open goal deadline. Goals
// already reminded about for the same deadline are skipped.
func (m *Model) replan() {
	if m.scheduler == nil {
		return
	}
	planned := scheduler.Plan(m.Records.All(), m.lead, m.now())
	events := make([]scheduler.DeadlineEvent, 0, len(planned))
	for _, ev := range planned {
		if at, ok := m.fired[ev.RecordID]; ok && at.Equal(ev.Deadline) {
			continue
		}
		events = append(events, ev)
	}
	if err := m.scheduler.Replace(events); err != nil {
		m.log.Warn("replacing deadline reminders", zap.Error(err))
	}
}

func (m *Model) applyDeadline(ev scheduler.DeadlineEvent) {
	m.fired[ev.RecordID] = ev.Deadline
	m.DeadlineLog = append(m.DeadlineLog, ev)
	if len(m.DeadlineLog) > deadlineLogSize {
		m.DeadlineLog = m.DeadlineLog[len(m.DeadlineLog)-deadlineLogSize:]
	}

	text := fmt.Sprintf("goal %q due %s", ev.Text, ev.Deadline.Format("2006-01-02"))
	if m.store != nil {
		if rec, err := m.store.Get(ev.RecordID); err != nil || rec.Done() {
			m.log.Debug("skipping reminder for closed goal", zap.String("id", ev.RecordID))
			return
		}
	}
	level := "warn"
	if ev.Deadline.Before(m.now()) {
		text = fmt.Sprintf("goal %q overdue since %s", ev.Text, ev.Deadline.Format("2006-01-02"))
		level = "error"
	}
	m.Status = StatusBar{Text: text, IsError: level == "error"}
	m.notify("Deadline", text, level)
}
