package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.scheduler != nil {
		cmds = append(cmds, waitForDeadlineCmd(m.scheduler.C()))
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChangeCmd(m.watcher.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}
		if m.CurrentView == ViewTerms && m.Terms.Editing {
			return m.handleTermsKey(typed), nil
		}

		keyStr := typed.String()
		if v, ok := m.Keys.viewFor(keyStr); ok {
			m.CurrentView = v
			m.clampCursor()
			return m, nil
		}
		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case "tab":
			m.CurrentView = m.nextView(1)
			m.clampCursor()
			return m, nil
		case "shift+tab":
			m.CurrentView = m.nextView(-1)
			m.clampCursor()
			return m, nil
		case "R":
			m.reload()
			if m.store != nil && m.store.LoadErr() == nil {
				m.Status = StatusBar{Text: fmt.Sprintf("reloaded %d record(s)", m.Records.Len())}
			}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.CurrentView {
		case ViewTerms:
			return m.handleTermsKey(typed), nil
		case ViewOverview:
			return m, nil
		default:
			return m.handleListKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			m.clampCursor()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case ReloadMsg:
		m.reload()
		return m, nil
	case StoreChangedMsg:
		m.log.Debug("data file changed, reloading", zap.String("path", typed.Event.Path))
		m.reload()
		if m.store != nil && m.store.LoadErr() == nil {
			m.Status = StatusBar{Text: "reloaded after external change"}
		}
		if m.watcher != nil {
			return m, waitForChangeCmd(m.watcher.C())
		}
		return m, nil
	case DeadlineDueMsg:
		m.applyDeadline(typed.Event)
		if m.scheduler != nil {
			return m, waitForDeadlineCmd(m.scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewOverview:
		leftPane = m.renderOverview()
		rightPane = m.renderDeadlineLog()
	case ViewMood:
		leftPane, rightPane = m.renderMoodView()
	case ViewGoals:
		leftPane = m.renderGoalsView()
		rightPane = m.renderDeadlineLog()
	case ViewTerms:
		leftPane, rightPane = m.renderTermsView()
	default:
		leftPane = m.renderListView()
	}
	rightPane = joinNonEmpty(rightPane, m.renderCommandPalette(), m.renderHelpIfVisible())

	tabs := make([]views.Tab, 0, len(Views()))
	for _, v := range Views() {
		tabs = append(tabs, views.Tab{Key: m.Keys.keyFor(v), Label: string(v), Active: v == m.CurrentView})
	}

	header := "dayboard"
	if m.store != nil {
		header = fmt.Sprintf("dayboard | %s (%s) | %d record(s)", m.store.Path(), m.store.Format(), m.Records.Len())
	}
	return views.RenderApp(views.AppData{
		Header:       header,
		Tabs:         tabs,
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer:       fmt.Sprintf("keys: %s-%s views | tab next | / cmd | R reload | %s help | %s quit", m.Keys.Overview, m.Keys.Terms, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) nextView(step int) View {
	all := Views()
	for i, v := range all {
		if v == m.CurrentView {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return ViewOverview
}

func isKnownView(v View) bool {
	for _, known := range Views() {
		if v == known {
			return true
		}
	}
	return false
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
