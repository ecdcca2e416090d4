package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/dayboard/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	global := m.toKeyBindings(m.globalBindings())
	local := m.toKeyBindings(m.viewBindings())
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: global,
			full:  [][]key.Binding{global, local},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Overview, Action: "overview"},
		{Key: m.Keys.Checklist, Action: "checklist"},
		{Key: m.Keys.Shopping, Action: "shopping"},
		{Key: m.Keys.Tasks, Action: "tasks"},
		{Key: m.Keys.Mood, Action: "mood journal"},
		{Key: m.Keys.Goals, Action: "goals"},
		{Key: m.Keys.Terms, Action: "jurisprudence terms"},
		{Key: "/", Action: "open command palette"},
		{Key: "R", Action: "reload from disk"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewChecklist, ViewShopping, ViewTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle done"},
			{Key: "d", Action: "delete item"},
		}
	case ViewMood:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "s", Action: "next sign"},
			{Key: "d", Action: "delete entry"},
		}
	case ViewGoals:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "+/-", Action: "step progress"},
			{Key: "d", Action: "delete goal"},
		}
	case ViewTerms:
		return []KeyBinding{
			{Key: "c", Action: "cycle court filter"},
			{Key: "e", Action: "edit terms"},
			{Key: "+/-", Action: "analyse 50 more/fewer decisions"},
			{Key: "r", Action: "resample decisions"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) toKeyBindings(in []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(in))
	for _, kb := range in {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
