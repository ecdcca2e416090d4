package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		m.commandInput, _ = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m
	}
	return m.runCommand(cmd)
}

// runCommand performs one load, mutate, persist cycle and re-reads the
// records to render.
func (m Model) runCommand(cmd commands.Command) Model {
	if m.store == nil {
		m.Status = StatusBar{Text: "no store configured", IsError: true}
		return m
	}
	res, err := commands.RunCommand(m.ctx, m.store, cmd, m.Sign)
	if err != nil {
		m.log.Warn("command failed", zap.String("command", string(cmd.Type)), zap.Error(err))
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		m.reload()
		return m
	}

	m.Records = m.store.Snapshot()
	if res.Focus != "" {
		if v, ok := viewForCategory(model.Category(res.Focus)); ok {
			m.CurrentView = v
		}
	}
	m.focusRecord(res.RecordID)
	m.recordsChanged()
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")
	return m
}
