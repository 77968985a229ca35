package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/eatnsplit/internal/keys"
	"github.com/zhubert/eatnsplit/internal/logger"
)

// handleKey routes a key press. Forms get first pick of every key so that
// letters typed into a field never trigger a shortcut.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if key == keys.CtrlC {
		return tea.Quit
	}

	switch m.focus {
	case FocusAddForm, FocusSplitForm:
		switch key {
		case keys.Escape:
			m.setFocus(FocusSidebar)
			return nil
		case keys.Tab:
			m.cycleFocus(1)
			return nil
		case keys.ShiftTab:
			m.cycleFocus(-1)
			return nil
		}
		if m.focus == FocusAddForm {
			return m.addForm.Update(msg)
		}
		return m.splitForm.Update(msg)
	}

	switch key {
	case "q":
		return tea.Quit
	case "a":
		m.roster.ToggleAddFriendForm()
		if m.roster.AddFriendFormOpen() {
			// mount now so focus can move into the new form
			m.syncMounts()
			m.setFocus(FocusAddForm)
		}
		return nil
	case keys.Tab:
		m.cycleFocus(1)
		return nil
	case keys.ShiftTab:
		m.cycleFocus(-1)
		return nil
	case "y":
		return m.copyBalance()
	case "t":
		return m.cycleTheme()
	}
	return m.list.Update(msg)
}

// panes returns the focusable panes in tab order
func (m *Model) panes() []Focus {
	panes := []Focus{FocusSidebar}
	if m.addForm != nil {
		panes = append(panes, FocusAddForm)
	}
	if m.splitForm != nil {
		panes = append(panes, FocusSplitForm)
	}
	return panes
}

func (m *Model) cycleFocus(delta int) {
	panes := m.panes()
	for i, p := range panes {
		if p == m.focus {
			m.setFocus(panes[(i+delta+len(panes))%len(panes)])
			return
		}
	}
	m.setFocus(FocusSidebar)
}

func (m *Model) setFocus(f Focus) {
	if m.focus != f {
		logger.WithComponent("app").Debug("Focus change", "from", m.focus, "to", f)
		m.focus = f
	}
}
