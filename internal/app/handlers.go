package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/eatnsplit/internal/clipboard"
	"github.com/zhubert/eatnsplit/internal/errors"
	"github.com/zhubert/eatnsplit/internal/friends"
	"github.com/zhubert/eatnsplit/internal/logger"
	"github.com/zhubert/eatnsplit/internal/notification"
	"github.com/zhubert/eatnsplit/internal/split"
	"github.com/zhubert/eatnsplit/internal/ui"
)

// handleSelectFriend is called by the friend list when a row is activated
func (m *Model) handleSelectFriend(f friends.Friend) {
	m.roster.SelectFriend(f)
	m.syncMounts()
}

// handleAddFriend is called by the add form with non-empty fields
func (m *Model) handleAddFriend(name, image string) tea.Cmd {
	f, err := m.roster.AddFriend(name, image)
	if err != nil {
		logger.WithComponent("app").Error("Failed to add friend", "name", name, "error", err)
		return m.flash(ui.FlashError, err.Error())
	}

	return tea.Batch(
		m.flash(ui.FlashSuccess, fmt.Sprintf("Added %s", f.Name)),
		m.notifyFriendAdded(f),
	)
}

// notifyFriendAdded returns a command that sends a desktop notification,
// or nil when notifications are disabled
func (m *Model) notifyFriendAdded(f friends.Friend) tea.Cmd {
	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	return func() tea.Msg {
		return NotificationSentMsg{Err: notification.FriendAdded(f.Name)}
	}
}

// handleSplitSubmit is called by the split form. Balances are left alone.
func (m *Model) handleSplitSubmit(f friends.Friend, d *split.Draft) tea.Cmd {
	err := d.Submit()
	logger.WithComponent("app").Info("Split submitted",
		"friend", f.ID,
		"bill", d.Bill(),
		"userExpense", d.UserExpense(),
		"friendExpense", d.FriendExpense(),
		"payer", d.Payer,
		"kind", errors.GetKind(err),
	)
	if errors.Is(err, errors.KindUnsupported) {
		return m.flash(ui.FlashInfo, "Splitting a bill doesn't change balances yet")
	}
	if err != nil {
		return m.flash(ui.FlashError, err.Error())
	}
	return nil
}

// copyBalance copies the balance line of the friend under the cursor.
// The terminal clipboard (OSC 52) is always set; the system clipboard is
// tried as well since not every terminal honors OSC 52.
func (m *Model) copyBalance() tea.Cmd {
	f, ok := m.list.CursorFriend()
	if !ok {
		return nil
	}
	line := friends.BalanceMessage(f)
	if line == "" {
		return m.flash(ui.FlashWarning, fmt.Sprintf("%s has no balance to copy", f.Name))
	}

	return tea.Batch(
		tea.SetClipboard(line),
		func() tea.Msg {
			return ClipboardWrittenMsg{Err: clipboard.WriteText(line)}
		},
		m.flash(ui.FlashInfo, "Copied: "+line),
	)
}

// cycleTheme switches to the next theme and persists the choice
func (m *Model) cycleTheme() tea.Cmd {
	next := ui.NextTheme()
	ui.SetTheme(next)
	if m.splitForm != nil {
		m.splitForm.RefreshTheme()
	}
	m.config.SetTheme(string(next))

	cfg := m.config
	return tea.Batch(
		m.flash(ui.FlashInfo, "Theme: "+ui.CurrentTheme().Name),
		func() tea.Msg {
			return ThemeSavedMsg{Theme: string(next), Err: cfg.Save()}
		},
	)
}

// flash shows text in the footer and starts its dismiss timer
func (m *Model) flash(kind ui.FlashType, text string) tea.Cmd {
	m.footer.SetFlash(text, kind)
	return ui.FlashTick()
}
