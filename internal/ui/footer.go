package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg is sent when a flash message may have expired
type FlashTickMsg time.Time

// FlashTick returns a command that fires once the flash duration elapses
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration*time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterContext is what the footer needs to pick its bindings
type FooterContext struct {
	SidebarFocused bool
	AddFormOpen    bool
	HasSelection   bool
}

// Footer represents the bottom bar with keybindings and flash messages
type Footer struct {
	width      int
	ctx        FooterContext
	flashText  string
	flashType  FlashType
	flashUntil time.Time
	now        func() time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{now: time.Now}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(ctx FooterContext) {
	f.ctx = ctx
}

// SetFlash shows text in place of the bindings until it expires
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.flashUntil = f.now().Add(FlashDuration * time.Second)
}

// Flash returns the current flash text, if any
func (f *Footer) Flash() string {
	return f.flashText
}

// ClearExpiredFlash drops the flash if it has expired at now
func (f *Footer) ClearExpiredFlash(now time.Time) {
	if f.flashText != "" && !now.Before(f.flashUntil) {
		f.flashText = ""
	}
}

// Bindings returns the key bindings for the current context
func (f *Footer) Bindings() []KeyBinding {
	if !f.ctx.SidebarFocused {
		return []KeyBinding{
			{Key: "↑/↓", Desc: "field"},
			{Key: "enter", Desc: "submit"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "esc", Desc: "back"},
		}
	}

	bindings := []KeyBinding{
		{Key: "↑/↓", Desc: "move"},
		{Key: "enter", Desc: "select"},
	}
	if f.ctx.AddFormOpen {
		bindings = append(bindings, KeyBinding{Key: "a", Desc: "close form"})
	} else {
		bindings = append(bindings, KeyBinding{Key: "a", Desc: "add friend"})
	}
	if f.ctx.AddFormOpen || f.ctx.HasSelection {
		bindings = append(bindings, KeyBinding{Key: "tab", Desc: "switch pane"})
	}
	bindings = append(bindings,
		KeyBinding{Key: "y", Desc: "copy balance"},
		KeyBinding{Key: "t", Desc: "theme"},
		KeyBinding{Key: "q", Desc: "quit"},
	)
	return bindings
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		return FooterStyle.Width(f.width).Render(f.flashStyle().Render(f.flashText))
	}

	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+FooterSepStyle.Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) flashStyle() lipgloss.Style {
	switch f.flashType {
	case FlashSuccess:
		return FlashOKStyle
	case FlashWarning:
		return FlashWarnStyle
	case FlashError:
		return FlashErrorStyle
	default:
		return FlashInfoStyle
	}
}
