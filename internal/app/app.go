package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/eatnsplit/internal/config"
	"github.com/zhubert/eatnsplit/internal/friends"
	"github.com/zhubert/eatnsplit/internal/logger"
	"github.com/zhubert/eatnsplit/internal/ui"
)

// Focus represents which pane receives key presses
type Focus int

const (
	FocusSidebar Focus = iota
	FocusAddForm
	FocusSplitForm
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "Sidebar"
	case FocusAddForm:
		return "AddForm"
	case FocusSplitForm:
		return "SplitForm"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model. The roster is the only source of
// truth for friends, selection and add form visibility; the forms are
// mounted and unmounted to mirror it after every update.
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	roster  *friends.Roster

	header    *ui.Header
	footer    *ui.Footer
	list      *ui.FriendList
	addForm   *ui.AddFriendForm // nil while the add form is closed
	splitForm *ui.SplitBillForm // nil while no friend is selected
	focus     Focus
	layout    ui.Layout
	width     int
	height    int
}

// New creates a new app model seeded with the default friends
func New(cfg *config.Config, version string) *Model {
	return NewWithRoster(cfg, version, friends.NewRoster(friends.Seed()))
}

// NewWithRoster creates a new app model around an existing roster
func NewWithRoster(cfg *config.Config, version string, roster *friends.Roster) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:  cfg,
		version: version,
		roster:  roster,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		focus:   FocusSidebar,
	}
	m.list = ui.NewFriendList(m.handleSelectFriend)
	m.syncMounts()

	logger.WithComponent("app").Info("Started", "version", version, "friends", roster.Len())
	return m
}

// Roster returns the state container
func (m *Model) Roster() *friends.Roster {
	return m.roster
}

// Focus returns the focused pane
func (m *Model) Focus() Focus {
	return m.focus
}

// AddForm returns the mounted add friend form, or nil
func (m *Model) AddForm() *ui.AddFriendForm {
	return m.addForm
}

// SplitForm returns the mounted split bill form, or nil
func (m *Model) SplitForm() *ui.SplitBillForm {
	return m.splitForm
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case ui.FlashTickMsg:
		m.footer.ClearExpiredFlash(time.Time(msg))

	case ThemeSavedMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.flash(ui.FlashWarning, "Theme not saved: "+msg.Err.Error()))
		}

	case ClipboardWrittenMsg:
		if msg.Err != nil {
			logger.WithComponent("app").Debug("System clipboard unavailable, relying on terminal", "error", msg.Err)
		}

	case NotificationSentMsg:
		if msg.Err != nil {
			logger.WithComponent("app").Warn("Notification failed", "error", msg.Err)
		}

	default:
		// Let the mounted forms see cursor blink and other internal messages
		if m.addForm != nil {
			cmds = append(cmds, m.addForm.Update(msg))
		}
		if m.splitForm != nil {
			cmds = append(cmds, m.splitForm.Update(msg))
		}
	}

	cmds = append(cmds, m.syncMounts())
	return m, tea.Batch(cmds...)
}

// syncMounts mounts or unmounts the forms so they mirror the roster and
// pushes the roster into the views.
func (m *Model) syncMounts() tea.Cmd {
	log := logger.WithComponent("app")

	if m.roster.AddFriendFormOpen() {
		if m.addForm == nil {
			m.addForm = ui.NewAddFriendForm(m.config.GetDefaultAvatarURL(), m.handleAddFriend)
			log.Debug("Mounted add friend form")
		}
	} else if m.addForm != nil {
		m.addForm = nil
		log.Debug("Unmounted add friend form")
	}

	var selectedID friends.ID
	if sel, ok := m.roster.Selected(); ok {
		selectedID = sel.ID
		if m.splitForm == nil {
			m.splitForm = ui.NewSplitBillForm(sel, m.handleSplitSubmit)
			log.Debug("Mounted split bill form", "friend", sel.ID)
		} else {
			m.splitForm.SetFriend(sel)
		}
		m.header.SetSplitWith(sel.Name)
	} else {
		if m.splitForm != nil {
			m.splitForm = nil
			log.Debug("Unmounted split bill form")
		}
		m.header.SetSplitWith("")
	}

	if (m.focus == FocusAddForm && m.addForm == nil) || (m.focus == FocusSplitForm && m.splitForm == nil) {
		m.focus = FocusSidebar
	}

	m.list.SetFriends(m.roster.Friends(), selectedID)
	m.header.SetFriendCount(m.roster.Len())
	m.footer.SetContext(ui.FooterContext{
		SidebarFocused: m.focus == FocusSidebar,
		AddFormOpen:    m.addForm != nil,
		HasSelection:   m.splitForm != nil,
	})
	m.updateSizes()
	return m.applyFocus()
}

// applyFocus hands keyboard focus to exactly one pane
func (m *Model) applyFocus() tea.Cmd {
	var cmds []tea.Cmd
	m.list.SetFocused(m.focus == FocusSidebar)
	if m.addForm != nil && m.addForm.IsFocused() != (m.focus == FocusAddForm) {
		cmds = append(cmds, m.addForm.SetFocused(m.focus == FocusAddForm))
	}
	if m.splitForm != nil && m.splitForm.IsFocused() != (m.focus == FocusSplitForm) {
		cmds = append(cmds, m.splitForm.SetFocused(m.focus == FocusSplitForm))
	}
	return tea.Batch(cmds...)
}

// updateSizes propagates the layout to every component
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.layout = ui.NewLayout(m.width, m.height)

	m.header.SetWidth(m.layout.Width)
	m.footer.SetWidth(m.layout.Width)
	m.list.SetWidth(ui.InnerWidth(m.layout.SidebarWidth))
	if m.addForm != nil {
		m.addForm.SetWidth(ui.InnerWidth(m.layout.SidebarWidth))
	}
	if m.splitForm != nil {
		m.splitForm.SetWidth(ui.InnerWidth(m.layout.PanelWidth))
	}

	// the list gets whatever the add form and the toggle button leave
	listHeight := ui.InnerHeight(m.layout.ContentHeight) - lipgloss.Height(m.sidebarControls())
	m.list.SetHeight(max(listHeight, 1))
}

// View renders the UI
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m *Model) render() string {
	panels := m.sidebarView()
	if m.splitForm != nil && m.layout.PanelWidth > 0 {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, panels, m.splitView())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// sidebarControls renders what sits under the friend list
func (m *Model) sidebarControls() string {
	parts := []string{""}
	if m.addForm != nil {
		parts = append(parts, m.addForm.View(), "")
	}
	parts = append(parts, ui.ButtonStyle.Render(ui.ToggleLabel(m.addForm != nil)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) sidebarView() string {
	style := ui.PanelStyle
	if m.focus != FocusSplitForm {
		style = ui.PanelFocusedStyle
	}
	return style.
		Width(m.layout.SidebarWidth).
		Height(m.layout.ContentHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.sidebarControls()))
}

func (m *Model) splitView() string {
	style := ui.PanelStyle
	if m.focus == FocusSplitForm {
		style = ui.PanelFocusedStyle
	}
	return style.
		Width(m.layout.PanelWidth).
		Height(m.layout.ContentHeight).
		Render(m.splitForm.View())
}

// RenderToString renders the current screen, or an empty string before
// the first window size is known
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.render()
}
