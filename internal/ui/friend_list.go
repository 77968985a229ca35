package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zhubert/eatnsplit/internal/friends"
	"github.com/zhubert/eatnsplit/internal/keys"
)

// SelectLabel returns the row button label.
func SelectLabel(selected bool) string {
	if selected {
		return "Close"
	}
	return "Select"
}

// ToggleLabel returns the label of the button under the friend list.
func ToggleLabel(addFormOpen bool) string {
	if addFormOpen {
		return "Close"
	}
	return "Add friend"
}

// FriendList renders the friend collection. It keeps only a cursor and
// a scroll offset; the friends and the selection are handed in by the app.
type FriendList struct {
	friends      []friends.Friend
	selectedID   friends.ID
	cursor       int
	scrollOffset int
	width        int
	height       int // visible lines, 0 renders every row
	focused      bool
	onSelect     func(friends.Friend)
}

// NewFriendList creates a friend list that reports row activation to onSelect.
func NewFriendList(onSelect func(friends.Friend)) *FriendList {
	return &FriendList{onSelect: onSelect}
}

// SetFriends replaces the rendered rows. selectedID is empty when no
// friend is selected.
func (l *FriendList) SetFriends(list []friends.Friend, selectedID friends.ID) {
	l.friends = list
	l.selectedID = selectedID
	if l.cursor >= len(l.friends) {
		l.cursor = max(len(l.friends)-1, 0)
	}
}

// SetWidth sets the inner width rows are rendered at
func (l *FriendList) SetWidth(width int) {
	l.width = width
}

// SetHeight sets how many lines the list may use
func (l *FriendList) SetHeight(height int) {
	l.height = height
}

// SetFocused sets the focus state
func (l *FriendList) SetFocused(focused bool) {
	l.focused = focused
}

// Cursor returns the highlighted row index
func (l *FriendList) Cursor() int {
	return l.cursor
}

// CursorFriend returns the friend under the cursor
func (l *FriendList) CursorFriend() (friends.Friend, bool) {
	if l.cursor < 0 || l.cursor >= len(l.friends) {
		return friends.Friend{}, false
	}
	return l.friends[l.cursor], true
}

// Update handles navigation and row activation
func (l *FriendList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case keys.Down, "j":
		if l.cursor < len(l.friends)-1 {
			l.cursor++
		}
	case keys.Home, "g":
		l.cursor = 0
	case keys.End, "G":
		l.cursor = max(len(l.friends)-1, 0)
	case keys.Enter, keys.Space:
		if f, ok := l.CursorFriend(); ok && l.onSelect != nil {
			l.onSelect(f)
		}
	}
	return nil
}

// View renders the rows that fit in the list height, scrolled so the
// cursor row stays visible
func (l *FriendList) View() string {
	if len(l.friends) == 0 {
		return FormDisabledStyle.Render("No friends yet")
	}

	var allLines []string
	cursorStart, cursorEnd := 0, 0
	for i, f := range l.friends {
		if i == l.cursor {
			cursorStart = len(allLines)
		}
		allLines = append(allLines, strings.Split(l.renderRow(f, i == l.cursor), "\n")...)
		if i == l.cursor {
			cursorEnd = len(allLines)
		}
	}

	if l.height <= 0 || len(allLines) <= l.height {
		l.scrollOffset = 0
		return strings.Join(allLines, "\n")
	}

	visibleHeight := l.height
	if cursorStart < l.scrollOffset {
		l.scrollOffset = cursorStart
	} else if cursorEnd > l.scrollOffset+visibleHeight {
		l.scrollOffset = cursorEnd - visibleHeight
	}

	maxScroll := max(len(allLines)-visibleHeight, 0)
	l.scrollOffset = min(max(l.scrollOffset, 0), maxScroll)

	return strings.Join(allLines[l.scrollOffset:l.scrollOffset+visibleHeight], "\n")
}

func (l *FriendList) renderRow(f friends.Friend, atCursor bool) string {
	selected := f.ID == l.selectedID

	button := ButtonStyle
	if atCursor && l.focused {
		button = ButtonFocusedStyle
	}
	buttonView := button.Render(SelectLabel(selected))

	nameWidth := max(l.width-lipgloss.Width(buttonView)-AvatarWidth-4, 1)
	name := FriendNameStyle.Render(ansi.Truncate(f.Name, nameWidth, "…"))
	top := Avatar(f) + " " + name

	gap := max(l.width-lipgloss.Width(top)-lipgloss.Width(buttonView)-2, 1)
	top += strings.Repeat(" ", gap) + buttonView

	msg := ansi.Truncate(friends.BalanceMessage(f), max(l.width-AvatarWidth-3, 1), "…")
	bottom := strings.Repeat(" ", AvatarWidth+1) + BalanceStyle(friends.ToneOf(f.Balance)).Render(msg)

	style := FriendRowStyle
	if selected {
		style = FriendRowSelectedStyle
	}
	if l.width > 0 {
		style = style.Width(l.width)
	}
	return style.Render(top + "\n" + bottom)
}

// BalanceStyle returns the style for a balance tone. Only the color
// distinguishes owing from being owed; the message text is the same.
func BalanceStyle(tone friends.Tone) lipgloss.Style {
	switch tone {
	case friends.ToneOwe:
		return BalanceOweStyle
	case friends.ToneOwed:
		return BalanceOwedStyle
	default:
		return BalanceSettledStyle
	}
}

// AvatarWidth is the display width of a rendered avatar
const AvatarWidth = 3

// Avatar renders the first character of the friend's name as a badge
// that links to the friend's image URL in terminals that support OSC 8.
func Avatar(f friends.Friend) string {
	glyph, _, width, _ := uniseg.FirstGraphemeClusterInString(f.Name, -1)
	if glyph == "" {
		glyph, width = "?", 1
	}

	style := FriendAvatarStyle
	if width > 1 {
		// wide glyphs take the right padding cell
		style = style.PaddingRight(0)
	}
	badge := style.Render(strings.ToUpper(glyph))

	if f.Image == "" {
		return badge
	}
	return ansi.SetHyperlink(f.Image) + badge + ansi.ResetHyperlink()
}
