package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width       int
	friendCount int
	splitWith   string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetFriendCount sets the number of friends shown on the right
func (h *Header) SetFriendCount(n int) {
	h.friendCount = n
}

// SetSplitWith sets the name of the friend the bill is split with.
// Empty clears it.
func (h *Header) SetSplitWith(name string) {
	h.splitWith = name
}

// View renders the header
func (h *Header) View() string {
	titleText := " eatnsplit"

	rightText := fmt.Sprintf("%d friends ", h.friendCount)
	if h.friendCount == 1 {
		rightText = "1 friend "
	}
	if h.splitWith != "" {
		rightText = "splitting with " + h.splitWith + " · " + rightText
	}

	// Names may contain wide runes, so pad by display width
	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	return HeaderStyle.Render(titleText + strings.Repeat(" ", paddingLen) + rightText)
}
