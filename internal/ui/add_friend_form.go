package ui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/eatnsplit/internal/keys"
)

// add friend form focus slots
const (
	addFieldName = iota
	addFieldImage
	addFieldButton
	addFieldCount
)

// AddFriendForm captures a name and an image URL for a new friend.
// The app creates a fresh form every time it is opened, so draft text
// never survives a close.
type AddFriendForm struct {
	nameInput    textinput.Model
	imageInput   textinput.Model
	defaultImage string
	focusIdx     int
	focused      bool
	width        int
	onAdd        func(name, image string) tea.Cmd
}

// NewAddFriendForm creates a form whose image field starts at defaultImage.
func NewAddFriendForm(defaultImage string, onAdd func(name, image string) tea.Cmd) *AddFriendForm {
	name := textinput.New()
	name.Prompt = ""
	name.CharLimit = NameCharLimit
	name.SetWidth(FormInputWidth)

	image := textinput.New()
	image.Prompt = ""
	image.CharLimit = ImageCharLimit
	image.SetWidth(FormInputWidth)

	f := &AddFriendForm{
		nameInput:    name,
		imageInput:   image,
		defaultImage: defaultImage,
		onAdd:        onAdd,
	}
	f.reset()
	return f
}

// Name returns the name field text
func (f *AddFriendForm) Name() string {
	return f.nameInput.Value()
}

// Image returns the image URL field text
func (f *AddFriendForm) Image() string {
	return f.imageInput.Value()
}

// SetWidth sets the inner width of the form
func (f *AddFriendForm) SetWidth(width int) {
	f.width = width
	w := max(width-2, 1)
	f.nameInput.SetWidth(w)
	f.imageInput.SetWidth(w)
}

// SetFocused gives or takes keyboard focus
func (f *AddFriendForm) SetFocused(focused bool) tea.Cmd {
	f.focused = focused
	return f.applyFocus()
}

// IsFocused returns the focus state
func (f *AddFriendForm) IsFocused() bool {
	return f.focused
}

// Submit adds the friend unless a field is empty, then resets both
// fields. Empty input is ignored without feedback.
func (f *AddFriendForm) Submit() tea.Cmd {
	name, image := f.Name(), f.Image()
	if name == "" || image == "" {
		return nil
	}

	var cmd tea.Cmd
	if f.onAdd != nil {
		cmd = f.onAdd(name, image)
	}
	f.reset()
	return cmd
}

// Update handles field navigation, submission and typing
func (f *AddFriendForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			return f.moveFocus(-1)
		case keys.Down:
			return f.moveFocus(1)
		case keys.CtrlS:
			return f.Submit()
		case keys.Enter:
			if f.focusIdx == addFieldName {
				return f.moveFocus(1)
			}
			return f.Submit()
		}
	}

	var cmd tea.Cmd
	switch f.focusIdx {
	case addFieldName:
		f.nameInput, cmd = f.nameInput.Update(msg)
	case addFieldImage:
		f.imageInput, cmd = f.imageInput.Update(msg)
	}
	return cmd
}

// View renders the form
func (f *AddFriendForm) View() string {
	button := ButtonStyle
	if f.focused && f.focusIdx == addFieldButton {
		button = ButtonFocusedStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		FormLabelStyle.Render("👫 Friend name"),
		f.fieldView(f.nameInput, addFieldName),
		FormLabelStyle.Render("📷 Image URL"),
		f.fieldView(f.imageInput, addFieldImage),
		button.Render("Add"),
	)
}

func (f *AddFriendForm) fieldView(input textinput.Model, idx int) string {
	if f.focused && f.focusIdx == idx {
		return InputFocusedMarkerStyle.Render(input.View())
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(input.View())
}

func (f *AddFriendForm) moveFocus(delta int) tea.Cmd {
	f.focusIdx = (f.focusIdx + delta + addFieldCount) % addFieldCount
	return f.applyFocus()
}

func (f *AddFriendForm) applyFocus() tea.Cmd {
	f.nameInput.Blur()
	f.imageInput.Blur()
	if !f.focused {
		return nil
	}
	switch f.focusIdx {
	case addFieldName:
		return f.nameInput.Focus()
	case addFieldImage:
		return f.imageInput.Focus()
	}
	return nil
}

func (f *AddFriendForm) reset() {
	f.nameInput.SetValue("")
	f.imageInput.SetValue(f.defaultImage)
	f.imageInput.CursorEnd()
	f.focusIdx = addFieldName
	f.applyFocus()
}
