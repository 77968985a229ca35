package ui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/eatnsplit/internal/friends"
	"github.com/zhubert/eatnsplit/internal/keys"
	"github.com/zhubert/eatnsplit/internal/split"
)

// split bill form focus slots
const (
	splitFieldBill = iota
	splitFieldExpense
	splitFieldPayer
	splitFieldButton
	splitFieldCount
)

// SplitBillForm edits a split.Draft for the selected friend.
//
// The app keeps one instance mounted for as long as some friend is
// selected. Switching straight from one friend to another only swaps the
// friend via SetFriend; the draft and its field text carry over.
type SplitBillForm struct {
	friend       friends.Friend
	draft        *split.Draft
	billInput    textinput.Model
	expenseInput textinput.Model
	payerForm    *huh.Form
	payerField   *huh.Select[split.Payer]
	focusIdx     int
	focused      bool
	width        int
	onSubmit     func(friends.Friend, *split.Draft) tea.Cmd
}

// NewSplitBillForm creates an empty form for friend.
func NewSplitBillForm(friend friends.Friend, onSubmit func(friends.Friend, *split.Draft) tea.Cmd) *SplitBillForm {
	bill := textinput.New()
	bill.Prompt = "$ "
	bill.CharLimit = AmountCharLimit
	bill.SetWidth(FormInputWidth)

	expense := textinput.New()
	expense.Prompt = "$ "
	expense.CharLimit = AmountCharLimit
	expense.SetWidth(FormInputWidth)

	s := &SplitBillForm{
		friend:       friend,
		draft:        split.NewDraft(),
		billInput:    bill,
		expenseInput: expense,
		width:        FormInputWidth,
		onSubmit:     onSubmit,
	}
	s.buildPayerForm()
	s.applyFocus()
	return s
}

// Friend returns the friend the bill is split with
func (s *SplitBillForm) Friend() friends.Friend {
	return s.friend
}

// Draft returns the draft being edited
func (s *SplitBillForm) Draft() *split.Draft {
	return s.draft
}

// SetFriend points the form at another friend without touching the draft
func (s *SplitBillForm) SetFriend(f friends.Friend) {
	rename := f.Name != s.friend.Name
	s.friend = f
	if rename {
		s.buildPayerForm()
		s.applyFocus()
	}
}

// RefreshTheme rebuilds the huh payer select with the current palette
func (s *SplitBillForm) RefreshTheme() {
	s.buildPayerForm()
	s.applyFocus()
}

// SetWidth sets the inner width of the form
func (s *SplitBillForm) SetWidth(width int) {
	s.width = width
	w := max(width-4, 1)
	s.billInput.SetWidth(w)
	s.expenseInput.SetWidth(w)
	s.payerForm = s.payerForm.WithWidth(width)
	s.refreshPayer()
}

// SetFocused gives or takes keyboard focus
func (s *SplitBillForm) SetFocused(focused bool) tea.Cmd {
	s.focused = focused
	return s.applyFocus()
}

// IsFocused returns the focus state
func (s *SplitBillForm) IsFocused() bool {
	return s.focused
}

// SetBill replaces the bill field text
func (s *SplitBillForm) SetBill(text string) {
	s.billInput.SetValue(text)
	s.draft.SetBill(text)
}

// SetUserExpense replaces the expense field text unless the value
// exceeds the bill. It reports whether the text was accepted.
func (s *SplitBillForm) SetUserExpense(text string) bool {
	if !s.draft.SetUserExpense(text) {
		return false
	}
	s.expenseInput.SetValue(text)
	return true
}

// Submit hands the draft to the submit handler.
func (s *SplitBillForm) Submit() tea.Cmd {
	if s.onSubmit == nil {
		return nil
	}
	return s.onSubmit(s.friend, s.draft)
}

// Update handles field navigation, submission and typing
func (s *SplitBillForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			return s.moveFocus(-1)
		case keys.Down:
			return s.moveFocus(1)
		case keys.CtrlS:
			return s.Submit()
		case keys.Enter:
			if s.focusIdx == splitFieldButton {
				return s.Submit()
			}
			return s.moveFocus(1)
		}
	}

	switch s.focusIdx {
	case splitFieldBill:
		var cmd tea.Cmd
		s.billInput, cmd = s.billInput.Update(msg)
		s.draft.SetBill(s.billInput.Value())
		return cmd

	case splitFieldExpense:
		prevText, prevPos := s.expenseInput.Value(), s.expenseInput.Position()
		var cmd tea.Cmd
		s.expenseInput, cmd = s.expenseInput.Update(msg)
		if text := s.expenseInput.Value(); text != prevText && !s.draft.SetUserExpense(text) {
			// rejected: the field keeps its previous text and cursor
			s.expenseInput.SetValue(prevText)
			s.expenseInput.SetCursor(prevPos)
		}
		return cmd

	case splitFieldPayer:
		if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Tab {
			return nil
		}
		m, cmd := s.payerForm.Update(msg)
		if f, ok := m.(*huh.Form); ok {
			s.payerForm = f
		}
		return cmd
	}
	return nil
}

// View renders the form
func (s *SplitBillForm) View() string {
	title := PanelTitleStyle.Render("Split a bill with " + s.friend.Name)

	friendExpense := FormDisabledStyle.Render("$ " + s.draft.FriendExpense().String())

	button := ButtonStyle
	if s.focused && s.focusIdx == splitFieldButton {
		button = ButtonFocusedStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		FormLabelStyle.Render("💰 Bill value"),
		s.fieldView(s.billInput.View(), splitFieldBill),
		FormLabelStyle.Render("🧍 Your expense"),
		s.fieldView(s.expenseInput.View(), splitFieldExpense),
		FormLabelStyle.Render("🧑‍🤝‍🧑 "+s.friend.Name+"'s expense"),
		lipgloss.NewStyle().PaddingLeft(2).Render(friendExpense),
		FormLabelStyle.Render("🤑 Who is paying the bill?"),
		s.payerForm.View(),
		"",
		button.Render("Split bill"),
	)
}

func (s *SplitBillForm) fieldView(view string, idx int) string {
	if s.focused && s.focusIdx == idx {
		return InputFocusedMarkerStyle.Render(view)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(view)
}

// buildPayerForm creates the huh select bound to the draft's payer.
// The friend's name is an option label, so it is rebuilt on friend change.
func (s *SplitBillForm) buildPayerForm() {
	s.payerField = huh.NewSelect[split.Payer]().
		Options(
			huh.NewOption("You", split.PayerYou),
			huh.NewOption(s.friend.Name, split.PayerFriend),
		).
		Inline(true).
		Value(&s.draft.Payer)

	s.payerForm = huh.NewForm(huh.NewGroup(s.payerField)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(max(s.width, 1))
	s.payerForm.Init()
}

func (s *SplitBillForm) moveFocus(delta int) tea.Cmd {
	s.focusIdx = (s.focusIdx + delta + splitFieldCount) % splitFieldCount
	return s.applyFocus()
}

func (s *SplitBillForm) applyFocus() tea.Cmd {
	s.billInput.Blur()
	s.expenseInput.Blur()
	s.payerField.Blur()

	var cmd tea.Cmd
	if s.focused {
		switch s.focusIdx {
		case splitFieldBill:
			cmd = s.billInput.Focus()
		case splitFieldExpense:
			cmd = s.expenseInput.Focus()
		case splitFieldPayer:
			cmd = s.payerField.Focus()
		}
	}
	s.refreshPayer()
	return cmd
}

// payerRefreshMsg is routed through the huh form so the select sizes its
// viewport and the group re-renders with the field's current focus.
type payerRefreshMsg struct{}

// refreshPayer re-renders the payer form after a width or focus change.
// huh caches the group view and only lays the select out on Update.
func (s *SplitBillForm) refreshPayer() {
	if m, _ := s.payerForm.Update(payerRefreshMsg{}); m != nil {
		if f, ok := m.(*huh.Form); ok {
			s.payerForm = f
		}
	}
}
