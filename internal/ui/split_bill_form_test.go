package ui

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/eatnsplit/internal/friends"
	"github.com/zhubert/eatnsplit/internal/keys"
	"github.com/zhubert/eatnsplit/internal/split"
)

var (
	clark = friends.Seed()[0]
	sarah = friends.Seed()[1]
)

func newTestSplitForm(submits *int) *SplitBillForm {
	s := NewSplitBillForm(clark, func(f friends.Friend, d *split.Draft) tea.Cmd {
		*submits++
		return nil
	})
	s.SetFocused(true)
	return s
}

func TestSplitBillForm_FriendExpense(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)

	typeInto(s, "100")
	s.Update(keyPress(keys.Down))
	typeInto(s, "40")

	if got := s.Draft().FriendExpense().String(); got != "60" {
		t.Errorf("FriendExpense() = %s, want 60", got)
	}
	if !strings.Contains(ansi.Strip(s.View()), "$ 60") {
		t.Errorf("view should show the friend's share:\n%s", ansi.Strip(s.View()))
	}
}

func TestSplitBillForm_ExpenseAboveBillRejected(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)

	typeInto(s, "100")
	s.Update(keyPress(keys.Down))
	typeInto(s, "40")
	typeInto(s, "0") // 400

	if s.expenseInput.Value() != "40" {
		t.Errorf("expense field = %q, want 40", s.expenseInput.Value())
	}
	if got := s.Draft().UserExpense().String(); got != "40" {
		t.Errorf("UserExpense() = %s, want 40", got)
	}

	// the cursor stays put so the next keystroke lands at the end
	s.Update(keyPress(keys.Backspace))
	if s.expenseInput.Value() != "4" {
		t.Errorf("after backspace expense = %q, want 4", s.expenseInput.Value())
	}
}

func TestSplitBillForm_SetUserExpense(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)
	s.SetBill("100")

	if !s.SetUserExpense("40") {
		t.Fatal("SetUserExpense(40) rejected")
	}
	if s.SetUserExpense("150") {
		t.Error("SetUserExpense(150) accepted with bill 100")
	}
	if s.expenseInput.Value() != "40" {
		t.Errorf("expense field = %q, want 40", s.expenseInput.Value())
	}
}

func TestSplitBillForm_NonNumericBill(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)

	typeInto(s, "abc")
	if !s.Draft().Bill().IsNaN() {
		t.Errorf("Bill() = %s, want NaN", s.Draft().Bill())
	}
	if !strings.Contains(ansi.Strip(s.View()), "NaN") {
		t.Error("NaN friend share should be rendered as NaN")
	}
}

func TestSplitBillForm_Submit(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)

	// bill -> expense -> payer -> button
	for range 3 {
		s.Update(keyPress(keys.Down))
	}
	s.Update(keyPress(keys.Enter))
	s.Update(keyPress(keys.CtrlS))

	if submits != 2 {
		t.Errorf("submits = %d, want 2", submits)
	}
	if err := s.Draft().Submit(); !errors.Is(err, split.ErrSettlementUnimplemented) {
		t.Errorf("Draft.Submit() = %v", err)
	}
}

func TestSplitBillForm_EnterAdvancesFields(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)

	s.Update(keyPress(keys.Enter))
	if s.focusIdx != splitFieldExpense {
		t.Errorf("focus = %d, want expense", s.focusIdx)
	}
	if submits != 0 {
		t.Error("enter on a field should not submit")
	}
}

func TestSplitBillForm_SetFriendKeepsDraft(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)
	typeInto(s, "100")
	s.Update(keyPress(keys.Down))
	typeInto(s, "40")
	s.Update(keyPress(keys.Down))
	s.Update(keyPress(keys.Right))

	s.SetFriend(sarah)

	if s.Friend().ID != sarah.ID {
		t.Errorf("Friend() = %s, want %s", s.Friend().ID, sarah.ID)
	}
	if s.billInput.Value() != "100" || s.expenseInput.Value() != "40" {
		t.Errorf("fields reset on friend switch: bill=%q expense=%q", s.billInput.Value(), s.expenseInput.Value())
	}
	if s.Draft().Payer != split.PayerFriend {
		t.Errorf("payer reset on friend switch: %q", s.Draft().Payer)
	}

	view := ansi.Strip(s.View())
	for _, want := range []string{"Split a bill with Sarah", "Sarah's expense", "Who is paying the bill?"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSplitBillForm_View(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)
	s.SetWidth(40)
	view := ansi.Strip(s.View())

	for _, want := range []string{
		"Split a bill with Clark",
		"Bill value",
		"Your expense",
		"Clark's expense",
		"Split bill",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSplitBillForm_PayerInitialView(t *testing.T) {
	for _, width := range []int{0, 30, 56, 100} {
		s := NewSplitBillForm(clark, nil)
		s.SetWidth(width)

		payer := ansi.Strip(s.payerForm.View())
		if !strings.Contains(payer, "You") {
			t.Errorf("width %d: payer view should name You, got %q", width, payer)
		}
		if strings.Contains(payer, "←") || strings.Contains(payer, "│") {
			t.Errorf("width %d: blurred payer should not show focus chrome, got %q", width, payer)
		}
	}
}

func TestSplitBillForm_PayerSelect(t *testing.T) {
	var submits int
	s := newTestSplitForm(&submits)
	s.SetWidth(40)
	s.Update(keyPress(keys.Down))
	s.Update(keyPress(keys.Down))

	if payer := ansi.Strip(s.payerForm.View()); !strings.Contains(payer, "← You →") {
		t.Errorf("focused payer view = %q, want it to contain %q", payer, "← You →")
	}

	s.Update(keyPress(keys.Right))
	if s.Draft().Payer != split.PayerFriend {
		t.Errorf("Payer = %q, want %q", s.Draft().Payer, split.PayerFriend)
	}
	if payer := ansi.Strip(s.payerForm.View()); !strings.Contains(payer, "Clark") {
		t.Errorf("payer view after right = %q, want Clark", payer)
	}

	s.Update(keyPress(keys.Left))
	if s.Draft().Payer != split.PayerYou {
		t.Errorf("Payer = %q, want %q", s.Draft().Payer, split.PayerYou)
	}
}
