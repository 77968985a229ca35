// Package split holds the state of a bill being split with one friend.
package split

import (
	"github.com/zhubert/eatnsplit/internal/errors"
	"github.com/zhubert/eatnsplit/internal/money"
)

// Payer says who pays the bill.
type Payer string

const (
	PayerYou    Payer = "you"
	PayerFriend Payer = "friend"
)

// ErrSettlementUnimplemented is returned by Submit. Splitting a bill does
// not change any balance yet.
var ErrSettlementUnimplemented = errors.E(errors.Op("split.Submit"), errors.KindUnsupported, "settling a split bill is not implemented")

// Draft is the in-progress split. The friend's share is never stored; it
// is derived from the bill and the user's expense.
type Draft struct {
	billText    string
	expenseText string
	bill        money.Amount
	userExpense money.Amount
	Payer       Payer
}

// NewDraft returns an empty draft with the user paying.
func NewDraft() *Draft {
	return &Draft{Payer: PayerYou}
}

// Bill returns the coerced bill value.
func (d *Draft) Bill() money.Amount {
	return d.bill
}

// BillText returns the bill field text.
func (d *Draft) BillText() string {
	return d.billText
}

// UserExpense returns the coerced value of the user's own expense.
func (d *Draft) UserExpense() money.Amount {
	return d.userExpense
}

// UserExpenseText returns the user expense field text.
func (d *Draft) UserExpenseText() string {
	return d.expenseText
}

// SetBill stores the bill field text and its numeric value. Lowering the
// bill below the current expense is allowed; only expense edits are
// checked against the bill.
func (d *Draft) SetBill(text string) {
	d.billText = text
	d.bill = money.Parse(text)
}

// SetUserExpense stores the expense field text unless its value exceeds
// the bill, in which case the edit is rejected and the previous value is
// kept. It reports whether the edit was accepted.
func (d *Draft) SetUserExpense(text string) bool {
	v := money.Parse(text)
	if v.GreaterThan(d.bill) {
		return false
	}
	d.expenseText = text
	d.userExpense = v
	return true
}

// FriendExpense returns bill minus the user's expense.
func (d *Draft) FriendExpense() money.Amount {
	return d.bill.Sub(d.userExpense)
}

// Submit finalizes the split. No balance is changed; it always returns
// ErrSettlementUnimplemented.
func (d *Draft) Submit() error {
	return ErrSettlementUnimplemented
}
