package friends

import (
	"fmt"

	"github.com/zhubert/eatnsplit/internal/money"
)

// ID identifies a friend. Seed friends use numeric strings, friends added
// at runtime use random UUIDs.
type ID string

// Friend is one person the user can owe or be owed money by.
type Friend struct {
	ID      ID
	Name    string
	Image   string // avatar URL
	Balance money.Amount
}

// Tone classifies a balance for display.
type Tone int

const (
	ToneSettled Tone = iota // balance is zero
	ToneOwe                 // user owes the friend
	ToneOwed                // friend owes the user
	ToneUnknown             // balance is NaN
)

// String returns the style class name for the tone.
func (t Tone) String() string {
	switch t {
	case ToneOwe:
		return "red"
	case ToneOwed:
		return "green"
	case ToneSettled:
		return ""
	default:
		return "unknown"
	}
}

// ToneOf returns the display tone for a balance.
func ToneOf(balance money.Amount) Tone {
	switch {
	case balance.LessThan(money.Zero):
		return ToneOwe
	case balance.GreaterThan(money.Zero):
		return ToneOwed
	case balance.Equal(money.Zero):
		return ToneSettled
	default:
		return ToneUnknown
	}
}

// BalanceMessage returns the balance line shown under a friend's name.
// The wording is the same for every sign; only the tone differs. A NaN
// balance has no message.
func BalanceMessage(f Friend) string {
	if ToneOf(f.Balance) == ToneUnknown {
		return ""
	}
	return fmt.Sprintf("You owe %s $%s", f.Name, f.Balance.Abs())
}
