// Package friends holds the friend roster: the friend collection, the
// current selection, and whether the add-friend form is open. The Roster
// is the single source of truth that every view renders from.
//
// # Selection
//
// At most one friend is selected. Selecting the selected friend again
// clears the selection. Any selection change also closes the add-friend
// form, but opening the form never touches the selection.
//
// # Balances
//
// A negative balance means the user owes the friend, a positive balance
// means the friend owes the user, and zero means settled. Nothing in the
// roster mutates a balance after the friend is created.
package friends
