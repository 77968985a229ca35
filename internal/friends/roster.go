package friends

import (
	"github.com/google/uuid"

	"github.com/zhubert/eatnsplit/internal/errors"
	"github.com/zhubert/eatnsplit/internal/logger"
	"github.com/zhubert/eatnsplit/internal/money"
)

// Roster owns the friend collection, the selection, and the add-friend
// form visibility flag. It is not safe for concurrent use; all access
// happens on the UI event loop.
type Roster struct {
	friends      []Friend
	selectedID   ID
	hasSelection bool
	addFormOpen  bool
	newID        func() ID
}

// NewRoster creates a roster holding a copy of seed, in order.
// Entries with a duplicate ID are dropped after the first.
func NewRoster(seed []Friend) *Roster {
	r := &Roster{
		friends: make([]Friend, 0, len(seed)),
		newID:   func() ID { return ID(uuid.NewString()) },
	}
	for _, f := range seed {
		if r.indexOf(f.ID) >= 0 {
			logger.WithComponent("roster").Warn("Dropping duplicate seed friend", "id", f.ID)
			continue
		}
		r.friends = append(r.friends, f)
	}
	return r
}

// Friends returns a copy of the collection in insertion order.
func (r *Roster) Friends() []Friend {
	out := make([]Friend, len(r.friends))
	copy(out, r.friends)
	return out
}

// Len returns the number of friends.
func (r *Roster) Len() int {
	return len(r.friends)
}

// Get returns the friend with the given ID.
func (r *Roster) Get(id ID) (Friend, error) {
	if i := r.indexOf(id); i >= 0 {
		return r.friends[i], nil
	}
	return Friend{}, errors.FriendNotFound(string(id))
}

// Selected returns the selected friend, if any.
func (r *Roster) Selected() (Friend, bool) {
	if !r.hasSelection {
		return Friend{}, false
	}
	f, err := r.Get(r.selectedID)
	if err != nil {
		return Friend{}, false
	}
	return f, true
}

// IsSelected reports whether id is the current selection.
func (r *Roster) IsSelected(id ID) bool {
	return r.hasSelection && r.selectedID == id
}

// AddFriendFormOpen reports whether the add-friend form is mounted.
func (r *Roster) AddFriendFormOpen() bool {
	return r.addFormOpen
}

// AddFriend appends a new friend with a fresh ID and a zero balance, then
// closes the add-friend form. Callers are expected to have rejected empty
// input already.
func (r *Roster) AddFriend(name, image string) (Friend, error) {
	f := Friend{
		ID:      r.newID(),
		Name:    name,
		Image:   image,
		Balance: money.Zero,
	}
	if r.indexOf(f.ID) >= 0 {
		return Friend{}, errors.DuplicateFriend(string(f.ID))
	}

	r.friends = append(r.friends, f)
	r.addFormOpen = false

	logger.WithComponent("roster").Info("Friend added", "id", f.ID, "name", f.Name, "count", len(r.friends))
	return f, nil
}

// SelectFriend selects f, or clears the selection if f is already
// selected. Either way the add-friend form closes.
func (r *Roster) SelectFriend(f Friend) {
	if r.IsSelected(f.ID) {
		r.selectedID = ""
		r.hasSelection = false
	} else {
		r.selectedID = f.ID
		r.hasSelection = true
	}
	r.addFormOpen = false

	logger.WithComponent("roster").Debug("Selection changed", "id", f.ID, "selected", r.hasSelection)
}

// ToggleAddFriendForm flips the add-friend form visibility. The selection
// is left alone.
func (r *Roster) ToggleAddFriendForm() {
	r.addFormOpen = !r.addFormOpen
}

func (r *Roster) indexOf(id ID) int {
	for i, f := range r.friends {
		if f.ID == id {
			return i
		}
	}
	return -1
}
