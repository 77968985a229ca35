package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/eatnsplit/internal/friends"
	"github.com/zhubert/eatnsplit/internal/keys"
)

type addCall struct {
	name, image string
}

func newTestAddForm(calls *[]addCall) *AddFriendForm {
	f := NewAddFriendForm(friends.DefaultAvatarURL, func(name, image string) tea.Cmd {
		*calls = append(*calls, addCall{name, image})
		return nil
	})
	f.SetFocused(true)
	return f
}

func TestAddFriendForm_InitialValues(t *testing.T) {
	var calls []addCall
	f := newTestAddForm(&calls)

	if f.Name() != "" {
		t.Errorf("Name() = %q, want empty", f.Name())
	}
	if f.Image() != friends.DefaultAvatarURL {
		t.Errorf("Image() = %q, want %q", f.Image(), friends.DefaultAvatarURL)
	}
}

func TestAddFriendForm_Submit(t *testing.T) {
	var calls []addCall
	f := newTestAddForm(&calls)

	typeInto(f, "Bea")
	f.Update(keyPress(keys.Enter)) // to the image field
	f.Update(keyPress(keys.CtrlU))
	typeInto(f, "http://x/1")
	f.Update(keyPress(keys.Enter))

	if len(calls) != 1 {
		t.Fatalf("onAdd called %d times, want 1", len(calls))
	}
	if calls[0] != (addCall{"Bea", "http://x/1"}) {
		t.Errorf("onAdd got %+v", calls[0])
	}
	if f.Name() != "" || f.Image() != friends.DefaultAvatarURL {
		t.Errorf("fields not reset: name=%q image=%q", f.Name(), f.Image())
	}
}

func TestAddFriendForm_EmptyFieldsAbortSilently(t *testing.T) {
	tests := []struct {
		name  string
		input func(f *AddFriendForm)
	}{
		{
			name:  "empty name",
			input: func(f *AddFriendForm) {},
		},
		{
			name: "empty image",
			input: func(f *AddFriendForm) {
				typeInto(f, "Bea")
				f.Update(keyPress(keys.Down))
				f.Update(keyPress(keys.CtrlU))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []addCall
			f := newTestAddForm(&calls)
			tt.input(f)
			before := f.Name()

			if cmd := f.Update(keyPress(keys.CtrlS)); cmd != nil {
				t.Error("expected no command on abort")
			}
			if len(calls) != 0 {
				t.Errorf("onAdd called %d times, want 0", len(calls))
			}
			if f.Name() != before {
				t.Errorf("abort should not reset fields, name = %q", f.Name())
			}
		})
	}
}

func TestAddFriendForm_FocusCycle(t *testing.T) {
	var calls []addCall
	f := newTestAddForm(&calls)

	f.Update(keyPress(keys.Up))
	if f.focusIdx != addFieldButton {
		t.Errorf("up from name should wrap to the button, got %d", f.focusIdx)
	}
	f.Update(keyPress(keys.Down))
	if f.focusIdx != addFieldName {
		t.Errorf("down from the button should wrap to name, got %d", f.focusIdx)
	}
}

func TestAddFriendForm_UnfocusedIgnoresTyping(t *testing.T) {
	var calls []addCall
	f := newTestAddForm(&calls)
	f.SetFocused(false)

	typeInto(f, "Bea")
	if f.Name() != "" {
		t.Errorf("unfocused form accepted text %q", f.Name())
	}
}

func TestAddFriendForm_View(t *testing.T) {
	var calls []addCall
	f := newTestAddForm(&calls)
	view := ansi.Strip(f.View())

	for _, want := range []string{"Friend name", "Image URL", "Add", friends.DefaultAvatarURL} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
