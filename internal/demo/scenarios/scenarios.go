// Package scenarios holds the built-in demo scripts.
package scenarios

import (
	"time"

	"github.com/zhubert/eatnsplit/internal/demo"
	"github.com/zhubert/eatnsplit/internal/keys"
)

// Basic walks through selecting a friend, adding one and splitting a bill.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Select a friend, add a new one and split a bill",
	Width:       120,
	Height:      32,
	Steps: []demo.Step{
		demo.Annotate("Three friends to start with"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc(keys.Enter, "Select Clark"),
		demo.Annotate("Selecting a friend opens the split form"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc("a", "Open the add friend form"),
		demo.Type("Bea"),
		demo.Key(keys.Enter),
		demo.Annotate("The selection stays while the form is open"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc(keys.Enter, "Add Bea"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc(keys.Tab, "Focus the split form"),
		demo.Type("100"),
		demo.Key(keys.Down),
		demo.Type("40"),
		demo.Annotate("Clark's share is worked out from the bill"),
		demo.Wait(1 * time.Second),

		demo.Type("0"),
		demo.Annotate("An expense above the bill is ignored"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc(keys.CtrlS, "Submit"),
		demo.Wait(2 * time.Second),
	},
}

// Switching shows that the split form keeps its values when moving
// straight from one friend to another.
var Switching = &demo.Scenario{
	Name:        "switching",
	Description: "Split form values carry over when switching friends",
	Width:       120,
	Height:      32,
	Steps: []demo.Step{
		demo.Key(keys.Enter),
		demo.Key(keys.Tab),
		demo.Type("80"),
		demo.Key(keys.Escape),
		demo.Annotate("Bill entered for Clark"),
		demo.Capture(),

		demo.Key("j"),
		demo.Key(keys.Enter),
		demo.Annotate("Still 80 after switching to Sarah"),
		demo.Capture(),

		demo.Key(keys.Enter),
		demo.Key(keys.Enter),
		demo.Annotate("Deselecting first starts a fresh form"),
		demo.Capture(),
	},
}

var all = []*demo.Scenario{Basic, Switching}

// All returns every built-in scenario.
func All() []*demo.Scenario {
	return all
}

// Get returns the scenario with the given name, or nil.
func Get(name string) *demo.Scenario {
	for _, s := range all {
		if s.Name == name {
			return s
		}
	}
	return nil
}
