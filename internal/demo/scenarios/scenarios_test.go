package scenarios

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/eatnsplit/internal/demo"
	"github.com/zhubert/eatnsplit/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

func TestGet(t *testing.T) {
	for _, s := range All() {
		if Get(s.Name) != s {
			t.Errorf("Get(%q) did not return the scenario", s.Name)
		}
	}
	if Get("nope") != nil {
		t.Error("Get() should return nil for unknown names")
	}
}

func TestAllScenariosRun(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(s)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if len(frames) < 2 {
				t.Errorf("expected several frames, got %d", len(frames))
			}
		})
	}
}

func TestBasic_EndState(t *testing.T) {
	e := demo.NewExecutor(demo.DefaultExecutorConfig())
	frames, err := e.Run(Basic)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	m := e.Model()
	if m.Roster().Len() != 4 {
		t.Errorf("expected Bea to be added, have %d friends", m.Roster().Len())
	}
	draft := m.SplitForm().Draft()
	if draft.UserExpenseText() != "40" {
		t.Errorf("expense = %q, want 40", draft.UserExpenseText())
	}

	last := ansi.Strip(frames[len(frames)-1].Content)
	if !strings.Contains(last, "doesn't change balances") {
		t.Errorf("last frame should show the submit flash:\n%s", last)
	}
}

func TestSwitching_KeepsBill(t *testing.T) {
	frames, err := demo.NewExecutor(demo.DefaultExecutorConfig()).Run(Switching)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// initial + three captures
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	if !strings.Contains(ansi.Strip(frames[2].Content), "Split a bill with Sarah") {
		t.Error("second capture should show Sarah")
	}
}
