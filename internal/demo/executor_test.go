package demo

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/eatnsplit/internal/keys"
	"github.com/zhubert/eatnsplit/internal/logger"
	"github.com/zhubert/eatnsplit/internal/ui"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	ui.SetTheme(ui.DefaultTheme)
	os.Exit(code)
}

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       Scenario
		wantErr bool
	}{
		{"missing name", Scenario{Steps: []Step{Capture()}}, true},
		{"no steps", Scenario{Name: "x"}, true},
		{"defaults", Scenario{Name: "x", Steps: []Step{Capture()}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (tt.s.Width != 120 || tt.s.Height != 40) {
				t.Errorf("defaults not applied: %dx%d", tt.s.Width, tt.s.Height)
			}
		})
	}
}

func TestExecutor_Run(t *testing.T) {
	s := &Scenario{
		Name: "test",
		Steps: []Step{
			Key(keys.Enter),
			Annotate("selected"),
			Capture(),
			Key("a"),
			Type("Bea"),
			Wait(time.Second),
		},
	}

	e := NewExecutor(DefaultExecutorConfig())
	frames, err := e.Run(s)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// initial frame + capture + wait
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if frames[1].Annotation != "selected" {
		t.Errorf("annotation = %q, want selected", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Error("annotation should apply to one frame only")
	}
	if !strings.Contains(ansi.Strip(frames[1].Content), "Split a bill with Clark") {
		t.Error("captured frame should show the split form")
	}
	if frames[2].Delay != time.Second {
		t.Errorf("wait frame delay = %v, want 1s", frames[2].Delay)
	}
	if got := e.Model().AddForm().Name(); got != "Bea" {
		t.Errorf("typed name = %q, want Bea", got)
	}
}

func TestExecutor_CaptureEveryStep(t *testing.T) {
	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	frames, err := NewExecutor(cfg).Run(&Scenario{
		Name:  "test",
		Steps: []Step{Key("j"), Type("ab")},
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// initial + one per key + one per character
	if len(frames) != 4 {
		t.Errorf("expected 4 frames, got %d", len(frames))
	}
}

func TestExecutor_RejectsQuit(t *testing.T) {
	_, err := NewExecutor(DefaultExecutorConfig()).Run(&Scenario{
		Name:  "test",
		Steps: []Step{Key("q")},
	})
	if err == nil {
		t.Error("expected an error for a quitting scenario")
	}
}
