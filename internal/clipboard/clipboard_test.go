package clipboard

import (
	"errors"
	"os"
	"sync"
	"testing"

	apperrors "github.com/zhubert/eatnsplit/internal/errors"
	"github.com/zhubert/eatnsplit/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// fakeClipboard records init attempts and writes
type fakeClipboard struct {
	mu      sync.Mutex
	inits   int
	initErr error
	writes  []string
}

func (f *fakeClipboard) init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	return f.initErr
}

func (f *fakeClipboard) write(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, string(data))
}

func useFake(t *testing.T, f *fakeClipboard) {
	t.Helper()
	origInit, origWrite := initFunc, writeFunc
	initFunc, writeFunc = f.init, f.write
	initialized = false
	t.Cleanup(func() {
		initFunc, writeFunc = origInit, origWrite
		initialized = false
	})
}

func TestWriteText(t *testing.T) {
	fake := &fakeClipboard{}
	useFake(t, fake)

	if err := WriteText("You owe Clark $7"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if err := WriteText("You owe Sarah $20"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}

	if fake.inits != 1 {
		t.Errorf("clipboard initialized %d times, want 1", fake.inits)
	}
	want := []string{"You owe Clark $7", "You owe Sarah $20"}
	if len(fake.writes) != len(want) {
		t.Fatalf("writes = %v, want %v", fake.writes, want)
	}
	for i := range want {
		if fake.writes[i] != want[i] {
			t.Errorf("write %d = %q, want %q", i, fake.writes[i], want[i])
		}
	}
}

func TestWriteText_InitFailure(t *testing.T) {
	fake := &fakeClipboard{initErr: errors.New("no display")}
	useFake(t, fake)

	err := WriteText("x")
	if err == nil {
		t.Fatal("expected an error when the clipboard is unavailable")
	}
	if !apperrors.Is(err, apperrors.KindUnsupported) {
		t.Errorf("error kind = %v, want %v", apperrors.GetKind(err), apperrors.KindUnsupported)
	}
	if len(fake.writes) != 0 {
		t.Errorf("nothing should be written, got %v", fake.writes)
	}

	// a later call retries
	fake.initErr = nil
	if err := WriteText("y"); err != nil {
		t.Fatalf("WriteText() after recovery error: %v", err)
	}
	if fake.inits != 2 {
		t.Errorf("clipboard init attempts = %d, want 2", fake.inits)
	}
}

func TestWriteText_Concurrent(t *testing.T) {
	fake := &fakeClipboard{}
	useFake(t, fake)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := WriteText("balance"); err != nil {
				t.Errorf("WriteText() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if fake.inits != 1 {
		t.Errorf("clipboard initialized %d times, want 1", fake.inits)
	}
	if len(fake.writes) != 20 {
		t.Errorf("got %d writes, want 20", len(fake.writes))
	}
}
