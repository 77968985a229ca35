// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/eatnsplit/internal/errors"
	"github.com/zhubert/eatnsplit/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// initFunc and writeFunc are swapped out in tests.
	initFunc  = clipboard.Init
	writeFunc = func(data []byte) { clipboard.Write(clipboard.FmtText, data) }
)

// ensureInit initializes the clipboard on first use. A failed attempt is
// retried on the next write. The caller holds mu.
func ensureInit() error {
	if initialized {
		return nil
	}

	if err := initFunc(); err != nil {
		logger.WithComponent("clipboard").Warn("Failed to initialize", "error", err)
		return errors.ClipboardUnavailable(err)
	}

	initialized = true
	return nil
}

// WriteText writes text to the clipboard. It is safe to call from
// several goroutines.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := ensureInit(); err != nil {
		return err
	}

	writeFunc([]byte(text))
	logger.WithComponent("clipboard").Debug("Wrote text", "bytes", len(text))
	return nil
}
