package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file
type castHeader struct {
	Version   int    `json:"version"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Title     string `json:"title,omitempty"`
}

// clearScreen moves the cursor home and clears the screen before each frame
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is emitted after its own delay.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int, title string) error {
	enc := json.NewEncoder(w)

	if err := enc.Encode(castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
		Title:     title,
	}); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var elapsed time.Duration
	for i, f := range frames {
		elapsed += f.Delay
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		event := []any{elapsed.Seconds(), "o", data}
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return nil
}
