package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24, "demo"); err != nil {
		t.Fatalf("GenerateASCIICast() error: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 events, got %d lines", len(lines))
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 {
		t.Errorf("unexpected header %+v", header)
	}

	var event []any
	if err := json.Unmarshal([]byte(lines[2]), &event); err != nil {
		t.Fatalf("event: %v", err)
	}
	if ts, ok := event[0].(float64); !ok || ts != 1.5 {
		t.Errorf("second event timestamp = %v, want 1.5", event[0])
	}

	var first []any
	if err := json.Unmarshal([]byte(lines[1]), &first); err != nil {
		t.Fatalf("event: %v", err)
	}
	if data, _ := first[2].(string); !strings.Contains(data, "one\r\ntwo") {
		t.Errorf("line endings not converted: %q", data)
	}
}
