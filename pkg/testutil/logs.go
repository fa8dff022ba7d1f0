package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// LogEntry is one decoded log line.
type LogEntry map[string]any

// Level returns the entry's level field.
func (e LogEntry) Level() string {
	s, _ := e[zerolog.LevelFieldName].(string)
	return s
}

// Message returns the entry's message field.
func (e LogEntry) Message() string {
	s, _ := e[zerolog.MessageFieldName].(string)
	return s
}

// Str returns a string field.
func (e LogEntry) Str(key string) string {
	s, _ := e[key].(string)
	return s
}

// LogCapture collects zerolog output in memory. It is safe for concurrent
// writers.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLogCapture returns a capture and a debug level logger writing to it.
func NewLogCapture() (*LogCapture, zerolog.Logger) {
	c := &LogCapture{}
	return c, zerolog.New(c).Level(zerolog.DebugLevel)
}

func (c *LogCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns the raw captured output.
func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Entries decodes every captured line. Lines that are not JSON are skipped.
func (c *LogCapture) Entries() []LogEntry {
	var entries []LogEntry
	scanner := bufio.NewScanner(bytes.NewReader([]byte(c.String())))
	for scanner.Scan() {
		var e LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// AtLevel returns the entries logged at level ("warn", "error", ...).
func (c *LogCapture) AtLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range c.Entries() {
		if e.Level() == level {
			out = append(out, e)
		}
	}
	return out
}
