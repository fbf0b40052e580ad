// Package trace appends session events to a JSONL file.
//
// The toolkit itself never logs; applications opt in by creating a
// Tracer and emitting events at interesting points. A nil Tracer
// discards everything, so call sites never need to guard.
package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one line of a session trace.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"session_id"`
	Kind      string         `json:"kind"`
	Message   string         `json:"message,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Tracer appends events for one session.
type Tracer struct {
	mu        sync.Mutex
	sessionID string
	file      *os.File
}

// New opens the trace file at path, creating it if needed, and starts
// a fresh session id. Traces from successive runs accumulate in the
// same file and are told apart by session id.
func New(path string) (*Tracer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	return &Tracer{sessionID: uuid.NewString(), file: file}, nil
}

// SessionID returns the id stamped on every event of this tracer, or
// the empty string for a nil tracer.
func (t *Tracer) SessionID() string {
	if t == nil {
		return ""
	}
	return t.sessionID
}

// Emit appends one event with the current time and this tracer's
// session id. Emit on a nil tracer is a no-op.
func (t *Tracer) Emit(kind, message string, fields map[string]any) error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := json.Marshal(Event{
		Timestamp: time.Now(),
		SessionID: t.sessionID,
		Kind:      kind,
		Message:   message,
		Fields:    fields,
	})
	if err != nil {
		return fmt.Errorf("marshaling trace event: %w", err)
	}
	data = append(data, '\n')
	if _, err := t.file.Write(data); err != nil {
		return fmt.Errorf("writing trace event: %w", err)
	}
	return nil
}

// Close flushes the session to disk. Close on a nil tracer is a no-op.
func (t *Tracer) Close() error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.file.Close()
}

// Read returns every event in the trace file at path, oldest first.
// Trailing garbage after the last complete event is ignored.
func Read(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var events []Event
	dec := json.NewDecoder(file)
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			break
		}
		events = append(events, ev)
	}
	return events, nil
}
