// Package logbook records processed exchanges and derives conversation
// analytics from them.
//
// Information Hiding:
// - Entry storage and eviction policy hidden behind Logger methods
// - Callers receive entry copies, never internal slices
// - Thread-safe via internal mutex
package logbook

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samskrita/samvada/model"
)

// DefaultMaxEntries bounds the global log before oldest-first eviction.
const DefaultMaxEntries = 10000

// Logger keeps a bounded global log plus per-session logs of processed
// exchanges. Entries are append-only; eviction drops the oldest global
// entries but never touches session logs.
type Logger struct {
	mu         sync.RWMutex
	maxEntries int
	entries    []model.LogEntry
	sessions   map[string][]model.LogEntry
	store      Store
}

// New creates a logger bounded at maxEntries. A non-positive bound
// falls back to DefaultMaxEntries.
func New(maxEntries int) *Logger {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Logger{
		maxEntries: maxEntries,
		sessions:   make(map[string][]model.LogEntry),
	}
}

// WithStore attaches durable storage. Every recorded entry is also
// appended to the store. Returns the logger for chaining.
func (l *Logger) WithStore(store Store) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store = store
	return l
}

// Record appends one interaction to the global log and, when the
// interaction carries a session ID, to that session's log. Returns the
// new entry's ID.
func (l *Logger) Record(ctx context.Context, in model.Interaction) (string, error) {
	entry := model.LogEntry{
		ID:             uuid.New().String(),
		Timestamp:      time.Now(),
		FromAgent:      in.FromAgent,
		ToAgent:        in.ToAgent,
		Message:        in.Message,
		Translated:     in.Translated,
		Kind:           in.Kind,
		SessionID:      in.SessionID,
		Success:        in.Success,
		ResponseTimeMs: in.ResponseTimeMs,
		Metadata: model.EntryMetadata{
			MessageLength: len([]rune(in.Message.Content)),
			Validation:    in.Validation,
		},
	}
	if in.Message.Metadata != nil {
		entry.Metadata.Formality = in.Message.Metadata.Formality
		entry.Metadata.CulturalContext = in.Message.Metadata.CulturalContext
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
	if entry.SessionID != "" {
		l.sessions[entry.SessionID] = append(l.sessions[entry.SessionID], entry)
	}

	if l.store != nil {
		if err := l.store.Append(ctx, entry); err != nil {
			return entry.ID, fmt.Errorf("failed to persist log entry: %w", err)
		}
	}
	return entry.ID, nil
}

// History returns a copy of a session's entries in record order.
func (l *Logger) History(sessionID string) []model.LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := l.sessions[sessionID]
	out := make([]model.LogEntry, len(entries))
	copy(out, entries)
	return out
}

// Recent returns the newest entries from the global log, oldest first.
// A non-positive limit returns everything.
func (l *Logger) Recent(limit int) []model.LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := l.entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]model.LogEntry, len(entries))
	copy(out, entries)
	return out
}

// Len returns the number of entries currently in the global log.
func (l *Logger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Sessions lists the IDs of every session with at least one entry.
func (l *Logger) Sessions() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.sessions))
	for id := range l.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Analyze derives conversation analytics for one session. An unknown or
// empty session yields a zero-valued analysis, not an error.
func (l *Logger) Analyze(sessionID string) Analysis {
	return analyzeEntries(sessionID, l.History(sessionID))
}
