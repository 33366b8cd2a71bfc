package logbook

import (
	"context"
	"testing"
	"time"

	"github.com/samskrita/samvada/model"
)

func TestSqliteRoundTrip(t *testing.T) {
	store, err := NewSqliteInMemory()
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	entry := model.LogEntry{
		ID:             "e1",
		Timestamp:      time.Now().Truncate(time.Millisecond),
		FromAgent:      "a",
		ToAgent:        "b",
		Message:        model.Message{ID: "e1", Content: "नमस्ते", Language: model.LanguageSanskrit},
		Kind:           model.KindDirect,
		SessionID:      "s1",
		Success:        true,
		ResponseTimeMs: 42,
		Metadata: model.EntryMetadata{
			MessageLength: 6,
			Formality:     model.FormalityFormal,
		},
	}
	if err := store.Append(ctx, entry); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	history, err := store.History(ctx, "s1")
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}

	got := history[0]
	if got.ID != entry.ID {
		t.Errorf("ID mismatch: %q vs %q", got.ID, entry.ID)
	}
	if got.Message.Content != entry.Message.Content {
		t.Errorf("content mismatch: %q vs %q", got.Message.Content, entry.Message.Content)
	}
	if got.Message.Language != model.LanguageSanskrit {
		t.Errorf("language mismatch: %q", got.Message.Language)
	}
	if !got.Success {
		t.Error("success flag lost")
	}
	if got.ResponseTimeMs != 42 {
		t.Errorf("response time mismatch: %d", got.ResponseTimeMs)
	}
	if got.Metadata.Formality != model.FormalityFormal {
		t.Errorf("metadata formality lost: %q", got.Metadata.Formality)
	}
}

func TestSqliteRecentOrdering(t *testing.T) {
	store, err := NewSqliteInMemory()
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Now().Add(-time.Minute)
	for i := 0; i < 4; i++ {
		entry := model.LogEntry{
			ID:        string(rune('a' + i)),
			Timestamp: base.Add(time.Duration(i) * time.Second),
			FromAgent: "a",
			ToAgent:   "b",
			Message:   model.Message{Content: "m"},
			Kind:      model.KindDirect,
			SessionID: "s1",
		}
		if err := store.Append(ctx, entry); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("failed to read recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].ID != "c" || recent[1].ID != "d" {
		t.Errorf("expected the newest two oldest-first, got %q, %q", recent[0].ID, recent[1].ID)
	}
}

func TestLoggerWithStore(t *testing.T) {
	store, err := NewSqliteInMemory()
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	l := New(10).WithStore(store)
	ctx := context.Background()
	if _, err := l.Record(ctx, model.Interaction{
		FromAgent: "a", ToAgent: "b",
		Message:   model.NewMessage("नमस्ते"),
		Kind:      model.KindDirect,
		SessionID: "s1",
	}); err != nil {
		t.Fatalf("failed to record: %v", err)
	}

	persisted, err := store.History(ctx, "s1")
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	if len(persisted) != 1 {
		t.Fatalf("expected the entry persisted, got %d rows", len(persisted))
	}
	if persisted[0].Message.Content != "नमस्ते" {
		t.Errorf("content mismatch: %q", persisted[0].Message.Content)
	}
}
