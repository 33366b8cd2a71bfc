package logbook

import (
	"context"
	"fmt"
	"testing"

	"github.com/samskrita/samvada/model"
)

func record(t *testing.T, l *Logger, in model.Interaction) string {
	t.Helper()
	id, err := l.Record(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return id
}

func TestRecordAndHistory(t *testing.T) {
	l := New(100)

	for i := 0; i < 3; i++ {
		record(t, l, model.Interaction{
			FromAgent: "a",
			ToAgent:   "b",
			Message:   model.NewMessage(fmt.Sprintf("नमस्ते %d", i)),
			Kind:      model.KindDirect,
			SessionID: "s1",
			Success:   true,
		})
	}

	history := l.History("s1")
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	for i, e := range history {
		want := fmt.Sprintf("नमस्ते %d", i)
		if e.Message.Content != want {
			t.Errorf("entry %d out of order: got %q, want %q", i, e.Message.Content, want)
		}
		if e.ID == "" {
			t.Errorf("entry %d missing ID", i)
		}
		if e.Metadata.MessageLength == 0 {
			t.Errorf("entry %d missing message length", i)
		}
	}

	if l.Len() != 3 {
		t.Errorf("expected global log of 3, got %d", l.Len())
	}
}

func TestEviction(t *testing.T) {
	l := New(5)

	for i := 0; i < 8; i++ {
		record(t, l, model.Interaction{
			FromAgent: "a",
			ToAgent:   "b",
			Message:   model.NewMessage(fmt.Sprintf("msg %d", i)),
			Kind:      model.KindDirect,
			SessionID: "s1",
		})
	}

	if l.Len() != 5 {
		t.Fatalf("expected bounded log of 5, got %d", l.Len())
	}
	recent := l.Recent(0)
	if recent[0].Message.Content != "msg 3" {
		t.Errorf("expected oldest surviving entry msg 3, got %q", recent[0].Message.Content)
	}

	// Session logs never shrink with global eviction.
	if got := len(l.History("s1")); got != 8 {
		t.Errorf("expected full session history of 8, got %d", got)
	}
}

func TestRecentLimit(t *testing.T) {
	l := New(100)
	for i := 0; i < 4; i++ {
		record(t, l, model.Interaction{
			FromAgent: "a", ToAgent: "b",
			Message: model.NewMessage(fmt.Sprintf("msg %d", i)),
			Kind:    model.KindDirect,
		})
	}

	recent := l.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Message.Content != "msg 2" || recent[1].Message.Content != "msg 3" {
		t.Errorf("expected the newest two oldest-first, got %q, %q",
			recent[0].Message.Content, recent[1].Message.Content)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	l := New(100)
	record(t, l, model.Interaction{
		FromAgent: "a", ToAgent: "b",
		Message:   model.NewMessage("नमस्ते"),
		Kind:      model.KindDirect,
		SessionID: "s1",
	})

	history := l.History("s1")
	history[0].FromAgent = "mutated"

	fresh := l.History("s1")
	if fresh[0].FromAgent != "a" {
		t.Error("log state mutated through returned slice")
	}
}

func TestAnalyzeEmptySession(t *testing.T) {
	l := New(100)
	analysis := l.Analyze("missing")
	if analysis.MessageCount != 0 {
		t.Errorf("expected zero message count, got %d", analysis.MessageCount)
	}
	if len(analysis.Participants) != 0 {
		t.Errorf("expected no participants, got %v", analysis.Participants)
	}
	if analysis.Efficiency.SuccessRate != 0 {
		t.Errorf("expected zero success rate, got %v", analysis.Efficiency.SuccessRate)
	}
}

func TestAnalyzeLanguagesAndParticipants(t *testing.T) {
	l := New(100)
	interactions := []model.Interaction{
		{FromAgent: "a", ToAgent: "b", Message: model.NewMessage("नमस्ते गुरो"), SessionID: "s1", Success: true},
		{FromAgent: "b", ToAgent: "a", Message: model.NewMessage("hello there"), SessionID: "s1", Success: true},
		{FromAgent: "a", ToAgent: "c", Message: model.NewMessage("धर्म means dharma"), SessionID: "s1", Success: false},
	}
	for _, in := range interactions {
		in.Kind = model.KindDirect
		record(t, l, in)
	}

	analysis := l.Analyze("s1")
	if analysis.MessageCount != 3 {
		t.Fatalf("expected 3 messages, got %d", analysis.MessageCount)
	}
	if len(analysis.Participants) != 3 {
		t.Errorf("expected participants a, b, c; got %v", analysis.Participants)
	}
	if analysis.Languages.Sanskrit != 2 {
		t.Errorf("expected 2 entries with Devanagari, got %d", analysis.Languages.Sanskrit)
	}
	if analysis.Languages.English != 2 {
		t.Errorf("expected 2 entries with Latin, got %d", analysis.Languages.English)
	}
	if analysis.Languages.Mixed != 1 {
		t.Errorf("expected 1 mixed entry, got %d", analysis.Languages.Mixed)
	}
	if got, want := analysis.Efficiency.SuccessRate, 2.0/3.0; got != want {
		t.Errorf("expected success rate %v, got %v", want, got)
	}
	if analysis.AverageLength <= 0 {
		t.Errorf("expected positive average length, got %v", analysis.AverageLength)
	}
}

func TestAnalyzeCulturalElements(t *testing.T) {
	l := New(100)
	record(t, l, model.Interaction{
		FromAgent: "a", ToAgent: "b",
		Message:   model.NewMessage("नमस्ते गुरु धर्म सत्य"),
		Kind:      model.KindDirect,
		SessionID: "s1",
	})

	elements := l.Analyze("s1").CulturalElements
	if elements.Greetings != 1 {
		t.Errorf("expected 1 greeting, got %d", elements.Greetings)
	}
	if elements.Honorifics != 1 {
		t.Errorf("expected 1 honorific, got %d", elements.Honorifics)
	}
	if elements.Religious != 1 {
		t.Errorf("expected 1 religious term, got %d", elements.Religious)
	}
	if elements.Philosophical != 1 {
		t.Errorf("expected 1 philosophical term, got %d", elements.Philosophical)
	}
}

func TestAnalyzeResponseTimes(t *testing.T) {
	l := New(100)
	times := []int64{100, 300, 0} // 0 = not measured, excluded from the mean
	for _, ms := range times {
		record(t, l, model.Interaction{
			FromAgent: "a", ToAgent: "b",
			Message:        model.NewMessage("नमस्ते"),
			Kind:           model.KindDirect,
			SessionID:      "s1",
			ResponseTimeMs: ms,
		})
	}

	got := l.Analyze("s1").Efficiency.AverageResponseTimeMs
	if got != 200 {
		t.Errorf("expected mean 200ms over measured entries, got %v", got)
	}
}
