// Package model provides domain types shared across packages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Language tags a message by the script of its content.
type Language string

const (
	// LanguageSanskrit marks content written entirely in Devanagari.
	LanguageSanskrit Language = "sanskrit"
	// LanguageEnglish marks content written entirely in Latin script.
	LanguageEnglish Language = "english"
	// LanguageMixed marks content containing both scripts.
	LanguageMixed Language = "mixed"
)

// Formality is the register of a message or an agent's communication posture.
type Formality string

const (
	FormalityCasual   Formality = "casual"
	FormalityModerate Formality = "moderate"
	FormalityFormal   Formality = "formal"
)

// FormalityRank returns the position of f on the ordered casual..formal scale.
// Unknown values rank as moderate.
func FormalityRank(f Formality) int {
	switch f {
	case FormalityCasual:
		return 0
	case FormalityFormal:
		return 2
	default:
		return 1
	}
}

// MessageMetadata carries optional per-message annotations.
type MessageMetadata struct {
	Formality             Formality `json:"formality,omitempty"`
	Context               string    `json:"context,omitempty"`
	TranslationConfidence float64   `json:"translation_confidence,omitempty"`
	CulturalContext       bool      `json:"cultural_context,omitempty"`
}

// Message is a single text exchanged between agents.
// Immutable once constructed.
type Message struct {
	ID        string           `json:"id"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Language  Language         `json:"language"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

// NewMessage constructs a message with a fresh ID and a language tag
// detected from the content's scripts.
func NewMessage(content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		Timestamp: time.Now(),
		Language:  DetectLanguage(content),
	}
}

// DetectLanguage classifies content by the scripts it contains.
// Content with neither script defaults to english.
func DetectLanguage(content string) Language {
	hasDevanagari := false
	hasLatin := false
	for _, r := range content {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			hasDevanagari = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLatin = true
		}
	}

	switch {
	case hasDevanagari && hasLatin:
		return LanguageMixed
	case hasDevanagari:
		return LanguageSanskrit
	default:
		return LanguageEnglish
	}
}

// CommunicationKind classifies how a message was addressed.
type CommunicationKind string

const (
	KindDirect    CommunicationKind = "direct"
	KindBroadcast CommunicationKind = "broadcast"
	KindResponse  CommunicationKind = "response"
)

// Interaction is one processed exchange handed to the log for recording.
type Interaction struct {
	FromAgent      string            `json:"from_agent"`
	ToAgent        string            `json:"to_agent"`
	Message        Message           `json:"message"`
	Translated     string            `json:"translated,omitempty"`
	Kind           CommunicationKind `json:"kind"`
	SessionID      string            `json:"session_id"`
	Success        bool              `json:"success"`
	ResponseTimeMs int64             `json:"response_time_ms,omitempty"` // 0 = not measured
	Validation     *ValidationResult `json:"validation,omitempty"`
}

// EntryMetadata is derived annotation attached to a log entry at record time.
type EntryMetadata struct {
	MessageLength   int               `json:"message_length"`
	Formality       Formality         `json:"formality,omitempty"`
	CulturalContext bool              `json:"cultural_context,omitempty"`
	Validation      *ValidationResult `json:"validation,omitempty"`
}

// LogEntry is one append-only record of a processed exchange.
// Entries are never mutated after creation.
type LogEntry struct {
	ID             string            `json:"id"`
	Timestamp      time.Time         `json:"timestamp"`
	FromAgent      string            `json:"from_agent"`
	ToAgent        string            `json:"to_agent"`
	Message        Message           `json:"message"`
	Translated     string            `json:"translated,omitempty"`
	Kind           CommunicationKind `json:"kind"`
	SessionID      string            `json:"session_id"`
	Success        bool              `json:"success"`
	ResponseTimeMs int64             `json:"response_time_ms,omitempty"`
	Metadata       EntryMetadata     `json:"metadata"`
}

// OutcomeStatus classifies the result of processing one message.
type OutcomeStatus string

const (
	// StatusSuccess means the message validated cleanly.
	StatusSuccess OutcomeStatus = "success"
	// StatusWarning means the message had validation issues but was still
	// delivered and logged.
	StatusWarning OutcomeStatus = "warning"
	// StatusError means an internal fault occurred and no state was changed.
	StatusError OutcomeStatus = "error"
)

// ProtocolOutcome is the per-message processing result returned to callers.
type ProtocolOutcome struct {
	Status      OutcomeStatus     `json:"status"`
	Message     string            `json:"message"`
	Suggestions []string          `json:"suggestions"`
	Validation  *ValidationResult `json:"validation,omitempty"`
	Translated  string            `json:"translated,omitempty"`
}
