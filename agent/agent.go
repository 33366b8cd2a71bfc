// Package agent provides the agent entity and the directory that tracks
// every registered agent.
//
// Information Hiding:
// - Statistics bookkeeping hidden behind record methods
// - Compatibility scoring internals hidden behind a single method
// - Directory storage and locking hidden from consumers
package agent

import (
	"time"

	"github.com/samskrita/samvada/model"
)

// SanskritCapability is the capability tag every registered agent carries.
const SanskritCapability = "sanskrit_communication"

// Comprehension is an agent's Sanskrit comprehension level.
type Comprehension string

const (
	ComprehensionBasic        Comprehension = "basic"
	ComprehensionIntermediate Comprehension = "intermediate"
	ComprehensionAdvanced     Comprehension = "advanced"
	ComprehensionScholarly    Comprehension = "scholarly"
)

// comprehensionRank positions a level on the ordered basic..scholarly scale.
// Unknown values rank as intermediate.
func comprehensionRank(c Comprehension) int {
	switch c {
	case ComprehensionBasic:
		return 0
	case ComprehensionAdvanced:
		return 2
	case ComprehensionScholarly:
		return 3
	default:
		return 1
	}
}

// Profile describes an agent's Sanskrit communication posture.
type Profile struct {
	CanRead       bool            `json:"can_read"`
	CanWrite      bool            `json:"can_write"`
	Formality     model.Formality `json:"formality"`
	Comprehension Comprehension   `json:"comprehension_level"`
	Dialect       string          `json:"dialect,omitempty"`
}

// DefaultProfile returns the profile applied when registration omits one.
func DefaultProfile() Profile {
	return Profile{
		CanRead:       true,
		CanWrite:      true,
		Formality:     model.FormalityModerate,
		Comprehension: ComprehensionIntermediate,
	}
}

// Statistics tracks an agent's communication activity.
type Statistics struct {
	MessagesSent          uint64    `json:"messages_sent"`
	MessagesReceived      uint64    `json:"messages_received"`
	ErrorCount            uint64    `json:"error_count"`
	LastActive            time.Time `json:"last_active"`
	AverageResponseTimeMs float64   `json:"average_response_time_ms"`
}

// Agent is a registered participant in the communication mesh.
// Mutations go through the Directory, which serializes them.
type Agent struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Capabilities []string   `json:"capabilities"`
	Profile      Profile    `json:"sanskrit_profile"`
	Stats        Statistics `json:"statistics"`
	IsActive     bool       `json:"is_active"`
	LastSeen     time.Time  `json:"last_seen"`
}

// HasCapability reports whether the agent carries the given capability tag.
func (a *Agent) HasCapability(tag string) bool {
	for _, c := range a.Capabilities {
		if c == tag {
			return true
		}
	}
	return false
}

// CanCommunicate reports whether the agent both reads and writes Sanskrit.
func (a *Agent) CanCommunicate() bool {
	return a.Profile.CanRead && a.Profile.CanWrite
}

// ActivityStatus classifies the agent as active, idle, or offline by the
// age of its last-seen timestamp.
func (a *Agent) ActivityStatus() string {
	if !a.IsActive {
		return "offline"
	}
	if time.Since(a.LastSeen) < 5*time.Minute {
		return "active"
	}
	return "idle"
}

// recordSent updates counters for a sent message. A responseTimeMs of 0
// means the caller did not measure one; the running mean covers all
// sent and received events equally.
func (a *Agent) recordSent(responseTimeMs int64) {
	a.Stats.MessagesSent++
	a.touch()

	if responseTimeMs > 0 {
		total := float64(a.Stats.MessagesSent + a.Stats.MessagesReceived)
		a.Stats.AverageResponseTimeMs =
			(a.Stats.AverageResponseTimeMs*(total-1) + float64(responseTimeMs)) / total
	}
}

// recordReceived updates counters for a received message.
func (a *Agent) recordReceived() {
	a.Stats.MessagesReceived++
	a.touch()
}

// recordError increments the agent's error counter.
func (a *Agent) recordError() {
	a.Stats.ErrorCount++
}

func (a *Agent) touch() {
	now := time.Now()
	a.Stats.LastActive = now
	a.LastSeen = now
}

// Compatibility scores how well two agents can converse, in [0,100].
// The score is symmetric: Compatibility(a,b) == Compatibility(b,a).
//
// Weights: 50 when both read and write Sanskrit; up to 30 by formality
// proximity; up to 15 by comprehension proximity; 2 per shared capability
// tag; total clamped to 100.
func (a *Agent) Compatibility(other *Agent) int {
	score := 0

	if a.CanCommunicate() && other.CanCommunicate() {
		score += 50
	}

	formalityDiff := absInt(model.FormalityRank(a.Profile.Formality) - model.FormalityRank(other.Profile.Formality))
	score += (2 - formalityDiff) * 15

	compDiff := absInt(comprehensionRank(a.Profile.Comprehension) - comprehensionRank(other.Profile.Comprehension))
	score += (3 - compDiff) * 5

	for _, cap := range a.Capabilities {
		if other.HasCapability(cap) {
			score += 2
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// clone returns a deep copy so directory reads never expose live state.
func (a *Agent) clone() *Agent {
	copied := *a
	copied.Capabilities = append([]string(nil), a.Capabilities...)
	return &copied
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
