package agent

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Sentinel errors for directory operations.
var (
	// ErrDuplicateAgent is returned when registering an ID that already exists.
	ErrDuplicateAgent = errors.New("agent already registered")
	// ErrAgentNotFound is returned when an operation names an unknown agent.
	ErrAgentNotFound = errors.New("agent not found")
)

// Config describes a registration request.
type Config struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Profile      *Profile `json:"sanskrit_profile,omitempty"`
}

// Summary is the directory-wide statistics snapshot.
type Summary struct {
	TotalAgents           int    `json:"total_agents"`
	ActiveAgents          int    `json:"active_agents"`
	SanskritCapableAgents int    `json:"sanskrit_capable_agents"`
	TotalMessages         uint64 `json:"total_messages"`
	ActiveSessions        int    `json:"active_sessions"`
}

// Directory registers agents and tracks their activity.
// Safe for concurrent use: one lock guards all directory mutation.
type Directory struct {
	mu              sync.RWMutex
	agents          map[string]*Agent
	sessionMessages map[string]uint64
}

// NewDirectory creates an empty agent directory.
func NewDirectory() *Directory {
	return &Directory{
		agents:          make(map[string]*Agent),
		sessionMessages: make(map[string]uint64),
	}
}

// Register adds a new agent. Returns ErrDuplicateAgent if the ID is taken;
// the existing agent is left untouched.
func (d *Directory) Register(cfg Config) (*Agent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.agents[cfg.ID]; exists {
		return nil, fmt.Errorf("agent %q: %w", cfg.ID, ErrDuplicateAgent)
	}

	capabilities := append([]string(nil), cfg.Capabilities...)
	if len(capabilities) == 0 {
		capabilities = []string{"text_processing", "conversation"}
	}
	hasSanskrit := false
	for _, c := range capabilities {
		if c == SanskritCapability {
			hasSanskrit = true
			break
		}
	}
	if !hasSanskrit {
		capabilities = append(capabilities, SanskritCapability)
	}

	profile := DefaultProfile()
	if cfg.Profile != nil {
		profile = *cfg.Profile
		if profile.Formality == "" {
			profile.Formality = DefaultProfile().Formality
		}
		if profile.Comprehension == "" {
			profile.Comprehension = DefaultProfile().Comprehension
		}
	}

	now := time.Now()
	a := &Agent{
		ID:           cfg.ID,
		Name:         cfg.Name,
		Description:  cfg.Description,
		Capabilities: capabilities,
		Profile:      profile,
		Stats:        Statistics{LastActive: now},
		IsActive:     true,
		LastSeen:     now,
	}
	d.agents[cfg.ID] = a

	return a.clone(), nil
}

// Get returns a snapshot of the agent with the given ID.
func (d *Directory) Get(id string) (*Agent, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.agents[id]
	if !ok {
		return nil, false
	}
	return a.clone(), true
}

// List returns snapshots of all registered agents.
func (d *Directory) List() []*Agent {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Agent, 0, len(d.agents))
	for _, a := range d.agents {
		out = append(out, a.clone())
	}
	return out
}

// FindByCapability returns all agents carrying the given capability tag.
func (d *Directory) FindByCapability(tag string) []*Agent {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*Agent
	for _, a := range d.agents {
		if a.HasCapability(tag) {
			out = append(out, a.clone())
		}
	}
	return out
}

// SanskritCapable returns all agents that both read and write Sanskrit.
func (d *Directory) SanskritCapable() []*Agent {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*Agent
	for _, a := range d.agents {
		if a.CanCommunicate() {
			out = append(out, a.clone())
		}
	}
	return out
}

// Remove deletes an agent. Removal is always explicit; nothing in the
// directory removes agents implicitly.
func (d *Directory) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.agents[id]; !ok {
		return false
	}
	delete(d.agents, id)
	return true
}

// SetActive toggles an agent's active flag.
func (d *Directory) SetActive(id string, active bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.agents[id]
	if !ok {
		return fmt.Errorf("agent %q: %w", id, ErrAgentNotFound)
	}
	a.IsActive = active
	if active {
		a.LastSeen = time.Now()
	}
	return nil
}

// RecordExchange updates both sides of one message exchange: the sender's
// sent counter (with optional response time) and the receiver's received
// counter. Applied atomically under the directory lock.
func (d *Directory) RecordExchange(fromID, toID string, responseTimeMs int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	from, ok := d.agents[fromID]
	if !ok {
		return fmt.Errorf("agent %q: %w", fromID, ErrAgentNotFound)
	}
	to, ok := d.agents[toID]
	if !ok {
		return fmt.Errorf("agent %q: %w", toID, ErrAgentNotFound)
	}

	from.recordSent(responseTimeMs)
	to.recordReceived()
	return nil
}

// RecordError increments an agent's error counter.
func (d *Directory) RecordError(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.agents[id]
	if !ok {
		return fmt.Errorf("agent %q: %w", id, ErrAgentNotFound)
	}
	a.recordError()
	return nil
}

// RecordSessionMessage counts one message against a session, feeding the
// active-session figure in Summary.
func (d *Directory) RecordSessionMessage(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sessionMessages[sessionID]++
}

// CompatiblePartners returns agents whose compatibility with the given
// agent meets minScore, sorted by descending score. Returns
// ErrAgentNotFound when the source agent is unknown.
func (d *Directory) CompatiblePartners(id string, minScore int) ([]*Agent, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	source, ok := d.agents[id]
	if !ok {
		return nil, fmt.Errorf("agent %q: %w", id, ErrAgentNotFound)
	}

	type scored struct {
		agent *Agent
		score int
	}
	var candidates []scored
	for _, a := range d.agents {
		if a.ID == id {
			continue
		}
		if s := source.Compatibility(a); s >= minScore {
			candidates = append(candidates, scored{agent: a.clone(), score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].agent.ID < candidates[j].agent.ID
	})

	out := make([]*Agent, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.agent)
	}
	return out, nil
}

// Summary returns directory-wide counters.
func (d *Directory) Summary() Summary {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s := Summary{
		TotalAgents:    len(d.agents),
		ActiveSessions: len(d.sessionMessages),
	}
	for _, a := range d.agents {
		if a.IsActive {
			s.ActiveAgents++
		}
		if a.CanCommunicate() {
			s.SanskritCapableAgents++
		}
		s.TotalMessages += a.Stats.MessagesSent + a.Stats.MessagesReceived
	}
	return s
}
