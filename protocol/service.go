package protocol

import (
	"context"
	"fmt"

	"github.com/samskrita/samvada/agent"
	"github.com/samskrita/samvada/corpus"
	"github.com/samskrita/samvada/logbook"
	"github.com/samskrita/samvada/model"
	"github.com/samskrita/samvada/translate"
	"github.com/samskrita/samvada/validate"
)

// Service is the facade over the whole communication layer: agent
// directory, validation, logging, knowledge corpus, and optional
// translation.
type Service struct {
	directory   *agent.Directory
	coordinator *Coordinator
	log         *logbook.Logger
	corpus      *corpus.Index
	translator  translate.Translator
}

// NewService wires the service. The corpus loads from the embedded
// seed data.
func NewService(log *logbook.Logger) (*Service, error) {
	idx, err := corpus.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	directory := agent.NewDirectory()
	validator := validate.New()
	return &Service{
		directory:   directory,
		coordinator: NewCoordinator(validator, directory, log),
		log:         log,
		corpus:      idx,
	}, nil
}

// WithTranslator attaches a translator used to enrich processed
// messages. Returns the service for chaining.
func (s *Service) WithTranslator(t translate.Translator) *Service {
	s.translator = t
	return s
}

// Directory exposes the agent directory.
func (s *Service) Directory() *agent.Directory {
	return s.directory
}

// RegisterAgent adds an agent to the directory.
func (s *Service) RegisterAgent(cfg agent.Config) (*agent.Agent, error) {
	return s.directory.Register(cfg)
}

// ProcessRequest describes one message to process.
type ProcessRequest struct {
	FromID    string          `json:"from_agent"`
	ToID      string          `json:"to_agent"`
	Content   string          `json:"content"`
	Context   string          `json:"context,omitempty"`
	Formality model.Formality `json:"formality,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
}

// ProcessMessage resolves both agents, runs the message through the
// coordinator, and optionally attaches a translation. An unknown agent
// yields an error outcome with no state changed. Translation is best
// effort: a translator failure never fails the message.
func (s *Service) ProcessMessage(ctx context.Context, req ProcessRequest) (model.ProtocolOutcome, error) {
	from, ok := s.directory.Get(req.FromID)
	if !ok {
		err := fmt.Errorf("sender %q: %w", req.FromID, agent.ErrAgentNotFound)
		return model.ProtocolOutcome{Status: model.StatusError, Message: err.Error()}, err
	}
	to, ok := s.directory.Get(req.ToID)
	if !ok {
		err := fmt.Errorf("recipient %q: %w", req.ToID, agent.ErrAgentNotFound)
		return model.ProtocolOutcome{Status: model.StatusError, Message: err.Error()}, err
	}

	msg := model.NewMessage(req.Content)
	if req.Formality != "" || req.Context != "" {
		msg.Metadata = &model.MessageMetadata{
			Formality: req.Formality,
			Context:   req.Context,
		}
	}

	outcome, err := s.coordinator.Process(ctx, msg, from, to, req.SessionID)
	if err != nil {
		return outcome, err
	}

	if s.translator != nil && msg.Language == model.LanguageSanskrit {
		if translated, terr := s.translator.SanskritToEnglish(ctx, msg.Content); terr == nil {
			outcome.Translated = translated.Text
		}
	}
	return outcome, nil
}

// AgentStatus returns a copy of one agent's directory record.
func (s *Service) AgentStatus(id string) (*agent.Agent, error) {
	a, ok := s.directory.Get(id)
	if !ok {
		return nil, fmt.Errorf("agent %q: %w", id, agent.ErrAgentNotFound)
	}
	return a, nil
}

// DirectorySummary returns directory-wide counters.
func (s *Service) DirectorySummary() agent.Summary {
	return s.directory.Summary()
}

// CompatiblePartners ranks communication partners for an agent.
func (s *Service) CompatiblePartners(id string, minScore int) ([]*agent.Agent, error) {
	return s.directory.CompatiblePartners(id, minScore)
}

// AnalyzeConversation derives analytics for one session.
func (s *Service) AnalyzeConversation(sessionID string) logbook.Analysis {
	return s.log.Analyze(sessionID)
}

// RecentCommunications returns the newest log entries, oldest first.
func (s *Service) RecentCommunications(limit int) []model.LogEntry {
	return s.log.Recent(limit)
}

// QueryKnowledge answers a question from the corpus, keeping at most
// maxSources passages. The threshold is the caller's floor: an answer
// below it is downgraded to a refusal-style result with its warnings
// kept, never presented as confident.
func (s *Service) QueryKnowledge(query string, threshold float64, maxSources int) corpus.QueryResult {
	result := s.corpus.Query(query)
	if maxSources > 0 && len(result.Passages) > maxSources {
		result.Passages = result.Passages[:maxSources]
		result.Sources = result.Sources[:maxSources]
	}
	if !result.Refused() && result.Confidence < threshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Confidence %.2f below requested threshold %.2f", result.Confidence, threshold))
		result.HallucinationRisk = corpus.RiskHigh
	}
	return result
}

// CorpusStatistics reports corpus coverage.
func (s *Service) CorpusStatistics() corpus.Stats {
	return s.corpus.Statistics()
}

// Snapshot is a point-in-time diagnostic export.
type Snapshot struct {
	Directory agent.Summary    `json:"directory"`
	Agents    []*agent.Agent   `json:"agents"`
	Recent    []model.LogEntry `json:"recent_communications"`
	Corpus    corpus.Stats     `json:"corpus"`
}

// ExportDiagnostics gathers a snapshot of the whole system.
func (s *Service) ExportDiagnostics(recentLimit int) Snapshot {
	return Snapshot{
		Directory: s.directory.Summary(),
		Agents:    s.directory.List(),
		Recent:    s.log.Recent(recentLimit),
		Corpus:    s.corpus.Statistics(),
	}
}
