package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samskrita/samvada/agent"
	"github.com/samskrita/samvada/protocol"
)

// NewDefaultRegistry registers every communication tool against the
// given service.
func NewDefaultRegistry(svc *protocol.Service) (*Registry, error) {
	registry := NewRegistry()
	all := []Tool{
		&RegisterAgentTool{service: svc},
		&ProcessMessageTool{service: svc},
		&AgentStatusTool{service: svc},
		&AnalyzeConversationTool{service: svc},
		&QueryKnowledgeTool{service: svc},
		&ExportDiagnosticsTool{service: svc},
	}
	for _, tool := range all {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// RegisterAgentTool adds an agent to the directory.
type RegisterAgentTool struct {
	BaseTool
	service *protocol.Service
}

var _ Tool = (*RegisterAgentTool)(nil)

// Metadata returns tool metadata.
func (t *RegisterAgentTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "register_agent",
		Description: "Register a new agent with optional capabilities and Sanskrit profile",
		Parameters: []ToolParameter{
			{Name: "id", ParamType: "string", Description: "Unique agent identifier", Required: true},
			{Name: "name", ParamType: "string", Description: "Display name", Required: true},
			{Name: "description", ParamType: "string", Description: "What the agent does", Required: false},
			{Name: "capabilities", ParamType: "array", Description: "Capability tags", Required: false},
			{Name: "sanskrit_profile", ParamType: "object", Description: "Sanskrit communication profile", Required: false},
		},
	}
}

// Validate checks the required fields.
func (t *RegisterAgentTool) Validate(args json.RawMessage) error {
	var cfg agent.Config
	if err := json.Unmarshal(args, &cfg); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if cfg.ID == "" || cfg.Name == "" {
		return fmt.Errorf("id and name are required")
	}
	return nil
}

// Execute registers the agent.
func (t *RegisterAgentTool) Execute(_ context.Context, args json.RawMessage) (ToolResult, error) {
	if err := t.Validate(args); err != nil {
		return FailureResult(err), nil
	}
	var cfg agent.Config
	if err := json.Unmarshal(args, &cfg); err != nil {
		return FailureResult(err), nil
	}
	registered, err := t.service.RegisterAgent(cfg)
	if err != nil {
		return FailureResult(err), nil
	}
	return marshalOutput(registered)
}

// ProcessMessageTool runs one message through the protocol.
type ProcessMessageTool struct {
	BaseTool
	service *protocol.Service
}

var _ Tool = (*ProcessMessageTool)(nil)

// Metadata returns tool metadata.
func (t *ProcessMessageTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "process_message",
		Description: "Validate and deliver a message between two registered agents",
		Parameters: []ToolParameter{
			{Name: "from_agent", ParamType: "string", Description: "Sender agent ID", Required: true},
			{Name: "to_agent", ParamType: "string", Description: "Recipient agent ID", Required: true},
			{Name: "content", ParamType: "string", Description: "Message content", Required: true},
			{Name: "context", ParamType: "string", Description: "Conversation context", Required: false},
			{Name: "formality", ParamType: "string", Description: "casual, moderate, or formal", Required: false},
			{Name: "session_id", ParamType: "string", Description: "Session to record against", Required: false},
		},
	}
}

// Validate checks the required fields.
func (t *ProcessMessageTool) Validate(args json.RawMessage) error {
	var req protocol.ProcessRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if req.FromID == "" || req.ToID == "" {
		return fmt.Errorf("from_agent and to_agent are required")
	}
	if req.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// Execute processes the message. A validation warning is a successful
// execution; only unknown agents or internal faults fail the tool.
func (t *ProcessMessageTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	if err := t.Validate(args); err != nil {
		return FailureResult(err), nil
	}
	var req protocol.ProcessRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return FailureResult(err), nil
	}
	outcome, err := t.service.ProcessMessage(ctx, req)
	if err != nil {
		return FailureResult(err), nil
	}
	return marshalOutput(outcome)
}

// AgentStatusTool reports one agent's record, or the directory summary
// when no ID is given.
type AgentStatusTool struct {
	BaseTool
	service *protocol.Service
}

var _ Tool = (*AgentStatusTool)(nil)

// Metadata returns tool metadata.
func (t *AgentStatusTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "get_agent_status",
		Description: "Report one agent's status and statistics, or the directory summary",
		Parameters: []ToolParameter{
			{Name: "agent_id", ParamType: "string", Description: "Agent ID; omit for the directory summary", Required: false},
		},
	}
}

// Execute looks up the agent or summarizes the directory.
func (t *AgentStatusTool) Execute(_ context.Context, args json.RawMessage) (ToolResult, error) {
	var req struct {
		AgentID string `json:"agent_id"`
	}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &req); err != nil {
			return FailureResult(fmt.Errorf("invalid arguments: %w", err)), nil
		}
	}
	if req.AgentID == "" {
		return marshalOutput(t.service.DirectorySummary())
	}
	a, err := t.service.AgentStatus(req.AgentID)
	if err != nil {
		return FailureResult(err), nil
	}
	return marshalOutput(struct {
		*agent.Agent
		ActivityStatus string `json:"activity_status"`
	}{Agent: a, ActivityStatus: a.ActivityStatus()})
}

// AnalyzeConversationTool derives analytics for one session.
type AnalyzeConversationTool struct {
	BaseTool
	service *protocol.Service
}

var _ Tool = (*AnalyzeConversationTool)(nil)

// Metadata returns tool metadata.
func (t *AnalyzeConversationTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "analyze_conversation",
		Description: "Summarize a session: participants, languages, cultural elements, efficiency",
		Parameters: []ToolParameter{
			{Name: "session_id", ParamType: "string", Description: "Session to analyze", Required: true},
		},
	}
}

// Validate checks the required field.
func (t *AnalyzeConversationTool) Validate(args json.RawMessage) error {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if req.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	return nil
}

// Execute analyzes the session.
func (t *AnalyzeConversationTool) Execute(_ context.Context, args json.RawMessage) (ToolResult, error) {
	if err := t.Validate(args); err != nil {
		return FailureResult(err), nil
	}
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return FailureResult(err), nil
	}
	return marshalOutput(t.service.AnalyzeConversation(req.SessionID))
}

// QueryKnowledgeTool answers a question from the corpus.
type QueryKnowledgeTool struct {
	BaseTool
	service *protocol.Service
}

var _ Tool = (*QueryKnowledgeTool)(nil)

// Metadata returns tool metadata.
func (t *QueryKnowledgeTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "query_knowledge",
		Description: "Answer a question from attributed source texts; refuses rather than fabricates",
		Parameters: []ToolParameter{
			{Name: "query", ParamType: "string", Description: "Question to answer", Required: true},
			{Name: "confidence_threshold", ParamType: "number", Description: "Minimum acceptable confidence, default 0.6", Required: false},
			{Name: "max_sources", ParamType: "number", Description: "Maximum passages to cite, default 5", Required: false},
		},
	}
}

// Validate checks the required field.
func (t *QueryKnowledgeTool) Validate(args json.RawMessage) error {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if req.Query == "" {
		return fmt.Errorf("query is required")
	}
	return nil
}

// Execute queries the corpus. A refusal is a successful execution with
// the refusal payload; it is never reported as a tool error.
func (t *QueryKnowledgeTool) Execute(_ context.Context, args json.RawMessage) (ToolResult, error) {
	if err := t.Validate(args); err != nil {
		return FailureResult(err), nil
	}
	var req struct {
		Query               string  `json:"query"`
		ConfidenceThreshold float64 `json:"confidence_threshold"`
		MaxSources          int     `json:"max_sources"`
	}
	if err := json.Unmarshal(args, &req); err != nil {
		return FailureResult(err), nil
	}
	if req.ConfidenceThreshold == 0 {
		req.ConfidenceThreshold = 0.6
	}
	if req.MaxSources == 0 {
		req.MaxSources = 5
	}
	result := t.service.QueryKnowledge(req.Query, req.ConfidenceThreshold, req.MaxSources)
	return marshalOutput(result)
}

// ExportDiagnosticsTool gathers a full system snapshot.
type ExportDiagnosticsTool struct {
	BaseTool
	service *protocol.Service
}

var _ Tool = (*ExportDiagnosticsTool)(nil)

// Metadata returns tool metadata.
func (t *ExportDiagnosticsTool) Metadata() ToolMetadata {
	return ToolMetadata{
		Name:        "export_diagnostics",
		Description: "Export directory, recent communications, and corpus statistics",
		Parameters: []ToolParameter{
			{Name: "recent_limit", ParamType: "number", Description: "How many recent entries to include, default 50", Required: false},
		},
	}
}

// Execute exports the snapshot.
func (t *ExportDiagnosticsTool) Execute(_ context.Context, args json.RawMessage) (ToolResult, error) {
	var req struct {
		RecentLimit int `json:"recent_limit"`
	}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &req); err != nil {
			return FailureResult(fmt.Errorf("invalid arguments: %w", err)), nil
		}
	}
	if req.RecentLimit <= 0 {
		req.RecentLimit = 50
	}
	return marshalOutput(t.service.ExportDiagnostics(req.RecentLimit))
}
