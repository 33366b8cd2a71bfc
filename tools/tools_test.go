package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samskrita/samvada/logbook"
	"github.com/samskrita/samvada/protocol"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	svc, err := protocol.NewService(logbook.New(100))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	registry, err := NewDefaultRegistry(svc)
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	return registry
}

func execute(t *testing.T, r *Registry, name, args string) ToolResult {
	t.Helper()
	tool, ok := r.Get(name)
	if !ok {
		t.Fatalf("tool %q not registered", name)
	}
	result, err := tool.Execute(context.Background(), json.RawMessage(args))
	if err != nil {
		t.Fatalf("tool %q returned transport error: %v", name, err)
	}
	return result
}

func TestDefaultRegistryNames(t *testing.T) {
	registry := newTestRegistry(t)

	want := []string{
		"analyze_conversation",
		"export_diagnostics",
		"get_agent_status",
		"process_message",
		"query_knowledge",
		"register_agent",
	}
	got := registry.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d tools, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tool %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegisterAgentTool(t *testing.T) {
	registry := newTestRegistry(t)

	result := execute(t, registry, "register_agent", `{"id":"a1","name":"Agent One"}`)
	if !result.Success() {
		t.Fatalf("expected success, got %v", result.Error)
	}
	if !strings.Contains(result.Output, "sanskrit_communication") {
		t.Errorf("expected default capability in output:\n%s", result.Output)
	}

	// Second registration with the same ID fails.
	dup := execute(t, registry, "register_agent", `{"id":"a1","name":"Copy"}`)
	if dup.Success() {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegisterAgentToolValidation(t *testing.T) {
	registry := newTestRegistry(t)

	result := execute(t, registry, "register_agent", `{"name":"No ID"}`)
	if result.Success() {
		t.Error("expected missing id to fail validation")
	}
}

func TestProcessMessageTool(t *testing.T) {
	registry := newTestRegistry(t)
	execute(t, registry, "register_agent", `{"id":"a","name":"A"}`)
	execute(t, registry, "register_agent", `{"id":"b","name":"B"}`)

	result := execute(t, registry, "process_message",
		`{"from_agent":"a","to_agent":"b","content":"नमस्ते","session_id":"s1"}`)
	if !result.Success() {
		t.Fatalf("expected success, got %v", result.Error)
	}
	if !strings.Contains(result.Output, `"status": "success"`) {
		t.Errorf("expected success status in output:\n%s", result.Output)
	}

	unknown := execute(t, registry, "process_message",
		`{"from_agent":"a","to_agent":"ghost","content":"नमस्ते"}`)
	if unknown.Success() {
		t.Error("expected unknown recipient to fail")
	}
}

func TestAgentStatusTool(t *testing.T) {
	registry := newTestRegistry(t)
	execute(t, registry, "register_agent", `{"id":"a","name":"A"}`)

	status := execute(t, registry, "get_agent_status", `{"agent_id":"a"}`)
	if !status.Success() {
		t.Fatalf("expected success, got %v", status.Error)
	}
	if !strings.Contains(status.Output, `"activity_status"`) {
		t.Errorf("expected activity status in output:\n%s", status.Output)
	}

	summary := execute(t, registry, "get_agent_status", `{}`)
	if !summary.Success() {
		t.Fatalf("expected summary success, got %v", summary.Error)
	}
	if !strings.Contains(summary.Output, `"total_agents"`) {
		t.Errorf("expected directory summary in output:\n%s", summary.Output)
	}
}

func TestAnalyzeConversationTool(t *testing.T) {
	registry := newTestRegistry(t)
	execute(t, registry, "register_agent", `{"id":"a","name":"A"}`)
	execute(t, registry, "register_agent", `{"id":"b","name":"B"}`)
	execute(t, registry, "process_message",
		`{"from_agent":"a","to_agent":"b","content":"नमस्ते","session_id":"s1"}`)

	result := execute(t, registry, "analyze_conversation", `{"session_id":"s1"}`)
	if !result.Success() {
		t.Fatalf("expected success, got %v", result.Error)
	}
	if !strings.Contains(result.Output, `"message_count": 1`) {
		t.Errorf("expected message count in output:\n%s", result.Output)
	}

	missing := execute(t, registry, "analyze_conversation", `{}`)
	if missing.Success() {
		t.Error("expected missing session_id to fail validation")
	}
}

func TestQueryKnowledgeTool(t *testing.T) {
	registry := newTestRegistry(t)

	result := execute(t, registry, "query_knowledge", `{"query":"what is dharma"}`)
	if !result.Success() {
		t.Fatalf("expected success, got %v", result.Error)
	}
	if !strings.Contains(result.Output, `"hallucination_risk"`) {
		t.Errorf("expected risk classification in output:\n%s", result.Output)
	}

	// A refusal is still a successful tool execution.
	refusal := execute(t, registry, "query_knowledge", `{"query":"quantum blockchain"}`)
	if !refusal.Success() {
		t.Fatalf("refusal must not be a tool error: %v", refusal.Error)
	}
	if !strings.Contains(refusal.Output, "decline") {
		t.Errorf("expected refusal text in output:\n%s", refusal.Output)
	}
}

func TestExportDiagnosticsTool(t *testing.T) {
	registry := newTestRegistry(t)
	execute(t, registry, "register_agent", `{"id":"a","name":"A"}`)

	result := execute(t, registry, "export_diagnostics", `{}`)
	if !result.Success() {
		t.Fatalf("expected success, got %v", result.Error)
	}
	if !strings.Contains(result.Output, `"directory"`) || !strings.Contains(result.Output, `"corpus"`) {
		t.Errorf("expected directory and corpus sections in output:\n%s", result.Output)
	}
}

func TestToolResultMarshalJSON(t *testing.T) {
	ok, err := json.Marshal(SuccessResult("done"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(ok), `"success":true`) {
		t.Errorf("unexpected success payload: %s", ok)
	}

	bad, err := json.Marshal(FailureResultf("boom: %d", 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(bad), `"success":false`) || !strings.Contains(string(bad), "boom: 7") {
		t.Errorf("unexpected failure payload: %s", bad)
	}
}
