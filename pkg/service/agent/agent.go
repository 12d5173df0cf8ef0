// Package agent orchestrates the financial question flow: one LLM call to
// plan tool usage, sequential tool execution, and an optional second LLM
// call to rewrite the structured answer as prose.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/njagi/paylens/pkg/ai"
	"github.com/njagi/paylens/pkg/dto"
	"github.com/njagi/paylens/pkg/tools"
)

const (
	// planTemperature keeps tool selection consistent.
	planTemperature = 0.1
	// proseTemperature loosens the rewrite call for natural language.
	proseTemperature = 0.7
)

const (
	apologyAnswer  = "I'm sorry, I couldn't process your question. Could you rephrase it?"
	missingAnswer  = "I couldn't generate an answer."
	formattingNote = "\n\n(Note: Enhanced formatting unavailable)"
)

// Service answers financial questions via the LLM and the tool registry.
type Service struct {
	client ai.Client
	tools  *tools.Registry
	logger *slog.Logger
}

// New creates the agent service.
func New(client ai.Client, registry *tools.Registry, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		tools:  registry,
		logger: logger,
	}
}

// plan is the JSON shape the system prompt mandates.
type plan struct {
	ToolCalls []struct {
		Tool   string         `json:"tool"`
		Params map[string]any `json:"params"`
	} `json:"tool_calls"`
	Answer     string `json:"answer"`
	Confidence string `json:"confidence"`
}

// Ask answers a natural-language question about payment data. phone, when
// non-empty, scopes every planned tool call to that consumer.
//
// Ask never fails: a malformed plan, a failed tool, or a provider error all
// degrade into the returned answer (confidence "low" for whole-plan
// failures) rather than propagating to the HTTP boundary.
func (s *Service) Ask(ctx context.Context, question, phone string) *dto.FinancialAnswer {
	s.logger.Info("financial question received", "question", question, "phone", phone != "")

	raw, err := s.client.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: systemPrompt},
		{Role: ai.RoleUser, Content: question},
	}, planTemperature)
	if err != nil {
		s.logger.Error("financial agent plan call failed", "error", err)
		return &dto.FinancialAnswer{
			Answer:     fmt.Sprintf("I encountered an error: %s", err),
			ToolCalls:  []dto.ToolCall{},
			Confidence: "low",
		}
	}

	var p plan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Error("failed to parse plan as JSON", "error", err, "raw", raw)
		return &dto.FinancialAnswer{
			Answer:     apologyAnswer,
			ToolCalls:  []dto.ToolCall{},
			Confidence: "low",
		}
	}

	// Execute in plan order; a failed call is recorded and the rest of
	// the plan still runs.
	calls := make([]dto.ToolCall, 0, len(p.ToolCalls))
	for _, planned := range p.ToolCalls {
		params := planned.Params
		if params == nil {
			params = map[string]any{}
		}

		result, err := s.tools.Execute(ctx, tools.Name(planned.Tool), params, phone)
		if err != nil {
			s.logger.Error("tool execution failed", "tool", planned.Tool, "error", err)
			result = map[string]any{"error": err.Error()}
		}
		calls = append(calls, dto.ToolCall{
			Tool:   planned.Tool,
			Params: params,
			Result: result,
		})
	}

	answer := p.Answer
	if answer == "" {
		answer = missingAnswer
	}
	confidence := p.Confidence
	if confidence == "" {
		confidence = "medium"
	}

	return &dto.FinancialAnswer{
		Answer:     answer,
		ToolCalls:  calls,
		Confidence: confidence,
	}
}

// FormatNaturally rewrites a structured answer as conversational prose via
// a higher-temperature LLM call. On failure it falls back to the original
// answer text plus a note that enhanced formatting is unavailable.
func (s *Service) FormatNaturally(ctx context.Context, answer *dto.FinancialAnswer) string {
	prompt := buildFormattingPrompt(answer)

	text, err := s.client.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: formatterSystemPrompt},
		{Role: ai.RoleUser, Content: prompt},
	}, proseTemperature)
	if err != nil {
		s.logger.Error("natural formatting failed", "error", err)
		return answer.Answer + formattingNote
	}

	s.logger.Info("formatted response naturally")
	return strings.TrimSpace(text)
}

func buildFormattingPrompt(answer *dto.FinancialAnswer) string {
	summaries := make([]string, 0, len(answer.ToolCalls))
	for i, call := range answer.ToolCalls {
		params, _ := json.MarshalIndent(call.Params, "", "  ")
		result, _ := json.MarshalIndent(call.Result, "", "  ")
		summaries = append(summaries, fmt.Sprintf(
			"Tool %d: %s\nParameters: %s\nResult: %s",
			i+1, call.Tool, params, result))
	}

	toolsText := "No tools were used."
	if len(summaries) > 0 {
		toolsText = strings.Join(summaries, "\n\n")
	}

	return fmt.Sprintf(`You are a helpful financial assistant. I have some financial data that needs to be presented to a user in a natural, conversational way.

Here is the structured data:

ORIGINAL ANSWER:
%s

CONFIDENCE LEVEL:
%s

TOOL CALLS AND RESULTS:
%s

%s`, answer.Answer, answer.Confidence, toolsText, formatterGuidelines)
}
