package dto

// ToolCall records one executed tool invocation for response transparency.
// Result is a JSON-ready map or slice of maps; a failed call carries
// {"error": "..."} instead.
type ToolCall struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
	Result any            `json:"result"`
}

// FinancialAnswer is the structured response to a financial question.
type FinancialAnswer struct {
	Answer     string     `json:"answer"`
	ToolCalls  []ToolCall `json:"tool_calls"`
	Confidence string     `json:"confidence"`
}
