package models

// Chat roles as used by the Gemini API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage represents a single message in a conversation transcript.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// HistoryPart is one text fragment of a history turn.
type HistoryPart struct {
	Text string `json:"text"`
}

// HistoryTurn is one turn of prior conversation sent to the assistant.
type HistoryTurn struct {
	Role  string        `json:"role"`
	Parts []HistoryPart `json:"parts"`
}

// ChatRequest is the payload sent to the assistant endpoint. The rich shape
// carries prompt + history; the legacy shape carries only message. Both are
// accepted.
type ChatRequest struct {
	Prompt   string        `json:"prompt"`
	Message  string        `json:"message"` // legacy field, superseded by prompt
	History  []HistoryTurn `json:"history"`
	Language string        `json:"language"`
}

// FunctionCall is a structured instruction returned by the model, e.g.
// navigateToPage with a page argument.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// ChatResponse is the assistant endpoint's reply.
type ChatResponse struct {
	Response      string         `json:"response"`
	FunctionCalls []FunctionCall `json:"functionCalls,omitempty"`
}
