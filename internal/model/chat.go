package model

type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one role-tagged message in a conversation.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Question is intentionally unvalidated: empty input gets a guided reply
// from the orchestrator rather than a 400.
type ChatRequest struct {
	Question string `json:"question"`
}

type ChatResponse struct {
	Answer  string     `json:"answer"`
	History []ChatTurn `json:"history"`
}
