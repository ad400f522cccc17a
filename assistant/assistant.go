// Package assistant is the typed client for the deskbot assistant API.
package assistant

// Request is one prompt sent to the assistant. A zero SessionID starts a new
// conversation.
type Request struct {
	SessionID string `json:"session_id,omitempty"`
	Prompt    string `json:"prompt"`
}

// Response is the assistant's reply. Reply is plain structured text; the
// markup package turns it into displayable blocks.
type Response struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Model     string `json:"model"`
	Usage     Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	ReplyTokens  int `json:"reply_tokens"`
}
