// Package models contains shared domain types passed between packages.
package models

// PartType identifies the kind of message content part.
type PartType string

// Part type constants.
const (
	PartTypeText             PartType = "text"
	PartTypeToolCall         PartType = "tool_call"
	PartTypeToolResult       PartType = "tool_result"
	PartTypeApprovalRequest  PartType = "tool_approval_request"
	PartTypeApprovalResponse PartType = "tool_approval_response"
)

// Part is one tagged content part of a message. Exactly one payload field
// matching Type is set.
type Part struct {
	Type PartType `json:"type"`

	Text             string                `json:"text,omitempty"`
	ToolCall         *ToolCallPart         `json:"tool_call,omitempty"`
	ToolResult       *ToolResultPart       `json:"tool_result,omitempty"`
	ApprovalRequest  *ApprovalRequestPart  `json:"tool_approval_request,omitempty"`
	ApprovalResponse *ApprovalResponsePart `json:"tool_approval_response,omitempty"`
}

// ToolCallPart records an LLM request to call a tool.
type ToolCallPart struct {
	CallID    string `json:"call_id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON
}

// ToolResultPart records the outcome of an executed tool call.
type ToolResultPart struct {
	CallID  string `json:"call_id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	IsError bool   `json:"is_error,omitempty"`
}

// ApprovalRequestPart marks a tool call that is gated on user consent.
type ApprovalRequestPart struct {
	ApprovalID string `json:"approval_id"`
	CallID     string `json:"call_id"`
	Name       string `json:"name"`
	Arguments  string `json:"arguments"` // JSON
}

// ApprovalResponsePart carries a user's decision back into the agent loop.
type ApprovalResponsePart struct {
	ApprovalID string `json:"approval_id"`
	CallID     string `json:"call_id"`
	Name       string `json:"name"`
	Approved   bool   `json:"approved"`
}

// TextPart is a convenience constructor for a plain text part.
func TextPart(text string) Part {
	return Part{Type: PartTypeText, Text: text}
}
