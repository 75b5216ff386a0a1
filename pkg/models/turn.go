package models

// TurnExecutionRequest is the unit of work handed to the agent-turns queue.
// It carries everything the executor needs so the worker does not re-derive
// preferences at execution time.
type TurnExecutionRequest struct {
	CorrelationID string   `json:"correlation_id"`
	SessionID     string   `json:"session_id"`
	ChatID        int64    `json:"chat_id"`
	ChatType      ChatType `json:"chat_type"`
	UserID        int64    `json:"user_id"`
	ThreadID      int64    `json:"thread_id,omitempty"`

	// Exactly one of Text or ApprovalResponse is set.
	Text             string                `json:"text,omitempty"`
	ApprovalResponse *ApprovalResponsePart `json:"tool_approval_response,omitempty"`

	Network       string        `json:"network"`
	ModelID       string        `json:"model_id"`
	ResponseStyle ResponseStyle `json:"response_style"`
	RiskProfile   RiskProfile   `json:"risk_profile"`
	WalletAddress string        `json:"wallet_address,omitempty"`
}

// TurnResult is the outcome of one executed agent turn.
type TurnResult struct {
	Text                 string
	PendingApprovalIDs   []string
	ForcedApprovedStatus bool
	ModelUsed            string
	UsedFallback         bool
}
