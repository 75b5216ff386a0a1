package router

import "strings"

// CallbackKind classifies parsed callback payloads.
type CallbackKind string

// Callback kinds.
const (
	CallbackApproval CallbackKind = "approval"
	CallbackSettings CallbackKind = "settings"
	CallbackWallet   CallbackKind = "wallet"
	CallbackUnknown  CallbackKind = "unknown"
)

// Approval callback actions.
const (
	ApprovalActionApprove = "approve"
	ApprovalActionDeny    = "deny"
	ApprovalActionDetails = "details"
	ApprovalActionRefresh = "refresh"
)

// ParsedCallback is the decoded form of inline-button callback data.
// Grammar:
//
//	ap:<token>:{approve|deny|details|refresh}
//	cfg:<section>:<target>:<value>
//	wallet:{status|cancel}:<session_id>
//
// Anything else parses as CallbackUnknown and is ignored by the router.
type ParsedCallback struct {
	Kind CallbackKind

	// Approval
	Token  string
	Action string

	// Settings
	Section string
	Target  string
	Value   string

	// Wallet
	WalletAction string
	SessionID    string
}

// ParseCallback decodes callback data against the prefix grammar.
func ParseCallback(data string) ParsedCallback {
	parts := strings.Split(data, ":")

	switch parts[0] {
	case "ap":
		if len(parts) != 3 || parts[1] == "" {
			break
		}
		switch parts[2] {
		case ApprovalActionApprove, ApprovalActionDeny, ApprovalActionDetails, ApprovalActionRefresh:
			return ParsedCallback{Kind: CallbackApproval, Token: parts[1], Action: parts[2]}
		}
	case "cfg":
		if len(parts) != 4 || parts[1] == "" || parts[2] == "" || parts[3] == "" {
			break
		}
		return ParsedCallback{Kind: CallbackSettings, Section: parts[1], Target: parts[2], Value: parts[3]}
	case "wallet":
		if len(parts) != 3 || parts[2] == "" {
			break
		}
		switch parts[1] {
		case "status", "cancel":
			return ParsedCallback{Kind: CallbackWallet, WalletAction: parts[1], SessionID: parts[2]}
		}
	}
	return ParsedCallback{Kind: CallbackUnknown}
}
