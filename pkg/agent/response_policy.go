package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emissary-bot/emissary/pkg/models"
)

// approvedStatusPrefix opens every synthesized post-approval message. Tests
// and downstream checks key on this exact prefix.
const approvedStatusPrefix = "Approval received. Protected action executed"

// pendingSuffix is appended while approvals remain undecided.
const pendingSuffix = "\n\nApproval pending — use the buttons above to decide."

// genericFailureLine is the single user-visible line for unrecoverable
// turn failures.
const genericFailureLine = "I could not complete that request. Please try again."

// trivialPhrases are raw completions with no informational content.
var trivialPhrases = []string{
	"done", "done.", "completed", "completed.", "all set", "all set.",
	"ok", "ok.", "okay", "okay.", "finished", "finished.", "sure", "sure.",
}

// reaskPhrases mark plain-text approval requests the model is forbidden to
// produce; after an approved callback they must never reach the user.
var reaskPhrases = []string{
	"do you approve",
	"please approve",
	"please confirm",
	"confirm this transaction",
	"tap approve",
	"shall i proceed",
	"do you want me to proceed",
	"waiting for your approval",
}

// PolicyInput is everything the response policy inspects.
type PolicyInput struct {
	RawText string

	// ApprovedCallback is true when this turn resumed from an approved
	// decision.
	ApprovedCallback bool

	// UserRequest is the original text of the turn, empty for callbacks.
	UserRequest string

	ToolResults      []models.ToolResultPart
	PendingApprovals int
}

// PolicyResult is the surfaced text plus audit signals.
type PolicyResult struct {
	Text                 string
	ForcedApprovedStatus bool

	// ReaskBlocked is true when the raw text contained a plain-text
	// approval re-ask that was rewritten; callers audit this.
	ReaskBlocked bool
}

// ApplyResponsePolicy rewrites raw model text before it is surfaced.
func ApplyResponsePolicy(in PolicyInput) PolicyResult {
	raw := strings.TrimSpace(in.RawText)
	reask := containsReask(raw)

	if in.ApprovedCallback && (raw == "" || isTrivial(raw) || reask) {
		text := synthesizeApprovedStatus(in.ToolResults)
		if in.PendingApprovals > 0 {
			text += pendingSuffix
		}
		return PolicyResult{
			Text:                 text,
			ForcedApprovedStatus: true,
			ReaskBlocked:         reask,
		}
	}

	if (raw == "" || isTrivial(raw)) && in.UserRequest != "" {
		text := synthesizeCompletion(in.UserRequest)
		if in.PendingApprovals > 0 {
			text += pendingSuffix
		}
		return PolicyResult{Text: text}
	}

	text := raw
	if text == "" {
		text = genericFailureLine
	}
	if in.PendingApprovals > 0 {
		text += pendingSuffix
	}
	return PolicyResult{Text: text}
}

func isTrivial(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, p := range trivialPhrases {
		if lower == p {
			return true
		}
	}
	return false
}

func containsReask(raw string) bool {
	lower := strings.ToLower(raw)
	for _, p := range reaskPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// synthesizeApprovedStatus builds the forced post-approval message,
// summarizing tool results when they carry a destination or hash.
func synthesizeApprovedStatus(results []models.ToolResultPart) string {
	text := approvedStatusPrefix + "."
	if summary := summarizeResults(results); summary != "" {
		text += " " + summary
	}
	return text
}

func summarizeResults(results []models.ToolResultPart) string {
	var lines []string
	for _, r := range results {
		if r.IsError {
			continue
		}
		var doc map[string]interface{}
		if err := json.Unmarshal([]byte(r.Content), &doc); err != nil {
			continue
		}
		if dest := firstString(doc, "destination", "to", "address"); dest != "" {
			lines = append(lines, "Destination: "+dest)
		}
		if hash := firstString(doc, "hash", "tx_hash", "transaction_hash"); hash != "" {
			lines = append(lines, "Hash: "+hash)
		}
	}
	return strings.Join(lines, " ")
}

func firstString(doc map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := doc[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// synthesizeCompletion covers a trivial model reply to a real request.
func synthesizeCompletion(request string) string {
	request = strings.TrimSpace(request)
	const maxQuote = 120
	if len(request) > maxQuote {
		request = request[:maxQuote] + "…"
	}
	return fmt.Sprintf("Done — I've handled your request: “%s”.", request)
}
