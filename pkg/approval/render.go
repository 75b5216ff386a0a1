package approval

import (
	"fmt"
	"time"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/pkg/transport"
)

// RenderPendingCard produces the approval prompt text and keyboard for a
// requested approval with the given remaining time.
func RenderPendingCard(rec *ent.Approval, remaining time.Duration) (string, transport.Keyboard) {
	if remaining < 0 {
		remaining = 0
	}
	text := fmt.Sprintf(
		"Approval required: %s\nRisk: %s (confidence %s)\nExpires in %s",
		rec.ToolName,
		rec.RiskLevel,
		rec.RiskConfidence,
		formatRemaining(remaining),
	)
	keyboard := transport.Keyboard{
		{
			{Text: "Approve", CallbackData: "ap:" + rec.CallbackToken + ":approve"},
			{Text: "Deny", CallbackData: "ap:" + rec.CallbackToken + ":deny"},
		},
		{
			{Text: "Details", CallbackData: "ap:" + rec.CallbackToken + ":details"},
		},
	}
	return text, keyboard
}

// RenderExpiredCard produces the replacement text for an expired prompt.
func RenderExpiredCard(rec *ent.Approval) string {
	return fmt.Sprintf("Approval request for %s expired without a decision.", rec.ToolName)
}

// RenderDecidedCard produces the replacement text after a decision.
func RenderDecidedCard(rec *ent.Approval, approved bool) string {
	if approved {
		return fmt.Sprintf("Approved: %s", rec.ToolName)
	}
	return fmt.Sprintf("Denied: %s", rec.ToolName)
}

// RenderDetails produces the expanded detail view for the Details button.
func RenderDetails(rec *ent.Approval) string {
	return fmt.Sprintf(
		"Tool: %s\nCall: %s\nRisk: %s (confidence %s)\nInput: %v",
		rec.ToolName, rec.ToolCallID, rec.RiskLevel, rec.RiskConfidence, rec.ToolInput,
	)
}

func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Minute {
		return fmt.Sprintf("%dm %02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
