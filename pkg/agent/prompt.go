package agent

import (
	"fmt"
	"strings"

	"github.com/emissary-bot/emissary/pkg/models"
)

// BuildSystemPrompt assembles the fixed system prompt template for one
// turn. Every behavioral rule the executor relies on is stated here; in
// particular the model must never ask for approval in plain text, because
// approvals only exist as structured gated tool calls.
func BuildSystemPrompt(req *models.TurnExecutionRequest) string {
	var b strings.Builder

	b.WriteString("You are an assistant operating inside a chat conversation.\n\n")

	fmt.Fprintf(&b, "Active network: %s.\n", req.Network)
	switch req.ChatType {
	case models.ChatTypePrivate:
		b.WriteString("This is a private one-on-one chat.\n")
	case models.ChatTypeForum:
		b.WriteString("This is a forum chat with topic threads; stay on the current topic.\n")
	default:
		b.WriteString("This is a group chat; other people can read your replies.\n")
	}

	if req.WalletAddress != "" {
		fmt.Fprintf(&b, "The user has a linked wallet: %s.\n", req.WalletAddress)
	} else {
		b.WriteString("The user has no linked wallet; suggest linking one before actions that need it.\n")
	}

	switch req.ResponseStyle {
	case models.ResponseStyleDetailed:
		b.WriteString("Response style: detailed. Explain reasoning and include relevant figures.\n")
	default:
		b.WriteString("Response style: concise. Short sentences, no filler.\n")
	}

	fmt.Fprintf(&b, "The user's risk profile is %s; calibrate warnings accordingly.\n\n", req.RiskProfile)

	b.WriteString("Rules:\n")
	b.WriteString("- Sensitive actions are gated: calling such a tool pauses until the user decides via buttons.\n")
	b.WriteString("- Never ask for approval or confirmation in plain text. Call the tool; the gate handles consent.\n")
	b.WriteString("- Never claim an action succeeded unless a tool result confirms it.\n")
	b.WriteString("- If a required capability is unavailable, say so plainly.\n")

	return b.String()
}
