package router

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/transport"
)

// commandAllowlist are the bot commands handled directly, exempt from the
// user-turn quota (chat flood still applies).
var commandAllowlist = map[string]bool{
	"start":    true,
	"settings": true,
	"network":  true,
	"wallet":   true,
	"cancel":   true,
}

// parseCommand splits "/cmd arg1 arg2" into its verb and arguments.
// Handles the "/cmd@botname" addressing form.
func parseCommand(text string) (cmd string, args []string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", nil, false
	}
	cmd = fields[0]
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), fields[1:], true
}

func isAllowlistedCommand(cmd string) bool {
	return commandAllowlist[cmd]
}

// runCommand dispatches an allowlisted command.
func (r *Router) runCommand(ctx context.Context, msg *models.IncomingMessage, cmd string, args []string) error {
	slog.Info("Command received", "command", cmd, "chat_id", msg.ChatID, "user_id", msg.UserID)

	switch cmd {
	case "start":
		return r.cmdStart(ctx, msg)
	case "settings":
		return r.cmdSettings(ctx, msg)
	case "network":
		return r.cmdNetwork(ctx, msg, args)
	case "wallet":
		return r.cmdWallet(ctx, msg, args)
	case "cancel":
		return r.cmdCancel(ctx, msg)
	default:
		return nil
	}
}

func (r *Router) cmdStart(ctx context.Context, msg *models.IncomingMessage) error {
	text := "Hi! Send me a message and I'll get to work.\n" +
		"Sensitive actions always wait for your explicit approval.\n" +
		"Use /settings to adjust style and risk profile."
	return r.reply(ctx, msg, text)
}

func (r *Router) cmdSettings(ctx context.Context, msg *models.IncomingMessage) error {
	prefs, err := r.prefs.Effective(ctx, msg.ChatID, msg.UserID)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Settings\nStyle: %s\nRisk profile: %s\nNetwork: %s",
		prefs.ResponseStyle, prefs.RiskProfile, prefs.Network)
	keyboard := transport.Keyboard{
		{
			{Text: "Concise", CallbackData: "cfg:style:user:concise"},
			{Text: "Detailed", CallbackData: "cfg:style:user:detailed"},
		},
		{
			{Text: "Cautious", CallbackData: "cfg:risk:user:cautious"},
			{Text: "Balanced", CallbackData: "cfg:risk:user:balanced"},
			{Text: "Advanced", CallbackData: "cfg:risk:user:advanced"},
		},
	}

	opts := transport.SendOptions{ThreadID: msg.ThreadID}
	_, err = r.transport.SendMessageWithKeyboard(ctx, msg.ChatID, text, keyboard, opts)
	return err
}

func (r *Router) cmdNetwork(ctx context.Context, msg *models.IncomingMessage, args []string) error {
	if len(args) == 0 {
		prefs, err := r.prefs.Effective(ctx, msg.ChatID, msg.UserID)
		if err != nil {
			return err
		}
		return r.reply(ctx, msg, fmt.Sprintf("Current network: %s. Use /network <name> to switch.", prefs.Network))
	}

	network := strings.ToLower(args[0])
	if err := r.prefs.SetUserNetwork(ctx, msg.UserID, network); err != nil {
		return err
	}
	return r.reply(ctx, msg, fmt.Sprintf("Network set to %s.", network))
}

func (r *Router) cmdWallet(ctx context.Context, msg *models.IncomingMessage, args []string) error {
	sub := "status"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
	}

	switch sub {
	case "status":
		prefs, err := r.prefs.Effective(ctx, msg.ChatID, msg.UserID)
		if err != nil {
			return err
		}
		if prefs.WalletAddress == "" {
			return r.reply(ctx, msg, "No wallet linked. Use /wallet link to start.")
		}
		return r.reply(ctx, msg, fmt.Sprintf("Linked wallet: %s", prefs.WalletAddress))

	case "unlink":
		if err := r.prefs.SetUserWallet(ctx, msg.UserID, ""); err != nil {
			return err
		}
		return r.reply(ctx, msg, "Wallet unlinked.")

	case "link":
		// The linkage handshake is driven by the external wallet
		// component through session state; here we only kick it off.
		sess, err := r.sessions.GetOrCreate(ctx, msg.ChatID, msg.UserID, msg.ThreadID)
		if err != nil {
			return err
		}
		if err := r.sessions.UpdateState(ctx, sess.ID, map[string]interface{}{"wallet_flow": "pending"}); err != nil {
			return err
		}
		return r.reply(ctx, msg, "Wallet linking started — follow the prompt from your wallet app, or /cancel to abort.")

	default:
		return r.reply(ctx, msg, "Usage: /wallet [status|link|unlink]")
	}
}

func (r *Router) cmdCancel(ctx context.Context, msg *models.IncomingMessage) error {
	sess, err := r.sessions.GetOrCreate(ctx, msg.ChatID, msg.UserID, msg.ThreadID)
	if err != nil {
		return err
	}
	if err := r.sessions.UpdateState(ctx, sess.ID, map[string]interface{}{}); err != nil {
		return err
	}
	return r.reply(ctx, msg, "Cancelled.")
}

func (r *Router) reply(ctx context.Context, msg *models.IncomingMessage, text string) error {
	opts := transport.SendOptions{ThreadID: msg.ThreadID, ReplyToMessageID: msg.MessageID}
	return r.transport.SendText(ctx, msg.ChatID, text, opts)
}
