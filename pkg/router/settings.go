package router

import (
	"context"
	"log/slog"

	"github.com/emissary-bot/emissary/pkg/models"
)

// handleSettingsCallback applies a cfg:<section>:<target>:<value> chip.
func (r *Router) handleSettingsCallback(ctx context.Context, cb *models.CallbackQuery, parsed ParsedCallback) error {
	var err error
	switch parsed.Section {
	case "style":
		style, ok := parseStyle(parsed.Value)
		if !ok {
			return r.answer(ctx, cb.CallbackID, "", false)
		}
		err = r.prefs.SetUserResponseStyle(ctx, cb.UserID, style)

	case "risk":
		profile, ok := parseProfile(parsed.Value)
		if !ok {
			return r.answer(ctx, cb.CallbackID, "", false)
		}
		if parsed.Target == "chat" {
			err = r.prefs.SetChatRiskProfile(ctx, cb.ChatID, profile)
		} else {
			err = r.prefs.SetUserRiskProfile(ctx, cb.UserID, profile)
		}

	case "network":
		if parsed.Target == "chat" {
			err = r.prefs.SetChatNetwork(ctx, cb.ChatID, parsed.Value)
		} else {
			err = r.prefs.SetUserNetwork(ctx, cb.UserID, parsed.Value)
		}

	default:
		slog.Debug("Unknown settings section ignored", "section", parsed.Section)
		return r.answer(ctx, cb.CallbackID, "", false)
	}

	if err != nil {
		return err
	}
	return r.answer(ctx, cb.CallbackID, "Saved.", false)
}

// handleWalletCallback serves wallet:{status|cancel}:<session_id> chips.
// The linkage handshake itself lives in the external wallet component.
func (r *Router) handleWalletCallback(ctx context.Context, cb *models.CallbackQuery, parsed ParsedCallback) error {
	switch parsed.WalletAction {
	case "status":
		prefs, err := r.prefs.Effective(ctx, cb.ChatID, cb.UserID)
		if err != nil {
			return err
		}
		if prefs.WalletAddress == "" {
			return r.answer(ctx, cb.CallbackID, "No wallet linked.", true)
		}
		return r.answer(ctx, cb.CallbackID, "Linked wallet: "+prefs.WalletAddress, true)

	case "cancel":
		if err := r.sessions.UpdateState(ctx, parsed.SessionID, map[string]interface{}{}); err != nil {
			slog.Warn("Failed to clear wallet flow state", "session_id", parsed.SessionID, "error", err)
		}
		return r.answer(ctx, cb.CallbackID, "Wallet linking cancelled.", false)
	}
	return r.answer(ctx, cb.CallbackID, "", false)
}

func parseStyle(v string) (models.ResponseStyle, bool) {
	switch models.ResponseStyle(v) {
	case models.ResponseStyleConcise, models.ResponseStyleDetailed:
		return models.ResponseStyle(v), true
	}
	return "", false
}

func parseProfile(v string) (models.RiskProfile, bool) {
	switch models.RiskProfile(v) {
	case models.RiskProfileCautious, models.RiskProfileBalanced, models.RiskProfileAdvanced:
		return models.RiskProfile(v), true
	}
	return "", false
}
