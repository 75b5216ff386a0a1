package services

import (
	"context"
	"fmt"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/chatpreference"
	"github.com/emissary-bot/emissary/ent/userpreference"
	"github.com/emissary-bot/emissary/pkg/models"
)

// PreferenceService resolves effective preferences:
// chat override ?? user default ?? system default.
type PreferenceService struct {
	client *ent.Client
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(client *ent.Client) *PreferenceService {
	return &PreferenceService{client: client}
}

// Effective merges chat overrides over user defaults over system defaults.
// Missing rows are not an error — the defaults apply.
func (s *PreferenceService) Effective(ctx context.Context, chatID, userID int64) (models.Preferences, error) {
	prefs := models.DefaultPreferences()

	userPref, err := s.client.UserPreference.Get(ctx, userID)
	if err != nil && !ent.IsNotFound(err) {
		return prefs, fmt.Errorf("failed to load user preferences: %w", err)
	}
	if userPref != nil {
		prefs.ResponseStyle = models.ResponseStyle(userPref.ResponseStyle)
		prefs.RiskProfile = models.RiskProfile(userPref.RiskProfile)
		prefs.Network = userPref.Network
		if userPref.WalletAddress != nil {
			prefs.WalletAddress = *userPref.WalletAddress
		}
	}

	chatPref, err := s.client.ChatPreference.Get(ctx, chatID)
	if err != nil && !ent.IsNotFound(err) {
		return prefs, fmt.Errorf("failed to load chat preferences: %w", err)
	}
	if chatPref != nil {
		if chatPref.ResponseStyle != nil {
			prefs.ResponseStyle = models.ResponseStyle(*chatPref.ResponseStyle)
		}
		if chatPref.RiskProfile != nil {
			prefs.RiskProfile = models.RiskProfile(*chatPref.RiskProfile)
		}
		if chatPref.Network != nil {
			prefs.Network = *chatPref.Network
		}
	}

	return prefs, nil
}

// SetUserResponseStyle updates (or creates) a user's default response style.
func (s *PreferenceService) SetUserResponseStyle(ctx context.Context, userID int64, style models.ResponseStyle) error {
	return s.upsertUser(ctx, userID, func(u *ent.UserPreferenceUpdateOne) {
		u.SetResponseStyle(userpreference.ResponseStyle(style))
	}, func(c *ent.UserPreferenceCreate) {
		c.SetResponseStyle(userpreference.ResponseStyle(style))
	})
}

// SetUserRiskProfile updates (or creates) a user's risk profile.
func (s *PreferenceService) SetUserRiskProfile(ctx context.Context, userID int64, profile models.RiskProfile) error {
	return s.upsertUser(ctx, userID, func(u *ent.UserPreferenceUpdateOne) {
		u.SetRiskProfile(userpreference.RiskProfile(profile))
	}, func(c *ent.UserPreferenceCreate) {
		c.SetRiskProfile(userpreference.RiskProfile(profile))
	})
}

// SetUserNetwork updates (or creates) a user's default network.
func (s *PreferenceService) SetUserNetwork(ctx context.Context, userID int64, network string) error {
	return s.upsertUser(ctx, userID, func(u *ent.UserPreferenceUpdateOne) {
		u.SetNetwork(network)
	}, func(c *ent.UserPreferenceCreate) {
		c.SetNetwork(network)
	})
}

// SetUserWallet records (or clears, with empty address) the linked wallet.
func (s *PreferenceService) SetUserWallet(ctx context.Context, userID int64, address string) error {
	return s.upsertUser(ctx, userID, func(u *ent.UserPreferenceUpdateOne) {
		if address == "" {
			u.ClearWalletAddress()
		} else {
			u.SetWalletAddress(address)
		}
	}, func(c *ent.UserPreferenceCreate) {
		if address != "" {
			c.SetWalletAddress(address)
		}
	})
}

// SetChatRiskProfile sets a chat-level risk profile override.
func (s *PreferenceService) SetChatRiskProfile(ctx context.Context, chatID int64, profile models.RiskProfile) error {
	return s.upsertChat(ctx, chatID, func(u *ent.ChatPreferenceUpdateOne) {
		u.SetRiskProfile(chatpreference.RiskProfile(profile))
	}, func(c *ent.ChatPreferenceCreate) {
		c.SetRiskProfile(chatpreference.RiskProfile(profile))
	})
}

// SetChatNetwork sets a chat-level network override.
func (s *PreferenceService) SetChatNetwork(ctx context.Context, chatID int64, network string) error {
	return s.upsertChat(ctx, chatID, func(u *ent.ChatPreferenceUpdateOne) {
		u.SetNetwork(network)
	}, func(c *ent.ChatPreferenceCreate) {
		c.SetNetwork(network)
	})
}

func (s *PreferenceService) upsertUser(ctx context.Context, userID int64, mutate func(*ent.UserPreferenceUpdateOne), create func(*ent.UserPreferenceCreate)) error {
	_, err := s.client.UserPreference.Get(ctx, userID)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to load user preferences: %w", err)
		}
		builder := s.client.UserPreference.Create().SetID(userID)
		create(builder)
		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Lost the create race; apply as update.
				return s.upsertUser(ctx, userID, mutate, create)
			}
			return fmt.Errorf("failed to create user preferences: %w", err)
		}
		return nil
	}

	update := s.client.UserPreference.UpdateOneID(userID)
	mutate(update)
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update user preferences: %w", err)
	}
	return nil
}

func (s *PreferenceService) upsertChat(ctx context.Context, chatID int64, mutate func(*ent.ChatPreferenceUpdateOne), create func(*ent.ChatPreferenceCreate)) error {
	_, err := s.client.ChatPreference.Get(ctx, chatID)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to load chat preferences: %w", err)
		}
		builder := s.client.ChatPreference.Create().SetID(chatID)
		create(builder)
		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return s.upsertChat(ctx, chatID, mutate, create)
			}
			return fmt.Errorf("failed to create chat preferences: %w", err)
		}
		return nil
	}

	update := s.client.ChatPreference.UpdateOneID(chatID)
	mutate(update)
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update chat preferences: %w", err)
	}
	return nil
}
