package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/test/util"
)

func TestPreferenceService_EffectiveDefaults(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewPreferenceService(client)

	prefs, err := svc.Effective(context.Background(), 100, 42)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestPreferenceService_UserDefaultsApply(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewPreferenceService(client)
	ctx := context.Background()

	require.NoError(t, svc.SetUserResponseStyle(ctx, 42, models.ResponseStyleDetailed))
	require.NoError(t, svc.SetUserRiskProfile(ctx, 42, models.RiskProfileCautious))
	require.NoError(t, svc.SetUserNetwork(ctx, 42, "testnet"))
	require.NoError(t, svc.SetUserWallet(ctx, 42, "EQabc"))

	prefs, err := svc.Effective(ctx, 100, 42)
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStyleDetailed, prefs.ResponseStyle)
	assert.Equal(t, models.RiskProfileCautious, prefs.RiskProfile)
	assert.Equal(t, "testnet", prefs.Network)
	assert.Equal(t, "EQabc", prefs.WalletAddress)
}

func TestPreferenceService_ChatOverridesWin(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewPreferenceService(client)
	ctx := context.Background()

	require.NoError(t, svc.SetUserRiskProfile(ctx, 42, models.RiskProfileAdvanced))
	require.NoError(t, svc.SetUserNetwork(ctx, 42, "testnet"))

	require.NoError(t, svc.SetChatRiskProfile(ctx, 100, models.RiskProfileCautious))

	prefs, err := svc.Effective(ctx, 100, 42)
	require.NoError(t, err)

	// The chat overrides only what it sets; the rest falls through.
	assert.Equal(t, models.RiskProfileCautious, prefs.RiskProfile)
	assert.Equal(t, "testnet", prefs.Network)

	// Another chat has no override.
	elsewhere, err := svc.Effective(ctx, 200, 42)
	require.NoError(t, err)
	assert.Equal(t, models.RiskProfileAdvanced, elsewhere.RiskProfile)
}

func TestPreferenceService_WalletUnlink(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewPreferenceService(client)
	ctx := context.Background()

	require.NoError(t, svc.SetUserWallet(ctx, 42, "EQabc"))
	require.NoError(t, svc.SetUserWallet(ctx, 42, ""))

	prefs, err := svc.Effective(ctx, 100, 42)
	require.NoError(t, err)
	assert.Empty(t, prefs.WalletAddress)
}

func TestPreferenceService_UpsertIsIdempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewPreferenceService(client)
	ctx := context.Background()

	require.NoError(t, svc.SetUserNetwork(ctx, 42, "testnet"))
	require.NoError(t, svc.SetUserNetwork(ctx, 42, "mainnet"))

	prefs, err := svc.Effective(ctx, 100, 42)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", prefs.Network)
}
