package models

// ResponseStyle controls the verbosity of assistant replies.
type ResponseStyle string

// RiskProfile controls approval strictness and risk-level adjustment.
type RiskProfile string

// Preference value constants.
const (
	ResponseStyleConcise  ResponseStyle = "concise"
	ResponseStyleDetailed ResponseStyle = "detailed"

	RiskProfileCautious RiskProfile = "cautious"
	RiskProfileBalanced RiskProfile = "balanced"
	RiskProfileAdvanced RiskProfile = "advanced"
)

// DefaultNetwork is the system-default network when neither chat nor user
// preferences set one.
const DefaultNetwork = "mainnet"

// Preferences are the effective per-turn settings after merging
// chat overrides over user defaults over system defaults.
type Preferences struct {
	ResponseStyle ResponseStyle `json:"response_style"`
	RiskProfile   RiskProfile   `json:"risk_profile"`
	Network       string        `json:"network"`
	WalletAddress string        `json:"wallet_address,omitempty"`
}

// DefaultPreferences returns the system defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		ResponseStyle: ResponseStyleConcise,
		RiskProfile:   RiskProfileBalanced,
		Network:       DefaultNetwork,
	}
}
