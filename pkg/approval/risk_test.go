package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/tools"
)

func TestAssess_BaseRiskByClass(t *testing.T) {
	tests := []struct {
		name  string
		class tools.Class
		want  RiskLevel
	}{
		{name: "batch is critical", class: tools.ClassBatch, want: RiskCritical},
		{name: "write is high", class: tools.ClassWrite, want: RiskHigh},
		{name: "proof is medium", class: tools.ClassProof, want: RiskMedium},
		{name: "read only is low", class: tools.ClassReadOnly, want: RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Assess(tt.class, map[string]interface{}{}, models.RiskProfileBalanced)
			assert.Equal(t, tt.want, a.Level)
		})
	}
}

func TestAssess_ProfileAdjustment(t *testing.T) {
	input := map[string]interface{}{}

	cautious := Assess(tools.ClassProof, input, models.RiskProfileCautious)
	assert.Equal(t, RiskHigh, cautious.Level)

	advanced := Assess(tools.ClassProof, input, models.RiskProfileAdvanced)
	assert.Equal(t, RiskLow, advanced.Level)

	// Clamped at the edges.
	low := Assess(tools.ClassReadOnly, input, models.RiskProfileAdvanced)
	assert.Equal(t, RiskLow, low.Level)

	critical := Assess(tools.ClassBatch, input, models.RiskProfileCautious)
	assert.Equal(t, RiskCritical, critical.Level)
}

func TestAssess_NanoAmountScaling(t *testing.T) {
	// 2.5e9 nano units = 2.5 whole units.
	input := map[string]interface{}{
		"amount_nano": float64(2_500_000_000),
	}

	a := Assess(tools.ClassWrite, input, models.RiskProfileBalanced)
	assert.InDelta(t, 2.5, a.ValueEstimate, 1e-9)
	assert.Equal(t, RiskHigh, a.Level)
	assert.Equal(t, ConfidenceMedium, a.Confidence)
}

func TestAssess_ValueThresholds(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   RiskLevel
	}{
		{name: "below medium", amount: 0.5, want: RiskLow},
		{name: "medium", amount: 1, want: RiskMedium},
		{name: "high", amount: 10, want: RiskHigh},
		{name: "critical", amount: 150, want: RiskCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := map[string]interface{}{"amount": tt.amount}
			a := Assess(tools.ClassReadOnly, input, models.RiskProfileBalanced)
			assert.Equal(t, tt.want, a.Level)
		})
	}
}

func TestAssess_BatchSizeForcesCritical(t *testing.T) {
	items := make([]interface{}, 5)
	for i := range items {
		items[i] = map[string]interface{}{"amount": 0.1}
	}
	input := map[string]interface{}{"transfers": items}

	a := Assess(tools.ClassWrite, input, models.RiskProfileAdvanced)
	assert.Equal(t, RiskCritical, a.Level)

	// Four items stay below the threshold.
	input["transfers"] = items[:4]
	a = Assess(tools.ClassWrite, input, models.RiskProfileAdvanced)
	assert.NotEqual(t, RiskCritical, a.Level)
}

func TestAssess_Confidence(t *testing.T) {
	none := Assess(tools.ClassWrite, map[string]interface{}{"destination": "EQabc"}, models.RiskProfileBalanced)
	assert.Equal(t, ConfidenceLow, none.Confidence)

	valueOnly := Assess(tools.ClassWrite, map[string]interface{}{"amount": 1.0}, models.RiskProfileBalanced)
	assert.Equal(t, ConfidenceMedium, valueOnly.Confidence)

	both := Assess(tools.ClassWrite, map[string]interface{}{
		"amount": 1.0,
		"fee":    0.05,
	}, models.RiskProfileBalanced)
	assert.Equal(t, ConfidenceHigh, both.Confidence)
	assert.InDelta(t, 0.05, both.GasEstimate, 1e-9)
}

func TestAssess_NestedAndStringAmounts(t *testing.T) {
	input := map[string]interface{}{
		"messages": []interface{}{
			map[string]interface{}{"amount": "1.5"},
			map[string]interface{}{"amount": "2.5"},
		},
	}

	a := Assess(tools.ClassWrite, input, models.RiskProfileBalanced)
	assert.InDelta(t, 4.0, a.ValueEstimate, 1e-9)

	// Non-numeric strings carry no signal.
	b := Assess(tools.ClassWrite, map[string]interface{}{"amount": "all of it"}, models.RiskProfileBalanced)
	assert.Zero(t, b.ValueEstimate)
	assert.Equal(t, ConfidenceLow, b.Confidence)
}

func TestAssess_Deterministic(t *testing.T) {
	input := map[string]interface{}{"amount": 3.0, "fee": 0.1, "destination": "EQabc"}
	first := Assess(tools.ClassWrite, input, models.RiskProfileCautious)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Assess(tools.ClassWrite, input, models.RiskProfileCautious))
	}
}

func TestRiskLevelString(t *testing.T) {
	assert.Equal(t, "low", RiskLow.String())
	assert.Equal(t, "medium", RiskMedium.String())
	assert.Equal(t, "high", RiskHigh.String())
	assert.Equal(t, "critical", RiskCritical.String())
}

func TestNewCallbackToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := newCallbackToken()
		assert.NoError(t, err)
		assert.Len(t, token, tokenLength)
		for _, r := range token {
			assert.Contains(t, tokenAlphabet, string(r))
		}
		assert.False(t, seen[token], "token collision: %s", token)
		seen[token] = true
	}
}
