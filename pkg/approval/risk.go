package approval

import (
	"strings"

	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/tools"
)

// RiskLevel orders approval risk from low to critical.
type RiskLevel int

// Risk levels, ordered.
const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

// String returns the storage form of the level.
func (r RiskLevel) String() string {
	switch r {
	case RiskCritical:
		return "critical"
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	default:
		return "low"
	}
}

// Confidence grades how much signal the assessment extracted.
type Confidence string

// Confidence grades.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// batchCriticalThreshold: a batch of this many items is critical regardless
// of value.
const batchCriticalThreshold = 5

// Value thresholds (in whole units after nano scaling).
const (
	valueCritical = 100.0
	valueHigh     = 10.0
	valueMedium   = 1.0
)

// Assessment is the outcome of a risk evaluation.
type Assessment struct {
	Level      RiskLevel
	Confidence Confidence

	// ValueEstimate and GasEstimate are in whole units; zero when the
	// input carried no recognizable amount.
	ValueEstimate float64
	GasEstimate   float64
}

// Assess is a pure function scoring one gated tool call. It never inspects
// anything beyond its arguments, so identical inputs always produce
// identical assessments.
func Assess(toolClass tools.Class, input map[string]interface{}, profile models.RiskProfile) Assessment {
	level := baseRisk(toolClass)

	value, valueKnown := extractAmount(input, isValueKey)
	gas, gasKnown := extractAmount(input, isGasKey)

	// Profile shifts the baseline, never below low.
	switch profile {
	case models.RiskProfileCautious:
		level = level.bump(1)
	case models.RiskProfileAdvanced:
		level = level.bump(-1)
	}

	if batchSize(input) >= batchCriticalThreshold {
		level = RiskCritical
	}

	switch {
	case value >= valueCritical:
		level = RiskCritical
	case value >= valueHigh:
		level = level.atLeast(RiskHigh)
	case value >= valueMedium:
		level = level.atLeast(RiskMedium)
	}

	confidence := ConfidenceLow
	switch {
	case valueKnown && gasKnown:
		confidence = ConfidenceHigh
	case valueKnown || gasKnown:
		confidence = ConfidenceMedium
	}

	return Assessment{
		Level:         level,
		Confidence:    confidence,
		ValueEstimate: value,
		GasEstimate:   gas,
	}
}

func baseRisk(class tools.Class) RiskLevel {
	switch class {
	case tools.ClassBatch:
		return RiskCritical
	case tools.ClassWrite:
		return RiskHigh
	case tools.ClassProof:
		return RiskMedium
	default:
		return RiskLow
	}
}

func (r RiskLevel) bump(delta int) RiskLevel {
	n := int(r) + delta
	if n < int(RiskLow) {
		n = int(RiskLow)
	}
	if n > int(RiskCritical) {
		n = int(RiskCritical)
	}
	return RiskLevel(n)
}

func (r RiskLevel) atLeast(floor RiskLevel) RiskLevel {
	if r < floor {
		return floor
	}
	return r
}

func isValueKey(key string) bool {
	k := strings.ToLower(key)
	for _, hint := range []string{"amount", "value", "ton", "coins", "send"} {
		if strings.Contains(k, hint) {
			return true
		}
	}
	return false
}

func isGasKey(key string) bool {
	k := strings.ToLower(key)
	for _, hint := range []string{"gas", "fee", "fwd_fee", "storage_fee"} {
		if strings.Contains(k, hint) {
			return true
		}
	}
	return false
}

// extractAmount walks the input recursively summing numeric values whose
// key matches the predicate. Keys containing "nano" are scaled down by 1e9.
func extractAmount(node interface{}, match func(string) bool) (float64, bool) {
	return walkAmount(node, "", match)
}

func walkAmount(node interface{}, key string, match func(string) bool) (float64, bool) {
	switch v := node.(type) {
	case map[string]interface{}:
		var total float64
		found := false
		for k, child := range v {
			if n, ok := walkAmount(child, k, match); ok {
				total += n
				found = true
			}
		}
		return total, found
	case []interface{}:
		var total float64
		found := false
		for _, child := range v {
			if n, ok := walkAmount(child, key, match); ok {
				total += n
				found = true
			}
		}
		return total, found
	default:
		if key == "" || !match(key) {
			return 0, false
		}
		n, ok := asNumber(v)
		if !ok {
			return 0, false
		}
		if strings.Contains(strings.ToLower(key), "nano") {
			n /= 1e9
		}
		return n, true
	}
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		return parseNumericString(n)
	default:
		return 0, false
	}
}

func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var n float64
	var seen bool
	frac := 0.0
	fracDiv := 1.0
	inFrac := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seen = true
			if inFrac {
				fracDiv *= 10
				frac += float64(r-'0') / fracDiv
			} else {
				n = n*10 + float64(r-'0')
			}
		case r == '.' && !inFrac:
			inFrac = true
		default:
			return 0, false
		}
	}
	if !seen {
		return 0, false
	}
	return n + frac, true
}

// batchSize returns the largest array length in the input, treating any
// list-valued field as a potential batch.
func batchSize(input map[string]interface{}) int {
	maxLen := 0
	for _, v := range input {
		if arr, ok := v.([]interface{}); ok && len(arr) > maxLen {
			maxLen = len(arr)
		}
	}
	return maxLen
}
