package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// chainEnvelope is the canonical structure hashed for each chain link.
// encoding/json marshals struct fields in declaration order, so the field
// order here IS the wire order; map-valued metadata is marshaled with
// lexicographically sorted keys (encoding/json guarantee).
type chainEnvelope struct {
	CreatedAtIso string                 `json:"createdAtIso"`
	EventType    string                 `json:"eventType"`
	Metadata     map[string]interface{} `json:"metadata"`
	PreviousHash string                 `json:"previousHash"`
}

// ComputeChainHash returns the hex SHA-256 over the canonical JSON of
// {previousHash, eventType, metadata, createdAtIso}. previousHash is the
// empty string for the first event.
func ComputeChainHash(previousHash, eventType string, metadata map[string]interface{}, createdAtIso string) (string, error) {
	env := chainEnvelope{
		CreatedAtIso: createdAtIso,
		EventType:    eventType,
		Metadata:     metadata,
		PreviousHash: previousHash,
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize audit event: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
