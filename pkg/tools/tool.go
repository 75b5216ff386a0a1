// Package tools defines the tool catalog surface the agent executor hands
// to the model, plus the policy layer that enforces timeouts, caching, and
// approval requirements before any tool runs.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Class describes a tool's effect profile, driving policy decisions.
type Class string

// Tool classes.
const (
	ClassReadOnly  Class = "read_only"
	ClassWrite     Class = "write"
	ClassBatch     Class = "batch_write"
	ClassProof     Class = "proof"
	ClassSecrets   Class = "secrets"
	ClassExpensive Class = "expensive_compute"
)

// Tool is one callable capability exposed to the model.
type Tool interface {
	Name() string
	Description() string
	// ParametersSchema is the JSON Schema of the tool input.
	ParametersSchema() map[string]interface{}
	Class() Class
	// NeedsApproval reports whether this input requires explicit user
	// consent before execution.
	NeedsApproval(input map[string]interface{}) bool
	Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error)
}

// FuncTool builds a Tool from plain values and an execute function.
type FuncTool struct {
	ToolName    string
	ToolDesc    string
	Schema      map[string]interface{}
	ToolClass   Class
	ApprovalFn  func(input map[string]interface{}) bool
	ExecuteFn   func(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error)
}

func (t *FuncTool) Name() string                            { return t.ToolName }
func (t *FuncTool) Description() string                     { return t.ToolDesc }
func (t *FuncTool) ParametersSchema() map[string]interface{} { return t.Schema }
func (t *FuncTool) Class() Class                            { return t.ToolClass }

func (t *FuncTool) NeedsApproval(input map[string]interface{}) bool {
	if t.ApprovalFn != nil {
		return t.ApprovalFn(input)
	}
	return false
}

func (t *FuncTool) Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	if t.ExecuteFn == nil {
		return nil, fmt.Errorf("tool %s has no execute function", t.ToolName)
	}
	return t.ExecuteFn(ctx, input)
}

// CanonicalInput renders a tool input as deterministic JSON (sorted keys),
// used for cache keys.
func CanonicalInput(input map[string]interface{}) string {
	if len(input) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, _ := json.Marshal(k)
		vb, err := json.Marshal(input[k])
		if err != nil {
			vb = []byte("null")
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, vb...)
	}
	return string(append(buf, '}'))
}
