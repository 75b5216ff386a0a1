package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/emissary-bot/emissary/pkg/models"
)

// Policy parameters.
const (
	// executeTimeout bounds every tool execution.
	executeTimeout = 20 * time.Second

	// readOnlyCacheTTL is how long read-only results stay cached.
	readOnlyCacheTTL = 30 * time.Second

	// approvalInputSizeBytes forces approval on expensive-compute tools
	// when the input payload is at least this large.
	approvalInputSizeBytes = 6000
)

// Policy controls which tools survive catalog preparation for one turn.
type Policy struct {
	// ChatType gates the catalog: non-private chats lose write tools.
	ChatType models.ChatType
}

// ResultCache stores recent read-only tool results keyed by tool name and
// canonical input. The Registry owns one instance so the TTL spans turns,
// not single catalog builds.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    map[string]interface{}
	expiresAt time.Time
}

// NewResultCache creates an empty ResultCache.
func NewResultCache() *ResultCache {
	return &ResultCache{entries: make(map[string]cacheEntry)}
}

func (c *ResultCache) get(key string) (map[string]interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.result, true
}

func (c *ResultCache) put(key string, result map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, expiresAt: time.Now().Add(readOnlyCacheTTL)}
}

// PolicyWrap composes the execution policy around a raw tool: a hard
// execute timeout, a short result cache for read-only tools, and approval
// escalation for critical writes and oversized compute inputs. A nil cache
// gives the wrapper a private one.
func PolicyWrap(raw Tool, policy Policy, cache *ResultCache) Tool {
	if cache == nil {
		cache = NewResultCache()
	}
	return &policyTool{raw: raw, policy: policy, cache: cache}
}

type policyTool struct {
	raw    Tool
	policy Policy
	cache  *ResultCache
}

func (p *policyTool) Name() string                             { return p.raw.Name() }
func (p *policyTool) Description() string                      { return p.raw.Description() }
func (p *policyTool) ParametersSchema() map[string]interface{} { return p.raw.ParametersSchema() }
func (p *policyTool) Class() Class                             { return p.raw.Class() }

// NeedsApproval escalates beyond the raw tool's own judgment: batch and
// write-class tools always need approval, and expensive compute does when
// the input is large enough to be suspicious.
func (p *policyTool) NeedsApproval(input map[string]interface{}) bool {
	switch p.raw.Class() {
	case ClassWrite, ClassBatch:
		return true
	case ClassExpensive:
		if raw, err := json.Marshal(input); err == nil && len(raw) >= approvalInputSizeBytes {
			return true
		}
	}
	return p.raw.NeedsApproval(input)
}

// Execute runs the raw tool under the policy timeout, consulting the
// read-only cache first. Write and expensive tools are never cached.
func (p *policyTool) Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	cacheable := p.raw.Class() == ClassReadOnly
	var key string
	if cacheable {
		key = p.raw.Name() + ":" + CanonicalInput(input)
		if result, ok := p.cache.get(key); ok {
			return result, nil
		}
	}

	execCtx, cancel := context.WithTimeout(ctx, executeTimeout)
	defer cancel()

	result, err := p.raw.Execute(execCtx, input)
	if err != nil {
		if execCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("tool %s timed out after %s: %w", p.raw.Name(), executeTimeout, err)
		}
		return nil, err
	}

	if cacheable {
		p.cache.put(key, result)
	}
	return result, nil
}
