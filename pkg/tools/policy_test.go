package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/pkg/models"
)

func stubTool(name string, class Class) *FuncTool {
	return &FuncTool{
		ToolName:  name,
		ToolDesc:  name + " tool",
		Schema:    map[string]interface{}{"type": "object"},
		ToolClass: class,
		ExecuteFn: func(_ context.Context, input map[string]interface{}) (map[string]interface{}, error) {
			return map[string]interface{}{"ok": true}, nil
		},
	}
}

func testRegistry(t *testing.T, raw ...Tool) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, tool := range raw {
		require.NoError(t, reg.Register(tool))
	}
	return reg
}

func TestCatalog_PrivateChat(t *testing.T) {
	reg := testRegistry(t,
		stubTool("balance", ClassReadOnly),
		stubTool("send", ClassWrite),
		stubTool("batch_send", ClassBatch),
		stubTool("export_key", ClassSecrets),
	)

	catalog := reg.Catalog(Policy{ChatType: models.ChatTypePrivate})

	names := make([]string, 0, len(catalog))
	for _, tool := range catalog {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"balance", "send", "batch_send"}, names)
}

func TestCatalog_GroupChatDropsWrites(t *testing.T) {
	reg := testRegistry(t,
		stubTool("balance", ClassReadOnly),
		stubTool("send", ClassWrite),
		stubTool("prove", ClassProof),
	)

	for _, chatType := range []models.ChatType{models.ChatTypeGroup, models.ChatTypeForum} {
		catalog := reg.Catalog(Policy{ChatType: chatType})
		require.Len(t, catalog, 1, "chat type %s", chatType)
		assert.Equal(t, "balance", catalog[0].Name())
	}
}

func TestCatalog_CacheSpansTurns(t *testing.T) {
	calls := 0
	raw := stubTool("balance", ClassReadOnly)
	raw.ExecuteFn = func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
		calls++
		return map[string]interface{}{"balance": "5"}, nil
	}
	reg := testRegistry(t, raw)

	ctx := context.Background()
	input := map[string]interface{}{"address": "EQabc"}

	// Each turn builds its own catalog; the result cache is shared through
	// the registry, so the second turn's identical call is served from it.
	first := reg.Catalog(Policy{ChatType: models.ChatTypePrivate})
	_, err := first[0].Execute(ctx, input)
	require.NoError(t, err)

	second := reg.Catalog(Policy{ChatType: models.ChatTypePrivate})
	_, err = second[0].Execute(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "cross-catalog call should hit the shared cache")
}

func TestPolicyWrap_NeedsApprovalEscalation(t *testing.T) {
	tests := []struct {
		name  string
		class Class
		input map[string]interface{}
		want  bool
	}{
		{name: "write always gated", class: ClassWrite, input: map[string]interface{}{}, want: true},
		{name: "batch always gated", class: ClassBatch, input: map[string]interface{}{}, want: true},
		{name: "read only ungated", class: ClassReadOnly, input: map[string]interface{}{}, want: false},
		{name: "small compute ungated", class: ClassExpensive, input: map[string]interface{}{"q": "x"}, want: false},
		{
			name:  "oversized compute gated",
			class: ClassExpensive,
			input: map[string]interface{}{"q": strings.Repeat("x", approvalInputSizeBytes)},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := PolicyWrap(stubTool("t", tt.class), Policy{ChatType: models.ChatTypePrivate}, nil)
			assert.Equal(t, tt.want, wrapped.NeedsApproval(tt.input))
		})
	}
}

func TestPolicyWrap_RawApprovalJudgmentSurvives(t *testing.T) {
	raw := stubTool("prove", ClassProof)
	raw.ApprovalFn = func(map[string]interface{}) bool { return true }

	wrapped := PolicyWrap(raw, Policy{ChatType: models.ChatTypePrivate}, nil)
	assert.True(t, wrapped.NeedsApproval(map[string]interface{}{}))
}

func TestPolicyWrap_ReadOnlyCache(t *testing.T) {
	calls := 0
	raw := stubTool("balance", ClassReadOnly)
	raw.ExecuteFn = func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
		calls++
		return map[string]interface{}{"balance": "5"}, nil
	}

	wrapped := PolicyWrap(raw, Policy{ChatType: models.ChatTypePrivate}, nil)
	ctx := context.Background()
	input := map[string]interface{}{"address": "EQabc"}

	first, err := wrapped.Execute(ctx, input)
	require.NoError(t, err)
	second, err := wrapped.Execute(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second call should be served from cache")

	// A different input misses the cache.
	_, err = wrapped.Execute(ctx, map[string]interface{}{"address": "EQxyz"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPolicyWrap_WritesNeverCached(t *testing.T) {
	calls := 0
	raw := stubTool("send", ClassWrite)
	raw.ExecuteFn = func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
		calls++
		return map[string]interface{}{"hash": "abc"}, nil
	}

	wrapped := PolicyWrap(raw, Policy{ChatType: models.ChatTypePrivate}, nil)
	ctx := context.Background()
	input := map[string]interface{}{"amount": 1}

	_, err := wrapped.Execute(ctx, input)
	require.NoError(t, err)
	_, err = wrapped.Execute(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCanonicalInput(t *testing.T) {
	assert.Equal(t, "{}", CanonicalInput(nil))
	assert.Equal(t, "{}", CanonicalInput(map[string]interface{}{}))

	got := CanonicalInput(map[string]interface{}{
		"b": 2,
		"a": "x",
		"c": []interface{}{1, 2},
	})
	assert.Equal(t, `{"a":"x","b":2,"c":[1,2]}`, got)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(stubTool("b", ClassReadOnly)))
	require.NoError(t, reg.Register(stubTool("a", ClassReadOnly)))

	err := reg.Register(stubTool("a", ClassWrite))
	assert.Error(t, err)

	_, ok := reg.Get("a")
	assert.True(t, ok)
	_, ok = reg.Get("missing")
	assert.False(t, ok)

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Name())
	assert.Equal(t, "a", all[1].Name())
}
