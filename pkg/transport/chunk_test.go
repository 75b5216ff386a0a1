package transport

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunks := ChunkText("hello world", 100)
	assert.Equal(t, []string{"hello world"}, chunks)
}

func TestChunkText_Empty(t *testing.T) {
	assert.Empty(t, ChunkText("", 100))
	assert.Empty(t, ChunkText("   \n ", 100))
}

func TestChunkText_PrefersNewline(t *testing.T) {
	text := "first line\nsecond line that pushes past the limit"
	chunks := ChunkText(text, 20)

	require.NotEmpty(t, chunks)
	assert.Equal(t, "first line", chunks[0])
}

func TestChunkText_FallsBackToSpace(t *testing.T) {
	text := "alpha beta gamma delta epsilon"
	chunks := ChunkText(text, 12)

	require.NotEmpty(t, chunks)
	assert.Equal(t, "alpha beta", chunks[0])
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 12)
	}
}

func TestChunkText_HardCutWithoutSeparators(t *testing.T) {
	text := strings.Repeat("x", 25)
	chunks := ChunkText(text, 10)

	assert.Equal(t, []string{
		strings.Repeat("x", 10),
		strings.Repeat("x", 10),
		strings.Repeat("x", 5),
	}, chunks)
}

func TestChunkText_HardCutKeepsRunesWhole(t *testing.T) {
	// 2-byte runes with a limit that lands mid-rune on a straight byte cut.
	text := strings.Repeat("é", 20)
	chunks := ChunkText(text, 11)

	require.NotEmpty(t, chunks)
	var rebuilt strings.Builder
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk split a rune: %q", c)
		assert.LessOrEqual(t, len(c), 11)
		rebuilt.WriteString(c)
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestChunkText_NoContentLost(t *testing.T) {
	text := strings.Repeat("some words go here and there\n", 50)
	chunks := ChunkText(text, 100)

	joined := strings.Join(chunks, " ")
	assert.Equal(t,
		strings.Join(strings.Fields(text), " "),
		strings.Join(strings.Fields(joined), " "))
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
	}
}

func TestChunkText_ZeroLimitUsesDefault(t *testing.T) {
	text := strings.Repeat("y", MaxMessageLength+10)
	chunks := ChunkText(text, 0)

	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], MaxMessageLength)
}
