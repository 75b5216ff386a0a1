package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamer_NameTopic(t *testing.T) {
	llm := &scriptedLLM{script: []func() (<-chan Chunk, error){
		streamOf(&TextChunk{Content: "  Treasury "}, &TextChunk{Content: "Report\n"}),
	}}

	name, err := NewNamer(llm).NameTopic(context.Background(), "namer-model", "show me the treasury report")
	require.NoError(t, err)
	assert.Equal(t, "Treasury Report", name)

	require.Len(t, llm.calls, 1)
	assert.Equal(t, "namer-model", llm.calls[0].ModelID)
	assert.NotEmpty(t, llm.calls[0].SystemPrompt)
	assert.Nil(t, llm.calls[0].Tools)
}

func TestNamer_NameTopicStreamError(t *testing.T) {
	llm := &scriptedLLM{script: []func() (<-chan Chunk, error){
		streamOf(&ErrorChunk{Message: "model unavailable"}),
	}}

	_, err := NewNamer(llm).NameTopic(context.Background(), "namer-model", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestNamer_NameTopicCallError(t *testing.T) {
	llm := &scriptedLLM{script: []func() (<-chan Chunk, error){
		callFailure(errors.New("dial refused")),
	}}

	_, err := NewNamer(llm).NameTopic(context.Background(), "namer-model", "hello")
	assert.Error(t, err)
}
