package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emissary-bot/emissary/pkg/config"
)

type stubNamer struct {
	name string
	err  error
}

func (s *stubNamer) NameTopic(context.Context, string, string) (string, error) {
	return s.name, s.err
}

func TestRouter_TopicNamePrefersModel(t *testing.T) {
	r := &Router{
		namer:    &stubNamer{name: " Treasury Report "},
		modelCfg: config.ModelConfig{TopicNaming: "namer-model"},
	}

	assert.Equal(t, "Treasury Report", r.topicName(context.Background(), "show me the treasury report please"))
}

func TestRouter_TopicNameFallsBackOnError(t *testing.T) {
	r := &Router{
		namer:    &stubNamer{err: errors.New("model unavailable")},
		modelCfg: config.ModelConfig{TopicNaming: "namer-model"},
	}

	assert.Equal(t, "hello there", r.topicName(context.Background(), "hello there"))
}

func TestRouter_TopicNameFallsBackOnEmptyAnswer(t *testing.T) {
	r := &Router{
		namer:    &stubNamer{name: "   "},
		modelCfg: config.ModelConfig{TopicNaming: "namer-model"},
	}

	assert.Equal(t, "hello there", r.topicName(context.Background(), "hello there"))
}

func TestRouter_TopicNameHeuristicWithoutModel(t *testing.T) {
	r := &Router{namer: &stubNamer{name: "never used"}}

	assert.Equal(t, "hello there", r.topicName(context.Background(), "hello there"))
}

func TestRouter_TopicNameCapsOverlongModelAnswer(t *testing.T) {
	r := &Router{
		namer:    &stubNamer{name: strings.Repeat("word ", 20)},
		modelCfg: config.ModelConfig{TopicNaming: "namer-model"},
	}

	got := r.topicName(context.Background(), "irrelevant")
	assert.LessOrEqual(t, len(got), maxTopicNameLength)
	assert.NotEmpty(t, got)
}
