package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff(t *testing.T) {
	base := 30 * time.Second

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{name: "first retry", attempt: 1, want: 30 * time.Second},
		{name: "second retry", attempt: 2, want: 60 * time.Second},
		{name: "third retry", attempt: 3, want: 120 * time.Second},
		{name: "fourth retry", attempt: 4, want: 240 * time.Second},
		{name: "zero clamps to first", attempt: 0, want: 30 * time.Second},
		{name: "negative clamps to first", attempt: -3, want: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Backoff(base, tt.attempt))
		})
	}
}
