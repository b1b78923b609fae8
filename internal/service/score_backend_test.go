package service

import (
	"context"
	"testing"

	"github.com/dqthao/Whimbrel/config"
	"github.com/stretchr/testify/assert"
)

func TestInertBackendReturnsSentinel(t *testing.T) {
	backend := newInertBackend("test")

	score, err := backend.GenerateScore(context.Background(), "any prompt")
	assert.Equal(t, 0.0, score)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestOpenAIBackendWithoutCredentialsIsInert(t *testing.T) {
	backend := NewOpenAIBackend(&config.Config{})

	score, err := backend.GenerateScore(context.Background(), "score this")
	assert.Equal(t, 0.0, score)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestGeminiBackendWithoutCredentialsIsInert(t *testing.T) {
	backend := NewGeminiBackend(&config.Config{})

	score, err := backend.GenerateScore(context.Background(), "score this")
	assert.Equal(t, 0.0, score)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-0.5))
	assert.Equal(t, 0.0, clampScore(0.0))
	assert.Equal(t, 0.65, clampScore(0.65))
	assert.Equal(t, 1.0, clampScore(1.0))
	assert.Equal(t, 1.0, clampScore(1.5))
}
