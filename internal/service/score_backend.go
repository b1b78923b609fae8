package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrBackendUnavailable is returned by a backend that was constructed
// without working credentials. Callers treat it like any other backend
// failure: the answer scores 0.0.
var ErrBackendUnavailable = errors.New("score backend is not configured")

// ScoreBackend produces a numeric score in [0,1] for a grading prompt.
// Implementations never panic; every failure surfaces as a non-nil error
// and the caller downgrades it to the 0.0 sentinel.
type ScoreBackend interface {
	GenerateScore(ctx context.Context, prompt string) (float64, error)
}

// inertBackend is the explicit "unconfigured" variant: construction without
// credentials yields one of these instead of a half-initialized client.
type inertBackend struct {
	provider string
}

func newInertBackend(provider string) ScoreBackend {
	log.Warn().Str("provider", provider).Msg("Score backend credentials missing, backend is inert")
	return &inertBackend{provider: provider}
}

func (b *inertBackend) GenerateScore(ctx context.Context, prompt string) (float64, error) {
	return 0.0, ErrBackendUnavailable
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
