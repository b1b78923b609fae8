package service

import (
	"context"
	"strings"
)

// Grader scores an actual answer against an expected answer, returning a
// value in [0.0, 1.0]. The optional template (empty string when absent) is
// only meaningful to the LLM strategy; other strategies ignore it.
//
// Graders absorb their own failures: a backend outage or a degenerate input
// lowers the score to 0.0, it never raises past this boundary.
type Grader interface {
	Grade(ctx context.Context, expected, actual, template string) float64
}

// resultEvaluator is the strategy-specific part of a grader. The shared
// empty-input and exact-match policy lives in grader.Grade, so evaluators
// only see pairs that actually need evaluation.
type resultEvaluator interface {
	evaluateResult(ctx context.Context, expected, actual, template string) float64
}

type grader struct {
	eval resultEvaluator
}

func (g *grader) Grade(ctx context.Context, expected, actual, template string) float64 {
	if expected == "" || actual == "" {
		return 0.0
	}

	// Case-insensitive exact match short-circuits the strategy.
	if strings.ToLower(strings.TrimSpace(expected)) == strings.ToLower(strings.TrimSpace(actual)) {
		return 1.0
	}

	return g.eval.evaluateResult(ctx, expected, actual, template)
}
