package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	placeholderExpected = "{expected}"
	placeholderActual   = "{actual}"

	defaultGradingTemplate = "You are an automated grading assistant.\n" +
		"Expected Answer: {expected}\n" +
		"Student Answer: {actual}\n" +
		"Grade the student's answer based on the expected answer.\n" +
		"Return ONLY a numeric score between 0.0 and 1.0.\n" +
		"0.0 means completely wrong, 1.0 means correct match."

	// Appended when a custom template is missing a placeholder, so the
	// backend always receives both values regardless of the template.
	fallbackContextBlock = "\n\nContext for grading:\nExpected: {expected}\nStudent Answer: {actual}"
)

// NewLLMGrader returns a grader that delegates scoring to the given
// ScoreBackend. Backend failures are downgraded to a 0.0 score.
func NewLLMGrader(backend ScoreBackend) Grader {
	return &grader{eval: &llmEvaluator{backend: backend}}
}

type llmEvaluator struct {
	backend ScoreBackend
}

func (e *llmEvaluator) evaluateResult(ctx context.Context, expected, actual, template string) float64 {
	prompt := preparePrompt(expected, actual, template)

	score, err := e.backend.GenerateScore(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("Score backend failed, falling back to 0.0")
		return 0.0
	}
	return clampScore(score)
}

// preparePrompt fills the grading template with the expected and actual
// answers. An empty template selects the built-in default.
func preparePrompt(expected, actual, template string) string {
	active := template
	if active == "" {
		active = defaultGradingTemplate
	}

	if !strings.Contains(active, placeholderExpected) || !strings.Contains(active, placeholderActual) {
		active += fallbackContextBlock
	}

	return strings.NewReplacer(
		placeholderExpected, expected,
		placeholderActual, actual,
	).Replace(active)
}
