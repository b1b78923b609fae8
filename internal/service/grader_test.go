package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubBackend records the prompt it receives and returns a canned result.
type stubBackend struct {
	score  float64
	err    error
	prompt string
}

func (b *stubBackend) GenerateScore(ctx context.Context, prompt string) (float64, error) {
	b.prompt = prompt
	return b.score, b.err
}

func allGraders() map[string]Grader {
	return map[string]Grader{
		"similarity": NewSimilarityGrader(),
		"llm":        NewLLMGrader(&stubBackend{score: 0.5}),
	}
}

func TestGraderExactMatch(t *testing.T) {
	for name, grader := range allGraders() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 1.0, grader.Grade(context.Background(), "Python is great", "Python is great", ""))
			assert.Equal(t, 1.0, grader.Grade(context.Background(), "Paris", "  paris  ", ""))
			assert.Equal(t, 1.0, grader.Grade(context.Background(), "THE ANSWER", "the answer", ""))
		})
	}
}

func TestGraderEmptyInput(t *testing.T) {
	for name, grader := range allGraders() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, grader.Grade(context.Background(), "", "anything", ""))
			assert.Equal(t, 0.0, grader.Grade(context.Background(), "anything", "", ""))
			assert.Equal(t, 0.0, grader.Grade(context.Background(), "", "", ""))
		})
	}
}

func TestLLMGraderUsesBackendScore(t *testing.T) {
	backend := &stubBackend{score: 0.42}
	grader := NewLLMGrader(backend)

	score := grader.Grade(context.Background(), "gravity pulls objects", "objects attract each other", "")
	assert.Equal(t, 0.42, score)
	assert.NotEmpty(t, backend.prompt)
}

func TestLLMGraderBackendFailureScoresZero(t *testing.T) {
	backend := &stubBackend{err: errors.New("connection refused")}
	grader := NewLLMGrader(backend)

	assert.Equal(t, 0.0, grader.Grade(context.Background(), "expected text", "different text", ""))
}

func TestLLMGraderInertBackendScoresZero(t *testing.T) {
	grader := NewLLMGrader(newInertBackend("test"))

	assert.Equal(t, 0.0, grader.Grade(context.Background(), "expected text", "different text", ""))
}

func TestLLMGraderClampsBackendScore(t *testing.T) {
	grader := NewLLMGrader(&stubBackend{score: 1.7})
	assert.Equal(t, 1.0, grader.Grade(context.Background(), "expected text", "different text", ""))

	grader = NewLLMGrader(&stubBackend{score: -0.3})
	assert.Equal(t, 0.0, grader.Grade(context.Background(), "expected text", "different text", ""))
}

func TestPreparePromptDefaultTemplate(t *testing.T) {
	prompt := preparePrompt("the mitochondria", "powerhouse of the cell", "")

	assert.Contains(t, prompt, "the mitochondria")
	assert.Contains(t, prompt, "powerhouse of the cell")
	assert.NotContains(t, prompt, placeholderExpected)
	assert.NotContains(t, prompt, placeholderActual)
}

func TestPreparePromptCustomTemplate(t *testing.T) {
	template := "Compare {expected} with {actual} and return a score."
	prompt := preparePrompt("foo", "bar", template)

	assert.Equal(t, "Compare foo with bar and return a score.", prompt)
}

func TestPreparePromptFallbackOnMalformedTemplate(t *testing.T) {
	// A template missing the placeholders still gets both values injected.
	template := "Grade the answer strictly."
	prompt := preparePrompt("expected value here", "actual value here", template)

	assert.Contains(t, prompt, "Grade the answer strictly.")
	assert.Contains(t, prompt, "expected value here")
	assert.Contains(t, prompt, "actual value here")
}

func TestPreparePromptFallbackOnPartialTemplate(t *testing.T) {
	// Only one placeholder present counts as malformed too.
	template := "Expected was {expected}, grade it."
	prompt := preparePrompt("alpha", "beta", template)

	assert.Contains(t, prompt, "alpha")
	assert.Contains(t, prompt, "beta")
}
