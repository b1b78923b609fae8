package service

import (
	"strings"

	"github.com/dqthao/Whimbrel/config"
)

const (
	gradingEngineLLM  = "LLM"
	llmProviderOpenAI = "OPENAI"
)

// GraderFactory selects the active grading strategy from configuration.
type GraderFactory interface {
	GetGrader() Grader
}

type graderFactory struct {
	cfg *config.Config
}

func NewGraderFactory(cfg *config.Config) GraderFactory {
	return &graderFactory{cfg: cfg}
}

// GetGrader returns a freshly constructed grader for one grading pass.
// Unrecognized engine or provider values fall back to the defaults rather
// than failing.
func (f *graderFactory) GetGrader() Grader {
	if strings.ToUpper(f.cfg.Grading.Engine) == gradingEngineLLM {
		return NewLLMGrader(f.newScoreBackend())
	}
	return NewSimilarityGrader()
}

func (f *graderFactory) newScoreBackend() ScoreBackend {
	if strings.ToUpper(f.cfg.Grading.Provider) == llmProviderOpenAI {
		return NewOpenAIBackend(f.cfg)
	}
	return NewGeminiBackend(f.cfg)
}
