package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dqthao/Whimbrel/config"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

type openAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend builds the OpenAI-backed ScoreBackend. Without an API key
// it returns an inert backend instead of failing construction.
func NewOpenAIBackend(cfg *config.Config) ScoreBackend {
	if cfg.Grading.OpenAIAPIKey == "" {
		return newInertBackend("openai")
	}

	return &openAIBackend{
		client: openai.NewClient(cfg.Grading.OpenAIAPIKey),
		model:  cfg.Grading.OpenAIModel,
	}
}

func (b *openAIBackend) GenerateScore(ctx context.Context, prompt string) (float64, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("OpenAI API error during scoring")
		return 0.0, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Warn().Msg("OpenAI returned no choices in response")
		return 0.0, fmt.Errorf("openai returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	score, err := strconv.ParseFloat(content, 64)
	if err != nil {
		log.Warn().Err(err).Str("response", content).Msg("OpenAI response is not a numeric score")
		return 0.0, fmt.Errorf("parse openai score: %w", err)
	}
	return clampScore(score), nil
}
