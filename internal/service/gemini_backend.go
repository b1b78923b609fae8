package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dqthao/Whimbrel/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type geminiBackend struct {
	model *genai.GenerativeModel
}

// NewGeminiBackend builds the Gemini-backed ScoreBackend. Without an API key
// (or when the client cannot be built) it returns an inert backend so the
// application can still boot and grade with the similarity engine.
func NewGeminiBackend(cfg *config.Config) ScoreBackend {
	if cfg.Grading.GeminiAPIKey == "" {
		return newInertBackend("gemini")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Grading.GeminiAPIKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Gemini client")
		return newInertBackend("gemini")
	}

	model := client.GenerativeModel(cfg.Grading.GeminiModel)
	// Temperature 0 keeps scoring deterministic.
	model.SetTemperature(0)
	return &geminiBackend{model: model}
}

func (b *geminiBackend) GenerateScore(ctx context.Context, prompt string) (float64, error) {
	resp, err := b.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during scoring")
		return 0.0, fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response")
		return 0.0, fmt.Errorf("gemini returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(raw.String()), 64)
	if err != nil {
		log.Warn().Err(err).Str("response", raw.String()).Msg("Gemini response is not a numeric score")
		return 0.0, fmt.Errorf("parse gemini score: %w", err)
	}
	return clampScore(score), nil
}
