package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// NewSimilarityGrader returns the local text-similarity grader. It fits a
// TF-IDF representation on just the expected/actual pair and scores their
// cosine similarity, with no external calls.
func NewSimilarityGrader() Grader {
	return &grader{eval: similarityEvaluator{}}
}

type similarityEvaluator struct{}

func (similarityEvaluator) evaluateResult(ctx context.Context, expected, actual, template string) float64 {
	score, err := tfidfCosineSimilarity(
		strings.ToLower(strings.TrimSpace(expected)),
		strings.ToLower(strings.TrimSpace(actual)),
	)
	if err != nil {
		log.Error().Err(err).Msg("Similarity grading failed")
		return 0.0
	}
	return score
}

// tokenize splits text into lowercase word tokens of at least two word
// characters, mirroring the usual TF-IDF vectorizer token pattern.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() >= 2 {
			tokens = append(tokens, current.String())
		}
		current.Reset()
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// tfidfCosineSimilarity fits term-frequency/inverse-document-frequency
// vectors on the two documents alone (smoothed IDF, L2 normalization) and
// returns their cosine similarity in [0,1].
func tfidfCosineSimilarity(expected, actual string) (float64, error) {
	docs := [2][]string{tokenize(expected), tokenize(actual)}

	vocab := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range doc {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}
	if len(vocab) == 0 {
		return 0.0, fmt.Errorf("empty vocabulary: documents contain no valid terms")
	}

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1.
	df := make([]int, len(vocab))
	for _, doc := range docs {
		seen := make(map[int]bool)
		for _, tok := range doc {
			idx := vocab[tok]
			if !seen[idx] {
				seen[idx] = true
				df[idx]++
			}
		}
	}

	var vectors [2][]float64
	for d, doc := range docs {
		vec := make([]float64, len(vocab))
		for _, tok := range doc {
			vec[vocab[tok]]++
		}
		for i := range vec {
			idf := math.Log(float64(1+len(docs))/float64(1+df[i])) + 1
			vec[i] *= idf
		}
		normalize(vec)
		vectors[d] = vec
	}

	dot := 0.0
	for i := range vectors[0] {
		dot += vectors[0][i] * vectors[1][i]
	}
	return clampScore(dot), nil
}

func normalize(vec []float64) {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
