package client

import (
	"context"
	"strings"
	"unicode"

	"github.com/reviewpulse/sentiment-api/internal/domain/service"
)

// LexiconClassifier is a small dictionary-based classifier used when no
// model server is configured (dev and test runs). It is deterministic:
// the same text always yields the same result.
type LexiconClassifier struct {
	modelName     string
	maxTextLength int
}

// NewLexiconClassifier creates a lexicon-based classifier
func NewLexiconClassifier(modelName string, maxTextLength int) service.Classifier {
	return &LexiconClassifier{
		modelName:     modelName,
		maxTextLength: maxTextLength,
	}
}

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"love": true, "awesome": true, "perfect": true, "happy": true,
	"wonderful": true, "best": true, "fantastic": true, "nice": true,
	"отлично": true, "хорошо": true, "супер": true, "нравится": true,
	"gut": true, "toll": true, "bien": true, "bueno": true, "bom": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "hate": true,
	"worst": true, "horrible": true, "poor": true, "disappointing": true,
	"broken": true, "useless": true, "slow": true,
	"плохо": true, "ужасно": true, "отвратительно": true,
	"schlecht": true, "mal": true, "malo": true, "ruim": true,
}

// Classify scores the text against the positive and negative lexicons
func (c *LexiconClassifier) Classify(_ context.Context, text, _ string) (*service.ClassificationResult, error) {
	var positive, negative int
	for _, word := range tokenize(text) {
		if positiveWords[word] {
			positive++
		}
		if negativeWords[word] {
			negative++
		}
	}

	sentiment := service.SentimentNeutral
	diff := positive - negative
	if diff > 0 {
		sentiment = service.SentimentPositive
	} else if diff < 0 {
		sentiment = service.SentimentNegative
	}

	confidence := 0.7 + 0.05*float64(abs(diff))
	if confidence > 0.99 {
		confidence = 0.99
	}

	return &service.ClassificationResult{
		Text:       text,
		Sentiment:  sentiment,
		Confidence: confidence,
	}, nil
}

// Info returns metadata about the lexicon model
func (c *LexiconClassifier) Info() service.ModelInfo {
	return service.ModelInfo{
		Name:          c.modelName,
		Description:   "Built-in lexicon classifier (no model server configured)",
		Languages:     supportedLanguages,
		MaxTextLength: c.maxTextLength,
	}
}

// Ready always succeeds: the lexicon is compiled in
func (c *LexiconClassifier) Ready(_ context.Context) error {
	return nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
