package service

import "context"

// Sentiment labels produced by the model
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// ClassificationResult represents the result of sentiment classification
type ClassificationResult struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// ModelInfo describes the sentiment model behind the Classifier
type ModelInfo struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Languages     []string `json:"languages"`
	MaxTextLength int      `json:"max_text_length"`
}

// Classifier defines the interface for sentiment classification.
// Implementations are built once at startup, injected into the usecases,
// and must be safe for concurrent use.
type Classifier interface {
	// Classify classifies a single text. The language hint is optional
	// and may be empty.
	Classify(ctx context.Context, text, language string) (*ClassificationResult, error)

	// Info returns metadata about the underlying model
	Info() ModelInfo

	// Ready reports whether the model is able to serve classifications
	Ready(ctx context.Context) error
}
