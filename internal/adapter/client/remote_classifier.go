package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/reviewpulse/sentiment-api/internal/domain/service"
)

// RemoteClassifier adapts ModelClient to the Classifier interface
type RemoteClassifier struct {
	client        *ModelClient
	modelName     string
	maxTextLength int
}

// NewRemoteClassifier creates a classifier backed by a model server
func NewRemoteClassifier(client *ModelClient, modelName string, maxTextLength int) service.Classifier {
	return &RemoteClassifier{
		client:        client,
		modelName:     modelName,
		maxTextLength: maxTextLength,
	}
}

// Classify classifies a single text via the model server
func (c *RemoteClassifier) Classify(ctx context.Context, text, language string) (*service.ClassificationResult, error) {
	resp, err := c.client.Classify(ctx, text, language)
	if err != nil {
		return nil, err
	}

	label := strings.ToLower(resp.Label)
	switch label {
	case service.SentimentPositive, service.SentimentNegative, service.SentimentNeutral:
	default:
		return nil, fmt.Errorf("model server returned unknown label %q", resp.Label)
	}

	return &service.ClassificationResult{
		Text:       text,
		Sentiment:  label,
		Confidence: resp.Confidence,
	}, nil
}

// Info returns metadata about the remote model
func (c *RemoteClassifier) Info() service.ModelInfo {
	return service.ModelInfo{
		Name:          c.modelName,
		Description:   "Multilingual sentiment model served over HTTP",
		Languages:     supportedLanguages,
		MaxTextLength: c.maxTextLength,
	}
}

// Ready reports whether the model server has its model loaded
func (c *RemoteClassifier) Ready(ctx context.Context) error {
	health, err := c.client.Health(ctx)
	if err != nil {
		return err
	}
	if !health.ModelLoaded {
		return fmt.Errorf("model server is up but model is not loaded")
	}
	return nil
}

var supportedLanguages = []string{
	"English", "Russian", "German", "French", "Italian", "Spanish",
	"Portuguese", "Dutch", "Chinese", "Japanese",
}
