package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/reviewpulse/sentiment-api/internal/domain/service"
	"github.com/reviewpulse/sentiment-api/internal/ingest"
)

// Error definitions for classification usecase
var (
	ErrEmptyText     = errors.New("text is empty")
	ErrTextTooLong   = errors.New("text exceeds maximum length")
	ErrEmptyBatch    = errors.New("no texts to classify")
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)

// ClassifyInput represents the input for single-text classification
type ClassifyInput struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

// BatchInput represents the input for batch classification
type BatchInput struct {
	Texts    []string `json:"texts" binding:"required"`
	Language string   `json:"language"`
}

// BatchOutput represents an aggregated batch result. Results preserve the
// order of the input texts; invalid items are skipped and omitted, so
// Total always equals len(Results).
type BatchOutput struct {
	Results       []*service.ClassificationResult `json:"results"`
	Total         int                             `json:"total"`
	PositiveCount int                             `json:"positive_count"`
	NegativeCount int                             `json:"negative_count"`
	NeutralCount  int                             `json:"neutral_count"`
}

// FileOutput represents the result of classifying an uploaded file
type FileOutput struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	BatchOutput
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// Limits holds the ceilings enforced before inference is invoked
type Limits struct {
	MaxTextLength int
	MaxBatchSize  int
	MaxFileSize   int64
	Workers       int
}

// ResultCache caches classification results across requests. A nil cache
// disables caching.
type ResultCache interface {
	Get(ctx context.Context, text, language string) (*service.ClassificationResult, bool)
	Set(ctx context.Context, text, language string, result *service.ClassificationResult)
}

// ClassifyUsecase defines the interface for classification business logic
type ClassifyUsecase interface {
	ClassifyOne(ctx context.Context, input *ClassifyInput) (*service.ClassificationResult, error)
	ClassifyBatch(ctx context.Context, input *BatchInput) (*BatchOutput, error)
	ClassifyFile(ctx context.Context, file *ingest.UploadedFile) (*FileOutput, error)
	ModelInfo() service.ModelInfo
}

type classifyUsecase struct {
	classifier service.Classifier
	cache      ResultCache
	limits     Limits
}

// NewClassifyUsecase creates a new classification usecase
func NewClassifyUsecase(classifier service.Classifier, cache ResultCache, limits Limits) ClassifyUsecase {
	if limits.Workers <= 0 {
		limits.Workers = 1
	}
	return &classifyUsecase{
		classifier: classifier,
		cache:      cache,
		limits:     limits,
	}
}

func (u *classifyUsecase) ClassifyOne(ctx context.Context, input *ClassifyInput) (*service.ClassificationResult, error) {
	text, err := NormalizeText(input.Text, u.limits.MaxTextLength)
	if err != nil {
		return nil, err
	}
	return u.classifyText(ctx, text, input.Language)
}

func (u *classifyUsecase) ClassifyBatch(ctx context.Context, input *BatchInput) (*BatchOutput, error) {
	if len(input.Texts) == 0 {
		return nil, ErrEmptyBatch
	}
	// Ceilings are checked before any inference call is made
	if len(input.Texts) > u.limits.MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	// Invalid items are skipped rather than failing the batch: one
	// malformed line must not discard an otherwise valid upload.
	valid := make([]string, 0, len(input.Texts))
	for _, text := range input.Texts {
		normalized, err := NormalizeText(text, u.limits.MaxTextLength)
		if err != nil {
			continue
		}
		valid = append(valid, normalized)
	}
	if len(valid) == 0 {
		return nil, ErrEmptyBatch
	}

	results, err := u.classifyAll(ctx, valid, input.Language)
	if err != nil {
		return nil, err
	}

	output := &BatchOutput{
		Results: results,
		Total:   len(results),
	}
	for _, result := range results {
		switch result.Sentiment {
		case service.SentimentPositive:
			output.PositiveCount++
		case service.SentimentNegative:
			output.NegativeCount++
		case service.SentimentNeutral:
			output.NeutralCount++
		}
	}

	return output, nil
}

func (u *classifyUsecase) ClassifyFile(ctx context.Context, file *ingest.UploadedFile) (*FileOutput, error) {
	start := time.Now()

	texts, err := ingest.Extract(file, u.limits.MaxFileSize)
	if err != nil {
		return nil, err
	}

	batch, err := u.ClassifyBatch(ctx, &BatchInput{Texts: texts})
	if err != nil {
		return nil, err
	}

	return &FileOutput{
		Filename:         file.Filename,
		Size:             int64(len(file.Data)),
		BatchOutput:      *batch,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

func (u *classifyUsecase) ModelInfo() service.ModelInfo {
	return u.classifier.Info()
}

// classifyAll dispatches inference through a bounded worker pool. Results
// are collected by input index so output order matches input order.
func (u *classifyUsecase) classifyAll(ctx context.Context, texts []string, language string) ([]*service.ClassificationResult, error) {
	results := make([]*service.ClassificationResult, len(texts))
	errs := make([]error, len(texts))

	sem := make(chan struct{}, u.limits.Workers)
	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = u.classifyText(ctx, text, language)
		}(i, text)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (u *classifyUsecase) classifyText(ctx context.Context, text, language string) (*service.ClassificationResult, error) {
	if u.cache != nil {
		if cached, ok := u.cache.Get(ctx, text, language); ok {
			return cached, nil
		}
	}

	result, err := u.classifier.Classify(ctx, text, language)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		u.cache.Set(ctx, text, language, result)
	}
	return result, nil
}
