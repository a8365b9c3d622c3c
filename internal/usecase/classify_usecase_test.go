package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reviewpulse/sentiment-api/internal/domain/service"
	"github.com/reviewpulse/sentiment-api/internal/ingest"
)

// MockClassifier is a mock implementation of service.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text, language string) (*service.ClassificationResult, error) {
	args := m.Called(ctx, text, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClassificationResult), args.Error(1)
}

func (m *MockClassifier) Info() service.ModelInfo {
	args := m.Called()
	return args.Get(0).(service.ModelInfo)
}

func (m *MockClassifier) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testLimits() Limits {
	return Limits{
		MaxTextLength: 512,
		MaxBatchSize:  100,
		MaxFileSize:   10 * 1024 * 1024,
		Workers:       4,
	}
}

func resultFor(text, sentiment string) *service.ClassificationResult {
	return &service.ClassificationResult{
		Text:       text,
		Sentiment:  sentiment,
		Confidence: 0.9,
	}
}

func TestClassifyUsecase_ClassifyOne(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		classifier.On("Classify", mock.Anything, "great product", "en").
			Return(resultFor("great product", service.SentimentPositive), nil)

		result, err := uc.ClassifyOne(context.Background(), &ClassifyInput{Text: "  great product  ", Language: "en"})

		assert.NoError(t, err)
		assert.Equal(t, service.SentimentPositive, result.Sentiment)
		classifier.AssertExpectations(t)
	})

	t.Run("empty text fails without inference", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		_, err := uc.ClassifyOne(context.Background(), &ClassifyInput{Text: "   "})

		assert.ErrorIs(t, err, ErrEmptyText)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("oversize text fails without inference", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		_, err := uc.ClassifyOne(context.Background(), &ClassifyInput{Text: strings.Repeat("a", 513)})

		assert.ErrorIs(t, err, ErrTextTooLong)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("classifier error propagates", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		classifier.On("Classify", mock.Anything, "ok", "").
			Return(nil, errors.New("model server unavailable"))

		_, err := uc.ClassifyOne(context.Background(), &ClassifyInput{Text: "ok"})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyText)
	})
}

func TestClassifyUsecase_ClassifyBatch(t *testing.T) {
	t.Run("counts sum to total and order is preserved", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		classifier.On("Classify", mock.Anything, "a", "").Return(resultFor("a", service.SentimentPositive), nil)
		classifier.On("Classify", mock.Anything, "b", "").Return(resultFor("b", service.SentimentNegative), nil)
		classifier.On("Classify", mock.Anything, "c", "").Return(resultFor("c", service.SentimentNeutral), nil)
		classifier.On("Classify", mock.Anything, "d", "").Return(resultFor("d", service.SentimentPositive), nil)

		output, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: []string{"a", "b", "c", "d"}})

		assert.NoError(t, err)
		assert.Equal(t, 4, output.Total)
		assert.Len(t, output.Results, output.Total)
		assert.Equal(t, output.Total, output.PositiveCount+output.NegativeCount+output.NeutralCount)
		assert.Equal(t, 2, output.PositiveCount)
		assert.Equal(t, 1, output.NegativeCount)
		assert.Equal(t, 1, output.NeutralCount)

		for i, text := range []string{"a", "b", "c", "d"} {
			assert.Equal(t, text, output.Results[i].Text)
		}
	})

	t.Run("order is preserved under concurrency", func(t *testing.T) {
		classifier := new(MockClassifier)
		limits := testLimits()
		limits.Workers = 8
		uc := NewClassifyUsecase(classifier, nil, limits)

		texts := make([]string, 50)
		for i := range texts {
			texts[i] = fmt.Sprintf("review-%02d", i)
			classifier.On("Classify", mock.Anything, texts[i], "").
				Return(resultFor(texts[i], service.SentimentNeutral), nil)
		}

		output, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: texts})

		assert.NoError(t, err)
		assert.Equal(t, 50, output.Total)
		for i, text := range texts {
			assert.Equal(t, text, output.Results[i].Text)
		}
	})

	t.Run("empty batch fails", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		_, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: []string{}})

		assert.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("oversize batch fails before any inference call", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		texts := make([]string, 101)
		for i := range texts {
			texts[i] = "ok"
		}

		_, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: texts})

		assert.ErrorIs(t, err, ErrBatchTooLarge)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("batch exactly at the ceiling passes", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		classifier.On("Classify", mock.Anything, "ok", "").
			Return(resultFor("ok", service.SentimentNeutral), nil)

		texts := make([]string, 100)
		for i := range texts {
			texts[i] = "ok"
		}

		output, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: texts})

		assert.NoError(t, err)
		assert.Equal(t, 100, output.Total)
	})

	t.Run("invalid items are skipped and total shrinks", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		classifier.On("Classify", mock.Anything, "a", "").Return(resultFor("a", service.SentimentPositive), nil)
		classifier.On("Classify", mock.Anything, "b", "").Return(resultFor("b", service.SentimentNegative), nil)

		texts := []string{"a", "   ", strings.Repeat("x", 600), "b"}
		output, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: texts})

		assert.NoError(t, err)
		assert.Equal(t, 2, output.Total)
		assert.Equal(t, "a", output.Results[0].Text)
		assert.Equal(t, "b", output.Results[1].Text)
	})

	t.Run("batch of only invalid items fails", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		_, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: []string{"  ", "\t"}})

		assert.ErrorIs(t, err, ErrEmptyBatch)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("classifier error fails the batch", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		classifier.On("Classify", mock.Anything, "a", "").Return(resultFor("a", service.SentimentPositive), nil)
		classifier.On("Classify", mock.Anything, "b", "").Return(nil, errors.New("model server unavailable"))

		_, err := uc.ClassifyBatch(context.Background(), &BatchInput{Texts: []string{"a", "b"}})

		assert.Error(t, err)
	})
}

func TestClassifyUsecase_ClassifyFile(t *testing.T) {
	t.Run("txt file with N lines yields N results", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		classifier.On("Classify", mock.Anything, mock.Anything, "").
			Return(resultFor("line", service.SentimentNeutral), nil)

		content := "one\ntwo\nthree\n"
		file := &ingest.UploadedFile{
			Filename: "reviews.txt",
			Size:     int64(len(content)),
			Data:     []byte(content),
		}

		output, err := uc.ClassifyFile(context.Background(), file)

		assert.NoError(t, err)
		assert.Equal(t, "reviews.txt", output.Filename)
		assert.Equal(t, int64(len(content)), output.Size)
		assert.Equal(t, 3, output.Total)
		assert.Len(t, output.Results, 3)
	})

	t.Run("oversize file fails before inference", func(t *testing.T) {
		classifier := new(MockClassifier)
		limits := testLimits()
		limits.MaxFileSize = 16
		uc := NewClassifyUsecase(classifier, nil, limits)

		file := &ingest.UploadedFile{
			Filename: "reviews.txt",
			Size:     64,
			Data:     []byte(strings.Repeat("a", 64)),
		}

		_, err := uc.ClassifyFile(context.Background(), file)

		assert.ErrorIs(t, err, ingest.ErrFileTooLarge)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unsupported format fails", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		file := &ingest.UploadedFile{Filename: "reviews.xlsx", Size: 2, Data: []byte("xx")}
		_, err := uc.ClassifyFile(context.Background(), file)

		assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
	})

	t.Run("file with only blank lines fails as empty batch", func(t *testing.T) {
		classifier := new(MockClassifier)
		uc := NewClassifyUsecase(classifier, nil, testLimits())

		file := &ingest.UploadedFile{Filename: "reviews.txt", Size: 4, Data: []byte("\n\n\n\n")}
		_, err := uc.ClassifyFile(context.Background(), file)

		assert.ErrorIs(t, err, ErrEmptyBatch)
	})
}

// stubCache is a map-backed ResultCache for tests
type stubCache struct {
	entries map[string]*service.ClassificationResult
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*service.ClassificationResult)}
}

func (s *stubCache) Get(_ context.Context, text, language string) (*service.ClassificationResult, bool) {
	result, ok := s.entries[language+"|"+text]
	return result, ok
}

func (s *stubCache) Set(_ context.Context, text, language string, result *service.ClassificationResult) {
	s.entries[language+"|"+text] = result
}

func TestClassifyUsecase_ResultCache(t *testing.T) {
	t.Run("cache hit skips inference", func(t *testing.T) {
		classifier := new(MockClassifier)
		cache := newStubCache()
		cache.Set(context.Background(), "great product", "", resultFor("great product", service.SentimentPositive))

		uc := NewClassifyUsecase(classifier, cache, testLimits())

		result, err := uc.ClassifyOne(context.Background(), &ClassifyInput{Text: "great product"})

		assert.NoError(t, err)
		assert.Equal(t, service.SentimentPositive, result.Sentiment)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss stores the result", func(t *testing.T) {
		classifier := new(MockClassifier)
		cache := newStubCache()
		uc := NewClassifyUsecase(classifier, cache, testLimits())

		classifier.On("Classify", mock.Anything, "ok", "").
			Return(resultFor("ok", service.SentimentNeutral), nil)

		_, err := uc.ClassifyOne(context.Background(), &ClassifyInput{Text: "ok"})

		assert.NoError(t, err)
		cached, ok := cache.Get(context.Background(), "ok", "")
		assert.True(t, ok)
		assert.Equal(t, service.SentimentNeutral, cached.Sentiment)
	})
}
