package ingest

import (
	"errors"
	"path/filepath"
	"strings"
)

// Error definitions for file ingestion
var (
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFormat    = errors.New("unsupported file format")
	ErrNoTextColumn         = errors.New("no text column found in CSV header")
	ErrUnsupportedJSONShape = errors.New("unsupported JSON shape")
)

// Format identifies a supported upload format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
)

// UploadedFile holds an uploaded review file. It lives for the duration of
// one request and is never written to durable storage.
type UploadedFile struct {
	Filename string
	Size     int64
	Data     []byte
}

// candidateColumns are the header/field names recognized as carrying review
// text, checked case-insensitively and in this order.
var candidateColumns = []string{"text", "review", "comment", "feedback", "message", "content"}

// extractor turns raw file bytes into an ordered sequence of texts
type extractor interface {
	extract(data []byte) ([]string, error)
}

var extractors = map[Format]extractor{
	FormatCSV:  csvExtractor{},
	FormatJSON: jsonExtractor{},
	FormatTXT:  txtExtractor{},
}

// DetectFormat resolves the upload format from the declared filename
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	format := Format(ext)
	if _, ok := extractors[format]; !ok {
		return "", ErrUnsupportedFormat
	}
	return format, nil
}

// Extract produces the ordered texts contained in the file. Both the
// declared and the actual size are checked against maxSize before any
// parsing happens. The result is not truncated to the batch ceiling;
// that is the orchestrator's concern.
func Extract(file *UploadedFile, maxSize int64) ([]string, error) {
	if file.Size > maxSize || int64(len(file.Data)) > maxSize {
		return nil, ErrFileTooLarge
	}

	format, err := DetectFormat(file.Filename)
	if err != nil {
		return nil, err
	}

	return extractors[format].extract(file.Data)
}
