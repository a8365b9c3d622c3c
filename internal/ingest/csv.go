package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

type csvExtractor struct{}

// extract scans the header row for a recognized text column and collects
// that column's values in row order, skipping blank cells.
func (csvExtractor) extract(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoTextColumn
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columnIdx := -1
	for i, name := range header {
		if isCandidateColumn(name) {
			columnIdx = i
			break
		}
	}
	if columnIdx == -1 {
		return nil, ErrNoTextColumn
	}

	var texts []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if columnIdx >= len(row) {
			continue
		}
		if text := strings.TrimSpace(row[columnIdx]); text != "" {
			texts = append(texts, text)
		}
	}

	return texts, nil
}

func isCandidateColumn(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range candidateColumns {
		if name == candidate {
			return true
		}
	}
	return false
}
