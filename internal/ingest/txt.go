package ingest

import "strings"

type txtExtractor struct{}

// extract treats every non-blank line as one text
func (txtExtractor) extract(data []byte) ([]string, error) {
	var texts []string
	for _, line := range strings.Split(string(data), "\n") {
		if text := strings.TrimSpace(line); text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}
