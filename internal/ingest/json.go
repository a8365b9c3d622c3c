package ingest

import (
	"encoding/json"
	"strings"
)

type jsonExtractor struct{}

// extract accepts three shapes, tried in order: an array whose elements are
// objects carrying a recognized text field (plain strings are accepted too),
// an object with a "texts" array, and an object with a "reviews" array.
func (jsonExtractor) extract(data []byte) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		return extractFromArray(items), nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err == nil {
		for _, key := range []string{"texts", "reviews"} {
			raw, ok := object[key]
			if !ok {
				continue
			}
			var values []string
			if err := json.Unmarshal(raw, &values); err != nil {
				continue
			}
			var texts []string
			for _, value := range values {
				if text := strings.TrimSpace(value); text != "" {
					texts = append(texts, text)
				}
			}
			return texts, nil
		}
	}

	return nil, ErrUnsupportedJSONShape
}

func extractFromArray(items []json.RawMessage) []string {
	var texts []string
	for _, item := range items {
		var value string
		if err := json.Unmarshal(item, &value); err == nil {
			if text := strings.TrimSpace(value); text != "" {
				texts = append(texts, text)
			}
			continue
		}

		var object map[string]any
		if err := json.Unmarshal(item, &object); err != nil {
			continue
		}
		for _, key := range candidateColumns {
			value, ok := object[key].(string)
			if !ok {
				continue
			}
			if text := strings.TrimSpace(value); text != "" {
				texts = append(texts, text)
			}
			break
		}
	}
	return texts
}
