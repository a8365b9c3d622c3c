package usecase

import "strings"

// NormalizeText trims the text and validates it against the length ceiling.
// It is pure: the same input always yields the same result. A text of
// exactly maxLength characters passes.
func NormalizeText(text string, maxLength int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if len([]rune(text)) > maxLength {
		return "", ErrTextTooLong
	}
	return text, nil
}
