package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
)

// ParseCandidates parses a raw provider payload into an ordered list of
// {front, back} pairs. The payload is hostile input: only array elements
// that are objects with non-empty-after-trim string front and back
// fields are kept, in original order; everything else is dropped
// silently. Non-string values are never coerced. Returns
// ErrResponseParse if the payload is not a JSON object with a
// flashcards array, and ErrEmptyCandidateSet if nothing valid survives.
func ParseCandidates(payload string) ([]domain.CardContent, error) {
	trimmed := stripCodeFence(payload)

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &root); err != nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object: %v", ErrResponseParse, err)
	}

	rawCards, ok := root["flashcards"]
	if !ok {
		return nil, fmt.Errorf("%w: missing flashcards field", ErrResponseParse)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rawCards, &entries); err != nil {
		return nil, fmt.Errorf("%w: flashcards is not an array", ErrResponseParse)
	}

	contents := make([]domain.CardContent, 0, len(entries))
	for _, entry := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue
		}

		front, ok := stringField(fields, "front")
		if !ok {
			continue
		}
		back, ok := stringField(fields, "back")
		if !ok {
			continue
		}

		contents = append(contents, domain.CardContent{Front: front, Back: back})
	}

	if len(contents) == 0 {
		return nil, ErrEmptyCandidateSet
	}

	return contents, nil
}

// stringField extracts a field that must be a JSON string with
// non-whitespace content. Any other type fails the lookup.
func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// stripCodeFence removes a surrounding markdown code fence, which some
// providers wrap around JSON output even when asked for a raw JSON reply.
func stripCodeFence(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
