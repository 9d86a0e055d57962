package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// DecodeActionItems parses a model answer into action items. It accepts a
// bare array, an object wrapping the array under a common key, or any object
// whose first array value holds the items. Code fences and surrounding prose
// are ignored.
func DecodeActionItems(raw string) ([]ActionItem, error) {
	cleaned := sanitizeJSONResponse(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("gemini: invalid action item JSON: %w", err)
	}

	list, ok := findItemList([]byte(cleaned), parsed)
	if !ok {
		return []ActionItem{}, nil
	}

	items := make([]ActionItem, 0, len(list))
	for i, v := range list {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}
		item := ActionItem{
			ID:         i + 1,
			Text:       strings.TrimSpace(stringOf(obj["text"])),
			AssignedTo: optionalString(obj["assignedTo"]),
			DueDate:    optionalString(obj["dueDate"]),
		}
		if n, ok := obj["id"].(float64); ok {
			item.ID = int(n)
		}
		if item.Text == "" {
			item.Text = strings.TrimSpace(stringOf(obj["title"]))
		}
		if item.Text == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func findItemList(data []byte, v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case map[string]any:
		for _, key := range actionItemKeys {
			if list, ok := t[key].([]any); ok {
				return list, true
			}
		}
		return firstArrayValue(data)
	}
	return nil, false
}

// firstArrayValue walks a JSON object in document order and returns the
// first value that is an array.
func firstArrayValue(data []byte) ([]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, false
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		if len(value) > 0 && value[0] == '[' {
			var list []any
			if err := json.Unmarshal(value, &list); err != nil {
				return nil, false
			}
			return list, true
		}
	}
	return nil, false
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
