package records

import (
	"strconv"
	"strings"
	"time"
)

// The record store is schema-less; these helpers translate its field maps
// into typed optional values, tolerating stringified numbers.

func optString(fields map[string]any, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case string:
		return &v
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

func optFloat(fields map[string]any, key string) *float64 {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		return &v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

func optInt(fields map[string]any, key string) *int {
	f := optFloat(fields, key)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func optBool(fields map[string]any, key string) *bool {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	v, ok := raw.(bool)
	if !ok {
		return nil
	}
	return &v
}

func optStringList(fields map[string]any, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp handles the store's datetime and date-only field formats.
// Absent or unparseable values yield nil; a record without a usable
// timestamp is simply never windowed in.
func parseTimestamp(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts
		}
	}
	return nil
}
