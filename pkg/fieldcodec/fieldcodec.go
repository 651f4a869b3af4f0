// Package fieldcodec converts between the flattened text representation
// the admin forms edit and the ordered sequences the store keeps. The
// round trip must be lossless: encode(decode(x)) preserves order and
// content, and a malformed structured blob is an error, never an empty
// list.
package fieldcodec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SplitList turns comma-joined text into an ordered list, trimming
// whitespace around each element and dropping empties.
func SplitList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return items
}

// JoinList is the inverse of SplitList for well-formed lists.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// DecodeJSONList parses a JSON array blob into typed entries. Blank
// text decodes to an empty list; anything else must be valid JSON.
func DecodeJSONList[T any](text string) ([]T, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, fmt.Errorf("fieldcodec: invalid JSON list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// EncodeJSONList pretty-prints entries the way the admin form shows
// them for editing.
func EncodeJSONList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("fieldcodec: encode JSON list: %w", err)
	}
	return string(out), nil
}
