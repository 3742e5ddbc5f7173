package domain

import (
	"strings"
)

// CompactOptions trims every raw option text and drops the empty ones,
// preserving the submitted order.
func CompactOptions(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, o := range raw {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		out = append(out, o)
	}
	return out
}

// NormalizeComment trims a vote comment. A missing or blank comment returns nil
// so that "has a comment" is never ambiguous downstream.
func NormalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	c := strings.TrimSpace(*comment)
	if c == "" {
		return nil
	}
	return &c
}
