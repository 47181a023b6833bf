package mention

import (
	"sort"
	"strings"

	"mentiongraph/internal/model"
)

// Extract returns the distinct canonical usernames @-mentioned in text.
// Tokens split on Unicode whitespace (U+00A0 included); after the leading
// '@' every character outside [A-Za-z0-9_] is dropped, so "@bob," and "@Bob!" both yield "bob".
func Extract(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range strings.Fields(text) {
		if len(tok) < 2 || tok[0] != '@' {
			continue
		}
		if name := Sanitize(tok[1:]); name != "" {
			out[name] = struct{}{}
		}
	}
	return out
}

// Sorted is Extract as a sorted slice.
func Sorted(text string) []string {
	set := Extract(text)
	out := make([]string, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Sanitize keeps ASCII letters, digits and underscores and folds case.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			b.WriteByte(c)
		}
	}
	return model.Canonical(b.String())
}
