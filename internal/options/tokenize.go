// Package options turns a raw command line into the ordered, deduplicated
// option set the dispatcher consumes.
package options

import "strings"

const quote = '"'

// Tokenize splits line on spaces that sit outside double quotes. Quote
// characters stay in the token. A split point is only valid when the quotes
// on both sides of it are balanced, so a line with an odd number of quotes is
// returned whole. Runs of spaces never yield empty tokens.
func Tokenize(line string) []string {
	if strings.TrimSpace(line) == "" {
		return []string{}
	}
	if strings.Count(line, string(quote))%2 != 0 {
		return []string{line}
	}

	var (
		tokens  = []string{}
		b       strings.Builder
		inQuote bool
	)
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, ch := range line {
		switch {
		case ch == quote:
			inQuote = !inQuote
			b.WriteRune(ch)
		case ch == ' ' && !inQuote:
			flush()
		default:
			b.WriteRune(ch)
		}
	}
	flush()
	return tokens
}

// IsOption reports whether token carries an option prefix.
func IsOption(token string) bool {
	return strings.HasPrefix(token, "-") || strings.HasPrefix(token, "/")
}

// Name strips the one-character prefix and lower-cases the rest. ok is
// false for plain arguments.
func Name(token string) (name string, ok bool) {
	if !IsOption(token) {
		return "", false
	}
	return strings.ToLower(token[1:]), true
}
