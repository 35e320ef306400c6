package options

// Dedupe collapses repeated tokens. Every token that occurs more than once
// is pulled out of its positions and appended once at the end, in the order
// those tokens were first met; tokens that occur once keep their relative
// order in front.
//
//	[-list -h -list]      -> [-h -list]
//	[-a -b -b -a]         -> [-a -b]
//	[-x -a -y -a]         -> [-x -y -a]
func Dedupe(tokens []string) []string {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	out := make([]string, 0, len(counts))
	var moved []string
	seen := make(map[string]struct{}, len(counts))
	for _, t := range tokens {
		if counts[t] == 1 {
			out = append(out, t)
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		moved = append(moved, t)
	}
	return append(out, moved...)
}
