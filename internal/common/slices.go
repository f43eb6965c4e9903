package common

// Find returns a pointer to the first element satisfying match, or nil.
// The pointer aliases the slice's backing array.
func Find[S ~[]E, E any](s S, match func(*E) bool) *E {
	for i := range s {
		if match(&s[i]) {
			return &s[i]
		}
	}

	return nil
}

// Duplicates returns the values that occur more than once, each reported
// once, in the order their second occurrence appears.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var dups []E

	for _, v := range s {
		seen[v]++
		if seen[v] == 2 {
			dups = append(dups, v)
		}
	}

	return dups
}
