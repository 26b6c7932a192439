package ext

// IsEmpty reports whether s has zero length. No trimming: a string of
// whitespace is not empty.
func IsEmpty(s string) bool {
	return len(s) == 0
}
