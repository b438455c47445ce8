package query

import "strings"

// EscapeLike escapes LIKE/ILIKE metacharacters so a user-supplied search
// term is matched literally.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
