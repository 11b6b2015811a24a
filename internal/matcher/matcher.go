// Package matcher checks input line for containing the query, case-sensitive or not, returns bool
package matcher

import "strings"

// FindMatch reports whether line contains query. Empty query matches any line.
func FindMatch(query, line string, ignoreCase bool) bool {
	if ignoreCase {
		query = strings.ToLower(query)
		line = strings.ToLower(line)
	}
	return strings.Contains(line, query)
}
