package services

import "strings"

// matchText reports whether any of the fields contains the search term,
// case-insensitive. An empty term matches everything.
func matchText(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchEquals reports whether value equals the filter, with an empty
// filter (or the "all" wildcard) matching everything.
func matchEquals(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}
