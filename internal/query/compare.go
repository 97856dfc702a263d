package query

import "strings"

// compareStrings compares two strings case-insensitively.
func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareYears compares two nullable years. A nil year always sorts
// after any dated record, in both directions; desc only flips the
// numeric comparison between two dated records.
func compareYears(a, b *int, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	av, bv := *a, *b
	if desc {
		av, bv = bv, av
	}
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}
