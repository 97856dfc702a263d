package query

import (
	"sort"
	"strings"

	"github.com/jennahya/recordroom/internal/catalog"
	"github.com/jennahya/recordroom/internal/model"
)

// Filter tab values with fixed meaning. Any other value is treated as a
// category slug.
const (
	FilterAll       = "all"
	FilterFavorites = "favorites"
)

// Sort keys understood by the pipeline. An unrecognized key keeps the
// catalog order; it is a no-op, not an error.
const (
	SortAlphaAsc  = "alpha-asc"
	SortAlphaDesc = "alpha-desc"
	SortYearAsc   = "year-asc"
	SortYearDesc  = "year-desc"
	SortGenreAsc  = "genre-asc"
)

// State is the full input of one pipeline run: filter tab, search query
// and sort key. A State is immutable; UI layers build a new one on every
// change instead of mutating shared variables.
type State struct {
	Filter string
	Query  string
	Sort   string
}

// DefaultState shows the whole catalog alphabetically.
func DefaultState() State {
	return State{Filter: FilterAll, Sort: SortAlphaAsc}
}

// ParseFilter maps an initial tab selector (e.g. from a ?tab= query
// parameter) onto a valid filter. Unrecognized values fall back to
// FilterAll. A category slug is recognized when at least one base record
// carries it.
func ParseFilter(tab string, store *catalog.Store) string {
	switch tab {
	case "", FilterAll:
		return FilterAll
	case FilterFavorites:
		return FilterFavorites
	}
	for _, r := range store.Records() {
		if r.Category == tab {
			return tab
		}
	}
	return FilterAll
}

// Apply runs the filter, search and sort stages over the store and
// returns the ordered view list of effective records.
//
// The stages are strictly ordered and each only narrows or reorders the
// previous stage's output; the store itself is never mutated. An empty
// result is a valid outcome, distinct from a load failure (which the
// caller sees as an error from catalog.Loader.Load).
func Apply(store *catalog.Store, state State) []model.Effective {
	out := make([]model.Effective, 0, store.Len())

	// 1) filter on base fields
	for _, rec := range store.Records() {
		switch state.Filter {
		case FilterFavorites:
			if !rec.Favorite {
				continue
			}
		case FilterAll, "":
		default:
			if rec.Category != state.Filter {
				continue
			}
		}
		detail, _ := store.DetailFor(rec.ID)
		out = append(out, model.Resolve(rec, detail))
	}

	// 2) search on effective title, base artist, effective primary genre
	if q := strings.ToLower(strings.TrimSpace(state.Query)); q != "" {
		matched := out[:0]
		for _, eff := range out {
			if matches(eff, q) {
				matched = append(matched, eff)
			}
		}
		out = matched
	}

	// 3) sort on effective fields
	sortRecords(out, state.Sort)

	return out
}

// matches reports whether any of the three searchable fields contains the
// lower-cased query substring.
func matches(eff model.Effective, q string) bool {
	return strings.Contains(strings.ToLower(eff.Title), q) ||
		strings.Contains(strings.ToLower(eff.Artist), q) ||
		strings.Contains(strings.ToLower(eff.Genre), q)
}

// sortRecords reorders the view list in place according to the sort key.
// Sorting is stable so equal records keep their catalog order.
func sortRecords(records []model.Effective, key string) {
	var less func(a, b model.Effective) bool

	switch key {
	case SortAlphaAsc:
		less = func(a, b model.Effective) bool { return compareStrings(a.Title, b.Title) < 0 }
	case SortAlphaDesc:
		less = func(a, b model.Effective) bool { return compareStrings(b.Title, a.Title) < 0 }
	case SortYearAsc:
		less = func(a, b model.Effective) bool { return compareYears(a.Year, b.Year, false) < 0 }
	case SortYearDesc:
		less = func(a, b model.Effective) bool { return compareYears(a.Year, b.Year, true) < 0 }
	case SortGenreAsc:
		less = func(a, b model.Effective) bool { return compareStrings(a.Genre, b.Genre) < 0 }
	default:
		return
	}

	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}
