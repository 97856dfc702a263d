// Package query computes the filtered, searched and sorted view of the
// record catalog.
//
// The pipeline runs three strictly ordered stages over the store:
//
//  1. Filter: favorites, a category slug, or everything
//  2. Search: case-insensitive substring match against effective title,
//     base artist and effective primary genre
//  3. Sort: comparator keyed on effective fields
//
// Every user interaction builds a fresh State and re-runs the pipeline;
// nothing is cached and the store is never mutated:
//
//	state := query.State{Filter: "favorites", Query: "jazz", Sort: query.SortYearAsc}
//	view := query.Apply(store, state)
package query
