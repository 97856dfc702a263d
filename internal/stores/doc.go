// Package stores holds the curated record store list for the map page.
//
// The list is static and separate from the catalog data model: the map
// collaborator renders markers from it and the TUI shows it as a plain
// list. There is no loading, no overlay and no enrichment here.
package stores
