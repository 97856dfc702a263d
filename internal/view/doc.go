// Package view turns pipeline output into presentable page states.
//
// The package is a collaborator boundary: it resolves every display field
// (title, artist, year, genre, cover with its three-level fallback) into
// plain strings, and models the collection page's three states (cards,
// empty, load error) plus the detail page's found/not-found split.
// Actual markup and terminal rendering live in the consumers (the TUI and
// the HTTP server).
package view
