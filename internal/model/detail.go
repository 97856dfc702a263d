package model

import "strings"

// RecordDetail is one entry of the overlay catalog (record_details.json).
//
// Overlay entries are produced by the enrichment job from Discogs data and
// are strictly additive: a record without an overlay entry renders from its
// base fields alone. Entries are keyed by the base record's ID and, once
// written, are never re-fetched or overwritten.
//
// All slice and string fields are written as empty values rather than
// omitted, so the overlay file round-trips without nulls.
type RecordDetail struct {
	// ID matches the base Record.ID.
	ID string `json:"id"`

	// DiscogsID is the Discogs release the entry was built from.
	DiscogsID int64 `json:"discogs_id"`

	// Title overrides the base title when non-empty.
	Title string `json:"title"`

	// Year overrides the base year when non-zero.
	Year int `json:"year"`

	// Genres from Discogs. The first entry is the primary genre used for
	// searching and sorting.
	Genres []string `json:"genres"`

	// Styles are Discogs sub-genres.
	Styles []string `json:"styles"`

	// Tracklist in side order, e.g. positions "A1", "A2", "B1".
	Tracklist []Track `json:"tracklist"`

	// Notes is the free-text release notes from Discogs.
	Notes string `json:"notes"`

	// Credits lists extra artists (producer, engineer, design ...).
	Credits []Credit `json:"credits"`

	// Companies lists labels, pressing plants and studios.
	Companies []Company `json:"companies"`

	// Images are cover scans; the first one is preferred over the local
	// cover when rendering.
	Images []Image `json:"images"`
}

// PrimaryGenre returns the first overlay genre, or "" when there is none.
func (d *RecordDetail) PrimaryGenre() string {
	if d == nil || len(d.Genres) == 0 {
		return ""
	}
	return d.Genres[0]
}

// PrimaryImage returns the URI of the first overlay image, or "".
func (d *RecordDetail) PrimaryImage() string {
	if d == nil || len(d.Images) == 0 {
		return ""
	}
	return d.Images[0].URI
}

// Track is a single tracklist row.
type Track struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Credit is a single release credit.
type Credit struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Company is a label or other company attached to a release.
type Company struct {
	Name string `json:"name"`
	// CatNo is the catalog number, when the company is a label.
	CatNo string `json:"catno,omitempty"`
}

// Image is a cover scan reference.
type Image struct {
	URI  string `json:"uri"`
	Type string `json:"type,omitempty"`
}

// FormatRole prettifies a raw Discogs role string for display.
//
// Discogs roles are comma-separated, e.g. "Producer, Engineer [Remix]".
// Each part is lower-cased, capitalized and the parts are joined with a
// middle dot:
//
//	FormatRole("Producer, engineer") // "Producer · Engineer"
func FormatRole(role string) string {
	if role == "" {
		return ""
	}
	parts := strings.Split(role, ",")
	pretty := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		pretty = append(pretty, strings.ToUpper(lower[:1])+lower[1:])
	}
	return strings.Join(pretty, " · ")
}
