package model

// Record is one entry of the base catalog (records.json).
//
// The base catalog is user-authored and carries the minimal fields needed
// to render a collection card. Everything else comes from the overlay,
// see RecordDetail.
//
// Example:
//
//	rec := model.Record{
//	    ID:       "blue-train",
//	    Title:    "Blue Train",
//	    Artist:   "John Coltrane",
//	    Category: "regular-rotation",
//	    Favorite: true,
//	}
type Record struct {
	// ID is the unique, stable identifier of the record. Records without
	// an ID are not addressable and are skipped by the enrichment job.
	ID string `json:"id"`

	// Title is the album title as written on the sleeve.
	Title string `json:"title"`

	// Artist is the album artist. The overlay never overrides it.
	Artist string `json:"artist"`

	// Year is the release year. Nil when unknown.
	Year *int `json:"year,omitempty"`

	// Genre is a single free-text genre. Overlay genres take precedence
	// when present.
	Genre string `json:"genre,omitempty"`

	// Category is the shelf slug used by the filter tabs,
	// e.g. "regular-rotation" or "back-shelfers".
	Category string `json:"category,omitempty"`

	// Favorite marks the record for the favorites filter.
	Favorite bool `json:"favorite,omitempty"`

	// Cover is a local cover image reference. Empty when none exists.
	Cover string `json:"cover,omitempty"`

	// DiscogsID is a manually assigned Discogs release ID. When set, the
	// enrichment job fetches that release directly instead of searching.
	DiscogsID int64 `json:"discogs_id,omitempty"`
}
