// Package model defines the core data structures of the record catalog.
//
// # Record and RecordDetail
//
// Record is one base catalog entry (records.json). RecordDetail is the
// optional Discogs overlay entry for that record (record_details.json),
// keyed by the same ID.
//
// # Effective records
//
// Effective is the projection the rest of the application works with:
//
//	eff := model.Resolve(base, store.DetailFor(base.ID))
//	fmt.Println(eff.Title) // overlay title when present, else base title
//
// The precedence rule (overlay, then base, then empty) is the central
// invariant of the catalog: overlay data is additive and never required,
// so a record without an overlay entry degrades to its base fields.
package model
