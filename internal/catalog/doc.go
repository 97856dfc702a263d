// Package catalog loads and indexes the record catalogs.
//
// The catalog consists of two JSON files:
//
//   - records.json: the base catalog, required. Failing to load it is
//     fatal to the application.
//   - record_details.json: the Discogs overlay, optional. A missing or
//     malformed overlay silently degrades to base-only data.
//
// # Loading
//
//	client := http.NewClient("RecordRoom/1.0")
//	loader := catalog.NewLoader(client, "records.json", "record_details.json")
//	store, err := loader.Load(ctx)
//
// Load fetches both files concurrently and joins them before returning,
// so callers never observe a half-loaded store.
//
// # Lookup
//
//	detail, ok := store.DetailFor("blue-train")
//	eff, ok := store.Effective("blue-train")
package catalog
