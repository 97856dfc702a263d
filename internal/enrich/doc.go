// Package enrich implements the offline batch job that grows the overlay
// catalog from Discogs.
//
// # Job
//
// The Job processes the base catalog strictly sequentially:
//
//  1. Load base catalog and existing overlay
//  2. For every record without an overlay entry, resolve a Discogs
//     release (manual ID, or search taking the first result)
//  3. Fetch the full release and convert it to an overlay entry
//  4. Write the grown overlay once, atomically, at the end of the run
//
// # Basic Usage
//
//	job := enrich.NewJob(settings, discogsClient, httpClient, func(event enrich.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := job.Run(ctx)
//
// # Rate limiting
//
// A fixed minimum interval separates successive Discogs calls. When
// Discogs answers 429 anyway, the job aborts the remaining queue and
// persists what it has; everything skipped stays eligible for the next
// run. Any other per-record error is logged and the run continues.
//
// # Resumability
//
// Overlay entries are append-only and never re-fetched: running the job
// twice on an unchanged catalog adds zero entries the second time.
package enrich
