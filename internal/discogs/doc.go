// Package discogs provides a client for the Discogs database API.
//
// Only the two operations the enrichment job needs are implemented:
//
//  1. Free-text release search, taking the first result only
//  2. Full release fetch by ID
//
// # Authentication
//
// Discogs requires a personal access token and an identifying User-Agent
// on every request. The token goes into the Authorization header; the
// User-Agent comes from the shared HTTP client.
//
//	httpClient := http.NewClient("RecordRoom/1.0 +https://example.com")
//	client := discogs.NewClient(httpClient, token)
//
// # Rate limiting
//
// Discogs throttles aggressively. A 429 response surfaces as
// ErrRateLimited so the caller can abort the remaining work:
//
//	release, err := client.GetRelease(ctx, id)
//	if errors.Is(err, discogs.ErrRateLimited) {
//	    // stop the batch, keep what was collected
//	}
//
// The dto subpackage mirrors the wire shapes and converts them into
// model.RecordDetail overlay entries.
package discogs
