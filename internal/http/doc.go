// Package http provides the HTTP client shared by the catalog loader and
// the Discogs API client.
//
// The Client in this package handles:
//   - User-Agent headers (required by the Discogs API terms)
//   - JSON decoding of response bodies
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient("RecordRoom/1.0")
//
//	// Fetch a JSON document
//	var records []model.Record
//	err := client.GetJSON(ctx, "https://example.com/records.json", &records)
//
//	// Fetch raw bytes (cover scans)
//	img, err := client.DownloadBytes(ctx, coverURL)
package http
