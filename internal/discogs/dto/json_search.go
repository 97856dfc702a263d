package dto

// SearchResponse mirrors the Discogs database search envelope.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is one search hit. Only the release ID is consumed; the
// full resource is fetched separately.
type SearchResult struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
