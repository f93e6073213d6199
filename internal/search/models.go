package search

// IndexDocumentInput is the wire shape for an upsert request.
type IndexDocumentInput struct {
	ID       string           `json:"id,omitempty"`
	Title    string           `json:"title"`
	Body     string           `json:"body"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata carries tags/source/created_at plus forward-compatible
// custom fields that the core accepts and ignores.
type DocumentMetadata struct {
	Tags      []string               `json:"tags,omitempty"`
	Source    *string                `json:"source,omitempty"`
	CreatedAt string                 `json:"created_at,omitempty"`
	Custom    map[string]interface{} `json:"-"`
}

// IndexDocumentResponse is returned after a successful upsert.
type IndexDocumentResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DeleteDocumentInput is the wire shape for a delete request.
type DeleteDocumentInput struct {
	ID string `json:"id"`
}

// DeleteDocumentResponse is returned after a delete.
type DeleteDocumentResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SearchQuery is the wire shape for a search request.
type SearchQuery struct {
	Query   string        `json:"query"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	Filters SearchFilters `json:"filters"`
}

// SearchFilters are accepted by the wire contract but not applied by
// this core version (forward-compatible field surface only).
type SearchFilters struct {
	Tags   []string `json:"tags,omitempty"`
	Source *string  `json:"source,omitempty"`
}

// SearchResult is a single projected search hit.
type SearchResult struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Score     float64 `json:"score"`
	CreatedAt string  `json:"created_at,omitempty"`
	Snippet   *string `json:"snippet"`
}

// SearchResponse is the wire shape of a search result set.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Query   string         `json:"query"`
	TookMs  int64          `json:"took_ms"`
}

// BrowseQuery is the wire shape for a browse (match-all) request.
type BrowseQuery struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// DocumentDetail is a single projected document in a browse response.
type DocumentDetail struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	CreatedAt string   `json:"created_at,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// BrowseResponse is the wire shape of a browse result set.
type BrowseResponse struct {
	Documents []DocumentDetail `json:"documents"`
	Total     int              `json:"total"`
	TookMs    int64            `json:"took_ms"`
}

// StatsResponse is the wire shape of a stats request.
type StatsResponse struct {
	UserID        string `json:"user_id"`
	NumDocuments  uint64 `json:"num_documents"`
}

const (
	// DefaultSearchLimit mirrors the original service's default search page size.
	DefaultSearchLimit = 10
	// DefaultBrowseLimit mirrors the original service's default browse page size.
	DefaultBrowseLimit = 50
	// MaxSearchLimit is the inclusive upper bound for SearchQuery.Limit.
	MaxSearchLimit = 100
	// MaxBrowseLimit is the inclusive upper bound for BrowseQuery.Limit.
	MaxBrowseLimit = 1000
)
