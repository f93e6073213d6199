package search

import (
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/kartikbazzad/bunsearch/internal/apperr"
)

// Search executes a full-text query over title+body for tenantID,
// fetching limit+offset hits and discarding the first offset in memory.
// Total reflects the size of the returned window, not the full match
// count.
func (r *Registry) Search(tenantID string, q SearchQuery) (SearchResponse, error) {
	trimmed := strings.TrimSpace(q.Query)
	if trimmed == "" {
		return SearchResponse{}, apperr.Validation("query must not be empty")
	}
	if q.Limit < 1 || q.Limit > MaxSearchLimit {
		return SearchResponse{}, apperr.Validation("limit must be between 1 and 100")
	}
	if q.Offset < 0 {
		return SearchResponse{}, apperr.Validation("offset must not be negative")
	}

	h, err := r.GetOrCreate(tenantID)
	if err != nil {
		return SearchResponse{}, apperr.Index("failed to open tenant index", err)
	}

	start := time.Now()

	titleQuery := bleve.NewMatchQuery(trimmed)
	titleQuery.SetField(fieldTitle)
	bodyQuery := bleve.NewMatchQuery(trimmed)
	bodyQuery.SetField(fieldBody)
	disjunction := bleve.NewDisjunctionQuery(titleQuery, bodyQuery)

	req := bleve.NewSearchRequestOptions(disjunction, q.Limit+q.Offset, 0, false)
	req.Fields = []string{fieldID, fieldTitle, fieldBody, fieldCreatedAt}

	result, err := h.search(req)
	if err != nil {
		return SearchResponse{}, apperr.Search("failed to parse or execute query: " + err.Error())
	}

	hits := result.Hits
	if q.Offset < len(hits) {
		hits = hits[q.Offset:]
	} else {
		hits = nil
	}
	if len(hits) > q.Limit {
		hits = hits[:q.Limit]
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{
			ID:        extractString(hit.Fields, fieldID),
			Title:     extractString(hit.Fields, fieldTitle),
			Body:      extractString(hit.Fields, fieldBody),
			Score:     hit.Score,
			CreatedAt: extractString(hit.Fields, fieldCreatedAt),
			Snippet:   nil,
		})
	}

	return SearchResponse{
		Results: results,
		Total:   len(results),
		Query:   q.Query,
		TookMs:  time.Since(start).Milliseconds(),
	}, nil
}
