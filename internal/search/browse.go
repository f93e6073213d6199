package search

import (
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/kartikbazzad/bunsearch/internal/apperr"
)

// Browse lists documents for tenantID in the engine's internal-docid
// order via a match-all query, fetching limit+offset hits and
// discarding the first offset in memory (mirrors Search's pagination).
func (r *Registry) Browse(tenantID string, q BrowseQuery) (BrowseResponse, error) {
	if q.Limit < 1 || q.Limit > MaxBrowseLimit {
		return BrowseResponse{}, apperr.Validation("limit must be between 1 and 1000")
	}
	if q.Offset < 0 {
		return BrowseResponse{}, apperr.Validation("offset must not be negative")
	}

	h, err := r.GetOrCreate(tenantID)
	if err != nil {
		return BrowseResponse{}, apperr.Index("failed to open tenant index", err)
	}

	start := time.Now()

	req := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), q.Limit+q.Offset, 0, false)
	req.Fields = []string{fieldID, fieldTitle, fieldBody, fieldCreatedAt, fieldTags}

	result, err := h.search(req)
	if err != nil {
		return BrowseResponse{}, apperr.Index("failed to browse documents", err)
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

	docs := make([]DocumentDetail, 0, len(hits))
	for _, hit := range hits {
		docs = append(docs, DocumentDetail{
			ID:        extractString(hit.Fields, fieldID),
			Title:     extractString(hit.Fields, fieldTitle),
			Body:      extractString(hit.Fields, fieldBody),
			CreatedAt: extractString(hit.Fields, fieldCreatedAt),
			Tags:      extractStrings(hit.Fields, fieldTags),
		})
	}

	return BrowseResponse{
		Documents: docs,
		Total:     len(docs),
		TookMs:    time.Since(start).Milliseconds(),
	}, nil
}

// Stats returns the tenant's current document count.
func (r *Registry) Stats(tenantID string) (StatsResponse, error) {
	h, err := r.GetOrCreate(tenantID)
	if err != nil {
		return StatsResponse{}, apperr.Index("failed to open tenant index", err)
	}

	count, err := h.docCount()
	if err != nil {
		return StatsResponse{}, apperr.Index("failed to read document count", err)
	}

	return StatsResponse{
		UserID:       tenantID,
		NumDocuments: count,
	}, nil
}
