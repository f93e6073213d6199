package search

import (
	"strings"

	"github.com/kartikbazzad/bunsearch/internal/apperr"
)

// IndexDocument upserts a document for tenantID: delete-by-id then add,
// committed as a single batch. Returns the resolved document id.
func (r *Registry) IndexDocument(tenantID string, input IndexDocumentInput) (IndexDocumentResponse, error) {
	if strings.TrimSpace(input.Title) == "" {
		return IndexDocumentResponse{}, apperr.Validation("title must not be empty")
	}
	if strings.TrimSpace(input.Body) == "" {
		return IndexDocumentResponse{}, apperr.Validation("body must not be empty")
	}

	h, err := r.GetOrCreate(tenantID)
	if err != nil {
		return IndexDocumentResponse{}, apperr.Index("failed to open tenant index", err)
	}

	doc, docID := docFromInput(input)
	if err := h.upsert(docID, doc); err != nil {
		return IndexDocumentResponse{}, apperr.Index("failed to index document", err)
	}

	return IndexDocumentResponse{
		ID:      docID,
		Status:  "success",
		Message: "document indexed successfully",
	}, nil
}

// DeleteDocument deletes the document with the given id for tenantID.
// Deleting an id that does not exist is not an error.
func (r *Registry) DeleteDocument(tenantID string, id string) (DeleteDocumentResponse, error) {
	if strings.TrimSpace(id) == "" {
		return DeleteDocumentResponse{}, apperr.Validation("id must not be empty")
	}

	h, err := r.GetOrCreate(tenantID)
	if err != nil {
		return DeleteDocumentResponse{}, apperr.Index("failed to open tenant index", err)
	}

	if err := h.delete(id); err != nil {
		return DeleteDocumentResponse{}, apperr.Index("failed to delete document", err)
	}

	return DeleteDocumentResponse{
		ID:      id,
		Status:  "success",
		Message: "document deleted successfully",
	}, nil
}
