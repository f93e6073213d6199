package search

import (
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/google/uuid"
)

// Field names of the stored document, per the schema table.
const (
	fieldID        = "id"
	fieldTitle     = "title"
	fieldBody      = "body"
	fieldCreatedAt = "created_at"
	fieldTags      = "tags"
	fieldSource    = "source"
)

// buildIndexMapping constructs the document mapping shared by every
// tenant index: id/created_at/source are exact-term keyword fields,
// title/body/tags are tokenized text fields.
func buildIndexMapping() mapping.IndexMapping {
	keywordField := bleve.NewKeywordFieldMapping()
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = "standard"

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(fieldID, keywordField)
	doc.AddFieldMappingsAt(fieldTitle, textField)
	doc.AddFieldMappingsAt(fieldBody, textField)
	doc.AddFieldMappingsAt(fieldCreatedAt, keywordField)
	doc.AddFieldMappingsAt(fieldTags, textField)
	doc.AddFieldMappingsAt(fieldSource, keywordField)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// docFromInput builds the stored document map and resolves the
// document's external id, per the input->stored conversion contract.
func docFromInput(input IndexDocumentInput) (doc map[string]interface{}, docID string) {
	docID = input.ID
	if docID == "" {
		docID = uuid.NewString()
	}

	createdAt := input.Metadata.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	doc = map[string]interface{}{
		fieldID:        docID,
		fieldTitle:     input.Title,
		fieldBody:      input.Body,
		fieldCreatedAt: createdAt,
	}
	if len(input.Metadata.Tags) > 0 {
		doc[fieldTags] = input.Metadata.Tags
	}
	if input.Metadata.Source != nil {
		doc[fieldSource] = *input.Metadata.Source
	}

	return doc, docID
}

// extractString projects a single-valued stored field from a bleve hit's
// field map, returning "" if absent.
func extractString(fields map[string]interface{}, field string) string {
	v, ok := fields[field]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// extractStrings projects a multi-valued stored field, tolerating both
// the single-value and array shapes bleve returns for a slice field.
func extractStrings(fields map[string]interface{}, field string) []string {
	v, ok := fields[field]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
