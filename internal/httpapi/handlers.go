package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/bunsearch/internal/apperr"
	"github.com/kartikbazzad/bunsearch/internal/httpapi/middleware"
	"github.com/kartikbazzad/bunsearch/internal/search"
)

type handlers struct {
	registry *search.Registry
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Version: ServerVersion})
}

func (h *handlers) indexDocument(c *gin.Context) {
	var input search.IndexDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(apperr.BadRequest("invalid request body: " + err.Error()))
		return
	}

	resp, err := h.registry.IndexDocument(middleware.TenantID(c), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) deleteDocument(c *gin.Context) {
	var input search.DeleteDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(apperr.BadRequest("invalid request body: " + err.Error()))
		return
	}

	resp, err := h.registry.DeleteDocument(middleware.TenantID(c), input.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// searchRequest mirrors search.SearchQuery but leaves Limit/Offset as
// pointers so an absent field can be defaulted without masking an
// explicit out-of-range value supplied by the client.
type searchRequest struct {
	Query   string               `json:"query"`
	Limit   *int                 `json:"limit"`
	Offset  *int                 `json:"offset"`
	Filters search.SearchFilters `json:"filters"`
}

func (h *handlers) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("invalid request body: " + err.Error()))
		return
	}

	q := search.SearchQuery{
		Query:   req.Query,
		Limit:   search.DefaultSearchLimit,
		Offset:  0,
		Filters: req.Filters,
	}
	if req.Limit != nil {
		q.Limit = *req.Limit
	}
	if req.Offset != nil {
		q.Offset = *req.Offset
	}

	resp, err := h.registry.Search(middleware.TenantID(c), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// browseRequest mirrors search.BrowseQuery with the same pointer
// default/validation distinction as searchRequest.
type browseRequest struct {
	Limit  *int `json:"limit"`
	Offset *int `json:"offset"`
}

func (h *handlers) browse(c *gin.Context) {
	var req browseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("invalid request body: " + err.Error()))
		return
	}

	q := search.BrowseQuery{
		Limit:  search.DefaultBrowseLimit,
		Offset: 0,
	}
	if req.Limit != nil {
		q.Limit = *req.Limit
	}
	if req.Offset != nil {
		q.Offset = *req.Offset
	}

	resp, err := h.registry.Browse(middleware.TenantID(c), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) stats(c *gin.Context) {
	resp, err := h.registry.Stats(middleware.TenantID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
