package handler

import (
	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
)

// SearchHandler serves the cross-collection search endpoint
type SearchHandler struct {
	BaseHandler
	search *fleetapp.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(search *fleetapp.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
}

// Search runs a substring search over all four collections
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.BadRequest(c, "Search query is required")
		return
	}

	results, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		h.InternalError(c, "Search failed", err)
		return
	}
	h.OK(c, results)
}
