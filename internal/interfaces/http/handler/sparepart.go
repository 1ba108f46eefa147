package handler

import (
	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
)

// SparePartHandler serves the spare-part inventory endpoints
type SparePartHandler struct {
	BaseHandler
	parts *fleetapp.SparePartService
}

// NewSparePartHandler creates a new SparePartHandler
func NewSparePartHandler(parts *fleetapp.SparePartService) *SparePartHandler {
	return &SparePartHandler{parts: parts}
}

// RegisterRoutes registers the spare-part routes
func (h *SparePartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/spare-parts", h.List)
	rg.POST("/spare-part", h.Create)
	rg.PUT("/spare-part/:id", h.Update)
}

// List returns all spare parts
func (h *SparePartHandler) List(c *gin.Context) {
	parts, err := h.parts.List(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to fetch spare parts", err)
		return
	}
	h.OK(c, parts)
}

// Create stores a new spare part
func (h *SparePartHandler) Create(c *gin.Context) {
	var req fleetapp.CreateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	part, err := h.parts.Create(c.Request.Context(), req)
	if err != nil {
		h.InternalError(c, "Failed to create spare part", err)
		return
	}
	h.OK(c, part)
}

// Update applies a patch to a spare part
func (h *SparePartHandler) Update(c *gin.Context) {
	var patch fleetapp.SparePartPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	part, err := h.parts.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.HandleError(c, err, "Failed to update spare part")
		return
	}
	h.OK(c, part)
}
