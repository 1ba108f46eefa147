package handler

import (
	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
)

// ProjectorHandler serves the projector endpoints
type ProjectorHandler struct {
	BaseHandler
	projectors *fleetapp.ProjectorService
}

// NewProjectorHandler creates a new ProjectorHandler
func NewProjectorHandler(projectors *fleetapp.ProjectorService) *ProjectorHandler {
	return &ProjectorHandler{projectors: projectors}
}

// RegisterRoutes registers the projector routes
func (h *ProjectorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projectors", h.List)
	rg.GET("/projector/:serial", h.Get)
	rg.PUT("/projector/:serial", h.Update)
}

// List returns all projectors
func (h *ProjectorHandler) List(c *gin.Context) {
	projectors, err := h.projectors.List(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to fetch projectors", err)
		return
	}
	h.OK(c, projectors)
}

// Get returns one projector with its service history, RMA history and
// compatible spare parts
func (h *ProjectorHandler) Get(c *gin.Context) {
	detail, err := h.projectors.GetDetail(c.Request.Context(), c.Param("serial"))
	if err != nil {
		h.HandleError(c, err, "Failed to fetch projector")
		return
	}
	h.OK(c, detail)
}

// Update applies a patch to a projector
func (h *ProjectorHandler) Update(c *gin.Context) {
	var patch fleetapp.ProjectorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	projector, err := h.projectors.Update(c.Request.Context(), c.Param("serial"), patch)
	if err != nil {
		h.HandleError(c, err, "Failed to update projector")
		return
	}
	h.OK(c, projector)
}
