package handler

import (
	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
)

// RMAHandler serves the RMA endpoints
type RMAHandler struct {
	BaseHandler
	rmas *fleetapp.RMAService
}

// NewRMAHandler creates a new RMAHandler
func NewRMAHandler(rmas *fleetapp.RMAService) *RMAHandler {
	return &RMAHandler{rmas: rmas}
}

// RegisterRoutes registers the RMA routes
func (h *RMAHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rma", h.List)
	rg.POST("/rma", h.Create)
	rg.PUT("/rma/:id", h.Update)
}

// List returns all RMA records
func (h *RMAHandler) List(c *gin.Context) {
	rmas, err := h.rmas.List(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to fetch RMA records", err)
		return
	}
	h.OK(c, rmas)
}

// Create stores a new RMA record
func (h *RMAHandler) Create(c *gin.Context) {
	var req fleetapp.CreateRMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	record, err := h.rmas.Create(c.Request.Context(), req)
	if err != nil {
		h.InternalError(c, "Failed to create RMA record", err)
		return
	}
	h.OK(c, record)
}

// Update applies a patch to an RMA record
func (h *RMAHandler) Update(c *gin.Context) {
	var patch fleetapp.RMAPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	record, err := h.rmas.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.HandleError(c, err, "Failed to update RMA record")
		return
	}
	h.OK(c, record)
}
