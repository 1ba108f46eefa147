package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
	"github.com/fleetcare/backend/internal/interfaces/http/dto"
)

// SystemHandler serves the health, seed and maintenance endpoints
type SystemHandler struct {
	BaseHandler
	admin   *fleetapp.AdminService
	version string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(admin *fleetapp.AdminService, version string) *SystemHandler {
	return &SystemHandler{admin: admin, version: version}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.POST("/init-schema", h.InitSchema)
	rg.POST("/admin/reindex", h.Reindex)
}

// Health reports liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.OK(c, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	})
}

// InitSchema writes the seed dataset; safe to call repeatedly
func (h *SystemHandler) InitSchema(c *gin.Context) {
	result, err := h.admin.SeedSchema(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to initialize schema", err)
		return
	}
	h.OK(c, result)
}

// Reindex rebuilds the projector service and RMA indexes
func (h *SystemHandler) Reindex(c *gin.Context) {
	result, err := h.admin.Reindex(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to rebuild indexes", err)
		return
	}
	h.OK(c, result)
}
