package handler

import (
	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
)

// ServiceHandler serves the service-record endpoints
type ServiceHandler struct {
	BaseHandler
	maintenance *fleetapp.MaintenanceService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(maintenance *fleetapp.MaintenanceService) *ServiceHandler {
	return &ServiceHandler{maintenance: maintenance}
}

// RegisterRoutes registers the service-record routes
func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.List)
	rg.POST("/service", h.Create)
	rg.PUT("/service/:id", h.Update)
}

// List returns all service records
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.maintenance.List(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to fetch services", err)
		return
	}
	h.OK(c, services)
}

// Create stores a new service record
func (h *ServiceHandler) Create(c *gin.Context) {
	var req fleetapp.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	record, err := h.maintenance.Create(c.Request.Context(), req)
	if err != nil {
		h.InternalError(c, "Failed to create service", err)
		return
	}
	h.OK(c, record)
}

// Update applies a patch to a service record
func (h *ServiceHandler) Update(c *gin.Context) {
	var patch fleetapp.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	record, err := h.maintenance.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.HandleError(c, err, "Failed to update service")
		return
	}
	h.OK(c, record)
}
