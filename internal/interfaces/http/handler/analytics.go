package handler

import (
	"github.com/gin-gonic/gin"

	fleetapp "github.com/fleetcare/backend/internal/application/fleet"
)

// AnalyticsHandler serves the aggregate endpoints
type AnalyticsHandler struct {
	BaseHandler
	analytics *fleetapp.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analytics *fleetapp.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// RegisterRoutes registers the analytics routes
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.Overview)
	rg.GET("/dashboard-stats", h.DashboardStats)
	rg.GET("/warranty-alerts", h.WarrantyAlerts)
}

// Overview recomputes and returns the analytics snapshot
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analytics.Overview(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to fetch analytics", err)
		return
	}
	h.OK(c, overview)
}

// DashboardStats returns the dashboard aggregates
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.analytics.DashboardStats(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to fetch dashboard stats", err)
		return
	}
	h.OK(c, stats)
}

// WarrantyAlerts returns the projectors whose warranty ends within the
// alert window
func (h *AnalyticsHandler) WarrantyAlerts(c *gin.Context) {
	alerts, err := h.analytics.WarrantyAlerts(c.Request.Context())
	if err != nil {
		h.InternalError(c, "Failed to fetch warranty alerts", err)
		return
	}
	h.OK(c, alerts)
}
