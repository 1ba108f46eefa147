// Package handler implements the gin handlers of the fleet API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/logger"
	"github.com/fleetcare/backend/internal/interfaces/http/dto"
)

// BaseHandler provides the response helpers shared by all handlers
type BaseHandler struct{}

// OK sends the payload as-is with status 200
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 with the given message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}

// NotFound sends a 404 with the given message
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: message})
}

// InternalError logs the failure through the request-scoped logger and sends
// a 500 carrying the underlying error text in details
func (h *BaseHandler) InternalError(c *gin.Context, message string, err error) {
	logger.FromGinContext(c).Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorDetailResponse{
		Error:   message,
		Details: err.Error(),
	})
}

// HandleError maps an operation error onto the wire. Domain not-found errors
// become 404s with the domain message; everything else is a 500 with message
// as the error and the cause in details.
func (h *BaseHandler) HandleError(c *gin.Context, err error, message string) {
	var domainErr *fleet.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
		h.NotFound(c, domainErr.Message)
		return
	}
	h.InternalError(c, message, err)
}
