// Package router wires handlers onto the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that register their own routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router collects registrars and mounts them on the engine
type Router struct {
	engine     *gin.Engine
	basePath   string
	registrars []RouteRegistrar
}

// Option configures a Router
type Option func(*Router)

// WithBasePath mounts all routes under prefix instead of the root
func WithBasePath(prefix string) Option {
	return func(r *Router) {
		r.basePath = prefix
	}
}

// NewRouter creates a Router mounting routes at the engine root by default
func NewRouter(engine *gin.Engine, opts ...Option) *Router {
	r := &Router{
		engine:   engine,
		basePath: "/",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues a registrar for Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all queued routes with the engine
func (r *Router) Setup() {
	group := r.engine.Group(r.basePath)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(group)
	}
}
