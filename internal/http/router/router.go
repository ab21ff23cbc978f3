// Package router wires the HTTP surface: middleware chain, versioned API
// routes, and health probes.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/roguepikachu/parky/internal/http/handler"
	"github.com/roguepikachu/parky/internal/http/middleware"
	"github.com/roguepikachu/parky/pkg"
)

// Options carries the handlers and settings the router needs.
type Options struct {
	Trails    *handler.TrailHandler
	Parks     *handler.ParkHandler
	Health    *handler.HealthHandler
	JWTSecret string
	AdminRole string
}

// New builds the gin engine with the full middleware chain and all routes.
func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	if opts.Health != nil {
		r.GET("/health/live", opts.Health.Liveness)
		r.GET("/health/ready", opts.Health.Readiness)
	}

	api := r.Group(pkg.BasePath)

	trails := api.Group("/trails")
	{
		trails.GET("", opts.Trails.List)
		trails.GET("/in-park/:nationalParkId", opts.Trails.ListByPark)
		// Reading an individual trail is reserved for administrators.
		trails.GET("/:trailId", middleware.RequireRole(opts.JWTSecret, opts.AdminRole), opts.Trails.Get)
		trails.POST("", opts.Trails.Create)
		trails.PATCH("/:trailId", opts.Trails.Update)
		trails.DELETE("/:trailId", opts.Trails.Delete)
	}

	parks := api.Group("/nationalparks")
	{
		parks.GET("", opts.Parks.List)
		parks.GET("/:parkId", opts.Parks.Get)
		parks.POST("", opts.Parks.Create)
		parks.PATCH("/:parkId", opts.Parks.Update)
		parks.DELETE("/:parkId", opts.Parks.Delete)
	}

	return r
}
