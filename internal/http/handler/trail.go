// Package handler provides HTTP handler functions for the Parky API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/service"
	"github.com/roguepikachu/parky/pkg"
	"github.com/roguepikachu/parky/pkg/logger"
)

// TrailService defines the handler's dependency contract.
type TrailService interface {
	ListTrails(ctx context.Context) ([]domain.Trail, error)
	GetTrailByID(ctx context.Context, id int) (domain.Trail, error)
	ListTrailsInPark(ctx context.Context, parkID int) ([]domain.Trail, error)
	CreateTrail(ctx context.Context, t domain.Trail) (domain.Trail, error)
	UpdateTrail(ctx context.Context, t domain.Trail) error
	DeleteTrail(ctx context.Context, id int) error
}

// TrailHandler handles HTTP requests for trails.
type TrailHandler struct {
	svc TrailService
}

// NewTrailHandler constructs a TrailHandler with the given TrailService.
func NewTrailHandler(svc TrailService) *TrailHandler {
	return &TrailHandler{svc: svc}
}

// pathID parses an integer path parameter; positive integers only.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": name + " must be a positive integer"}})
		return 0, false
	}
	return id, true
}

// List handles listing all trails.
func (h *TrailHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.svc.ListTrails(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list trails: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	logger.Debug(ctx, "listed %d trails", len(items))
	c.JSON(http.StatusOK, domain.ToTrailDtos(items))
}

// Get handles fetching a trail by ID. Role gating happens upstream in the
// routing layer; by the time this runs the caller is authorized.
func (h *TrailHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := pathID(c, "trailId")
	if !ok {
		return
	}
	t, err := h.svc.GetTrailByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrTrailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to get trail: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	c.JSON(http.StatusOK, domain.ToTrailDto(t))
}

// ListByPark handles listing the trails that belong to one national park.
func (h *TrailHandler) ListByPark(c *gin.Context) {
	ctx := c.Request.Context()
	parkID, ok := pathID(c, "nationalParkId")
	if !ok {
		return
	}
	items, err := h.svc.ListTrailsInPark(ctx, parkID)
	if err != nil {
		if errors.Is(err, service.ErrParkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "national park not found"}})
			return
		}
		logger.Error(ctx, "failed to list trails in park: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	logger.Debug(ctx, "listed %d trails for park %d", len(items), parkID)
	c.JSON(http.StatusOK, domain.ToTrailDtos(items))
}

// Create handles the creation of a new trail.
func (h *TrailHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.TrailCreateDto
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}

	created, err := h.svc.CreateTrail(ctx, domain.TrailFromCreateDto(req))
	if err != nil {
		if errors.Is(err, service.ErrTrailExists) {
			// The original API reports a duplicate name as 404, not 409.
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "trail_exists", "message": "Trail exists!"}})
			return
		}
		logger.Error(ctx, "failed to create trail %q: %s", req.Name, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "something went wrong when saving the record " + req.Name}})
		return
	}
	logger.With(ctx, map[string]any{"id": created.ID, "name": created.Name}).Info("trail created")
	c.Header("Location", pkg.TrailsPath+"/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, domain.ToTrailDto(created))
}

// Update handles full-replacement update of a trail.
func (h *TrailHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := pathID(c, "trailId")
	if !ok {
		return
	}
	var req domain.TrailUpdateDto
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}
	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "body id does not match path id"}})
		return
	}

	if err := h.svc.UpdateTrail(ctx, domain.TrailFromUpdateDto(req)); err != nil {
		logger.Error(ctx, "failed to update trail %d: %s", id, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "something went wrong when updating the record " + req.Name}})
		return
	}
	logger.With(ctx, map[string]any{"id": id}).Info("trail updated")
	c.Status(http.StatusNoContent)
}

// Delete handles deleting a trail by ID.
func (h *TrailHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := pathID(c, "trailId")
	if !ok {
		return
	}
	if err := h.svc.DeleteTrail(ctx, id); err != nil {
		if errors.Is(err, service.ErrTrailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to delete trail %d: %s", id, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "something went wrong when deleting the record"}})
		return
	}
	logger.With(ctx, map[string]any{"id": id}).Info("trail deleted")
	c.Status(http.StatusNoContent)
}
