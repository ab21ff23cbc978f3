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

// ParkService defines the handler's dependency contract.
type ParkService interface {
	ListParks(ctx context.Context) ([]domain.NationalPark, error)
	GetParkByID(ctx context.Context, id int) (domain.NationalPark, error)
	CreatePark(ctx context.Context, p domain.NationalPark) (domain.NationalPark, error)
	UpdatePark(ctx context.Context, p domain.NationalPark) error
	DeletePark(ctx context.Context, id int) error
}

// ParkHandler handles HTTP requests for national parks.
type ParkHandler struct {
	svc ParkService
}

// NewParkHandler constructs a ParkHandler with the given ParkService.
func NewParkHandler(svc ParkService) *ParkHandler {
	return &ParkHandler{svc: svc}
}

// List handles listing all national parks.
func (h *ParkHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.svc.ListParks(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list parks: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	c.JSON(http.StatusOK, domain.ToNationalParkDtos(items))
}

// Get handles fetching a national park by ID.
func (h *ParkHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := pathID(c, "parkId")
	if !ok {
		return
	}
	p, err := h.svc.GetParkByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrParkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to get park: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal server error"}})
		return
	}
	c.JSON(http.StatusOK, domain.ToNationalParkDto(p))
}

// Create handles the creation of a new national park.
func (h *ParkHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.NationalParkCreateDto
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}

	created, err := h.svc.CreatePark(ctx, domain.NationalParkFromCreateDto(req))
	if err != nil {
		if errors.Is(err, service.ErrParkExists) {
			// Same status choice the trail route makes for duplicates.
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "park_exists", "message": "Park exists!"}})
			return
		}
		logger.Error(ctx, "failed to create park %q: %s", req.Name, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "something went wrong when saving the record " + req.Name}})
		return
	}
	logger.With(ctx, map[string]any{"id": created.ID, "name": created.Name}).Info("park created")
	c.Header("Location", pkg.NationalParksPath+"/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, domain.ToNationalParkDto(created))
}

// Update handles full-replacement update of a national park.
func (h *ParkHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := pathID(c, "parkId")
	if !ok {
		return
	}
	var req domain.NationalParkUpdateDto
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "invalid request", "details": err.Error()}})
		return
	}
	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "bad_request", "message": "body id does not match path id"}})
		return
	}

	if err := h.svc.UpdatePark(ctx, domain.NationalParkFromUpdateDto(req)); err != nil {
		logger.Error(ctx, "failed to update park %d: %s", id, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "something went wrong when updating the record " + req.Name}})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles deleting a national park by ID.
func (h *ParkHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := pathID(c, "parkId")
	if !ok {
		return
	}
	if err := h.svc.DeletePark(ctx, id); err != nil {
		if errors.Is(err, service.ErrParkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
			return
		}
		logger.Error(ctx, "failed to delete park %d: %s", id, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "something went wrong when deleting the record"}})
		return
	}
	c.Status(http.StatusNoContent)
}
