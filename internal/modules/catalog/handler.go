package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventzen/internal/domain"
	"eventzen/internal/pkg/response"
	"eventzen/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read-only browsing surface.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.ListEvents)
	rg.GET("/events/:id", h.GetEvent)
	rg.GET("/venues", h.ListVenues)
	rg.GET("/venues/:id", h.GetVenue)
}

// RegisterAdminRoutes exposes catalog mutation.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.CreateEvent)
	rg.PUT("/events/:id", h.UpdateEvent)
	rg.DELETE("/events/:id", h.DeleteEvent)
	rg.POST("/venues", h.CreateVenue)
	rg.PUT("/venues/:id", h.UpdateVenue)
	rg.DELETE("/venues/:id", h.DeleteVenue)
}

func (h *Handler) ListEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.ListEvents(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	e, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var e domain.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validator.Validate(e); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "error": errs})
		return
	}

	if err := h.service.CreateEvent(c.Request.Context(), &e); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var e domain.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	e.ID = id

	if err := h.service.UpdateEvent(c.Request.Context(), &e); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListVenues(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.ListVenues(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list venues")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	v, err := h.service.GetVenue(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch venue")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) CreateVenue(c *gin.Context) {
	var v domain.Venue
	if err := c.ShouldBindJSON(&v); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validator.Validate(v); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "error": errs})
		return
	}

	if err := h.service.CreateVenue(c.Request.Context(), &v); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create venue")
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) UpdateVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	var v domain.Venue
	if err := c.ShouldBindJSON(&v); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	v.ID = id

	if err := h.service.UpdateVenue(c.Request.Context(), &v); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update venue")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	if err := h.service.DeleteVenue(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete venue")
		return
	}
	c.Status(http.StatusNoContent)
}
