package attendee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventzen/internal/domain"
	"eventzen/internal/pkg/response"
	"eventzen/internal/pkg/validator"
	"eventzen/internal/repository"
)

type Handler struct {
	repo *repository.AttendeeRepository
}

func NewHandler(repo *repository.AttendeeRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/attendees")
	{
		grp.GET("", h.ListByEvent)
		grp.POST("", h.Create)
		grp.PUT("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) ListByEvent(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Query("eventId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "eventId query parameter is required")
		return
	}

	list, err := h.repo.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list attendees")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) Create(c *gin.Context) {
	var a domain.Attendee
	if err := c.ShouldBindJSON(&a); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validator.Validate(a); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "error": errs})
		return
	}

	if err := h.repo.Create(c.Request.Context(), &a); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create attendee")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid attendee ID")
		return
	}

	var a domain.Attendee
	if err := c.ShouldBindJSON(&a); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	a.ID = id

	if err := h.repo.Update(c.Request.Context(), &a); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Attendee not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update attendee")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid attendee ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Attendee not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete attendee")
		return
	}
	c.Status(http.StatusNoContent)
}
