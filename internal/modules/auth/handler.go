package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventzen/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/auth")
	{
		grp.POST("/register", h.Register)
		grp.POST("/login", h.Login)
		grp.POST("/guest", h.Guest)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if err == ErrEmailTaken {
			response.Error(c, http.StatusConflict, "Email already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Guest(c *gin.Context) {
	resp, err := h.service.Guest(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create guest session")
		return
	}

	c.JSON(http.StatusCreated, resp)
}
