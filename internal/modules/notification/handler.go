package notification

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "eventzen/internal/pkg/jwt"
	"eventzen/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Origin is enforced by the CORS middleware for the REST surface; the
	// websocket endpoint authenticates by token instead.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwtsvc.Service
}

func NewHandler(service *Service, hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/notifications")
	{
		grp.GET("", h.GetNotifications)
		grp.PATCH("/:id/read", h.MarkAsRead)
		grp.POST("/read-all", h.MarkAllAsRead)
	}
}

func (h *Handler) GetNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, unread, err := h.service.GetUserNotifications(c.Request.Context(), c.GetInt64("user_id"), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusNotFound, "Notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	if err := h.service.MarkAllAsRead(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to mark notifications as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleWebSocket upgrades the connection and registers it with the hub.
//
// Endpoint: GET /ws/notifications?token=JWT_TOKEN
//
// Authentication goes through the query string because websocket clients
// cannot set an Authorization header on the upgrade request.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "Token is required. Use ?token=YOUR_JWT_TOKEN")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("level=error msg=websocket upgrade failed user_id=%d err=%v", claims.UserID, err)
		return
	}

	h.hub.Register(claims.UserID, conn)
	log.Printf("level=info msg=notification socket connected user_id=%d online=%d", claims.UserID, h.hub.OnlineCount())

	// The server only pushes; the read loop exists to observe disconnects.
	go func() {
		defer h.hub.Unregister(claims.UserID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
