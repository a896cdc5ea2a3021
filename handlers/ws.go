package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/helpgames/helpgames-api/middleware"
)

// WSHandler pushes budget-threshold and blockage alerts to a per-user
// websocket channel.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive so cloud load balancers don't drop idle alert channels.
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		userID, _ := s.Get("user_id")
		log.Printf("🔌 Alert channel closed for user: %v", userID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request and ties the session to the authenticated
// user. The alert stream carries gambling-related content, so subscribing to
// someone else's channel is rejected.
func (h *WSHandler) HandleWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if c.Param("id") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot subscribe to another user's alerts"})
		return
	}

	log.Printf("✅ Alert channel open for user: %s", userID)

	keys := map[string]interface{}{"user_id": userID}
	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastAlert sends an alert to every session belonging to the user.
func (h *WSHandler) BroadcastAlert(userID, alertType, message string) {
	msg, err := json.Marshal(gin.H{"type": alertType, "message": message})
	if err != nil {
		return
	}

	err = h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		id, exists := q.Get("user_id")
		return exists && id == userID
	})

	if err != nil {
		log.Printf("⚠️ Error broadcasting alert to user %s: %v", userID, err)
	}
}
