package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpgames/helpgames-api/middleware"
	"github.com/helpgames/helpgames-api/models"
	"github.com/helpgames/helpgames-api/services"
)

type BlockageHandler struct {
	Blockage *services.BlockageService
	WS       *WSHandler
}

func NewBlockageHandler(blockage *services.BlockageService, ws *WSHandler) *BlockageHandler {
	return &BlockageHandler{Blockage: blockage, WS: ws}
}

// Activate starts a new self-imposed blockage window. The default duration
// is 30 minutes; anything below one minute is rejected before any write.
func (h *BlockageHandler) Activate(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req, err := bindActivateRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blockage, err := h.Blockage.Activate(c.Request.Context(), userID, req.DurationMinutes)
	if err == services.ErrInvalidDuration {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error activating blockage: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate blockage"})
		return
	}

	log.Printf("🔒 User %s blocked bets for %d minutes", userID, req.DurationMinutes)
	h.WS.BroadcastAlert(userID, "blockage_activated", fmt.Sprintf("Bets blocked for %d minutes", req.DurationMinutes))

	c.JSON(http.StatusCreated, models.ActivateBlockageResponse{
		Success:      true,
		Message:      fmt.Sprintf("Bets blockage activated for %d minutes", req.DurationMinutes),
		BlockedUntil: blockage.BlockedUntil,
	})
}

// bindActivateRequest reads the optional duration from the body. A missing
// or empty body means the default duration; malformed JSON is an error.
// Binding happens whenever a body is present, so chunked requests without a
// Content-Length header are honored too.
func bindActivateRequest(c *gin.Context) (models.ActivateBlockageRequest, error) {
	req := models.ActivateBlockageRequest{DurationMinutes: services.DefaultBlockageMinutes}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

func (h *BlockageHandler) GetStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status, err := h.Blockage.Status(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching blockage status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blockage status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *BlockageHandler) GetHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := h.Blockage.History(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching blockage history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blockage history"})
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *BlockageHandler) GetStats(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Blockage.Stats(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching blockage stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blockage stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
