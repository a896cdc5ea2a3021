package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpgames/helpgames-api/middleware"
	"github.com/helpgames/helpgames-api/models"
	"github.com/helpgames/helpgames-api/services"
)

type GamblingHandler struct {
	Gambling *services.GamblingService
	Finance  *services.FinanceService
	WS       *WSHandler
}

func NewGamblingHandler(gambling *services.GamblingService, finance *services.FinanceService, ws *WSHandler) *GamblingHandler {
	return &GamblingHandler{Gambling: gambling, Finance: finance, WS: ws}
}

func (h *GamblingHandler) SearchSites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sites, err := h.Gambling.SearchSites(c.Request.Context(), c.Query("q"), 20)
	if err != nil {
		log.Printf("Error searching gambling sites: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search gambling sites"})
		return
	}

	c.JSON(http.StatusOK, sites)
}

// ============================================================================
// USER HOBBIES
// ============================================================================

func (h *GamblingHandler) ListHobbies(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hobbies, err := h.Gambling.ListHobbies(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing hobbies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hobbies"})
		return
	}

	c.JSON(http.StatusOK, hobbies)
}

func (h *GamblingHandler) AddHobby(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AddHobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hobby, err := h.Gambling.AddHobby(c.Request.Context(), userID, req.Name)
	if err != nil {
		log.Printf("Error adding hobby: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add hobby"})
		return
	}

	c.JSON(http.StatusCreated, hobby)
}

// ============================================================================
// ACCESS ATTEMPTS
// ============================================================================

func (h *GamblingHandler) RegisterAttempt(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.RegisterAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.Gambling.RegisterAttempt(c.Request.Context(), userID, req)
	if err == services.ErrProfileNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Financial profile not found"})
		return
	}
	if err != nil {
		log.Printf("Error registering access attempt: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register access attempt"})
		return
	}

	// A wagered stake is betting spend like any other, so it is subject to
	// the same threshold alerts as a direct spend registration.
	if attempt.Outcome == models.AttemptOutcomeWagered {
		notifySpendThresholds(c.Request.Context(), h.Finance, h.WS, userID)
	}

	if attempt.ExceededLimit {
		h.WS.BroadcastAlert(userID, "limit_exceeded", "This stake exceeds your remaining monthly betting budget")
	}

	c.JSON(http.StatusCreated, attempt)
}

func (h *GamblingHandler) ListAttempts(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	attempts, err := h.Gambling.ListAttempts(c.Request.Context(), userID, 50)
	if err != nil {
		log.Printf("Error listing access attempts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch access attempts"})
		return
	}

	c.JSON(http.StatusOK, attempts)
}
