package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpgames/helpgames-api/middleware"
	"github.com/helpgames/helpgames-api/models"
	"github.com/helpgames/helpgames-api/services"
)

type RecoveryHandler struct {
	Recovery *services.RecoveryService
}

func NewRecoveryHandler(recovery *services.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{Recovery: recovery}
}

// ============================================================================
// AVOIDED BETS
// ============================================================================

func (h *RecoveryHandler) CreateAvoidedBet(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateAvoidedBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bet, err := h.Recovery.CreateAvoidedBet(c.Request.Context(), userID, req.Amount, req.EmotionalContext)
	if err != nil {
		log.Printf("Error creating avoided bet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record avoided bet"})
		return
	}

	c.JSON(http.StatusCreated, bet)
}

func (h *RecoveryHandler) ListAvoidedBets(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bets, err := h.Recovery.ListAvoidedBets(c.Request.Context(), userID, 50)
	if err != nil {
		log.Printf("Error listing avoided bets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch avoided bets"})
		return
	}

	c.JSON(http.StatusOK, bets)
}

func (h *RecoveryHandler) GetTotalPreserved(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	total, err := h.Recovery.TotalPreserved(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing total preserved: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total preserved"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_preserved": total})
}

func (h *RecoveryHandler) GetStatistics(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Recovery.Statistics(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing statistics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ============================================================================
// GOALS
// ============================================================================

func (h *RecoveryHandler) CreateGoal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Recovery.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("Error creating goal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

func (h *RecoveryHandler) ListGoals(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	goals, err := h.Recovery.ListGoals(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing goals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *RecoveryHandler) UpdateGoal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Recovery.UpdateGoal(c.Request.Context(), c.Param("id"), userID, req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating goal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal updated"})
}

func (h *RecoveryHandler) DeleteGoal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.Recovery.DeleteGoal(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting goal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

// ============================================================================
// CRISIS MESSAGES
// ============================================================================

func (h *RecoveryHandler) CreateCrisisMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateCrisisMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Recovery.CreateCrisisMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		log.Printf("Error creating crisis message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create crisis message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *RecoveryHandler) ListCrisisMessages(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	messages, err := h.Recovery.ListCrisisMessages(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing crisis messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch crisis messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *RecoveryHandler) UpdateCrisisMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateCrisisMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Recovery.UpdateCrisisMessage(c.Request.Context(), c.Param("id"), userID, req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crisis message not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating crisis message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update crisis message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Crisis message updated"})
}

func (h *RecoveryHandler) DeleteCrisisMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.Recovery.DeleteCrisisMessage(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crisis message not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting crisis message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete crisis message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Crisis message deleted"})
}
