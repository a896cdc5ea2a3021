package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpgames/helpgames-api/middleware"
	"github.com/helpgames/helpgames-api/models"
	"github.com/helpgames/helpgames-api/services"
)

// FinanceHandler exposes the budget engine: profile upsert with the computed
// leisure budget, category allocation, and monthly betting spend tracking.
type FinanceHandler struct {
	Finance    *services.FinanceService
	Allocation *services.AllocationService
	WS         *WSHandler
}

func NewFinanceHandler(finance *services.FinanceService, allocation *services.AllocationService, ws *WSHandler) *FinanceHandler {
	return &FinanceHandler{Finance: finance, Allocation: allocation, WS: ws}
}

func (h *FinanceHandler) GetFinancialProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Finance.GetProfile(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching financial profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch financial profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Financial profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *FinanceHandler) UpsertFinancialProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Finance.UpsertProfile(c.Request.Context(), userID, req.MonthlyIncome, req.FixedExpenses)
	if err != nil {
		log.Printf("Error upserting financial profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save financial profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetDistribution returns the necessities/leisure/savings split for the
// stored profile without persisting anything.
func (h *FinanceHandler) GetDistribution(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Finance.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch financial profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Financial profile not found"})
		return
	}

	c.JSON(http.StatusOK, services.ComputeDistribution(profile.MonthlyIncome, profile.FixedExpenses))
}

// ============================================================================
// LEISURE ALLOCATION
// ============================================================================

func (h *FinanceHandler) GetLeisureAllocation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	allocation, err := h.Allocation.Get(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching leisure allocation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leisure allocation"})
		return
	}
	if allocation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leisure allocation not configured"})
		return
	}

	c.JSON(http.StatusOK, allocation)
}

func (h *FinanceHandler) UpdateLeisureAllocation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allocation, err := h.Allocation.CreateOrUpdate(c.Request.Context(), userID, req)
	if err == services.ErrPercentageSum {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error saving leisure allocation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save leisure allocation"})
		return
	}

	c.JSON(http.StatusOK, allocation)
}

// GetAllocationBreakdown returns each category's minor-unit share of the
// leisure budget.
func (h *FinanceHandler) GetAllocationBreakdown(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Finance.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch financial profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Financial profile not found"})
		return
	}

	allocation, err := h.Allocation.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leisure allocation"})
		return
	}
	if allocation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leisure allocation not configured"})
		return
	}

	c.JSON(http.StatusOK, services.Breakdown(profile.LeisureBudget, *allocation))
}

// ============================================================================
// BETTING SPEND TRACKING
// ============================================================================

func (h *FinanceHandler) GetBettingLimit(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, err := h.Finance.BettingLimit(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error calculating betting limit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate betting limit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"betting_limit": limit})
}

func (h *FinanceHandler) GetBettingSpent(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	spent, err := h.Finance.SpentThisMonth(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching betting spend: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch betting spend"})
		return
	}

	limit, err := h.Finance.BettingLimit(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error calculating betting limit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate betting limit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"betting_spent_this_month": spent,
		"betting_limit":            limit,
		"usage_ratio":              services.UsageRatio(spent, limit),
	})
}

func (h *FinanceHandler) AddBettingSpending(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AddSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Finance.AddSpending(c.Request.Context(), userID, req.Amount)
	if err == services.ErrProfileNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Financial profile not found"})
		return
	}
	if err != nil {
		log.Printf("Error adding betting spend: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add betting spend"})
		return
	}

	notifySpendThresholds(c.Request.Context(), h.Finance, h.WS, userID)

	c.JSON(http.StatusOK, profile)
}
