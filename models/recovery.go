package models

import "time"

// ============================================================================
// AVOIDED BETS
// ============================================================================

// AvoidedBet is an append-only record of a bet the user chose not to place.
type AvoidedBet struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Amount           int64     `json:"amount"`
	EmotionalContext string    `json:"emotional_context,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateAvoidedBetRequest struct {
	Amount           int64  `json:"amount" binding:"min=0"`
	EmotionalContext string `json:"emotional_context"`
}

// ============================================================================
// GOALS
// ============================================================================

type Goal struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	TargetAmount int64      `json:"target_amount"`
	ImageURL     string     `json:"image_url,omitempty"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateGoalRequest struct {
	Title        string `json:"title" binding:"required,max=255"`
	TargetAmount int64  `json:"target_amount" binding:"min=0"`
	ImageURL     string `json:"image_url"`
}

type UpdateGoalRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=1,max=255"`
	TargetAmount *int64  `json:"target_amount" binding:"omitempty,min=0"`
	ImageURL     *string `json:"image_url"`
	IsCompleted  *bool   `json:"is_completed"`
}

// ============================================================================
// CRISIS MESSAGES
// ============================================================================

type CrisisMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCrisisMessageRequest struct {
	Message string `json:"message" binding:"required,min=1"`
}

type UpdateCrisisMessageRequest struct {
	Message  *string `json:"message" binding:"omitempty,min=1"`
	IsActive *bool   `json:"is_active"`
}

// ============================================================================
// STATISTICS
// ============================================================================

type Statistics struct {
	TotalPreserved     int64 `json:"total_preserved"`
	DaysWithoutBetting int   `json:"days_without_betting"`
	TotalBetsAvoided   int   `json:"total_bets_avoided"`
}
