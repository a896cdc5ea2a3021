package models

import "time"

// BetsBlockage is an immutable self-imposed restriction window. There is no
// cancellation path: a block only ends by clock expiry.
type BetsBlockage struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	BlockedUntil time.Time `json:"blocked_until"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

type ActivateBlockageRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

type ActivateBlockageResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	BlockedUntil time.Time `json:"blocked_until"`
}

type BlockageStatus struct {
	IsBlocked        bool `json:"is_blocked"`
	RemainingSeconds int  `json:"remaining_seconds"`
	RemainingMinutes int  `json:"remaining_minutes"`
}

type BlockageStats struct {
	TotalBlocks         int     `json:"total_blocks"`
	CompletedBlocks     int     `json:"completed_blocks"`
	SuccessRate         float64 `json:"success_rate"`
	TotalMinutesBlocked int     `json:"total_minutes_blocked"`
}
