package models

import "time"

type GamblingWebsite struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"created_at"`
}

type UserHobby struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type AddHobbyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// Possible outcomes of a registered access attempt.
const (
	AttemptOutcomeBlocked    = "blocked"
	AttemptOutcomeRedirected = "redirected"
	AttemptOutcomeWagered    = "wagered"
)

// AccessAttempt logs one attempted visit to a known gambling domain.
type AccessAttempt struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Domain           string    `json:"domain"`
	Stake            int64     `json:"stake"`
	Odds             *float64  `json:"odds,omitempty"`
	EmotionalContext string    `json:"emotional_context"`
	AcceptedRedirect bool      `json:"accepted_redirect"`
	SuggestedHobby   string    `json:"suggested_hobby,omitempty"`
	Outcome          string    `json:"outcome"`
	ExceededLimit    bool      `json:"exceeded_limit"`
	CreatedAt        time.Time `json:"created_at"`
}

type RegisterAttemptRequest struct {
	Domain           string   `json:"domain" binding:"required"`
	Stake            int64    `json:"stake" binding:"required,gt=0"`
	Odds             *float64 `json:"odds" binding:"omitempty,gt=0"`
	EmotionalContext string   `json:"emotional_context" binding:"required"`
	AcceptedRedirect bool     `json:"accepted_redirect"`
}
