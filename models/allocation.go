package models

import "time"

// LeisureAllocation splits the leisure budget across five categories.
// Percentages must sum to 100 once merged with defaults.
type LeisureAllocation struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	BettingPercentage int       `json:"betting_percentage"`
	CinemaPercentage  int       `json:"cinema_percentage"`
	HobbiesPercentage int       `json:"hobbies_percentage"`
	TravelPercentage  int       `json:"travel_percentage"`
	OtherPercentage   int       `json:"other_percentage"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateAllocationRequest carries a partial update; nil fields keep their
// stored value (or the default on first creation).
type UpdateAllocationRequest struct {
	BettingPercentage *int `json:"betting_percentage" binding:"omitempty,min=0,max=100"`
	CinemaPercentage  *int `json:"cinema_percentage" binding:"omitempty,min=0,max=100"`
	HobbiesPercentage *int `json:"hobbies_percentage" binding:"omitempty,min=0,max=100"`
	TravelPercentage  *int `json:"travel_percentage" binding:"omitempty,min=0,max=100"`
	OtherPercentage   *int `json:"other_percentage" binding:"omitempty,min=0,max=100"`
}

// AllocationBreakdown holds the minor-unit amount for each category.
type AllocationBreakdown struct {
	Betting int64 `json:"betting"`
	Cinema  int64 `json:"cinema"`
	Hobbies int64 `json:"hobbies"`
	Travel  int64 `json:"travel"`
	Other   int64 `json:"other"`
}
