package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/helpgames/helpgames-api/models"
)

// ErrPercentageSum is returned when the merged category percentages do not
// add up to exactly 100.
var ErrPercentageSum = errors.New("leisure percentages must sum to 100")

// Defaults applied the first time a user configures their allocation.
const (
	DefaultBettingPercentage = 10
	DefaultCinemaPercentage  = 20
	DefaultHobbiesPercentage = 30
	DefaultTravelPercentage  = 20
	DefaultOtherPercentage   = 20
)

type AllocationService struct {
	db *sql.DB
}

func NewAllocationService(db *sql.DB) *AllocationService {
	return &AllocationService{db: db}
}

// Get returns the user's allocation, or nil when none has been configured.
func (s *AllocationService) Get(ctx context.Context, userID string) (*models.LeisureAllocation, error) {
	var a models.LeisureAllocation
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, betting_percentage, cinema_percentage, hobbies_percentage,
		       travel_percentage, other_percentage, created_at, updated_at
		FROM leisure_allocations
		WHERE user_id = $1
	`, userID).Scan(
		&a.ID,
		&a.UserID,
		&a.BettingPercentage,
		&a.CinemaPercentage,
		&a.HobbiesPercentage,
		&a.TravelPercentage,
		&a.OtherPercentage,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// MergeAllocation overlays a partial update on the existing allocation, or
// on the defaults when the user has none yet. Unset fields keep their value.
func MergeAllocation(existing *models.LeisureAllocation, req models.UpdateAllocationRequest) models.LeisureAllocation {
	merged := models.LeisureAllocation{
		BettingPercentage: DefaultBettingPercentage,
		CinemaPercentage:  DefaultCinemaPercentage,
		HobbiesPercentage: DefaultHobbiesPercentage,
		TravelPercentage:  DefaultTravelPercentage,
		OtherPercentage:   DefaultOtherPercentage,
	}
	if existing != nil {
		merged = *existing
	}

	if req.BettingPercentage != nil {
		merged.BettingPercentage = *req.BettingPercentage
	}
	if req.CinemaPercentage != nil {
		merged.CinemaPercentage = *req.CinemaPercentage
	}
	if req.HobbiesPercentage != nil {
		merged.HobbiesPercentage = *req.HobbiesPercentage
	}
	if req.TravelPercentage != nil {
		merged.TravelPercentage = *req.TravelPercentage
	}
	if req.OtherPercentage != nil {
		merged.OtherPercentage = *req.OtherPercentage
	}

	return merged
}

// CreateOrUpdate merges the partial request over the stored allocation (or
// the defaults) and persists it. The merged set must sum to exactly 100.
func (s *AllocationService) CreateOrUpdate(ctx context.Context, userID string, req models.UpdateAllocationRequest) (*models.LeisureAllocation, error) {
	existing, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := MergeAllocation(existing, req)

	sum := merged.BettingPercentage + merged.CinemaPercentage + merged.HobbiesPercentage +
		merged.TravelPercentage + merged.OtherPercentage
	if sum != 100 {
		return nil, ErrPercentageSum
	}

	var a models.LeisureAllocation
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO leisure_allocations
			(user_id, betting_percentage, cinema_percentage, hobbies_percentage, travel_percentage, other_percentage)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET betting_percentage = EXCLUDED.betting_percentage,
		    cinema_percentage = EXCLUDED.cinema_percentage,
		    hobbies_percentage = EXCLUDED.hobbies_percentage,
		    travel_percentage = EXCLUDED.travel_percentage,
		    other_percentage = EXCLUDED.other_percentage,
		    updated_at = NOW()
		RETURNING id, user_id, betting_percentage, cinema_percentage, hobbies_percentage,
		          travel_percentage, other_percentage, created_at, updated_at
	`, userID, merged.BettingPercentage, merged.CinemaPercentage, merged.HobbiesPercentage,
		merged.TravelPercentage, merged.OtherPercentage).Scan(
		&a.ID,
		&a.UserID,
		&a.BettingPercentage,
		&a.CinemaPercentage,
		&a.HobbiesPercentage,
		&a.TravelPercentage,
		&a.OtherPercentage,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Breakdown computes the minor-unit amount for each category as
// floor(budget * percentage / 100), independently per category.
func Breakdown(leisureBudget int64, a models.LeisureAllocation) models.AllocationBreakdown {
	share := func(pct int) int64 {
		return leisureBudget * int64(pct) / 100
	}
	return models.AllocationBreakdown{
		Betting: share(a.BettingPercentage),
		Cinema:  share(a.CinemaPercentage),
		Hobbies: share(a.HobbiesPercentage),
		Travel:  share(a.TravelPercentage),
		Other:   share(a.OtherPercentage),
	}
}
