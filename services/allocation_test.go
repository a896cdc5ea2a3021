package services

import (
	"testing"

	"github.com/helpgames/helpgames-api/models"
)

func intPtr(v int) *int { return &v }

func TestMergeAllocationDefaults(t *testing.T) {
	merged := MergeAllocation(nil, models.UpdateAllocationRequest{})

	if merged.BettingPercentage != DefaultBettingPercentage {
		t.Errorf("BettingPercentage = %d, want %d", merged.BettingPercentage, DefaultBettingPercentage)
	}
	if merged.CinemaPercentage != DefaultCinemaPercentage {
		t.Errorf("CinemaPercentage = %d, want %d", merged.CinemaPercentage, DefaultCinemaPercentage)
	}
	if merged.HobbiesPercentage != DefaultHobbiesPercentage {
		t.Errorf("HobbiesPercentage = %d, want %d", merged.HobbiesPercentage, DefaultHobbiesPercentage)
	}
	if merged.TravelPercentage != DefaultTravelPercentage {
		t.Errorf("TravelPercentage = %d, want %d", merged.TravelPercentage, DefaultTravelPercentage)
	}
	if merged.OtherPercentage != DefaultOtherPercentage {
		t.Errorf("OtherPercentage = %d, want %d", merged.OtherPercentage, DefaultOtherPercentage)
	}

	sum := merged.BettingPercentage + merged.CinemaPercentage + merged.HobbiesPercentage +
		merged.TravelPercentage + merged.OtherPercentage
	if sum != 100 {
		t.Errorf("default percentages sum to %d, want 100", sum)
	}
}

func TestMergeAllocationPartialOverDefaults(t *testing.T) {
	merged := MergeAllocation(nil, models.UpdateAllocationRequest{
		BettingPercentage: intPtr(5),
		OtherPercentage:   intPtr(25),
	})

	if merged.BettingPercentage != 5 {
		t.Errorf("BettingPercentage = %d, want 5", merged.BettingPercentage)
	}
	if merged.OtherPercentage != 25 {
		t.Errorf("OtherPercentage = %d, want 25", merged.OtherPercentage)
	}
	if merged.CinemaPercentage != DefaultCinemaPercentage {
		t.Errorf("CinemaPercentage = %d, want untouched default %d", merged.CinemaPercentage, DefaultCinemaPercentage)
	}
}

func TestMergeAllocationPreservesExisting(t *testing.T) {
	existing := &models.LeisureAllocation{
		BettingPercentage: 15,
		CinemaPercentage:  15,
		HobbiesPercentage: 40,
		TravelPercentage:  10,
		OtherPercentage:   20,
	}

	merged := MergeAllocation(existing, models.UpdateAllocationRequest{
		HobbiesPercentage: intPtr(35),
	})

	if merged.HobbiesPercentage != 35 {
		t.Errorf("HobbiesPercentage = %d, want 35", merged.HobbiesPercentage)
	}
	if merged.BettingPercentage != 15 || merged.CinemaPercentage != 15 ||
		merged.TravelPercentage != 10 || merged.OtherPercentage != 20 {
		t.Errorf("unset fields changed: %+v", merged)
	}
}

func TestMergeAllocationZeroIsExplicit(t *testing.T) {
	// A zero in the request is a real value, not an unset field.
	merged := MergeAllocation(nil, models.UpdateAllocationRequest{
		BettingPercentage: intPtr(0),
	})
	if merged.BettingPercentage != 0 {
		t.Errorf("BettingPercentage = %d, want 0", merged.BettingPercentage)
	}
}

func TestBreakdown(t *testing.T) {
	alloc := models.LeisureAllocation{
		BettingPercentage: DefaultBettingPercentage,
		CinemaPercentage:  DefaultCinemaPercentage,
		HobbiesPercentage: DefaultHobbiesPercentage,
		TravelPercentage:  DefaultTravelPercentage,
		OtherPercentage:   DefaultOtherPercentage,
	}

	got := Breakdown(150000, alloc)

	if got.Betting != 15000 {
		t.Errorf("Betting = %d, want 15000", got.Betting)
	}
	if got.Cinema != 30000 {
		t.Errorf("Cinema = %d, want 30000", got.Cinema)
	}
	if got.Hobbies != 45000 {
		t.Errorf("Hobbies = %d, want 45000", got.Hobbies)
	}
	if got.Travel != 30000 {
		t.Errorf("Travel = %d, want 30000", got.Travel)
	}
	if got.Other != 30000 {
		t.Errorf("Other = %d, want 30000", got.Other)
	}
}

func TestBreakdownFloorsEachCategory(t *testing.T) {
	alloc := models.LeisureAllocation{
		BettingPercentage: 33,
		CinemaPercentage:  33,
		HobbiesPercentage: 34,
	}

	got := Breakdown(101, alloc)

	// 101 * 33 / 100 = 33.33 floors to 33; 101 * 34 / 100 = 34.34 floors to 34.
	if got.Betting != 33 {
		t.Errorf("Betting = %d, want 33", got.Betting)
	}
	if got.Cinema != 33 {
		t.Errorf("Cinema = %d, want 33", got.Cinema)
	}
	if got.Hobbies != 34 {
		t.Errorf("Hobbies = %d, want 34", got.Hobbies)
	}
	if got.Travel != 0 || got.Other != 0 {
		t.Errorf("zero percentages must yield zero amounts, got %+v", got)
	}
}

func TestBreakdownZeroBudget(t *testing.T) {
	got := Breakdown(0, models.LeisureAllocation{
		BettingPercentage: 100,
	})
	if got.Betting != 0 {
		t.Errorf("Betting = %d, want 0", got.Betting)
	}
}
