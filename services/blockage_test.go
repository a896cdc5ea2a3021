package services

import (
	"testing"
	"time"

	"github.com/helpgames/helpgames-api/models"
)

func TestStatusAt(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		blockage *models.BetsBlockage
		want     models.BlockageStatus
	}{
		{
			name:     "no blockage",
			blockage: nil,
			want:     models.BlockageStatus{},
		},
		{
			name: "active five minute blockage",
			blockage: &models.BetsBlockage{
				BlockedUntil: now.Add(5 * time.Minute),
			},
			want: models.BlockageStatus{
				IsBlocked:        true,
				RemainingSeconds: 300,
				RemainingMinutes: 5,
			},
		},
		{
			name: "partial seconds round up",
			blockage: &models.BetsBlockage{
				BlockedUntil: now.Add(90*time.Second + 500*time.Millisecond),
			},
			want: models.BlockageStatus{
				IsBlocked:        true,
				RemainingSeconds: 91,
				RemainingMinutes: 2,
			},
		},
		{
			name: "one second left",
			blockage: &models.BetsBlockage{
				BlockedUntil: now.Add(time.Second),
			},
			want: models.BlockageStatus{
				IsBlocked:        true,
				RemainingSeconds: 1,
				RemainingMinutes: 1,
			},
		},
		{
			name: "expired blockage",
			blockage: &models.BetsBlockage{
				BlockedUntil: now.Add(-time.Minute),
			},
			want: models.BlockageStatus{},
		},
		{
			name: "expires exactly now",
			blockage: &models.BetsBlockage{
				BlockedUntil: now,
			},
			want: models.BlockageStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusAt(tt.blockage, now)
			if got != tt.want {
				t.Errorf("StatusAt() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatusAtNeverNegative(t *testing.T) {
	now := time.Now()
	for _, offset := range []time.Duration{-time.Hour, -time.Second, 0} {
		b := &models.BetsBlockage{BlockedUntil: now.Add(offset)}
		got := StatusAt(b, now)
		if got.RemainingSeconds < 0 || got.RemainingMinutes < 0 {
			t.Errorf("offset %v: negative remaining in %+v", offset, got)
		}
		if got.IsBlocked {
			t.Errorf("offset %v: should not be blocked", offset)
		}
	}
}
