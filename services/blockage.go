package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/helpgames/helpgames-api/models"
)

// ErrInvalidDuration rejects blockages shorter than one minute.
var ErrInvalidDuration = errors.New("blockage duration must be at least 1 minute")

const DefaultBlockageMinutes = 30

type BlockageService struct {
	db *sql.DB
}

func NewBlockageService(db *sql.DB) *BlockageService {
	return &BlockageService{db: db}
}

// Activate inserts a new time-boxed blockage record. Overlapping activations
// coexist as separate rows; there is no cancellation path once activated.
func (s *BlockageService) Activate(ctx context.Context, userID string, durationMinutes int) (*models.BetsBlockage, error) {
	if durationMinutes < 1 {
		return nil, ErrInvalidDuration
	}

	reason := fmt.Sprintf("Manual blockage of %d minutes", durationMinutes)
	blockedUntil := time.Now().Add(time.Duration(durationMinutes) * time.Minute)

	var b models.BetsBlockage
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO bets_blockages (id, user_id, blocked_until, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, blocked_until, reason, created_at
	`, uuid.New().String(), userID, blockedUntil, reason).Scan(
		&b.ID,
		&b.UserID,
		&b.BlockedUntil,
		&b.Reason,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Active returns the most recently created blockage still in the future, or
// nil when the user is unblocked.
func (s *BlockageService) Active(ctx context.Context, userID string) (*models.BetsBlockage, error) {
	var b models.BetsBlockage
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, blocked_until, reason, created_at
		FROM bets_blockages
		WHERE user_id = $1 AND blocked_until > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(
		&b.ID,
		&b.UserID,
		&b.BlockedUntil,
		&b.Reason,
		&b.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// StatusAt derives the blocked/unblocked view of a blockage at a given
// instant. A nil blockage means unblocked.
func StatusAt(blockage *models.BetsBlockage, now time.Time) models.BlockageStatus {
	if blockage == nil || !blockage.BlockedUntil.After(now) {
		return models.BlockageStatus{}
	}

	remaining := blockage.BlockedUntil.Sub(now)
	seconds := int((remaining + time.Second - 1) / time.Second)
	minutes := (seconds + 59) / 60

	return models.BlockageStatus{
		IsBlocked:        true,
		RemainingSeconds: seconds,
		RemainingMinutes: minutes,
	}
}

func (s *BlockageService) Status(ctx context.Context, userID string) (models.BlockageStatus, error) {
	blockage, err := s.Active(ctx, userID)
	if err != nil {
		return models.BlockageStatus{}, err
	}
	return StatusAt(blockage, time.Now()), nil
}

// History lists all blockage records for the user, newest first.
func (s *BlockageService) History(ctx context.Context, userID string) ([]models.BetsBlockage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, blocked_until, reason, created_at
		FROM bets_blockages
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blockages := []models.BetsBlockage{}
	for rows.Next() {
		var b models.BetsBlockage
		if err := rows.Scan(&b.ID, &b.UserID, &b.BlockedUntil, &b.Reason, &b.CreatedAt); err != nil {
			return nil, err
		}
		blockages = append(blockages, b)
	}

	return blockages, rows.Err()
}

// Stats aggregates the user's blockage history. A block counts as completed
// once its window has fully elapsed; with no cancellation path, completion
// is the only success signal available.
func (s *BlockageService) Stats(ctx context.Context, userID string) (models.BlockageStats, error) {
	var stats models.BlockageStats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE blocked_until <= NOW()),
		       COALESCE(SUM(CEIL(EXTRACT(EPOCH FROM (blocked_until - created_at)) / 60)), 0)
		FROM bets_blockages
		WHERE user_id = $1
	`, userID).Scan(&stats.TotalBlocks, &stats.CompletedBlocks, &stats.TotalMinutesBlocked)
	if err != nil {
		return models.BlockageStats{}, err
	}

	if stats.TotalBlocks > 0 {
		stats.SuccessRate = float64(stats.CompletedBlocks) / float64(stats.TotalBlocks) * 100
	}
	return stats, nil
}
