package services

import (
	"context"
	"database/sql"

	"github.com/helpgames/helpgames-api/models"
)

// GamblingService logs access attempts against known gambling domains and
// feeds wagered stakes into the monthly spend tracker.
type GamblingService struct {
	db       *sql.DB
	finance  *FinanceService
	blockage *BlockageService
}

func NewGamblingService(db *sql.DB, finance *FinanceService, blockage *BlockageService) *GamblingService {
	return &GamblingService{db: db, finance: finance, blockage: blockage}
}

// SearchSites matches known gambling websites by name or domain.
func (s *GamblingService) SearchSites(ctx context.Context, search string, limit int) ([]models.GamblingWebsite, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, domain, created_at
		FROM gambling_websites
		WHERE name ILIKE '%' || $1 || '%' OR domain ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`, search, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sites := []models.GamblingWebsite{}
	for rows.Next() {
		var site models.GamblingWebsite
		if err := rows.Scan(&site.ID, &site.Name, &site.Domain, &site.CreatedAt); err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// ============================================================================
// USER HOBBIES
// ============================================================================

func (s *GamblingService) ListHobbies(ctx context.Context, userID string) ([]models.UserHobby, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, created_at
		FROM user_hobbies
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hobbies := []models.UserHobby{}
	for rows.Next() {
		var hobby models.UserHobby
		if err := rows.Scan(&hobby.ID, &hobby.UserID, &hobby.Name, &hobby.CreatedAt); err != nil {
			return nil, err
		}
		hobbies = append(hobbies, hobby)
	}

	return hobbies, rows.Err()
}

func (s *GamblingService) AddHobby(ctx context.Context, userID, name string) (*models.UserHobby, error) {
	var hobby models.UserHobby
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO user_hobbies (user_id, name)
		VALUES ($1, $2)
		RETURNING id, user_id, name, created_at
	`, userID, name).Scan(&hobby.ID, &hobby.UserID, &hobby.Name, &hobby.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &hobby, nil
}

// suggestHobby picks one of the user's hobbies as an alternative activity.
func (s *GamblingService) suggestHobby(ctx context.Context, userID string) string {
	var name string
	err := s.db.QueryRowContext(ctx, `
		SELECT name FROM user_hobbies
		WHERE user_id = $1
		ORDER BY random()
		LIMIT 1
	`, userID).Scan(&name)
	if err != nil {
		return ""
	}
	return name
}

// ============================================================================
// ACCESS ATTEMPTS
// ============================================================================

// RegisterAttempt records one attempted visit to a gambling domain. An
// active blockage forces the "blocked" outcome with no spend; an accepted
// redirect records "redirected"; otherwise the stake counts as "wagered" and
// flows into the monthly spend tracker, flagged when it exceeds the
// remaining betting budget.
func (s *GamblingService) RegisterAttempt(ctx context.Context, userID string, req models.RegisterAttemptRequest) (*models.AccessAttempt, error) {
	outcome := models.AttemptOutcomeWagered
	exceededLimit := false

	active, err := s.blockage.Active(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case active != nil:
		outcome = models.AttemptOutcomeBlocked
	case req.AcceptedRedirect:
		outcome = models.AttemptOutcomeRedirected
	default:
		limit, err := s.finance.BettingLimit(ctx, userID)
		if err != nil {
			return nil, err
		}
		spent, err := s.finance.SpentThisMonth(ctx, userID)
		if err != nil {
			return nil, err
		}
		exceededLimit = req.Stake > limit-spent

		if _, err := s.finance.AddSpending(ctx, userID, req.Stake); err != nil {
			return nil, err
		}
	}

	suggested := s.suggestHobby(ctx, userID)

	var attempt models.AccessAttempt
	var suggestedCol sql.NullString
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO access_attempts
			(user_id, domain, stake, odds, emotional_context, accepted_redirect, suggested_hobby, outcome, exceeded_limit)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
		RETURNING id, user_id, domain, stake, odds, emotional_context, accepted_redirect,
		          suggested_hobby, outcome, exceeded_limit, created_at
	`, userID, req.Domain, req.Stake, req.Odds, req.EmotionalContext,
		req.AcceptedRedirect, suggested, outcome, exceededLimit).Scan(
		&attempt.ID,
		&attempt.UserID,
		&attempt.Domain,
		&attempt.Stake,
		&attempt.Odds,
		&attempt.EmotionalContext,
		&attempt.AcceptedRedirect,
		&suggestedCol,
		&attempt.Outcome,
		&attempt.ExceededLimit,
		&attempt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	attempt.SuggestedHobby = suggestedCol.String
	return &attempt, nil
}

// ListAttempts returns the user's attempt log, newest first.
func (s *GamblingService) ListAttempts(ctx context.Context, userID string, limit int) ([]models.AccessAttempt, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, domain, stake, odds, emotional_context, accepted_redirect,
		       COALESCE(suggested_hobby, ''), outcome, exceeded_limit, created_at
		FROM access_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []models.AccessAttempt{}
	for rows.Next() {
		var attempt models.AccessAttempt
		err := rows.Scan(
			&attempt.ID,
			&attempt.UserID,
			&attempt.Domain,
			&attempt.Stake,
			&attempt.Odds,
			&attempt.EmotionalContext,
			&attempt.AcceptedRedirect,
			&attempt.SuggestedHobby,
			&attempt.Outcome,
			&attempt.ExceededLimit,
			&attempt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}
