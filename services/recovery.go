package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/helpgames/helpgames-api/models"
	"github.com/helpgames/helpgames-api/utils"
)

// RecoveryService covers the behavioral-support records: avoided bets,
// savings goals, crisis messages and their aggregate statistics.
type RecoveryService struct {
	db *sql.DB
}

func NewRecoveryService(db *sql.DB) *RecoveryService {
	return &RecoveryService{db: db}
}

// ============================================================================
// AVOIDED BETS
// ============================================================================

func (s *RecoveryService) CreateAvoidedBet(ctx context.Context, userID string, amount int64, emotionalContext string) (*models.AvoidedBet, error) {
	var bet models.AvoidedBet
	var contextCol sql.NullString

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO avoided_bets (user_id, amount, emotional_context)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, user_id, amount, emotional_context, created_at
	`, userID, amount, emotionalContext).Scan(
		&bet.ID,
		&bet.UserID,
		&bet.Amount,
		&contextCol,
		&bet.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	bet.EmotionalContext = contextCol.String
	return &bet, nil
}

func (s *RecoveryService) ListAvoidedBets(ctx context.Context, userID string, limit int) ([]models.AvoidedBet, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, COALESCE(emotional_context, ''), created_at
		FROM avoided_bets
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bets := []models.AvoidedBet{}
	for rows.Next() {
		var bet models.AvoidedBet
		if err := rows.Scan(&bet.ID, &bet.UserID, &bet.Amount, &bet.EmotionalContext, &bet.CreatedAt); err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}

	return bets, rows.Err()
}

// TotalPreserved sums every amount the user chose not to wager.
func (s *RecoveryService) TotalPreserved(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM avoided_bets WHERE user_id = $1
	`, userID).Scan(&total)
	return total, err
}

// DaysWithoutBetting counts full days since the newest avoided-bet entry,
// or 0 when the user has none.
func (s *RecoveryService) DaysWithoutBetting(ctx context.Context, userID string) (int, error) {
	var last time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT created_at FROM avoided_bets
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(&last)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return int(time.Since(last).Hours() / 24), nil
}

func (s *RecoveryService) Statistics(ctx context.Context, userID string) (*models.Statistics, error) {
	total, err := s.TotalPreserved(ctx, userID)
	if err != nil {
		return nil, err
	}

	days, err := s.DaysWithoutBetting(ctx, userID)
	if err != nil {
		return nil, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM avoided_bets WHERE user_id = $1
	`, userID).Scan(&count); err != nil {
		return nil, err
	}

	return &models.Statistics{
		TotalPreserved:     total,
		DaysWithoutBetting: days,
		TotalBetsAvoided:   count,
	}, nil
}

// ============================================================================
// GOALS
// ============================================================================

func (s *RecoveryService) CreateGoal(ctx context.Context, userID string, req models.CreateGoalRequest) (*models.Goal, error) {
	var goal models.Goal
	var imageURL sql.NullString

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO goals (user_id, title, target_amount, image_url)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id, user_id, title, target_amount, image_url, is_completed, completed_at, created_at, updated_at
	`, userID, req.Title, req.TargetAmount, req.ImageURL).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.TargetAmount,
		&imageURL,
		&goal.IsCompleted,
		&goal.CompletedAt,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	goal.ImageURL = imageURL.String
	return &goal, nil
}

func (s *RecoveryService) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, target_amount, COALESCE(image_url, ''), is_completed, completed_at, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var goal models.Goal
		err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Title,
			&goal.TargetAmount,
			&goal.ImageURL,
			&goal.IsCompleted,
			&goal.CompletedAt,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// UpdateGoal applies a partial update scoped by (id, user_id). Marking a goal
// completed stamps completed_at; unmarking clears it.
func (s *RecoveryService) UpdateGoal(ctx context.Context, goalID, userID string, req models.UpdateGoalRequest) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE goals
		SET title = COALESCE($3, title),
		    target_amount = COALESCE($4, target_amount),
		    image_url = COALESCE($5, image_url),
		    completed_at = CASE
		        WHEN $6::boolean = TRUE AND is_completed = FALSE THEN NOW()
		        WHEN $6::boolean = FALSE THEN NULL
		        ELSE completed_at
		    END,
		    is_completed = COALESCE($6, is_completed),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, goalID, userID, req.Title, req.TargetAmount, req.ImageURL, req.IsCompleted)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *RecoveryService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM goals WHERE id = $1 AND user_id = $2
	`, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ============================================================================
// CRISIS MESSAGES
// ============================================================================

// Crisis messages are deeply personal, so the body is encrypted at rest.
// Reads fall back to plaintext for rows written before encryption was added.

func decryptMessage(stored string) string {
	plaintext, err := utils.Decrypt(stored)
	if err != nil {
		return stored
	}
	return string(plaintext)
}

func (s *RecoveryService) CreateCrisisMessage(ctx context.Context, userID, message string) (*models.CrisisMessage, error) {
	encrypted, err := utils.Encrypt([]byte(message))
	if err != nil {
		return nil, err
	}

	var msg models.CrisisMessage
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO crisis_messages (user_id, message)
		VALUES ($1, $2)
		RETURNING id, user_id, is_active, created_at, updated_at
	`, userID, encrypted).Scan(
		&msg.ID,
		&msg.UserID,
		&msg.IsActive,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	msg.Message = message
	return &msg, nil
}

func (s *RecoveryService) ListCrisisMessages(ctx context.Context, userID string) ([]models.CrisisMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, message, is_active, created_at, updated_at
		FROM crisis_messages
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.CrisisMessage{}
	for rows.Next() {
		var msg models.CrisisMessage
		var stored string
		if err := rows.Scan(&msg.ID, &msg.UserID, &stored, &msg.IsActive, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
			return nil, err
		}
		msg.Message = decryptMessage(stored)
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (s *RecoveryService) UpdateCrisisMessage(ctx context.Context, messageID, userID string, req models.UpdateCrisisMessageRequest) error {
	var encrypted *string
	if req.Message != nil {
		enc, err := utils.Encrypt([]byte(*req.Message))
		if err != nil {
			return err
		}
		encrypted = &enc
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE crisis_messages
		SET message = COALESCE($3, message),
		    is_active = COALESCE($4, is_active),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, messageID, userID, encrypted, req.IsActive)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *RecoveryService) DeleteCrisisMessage(ctx context.Context, messageID, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM crisis_messages WHERE id = $1 AND user_id = $2
	`, messageID, userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
