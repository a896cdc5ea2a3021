package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/helpgames/helpgames-api/models"
)

var ErrProfileNotFound = errors.New("financial profile not found")

type FinanceService struct {
	db *sql.DB
}

func NewFinanceService(db *sql.DB) *FinanceService {
	return &FinanceService{db: db}
}

// ComputeDistribution applies the 3:2 leisure:savings rule to the balance
// left after fixed expenses. Necessities always equal the real expenses, so
// the three parts sum to max(income, expenses) exactly.
func ComputeDistribution(monthlyIncome, fixedExpenses int64) models.Distribution {
	remaining := monthlyIncome - fixedExpenses
	if remaining < 0 {
		remaining = 0
	}

	// 3/5 of the balance goes to leisure; savings take whatever is left so
	// integer truncation never loses a cent.
	leisure := remaining * 3 / 5
	savings := remaining - leisure

	return models.Distribution{
		Necessities: fixedExpenses,
		Leisure:     leisure,
		Savings:     savings,
		Remaining:   remaining,
	}
}

// sameBudgetMonth reports whether two instants fall in the same calendar
// month and year. A change of either triggers the monthly spend reset.
func sameBudgetMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

const profileColumns = `id, user_id, monthly_income, fixed_expenses, leisure_budget,
	       betting_spent_this_month, last_reset_date,
	       notified_at_80_percent, notified_at_95_percent, created_at, updated_at`

func scanProfile(row *sql.Row) (*models.FinancialProfile, error) {
	var p models.FinancialProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.MonthlyIncome,
		&p.FixedExpenses,
		&p.LeisureBudget,
		&p.BettingSpentThisMonth,
		&p.LastResetDate,
		&p.NotifiedAt80Percent,
		&p.NotifiedAt95Percent,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile recomputes the leisure budget from the submitted income and
// expenses and inserts or overwrites the user's profile row.
func (s *FinanceService) UpsertProfile(ctx context.Context, userID string, monthlyIncome, fixedExpenses int64) (*models.FinancialProfile, error) {
	dist := ComputeDistribution(monthlyIncome, fixedExpenses)

	query := `
		INSERT INTO financial_profiles (user_id, monthly_income, fixed_expenses, leisure_budget)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET monthly_income = EXCLUDED.monthly_income,
		    fixed_expenses = EXCLUDED.fixed_expenses,
		    leisure_budget = EXCLUDED.leisure_budget,
		    updated_at = NOW()
		RETURNING ` + profileColumns

	return scanProfile(s.db.QueryRowContext(ctx, query, userID, monthlyIncome, fixedExpenses, dist.Leisure))
}

// GetProfile returns the user's profile, or nil when none exists yet.
func (s *FinanceService) GetProfile(ctx context.Context, userID string) (*models.FinancialProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM financial_profiles WHERE user_id = $1`

	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// AddSpending adds a betting spend to the monthly accumulator. The rollover
// check and the increment happen in one conditional UPDATE so concurrent
// spends for the same user cannot lose each other's writes. Crossing a
// calendar month resets the accumulator to the new amount and clears both
// threshold marks.
func (s *FinanceService) AddSpending(ctx context.Context, userID string, amount int64) (*models.FinancialProfile, error) {
	query := `
		UPDATE financial_profiles
		SET betting_spent_this_month = CASE
		        WHEN date_trunc('month', last_reset_date) = date_trunc('month', NOW())
		        THEN betting_spent_this_month + $2
		        ELSE $2
		    END,
		    notified_at_80_percent = CASE
		        WHEN date_trunc('month', last_reset_date) = date_trunc('month', NOW())
		        THEN notified_at_80_percent
		        ELSE NULL
		    END,
		    notified_at_95_percent = CASE
		        WHEN date_trunc('month', last_reset_date) = date_trunc('month', NOW())
		        THEN notified_at_95_percent
		        ELSE NULL
		    END,
		    last_reset_date = CASE
		        WHEN date_trunc('month', last_reset_date) = date_trunc('month', NOW())
		        THEN last_reset_date
		        ELSE NOW()
		    END,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, userID, amount))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// SpentThisMonth returns the current accumulator, persisting a reset first
// when the calendar month has rolled over. Returns 0 when no profile exists.
func (s *FinanceService) SpentThisMonth(ctx context.Context, userID string) (int64, error) {
	reset := `
		UPDATE financial_profiles
		SET betting_spent_this_month = 0,
		    notified_at_80_percent = NULL,
		    notified_at_95_percent = NULL,
		    last_reset_date = NOW(),
		    updated_at = NOW()
		WHERE user_id = $1
		  AND date_trunc('month', last_reset_date) <> date_trunc('month', NOW())
	`
	if _, err := s.db.ExecContext(ctx, reset, userID); err != nil {
		return 0, err
	}

	var spent int64
	err := s.db.QueryRowContext(ctx, `
		SELECT betting_spent_this_month FROM financial_profiles WHERE user_id = $1
	`, userID).Scan(&spent)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return spent, nil
}

// BettingLimit computes the monthly betting sub-budget: the betting share of
// the leisure budget. Returns 0 when the profile or allocation is missing.
func (s *FinanceService) BettingLimit(ctx context.Context, userID string) (int64, error) {
	var leisureBudget int64
	var bettingPercentage int

	err := s.db.QueryRowContext(ctx, `
		SELECT fp.leisure_budget, la.betting_percentage
		FROM financial_profiles fp
		JOIN leisure_allocations la ON la.user_id = fp.user_id
		WHERE fp.user_id = $1
	`, userID).Scan(&leisureBudget, &bettingPercentage)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return leisureBudget * int64(bettingPercentage) / 100, nil
}

// MarkThresholdCrossings stamps the 80%/95% notification timestamps when the
// accumulated spend has crossed them and they are not already set this
// month. Each mark fires at most once per month; the conditional updates
// report which marks were newly set so the caller can deliver alerts.
func (s *FinanceService) MarkThresholdCrossings(ctx context.Context, userID string) (crossed80, crossed95 bool, err error) {
	limit, err := s.BettingLimit(ctx, userID)
	if err != nil || limit <= 0 {
		return false, false, err
	}

	mark := func(column string, percent int64) (bool, error) {
		res, err := s.db.ExecContext(ctx, `
			UPDATE financial_profiles
			SET `+column+` = NOW(), updated_at = NOW()
			WHERE user_id = $1
			  AND `+column+` IS NULL
			  AND betting_spent_this_month * 100 >= $2 * $3
		`, userID, limit, percent)
		if err != nil {
			return false, err
		}
		rows, _ := res.RowsAffected()
		return rows > 0, nil
	}

	crossed80, err = mark("notified_at_80_percent", 80)
	if err != nil {
		return false, false, err
	}
	crossed95, err = mark("notified_at_95_percent", 95)
	if err != nil {
		return crossed80, false, err
	}
	return crossed80, crossed95, nil
}

// UsageRatio returns spent/limit, or 0 when the limit is not positive.
func UsageRatio(spent, limit int64) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(spent) / float64(limit)
}
