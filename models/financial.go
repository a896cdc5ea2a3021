package models

import "time"

// FinancialProfile is the single per-user row driving the budget engine.
// All amounts are in minor currency units (cents).
type FinancialProfile struct {
	ID                    string     `json:"id"`
	UserID                string     `json:"user_id"`
	MonthlyIncome         int64      `json:"monthly_income"`
	FixedExpenses         int64      `json:"fixed_expenses"`
	LeisureBudget         int64      `json:"leisure_budget"`
	BettingSpentThisMonth int64      `json:"betting_spent_this_month"`
	LastResetDate         time.Time  `json:"last_reset_date"`
	NotifiedAt80Percent   *time.Time `json:"notified_at_80_percent,omitempty"`
	NotifiedAt95Percent   *time.Time `json:"notified_at_95_percent,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// Distribution is the income split produced by the 3:2 rule.
type Distribution struct {
	Necessities int64 `json:"necessities"`
	Leisure     int64 `json:"leisure"`
	Savings     int64 `json:"savings"`
	Remaining   int64 `json:"remaining"`
}

type UpsertProfileRequest struct {
	MonthlyIncome int64 `json:"monthly_income" binding:"required,gt=0"`
	FixedExpenses int64 `json:"fixed_expenses" binding:"min=0"`
}

type AddSpendingRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
