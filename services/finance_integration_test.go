package services

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/helpgames/helpgames-api/config"
)

// The tests in this file hit a real database and only run when
// TEST_DATABASE_URL points at a disposable Postgres instance.

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}
	if err := config.RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB) string {
	t.Helper()

	email := fmt.Sprintf("spend-test-%d@example.com", time.Now().UnixNano())
	var id string
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, 'not-a-real-hash', 'Spend Test')
		RETURNING id
	`, email).Scan(&id)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}

	t.Cleanup(func() { db.Exec(`DELETE FROM users WHERE id = $1`, id) })
	return id
}

func backdateProfile(t *testing.T, db *sql.DB, userID string) {
	t.Helper()

	_, err := db.Exec(`
		UPDATE financial_profiles
		SET last_reset_date = NOW() - INTERVAL '1 month',
		    notified_at_80_percent = NOW() - INTERVAL '1 month'
		WHERE user_id = $1
	`, userID)
	if err != nil {
		t.Fatalf("backdate profile: %v", err)
	}
}

func TestAddSpendingAccumulatesWithinMonth(t *testing.T) {
	db := openTestDB(t)
	svc := NewFinanceService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	if _, err := svc.UpsertProfile(ctx, userID, 500000, 250000); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}

	if _, err := svc.AddSpending(ctx, userID, 3000); err != nil {
		t.Fatalf("AddSpending: %v", err)
	}
	profile, err := svc.AddSpending(ctx, userID, 4000)
	if err != nil {
		t.Fatalf("AddSpending: %v", err)
	}

	if profile.BettingSpentThisMonth != 7000 {
		t.Errorf("BettingSpentThisMonth = %d, want 7000", profile.BettingSpentThisMonth)
	}
}

func TestAddSpendingRollsOverAcrossMonths(t *testing.T) {
	db := openTestDB(t)
	svc := NewFinanceService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	if _, err := svc.UpsertProfile(ctx, userID, 500000, 250000); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	if _, err := svc.AddSpending(ctx, userID, 12000); err != nil {
		t.Fatalf("AddSpending: %v", err)
	}

	backdateProfile(t, db, userID)

	profile, err := svc.AddSpending(ctx, userID, 7000)
	if err != nil {
		t.Fatalf("AddSpending after rollover: %v", err)
	}

	if profile.BettingSpentThisMonth != 7000 {
		t.Errorf("BettingSpentThisMonth = %d, want 7000 after rollover", profile.BettingSpentThisMonth)
	}
	if !sameBudgetMonth(profile.LastResetDate, time.Now()) {
		t.Errorf("LastResetDate = %v, want current month", profile.LastResetDate)
	}
	if profile.NotifiedAt80Percent != nil || profile.NotifiedAt95Percent != nil {
		t.Error("threshold marks must clear on rollover")
	}
}

func TestSpentThisMonthPersistsReset(t *testing.T) {
	db := openTestDB(t)
	svc := NewFinanceService(db)
	ctx := context.Background()
	userID := createTestUser(t, db)

	if _, err := svc.UpsertProfile(ctx, userID, 500000, 250000); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	if _, err := svc.AddSpending(ctx, userID, 12000); err != nil {
		t.Fatalf("AddSpending: %v", err)
	}

	backdateProfile(t, db, userID)

	spent, err := svc.SpentThisMonth(ctx, userID)
	if err != nil {
		t.Fatalf("SpentThisMonth: %v", err)
	}
	if spent != 0 {
		t.Errorf("spent = %d, want 0 after rollover", spent)
	}

	// The read must persist the reset, not recompute it per call.
	var lastReset time.Time
	var notified80 *time.Time
	err = db.QueryRow(`
		SELECT last_reset_date, notified_at_80_percent
		FROM financial_profiles
		WHERE user_id = $1
	`, userID).Scan(&lastReset, &notified80)
	if err != nil {
		t.Fatalf("read profile row: %v", err)
	}

	if !sameBudgetMonth(lastReset, time.Now()) {
		t.Errorf("last_reset_date = %v, want current month", lastReset)
	}
	if notified80 != nil {
		t.Error("notified_at_80_percent must clear on rollover")
	}
}
