package services

import (
	"testing"
	"time"

	"github.com/helpgames/helpgames-api/models"
)

func TestComputeDistribution(t *testing.T) {
	tests := []struct {
		name            string
		monthlyIncome   int64
		fixedExpenses   int64
		wantNecessities int64
		wantLeisure     int64
		wantSavings     int64
	}{
		{
			name:            "expenses at half of income",
			monthlyIncome:   500000,
			fixedExpenses:   250000,
			wantNecessities: 250000,
			wantLeisure:     150000,
			wantSavings:     100000,
		},
		{
			name:            "expenses above half of income",
			monthlyIncome:   500000,
			fixedExpenses:   300000,
			wantNecessities: 300000,
			wantLeisure:     120000,
			wantSavings:     80000,
		},
		{
			name:            "expenses below half of income",
			monthlyIncome:   500000,
			fixedExpenses:   200000,
			wantNecessities: 200000,
			wantLeisure:     180000,
			wantSavings:     120000,
		},
		{
			name:            "truncating division",
			monthlyIncome:   100000,
			fixedExpenses:   33333,
			wantNecessities: 33333,
			wantLeisure:     40000,
			wantSavings:     26667,
		},
		{
			name:            "zero expenses",
			monthlyIncome:   500000,
			fixedExpenses:   0,
			wantNecessities: 0,
			wantLeisure:     300000,
			wantSavings:     200000,
		},
		{
			name:            "expenses equal income",
			monthlyIncome:   500000,
			fixedExpenses:   500000,
			wantNecessities: 500000,
			wantLeisure:     0,
			wantSavings:     0,
		},
		{
			name:            "expenses exceed income",
			monthlyIncome:   500000,
			fixedExpenses:   600000,
			wantNecessities: 600000,
			wantLeisure:     0,
			wantSavings:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDistribution(tt.monthlyIncome, tt.fixedExpenses)

			if got.Necessities != tt.wantNecessities {
				t.Errorf("Necessities = %d, want %d", got.Necessities, tt.wantNecessities)
			}
			if got.Leisure != tt.wantLeisure {
				t.Errorf("Leisure = %d, want %d", got.Leisure, tt.wantLeisure)
			}
			if got.Savings != tt.wantSavings {
				t.Errorf("Savings = %d, want %d", got.Savings, tt.wantSavings)
			}

			// The three parts always close to max(income, expenses) exactly.
			want := tt.monthlyIncome
			if tt.fixedExpenses > want {
				want = tt.fixedExpenses
			}
			if sum := got.Necessities + got.Leisure + got.Savings; sum != want {
				t.Errorf("sum = %d, want %d", sum, want)
			}
		})
	}
}

func TestComputeDistributionRatio(t *testing.T) {
	// Leisure:savings holds the 3:2 ratio whenever there is anything to split.
	for _, income := range []int64{500000, 512345, 100000, 77777} {
		dist := ComputeDistribution(income, income/3)
		if dist.Savings == 0 {
			continue
		}
		ratio := float64(dist.Leisure) / float64(dist.Savings)
		if ratio < 1.4 || ratio > 1.6 {
			t.Errorf("income %d: leisure/savings = %.3f, want ~1.5", income, ratio)
		}
	}
}

func TestComputeDistributionNoCentLost(t *testing.T) {
	dist := ComputeDistribution(512345, 256789)
	if got := dist.Leisure + dist.Savings; got != dist.Remaining {
		t.Errorf("leisure+savings = %d, want remaining %d", got, dist.Remaining)
	}
}

func TestSameBudgetMonth(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same month",
			a:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "different month same year",
			a:    time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same month different year",
			a:    time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "year boundary",
			a:    time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2025, time.January, 1, 0, 1, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameBudgetMonth(tt.a, tt.b); got != tt.want {
				t.Errorf("sameBudgetMonth(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUsageRatio(t *testing.T) {
	tests := []struct {
		name  string
		spent int64
		limit int64
		want  float64
	}{
		{"empty", 0, 15000, 0},
		{"eighty percent", 12000, 15000, 0.8},
		{"over budget", 20000, 15000, 20000.0 / 15000.0},
		{"zero limit", 5000, 0, 0},
		{"negative limit", 5000, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UsageRatio(tt.spent, tt.limit); got != tt.want {
				t.Errorf("UsageRatio(%d, %d) = %v, want %v", tt.spent, tt.limit, got, tt.want)
			}
		})
	}
}

func TestDistributionMatchesProfileInvariant(t *testing.T) {
	// The stored leisure budget must always equal what the calculator
	// produces for the same inputs.
	profile := models.FinancialProfile{
		MonthlyIncome: 500000,
		FixedExpenses: 250000,
		LeisureBudget: ComputeDistribution(500000, 250000).Leisure,
	}

	dist := ComputeDistribution(profile.MonthlyIncome, profile.FixedExpenses)
	if profile.LeisureBudget != dist.Leisure {
		t.Errorf("profile leisure budget %d does not match computed %d", profile.LeisureBudget, dist.Leisure)
	}
	if profile.LeisureBudget < 0 {
		t.Error("leisure budget must never be negative")
	}
}
