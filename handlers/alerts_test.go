package handlers

import (
	"context"
	"errors"
	"testing"
)

type fakeThresholdMarker struct {
	crossed80 bool
	crossed95 bool
	err       error
}

func (f *fakeThresholdMarker) MarkThresholdCrossings(ctx context.Context, userID string) (bool, bool, error) {
	return f.crossed80, f.crossed95, f.err
}

type fakeAlertSender struct {
	types []string
}

func (f *fakeAlertSender) BroadcastAlert(userID, alertType, message string) {
	f.types = append(f.types, alertType)
}

func TestNotifySpendThresholds(t *testing.T) {
	tests := []struct {
		name      string
		crossed80 bool
		crossed95 bool
		err       error
		wantTypes []string
	}{
		{
			name: "no crossing sends nothing",
		},
		{
			name:      "eighty percent crossed",
			crossed80: true,
			wantTypes: []string{"betting_budget_80"},
		},
		{
			name:      "ninety five percent crossed",
			crossed95: true,
			wantTypes: []string{"betting_budget_95"},
		},
		{
			name:      "both crossed by one spend alerts the higher only",
			crossed80: true,
			crossed95: true,
			wantTypes: []string{"betting_budget_95"},
		},
		{
			name:      "marker error suppresses alerts",
			crossed80: true,
			crossed95: true,
			err:       errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker := &fakeThresholdMarker{crossed80: tt.crossed80, crossed95: tt.crossed95, err: tt.err}
			sender := &fakeAlertSender{}

			notifySpendThresholds(context.Background(), marker, sender, "user-1")

			if len(sender.types) != len(tt.wantTypes) {
				t.Fatalf("sent %v, want %v", sender.types, tt.wantTypes)
			}
			for i, want := range tt.wantTypes {
				if sender.types[i] != want {
					t.Errorf("alert %d = %q, want %q", i, sender.types[i], want)
				}
			}
		})
	}
}
