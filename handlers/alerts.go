package handlers

import (
	"context"
	"log"
)

// thresholdMarker and alertSender narrow the finance service and the
// websocket hub to what spend alerting needs.
type thresholdMarker interface {
	MarkThresholdCrossings(ctx context.Context, userID string) (crossed80, crossed95 bool, err error)
}

type alertSender interface {
	BroadcastAlert(userID, alertType, message string)
}

// notifySpendThresholds marks newly crossed 80%/95% usage thresholds and
// pushes at most one alert per call, preferring the higher threshold. Every
// path that records betting spend must run this after the write.
func notifySpendThresholds(ctx context.Context, finance thresholdMarker, ws alertSender, userID string) {
	crossed80, crossed95, err := finance.MarkThresholdCrossings(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Failed to check spend thresholds for user %s: %v", userID, err)
		return
	}

	if crossed95 {
		ws.BroadcastAlert(userID, "betting_budget_95", "You have used 95% of your monthly betting budget")
	} else if crossed80 {
		ws.BroadcastAlert(userID, "betting_budget_80", "You have used 80% of your monthly betting budget")
	}
}
