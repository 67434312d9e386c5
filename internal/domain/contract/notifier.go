package contract

import (
	"context"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
)

// Notifier delivers timekeeper announcements to a channel.
// Failures are reported to the caller but never stop a countdown.
type Notifier interface {
	SendReminder(ctx context.Context, channelID string, threshold domain.Threshold, remaining time.Duration) error
	SendAdvancement(ctx context.Context, channelID string, season, week int) error
}
