package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

// Multi delivers every announcement to all of its sinks. A failing sink
// does not stop delivery to the others.
type Multi []contract.Notifier

// WithRetry wraps every sink in its own Retry. Retrying the fan-out as a
// whole would resend to the sinks that already delivered.
func (m Multi) WithRetry(logger zerolog.Logger) Multi {
	out := make(Multi, 0, len(m))
	for _, n := range m {
		out = append(out, NewRetry(n, logger))
	}
	return out
}

func (m Multi) SendReminder(ctx context.Context, channelID string, threshold domain.Threshold, remaining time.Duration) error {
	var errs []error
	for _, n := range m {
		if err := n.SendReminder(ctx, channelID, threshold, remaining); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) SendAdvancement(ctx context.Context, channelID string, season, week int) error {
	var errs []error
	for _, n := range m {
		if err := n.SendAdvancement(ctx, channelID, season, week); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
