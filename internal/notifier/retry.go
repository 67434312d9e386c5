package notifier

import (
	"context"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

const (
	defaultAttempts = 3
	defaultBackoff  = time.Second
)

// Retry retries a notifier with exponential backoff, doubling the delay
// after every failed attempt. The caller's context bounds the whole call.
type Retry struct {
	next     contract.Notifier
	logger   zerolog.Logger
	attempts int
	backoff  time.Duration
}

func NewRetry(next contract.Notifier, logger zerolog.Logger) *Retry {
	return &Retry{
		next:     next,
		logger:   logger.With().Str("component", "notifier").Logger(),
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
	}
}

func (r *Retry) SendReminder(ctx context.Context, channelID string, threshold domain.Threshold, remaining time.Duration) error {
	return r.do(ctx, channelID, "reminder", func() error {
		return r.next.SendReminder(ctx, channelID, threshold, remaining)
	})
}

func (r *Retry) SendAdvancement(ctx context.Context, channelID string, season, week int) error {
	return r.do(ctx, channelID, "advancement", func() error {
		return r.next.SendAdvancement(ctx, channelID, season, week)
	})
}

func (r *Retry) do(ctx context.Context, channelID, kind string, fn func() error) error {
	var err error
	delay := r.backoff
	for attempt := 1; attempt <= r.attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == r.attempts {
			break
		}

		r.logger.Warn().
			Err(err).
			Str("channel_id", channelID).
			Str("kind", kind).
			Int("attempt", attempt).
			Dur("retry_in", delay).
			Msg("notification failed, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return err
		}
		delay *= 2
	}
	return err
}
