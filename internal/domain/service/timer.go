package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

// AdvanceTimer owns one channel's countdown. Every field below sem is
// guarded by sem, a one-slot channel used as a lock so the monitor loop
// can give up waiting for it when cancelled.
type AdvanceTimer struct {
	channelID string
	dm        contract.DataManager
	notifier  contract.Notifier
	logger    zerolog.Logger
	opts      Options
	base      context.Context

	sem chan struct{}

	state  *entity.TimerState
	stale  bool // in-memory state went inactive without being persisted
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

func newAdvanceTimer(base context.Context, state *entity.TimerState, dm contract.DataManager, notifier contract.Notifier, logger zerolog.Logger, opts Options) *AdvanceTimer {
	return &AdvanceTimer{
		channelID: state.ChannelID,
		dm:        dm,
		notifier:  notifier,
		logger:    logger.With().Str("channel_id", state.ChannelID).Logger(),
		opts:      opts,
		base:      base,
		sem:       make(chan struct{}, 1),
		state:     state,
	}
}

// ChannelID returns the channel this timer belongs to
func (t *AdvanceTimer) ChannelID() string {
	return t.channelID
}

func (t *AdvanceTimer) lock(ctx context.Context) error {
	select {
	case t.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *AdvanceTimer) unlock() {
	<-t.sem
}

// start replaces any running countdown with a new one of length d
func (t *AdvanceTimer) start(ctx context.Context, d time.Duration) (entity.Status, error) {
	if d <= 0 || d > domain.MaxCountdown {
		return entity.Status{}, ErrInvalidDuration
	}
	if err := t.lock(ctx); err != nil {
		return entity.Status{}, err
	}
	defer t.unlock()

	now := t.opts.Now()
	next := t.state.Clone()
	next.Countdown = newCountdown(now, d, t.opts.Thresholds)
	next.UpdatedAt = now

	// the old loop must be gone before anything is written for the new countdown
	t.stopLoopLocked()

	if err := t.save(ctx, next); err != nil {
		t.resumeLocked()
		return t.statusLocked(), fmt.Errorf("failed to save timer: %w", err)
	}

	t.state = next
	t.stale = false
	t.launchLocked()

	t.logger.Info().
		Time("deadline", next.Countdown.Deadline).
		Dur("duration", d).
		Msg("countdown started")

	return t.statusLocked(), nil
}

// stop cancels the countdown. Stopping an inactive timer succeeds without writing.
func (t *AdvanceTimer) stop(ctx context.Context) error {
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.unlock()

	if !t.state.Active() && !t.stale {
		return nil
	}

	t.stopLoopLocked()

	next := t.state.Clone()
	next.Countdown = nil
	next.UpdatedAt = t.opts.Now()

	if err := t.save(ctx, next); err != nil {
		t.resumeLocked()
		return fmt.Errorf("failed to save timer: %w", err)
	}

	t.state = next
	t.stale = false
	t.logger.Info().Msg("countdown stopped")

	return nil
}

func (t *AdvanceTimer) status(ctx context.Context) (entity.Status, error) {
	if err := t.lock(ctx); err != nil {
		return entity.Status{}, err
	}
	defer t.unlock()

	return t.statusLocked(), nil
}

func (t *AdvanceTimer) statusLocked() entity.Status {
	return statusOf(t.state, t.opts.Now())
}

func statusOf(state *entity.TimerState, now time.Time) entity.Status {
	st := entity.Status{
		ChannelID: state.ChannelID,
		Season:    state.Season,
		Week:      state.Week,
		Active:    state.Active(),
		Remaining: state.Remaining(now),
	}
	if state.Countdown != nil {
		st.Deadline = state.Countdown.Deadline
	}
	return st
}

func (t *AdvanceTimer) ref(ctx context.Context) (entity.WeekRef, error) {
	if err := t.lock(ctx); err != nil {
		return entity.WeekRef{}, err
	}
	defer t.unlock()

	return t.state.Ref(), nil
}

// setWeek overwrites season and week without touching the countdown
func (t *AdvanceTimer) setWeek(ctx context.Context, season, week int) (entity.Status, error) {
	if err := validateWeek(season, week); err != nil {
		return entity.Status{}, err
	}
	if err := t.lock(ctx); err != nil {
		return entity.Status{}, err
	}
	defer t.unlock()

	next := t.state.Clone()
	next.Season = season
	next.Week = week
	next.UpdatedAt = t.opts.Now()

	if err := t.save(ctx, next); err != nil {
		return t.statusLocked(), fmt.Errorf("failed to save timer: %w", err)
	}
	t.state = next

	t.logger.Info().Int("season", season).Int("week", week).Msg("season and week set")
	return t.statusLocked(), nil
}

// advance is the single entry point for week advancement. When expect is
// set and no longer matches the current week, another trigger already
// advanced and nil is returned.
func (t *AdvanceTimer) advance(ctx context.Context, expect *entity.WeekRef, source domain.AdvanceSource) (*entity.Advancement, error) {
	if err := t.lock(ctx); err != nil {
		return nil, err
	}
	defer t.unlock()

	if expect != nil && t.state.Ref() != *expect {
		t.logger.Info().
			Int("season", t.state.Season).
			Int("week", t.state.Week).
			Str("source", string(source)).
			Msg("advancement already applied, ignoring duplicate trigger")
		return nil, nil
	}

	next, adv := t.nextAdvancementLocked(source)

	// a pending deadline is consumed here, so its loop cannot fire it again
	t.stopLoopLocked()

	storeCtx, cancel := context.WithTimeout(ctx, t.opts.StoreTimeout)
	err := t.commit(storeCtx, next, adv)
	cancel()
	if err != nil {
		t.resumeLocked()
		return nil, fmt.Errorf("failed to save advancement: %w", err)
	}

	t.applyAdvancementLocked(next, adv)
	return adv, nil
}

// resume starts the monitor loop for a recovered countdown
func (t *AdvanceTimer) resume(ctx context.Context) error {
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.unlock()

	t.resumeLocked()
	return nil
}

// shutdown cancels the loop and writes the last known state. The
// countdown stays active in the store so the next process resumes it.
func (t *AdvanceTimer) shutdown(ctx context.Context) error {
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.unlock()

	running := t.cancel != nil
	t.stopLoopLocked()
	if !running {
		return nil
	}

	if err := t.save(ctx, t.state); err != nil {
		return fmt.Errorf("failed to save timer on shutdown: %w", err)
	}
	return nil
}

func (t *AdvanceTimer) nextAdvancementLocked(source domain.AdvanceSource) (*entity.TimerState, *entity.Advancement) {
	now := t.opts.Now()
	season, week := AdvanceWeek(t.state.Season, t.state.Week)

	next := t.state.Clone()
	next.Season = season
	next.Week = week
	next.Countdown = nil
	if t.opts.RearmAfter > 0 {
		next.Countdown = newCountdown(now, t.opts.RearmAfter, t.opts.Thresholds)
	}
	next.UpdatedAt = now

	adv := &entity.Advancement{
		ChannelID:  t.channelID,
		FromSeason: t.state.Season,
		FromWeek:   t.state.Week,
		ToSeason:   season,
		ToWeek:     week,
		Source:     source,
		AdvancedAt: now,
	}
	return next, adv
}

// applyAdvancementLocked installs a committed advancement, announces it
// and arms the next countdown when re-arming is configured
func (t *AdvanceTimer) applyAdvancementLocked(next *entity.TimerState, adv *entity.Advancement) {
	t.state = next
	t.stale = false

	t.logger.Info().
		Int("from_season", adv.FromSeason).
		Int("from_week", adv.FromWeek).
		Int("season", adv.ToSeason).
		Int("week", adv.ToWeek).
		Str("source", string(adv.Source)).
		Msg("week advanced")

	t.notifyAdvancement(adv.ToSeason, adv.ToWeek)

	if next.Active() {
		t.launchLocked()
	}
}

func (t *AdvanceTimer) save(ctx context.Context, state *entity.TimerState) error {
	storeCtx, cancel := context.WithTimeout(ctx, t.opts.StoreTimeout)
	defer cancel()

	return t.dm.Timer().Save(storeCtx, state)
}

func (t *AdvanceTimer) commit(ctx context.Context, next *entity.TimerState, adv *entity.Advancement) error {
	return t.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Timer().Save(ctx, next); err != nil {
			return err
		}
		return tx.Advancement().Create(ctx, adv)
	})
}

// retryStore runs fn up to StoreRetries times with exponential backoff.
// Used by the monitor loop, which has no caller to hand an error to.
func (t *AdvanceTimer) retryStore(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	delay := t.opts.RetryBackoff
	for attempt := 1; attempt <= t.opts.StoreRetries; attempt++ {
		storeCtx, cancel := context.WithTimeout(ctx, t.opts.StoreTimeout)
		err = fn(storeCtx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == t.opts.StoreRetries {
			break
		}

		t.logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("store write failed, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
		delay *= 2
	}
	return err
}

func (t *AdvanceTimer) notifyReminder(parent context.Context, th domain.Threshold, remaining time.Duration) {
	ctx, cancel := context.WithTimeout(parent, t.opts.NotifyTimeout)
	defer cancel()

	if err := t.notifier.SendReminder(ctx, t.channelID, th, remaining); err != nil {
		t.logger.Error().Err(err).Str("threshold", th.Label).Msg("failed to send reminder")
	}
}

func (t *AdvanceTimer) notifyAdvancement(season, week int) {
	ctx, cancel := context.WithTimeout(t.base, t.opts.NotifyTimeout)
	defer cancel()

	if err := t.notifier.SendAdvancement(ctx, t.channelID, season, week); err != nil {
		t.logger.Error().Err(err).Int("season", season).Int("week", week).Msg("failed to send advancement")
	}
}
