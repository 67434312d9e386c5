package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

// Options tunes the timekeeper. Zero values fall back to defaults.
type Options struct {
	Thresholds    []domain.Threshold
	RearmAfter    time.Duration // 0 leaves the timer inactive after an advancement
	StoreTimeout  time.Duration
	NotifyTimeout time.Duration
	StoreRetries  int
	RetryBackoff  time.Duration
	Now           func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Thresholds == nil {
		o.Thresholds = domain.DefaultThresholds
	}
	o.Thresholds = sortThresholds(o.Thresholds)
	if o.RearmAfter < 0 {
		o.RearmAfter = 0
	}
	if o.StoreTimeout <= 0 {
		o.StoreTimeout = domain.DefaultStoreTimeout
	}
	if o.NotifyTimeout <= 0 {
		o.NotifyTimeout = domain.DefaultNotifyTimeout
	}
	if o.StoreRetries <= 0 {
		o.StoreRetries = domain.DefaultStoreRetries
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// timerEntry lets concurrent first accesses to a channel share one load
type timerEntry struct {
	ready chan struct{}
	timer *AdvanceTimer
	err   error
}

// Timekeeper is the registry of per-channel advance timers
type Timekeeper struct {
	dm       contract.DataManager
	notifier contract.Notifier
	logger   zerolog.Logger
	opts     Options

	base   context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	timers map[string]*timerEntry
	closed bool
}

func newTimekeeper(dm contract.DataManager, notifier contract.Notifier, logger zerolog.Logger, opts Options) *Timekeeper {
	base, cancel := context.WithCancel(context.Background())
	return &Timekeeper{
		dm:       dm,
		notifier: notifier,
		logger:   logger.With().Str("component", "timekeeper").Logger(),
		opts:     opts.withDefaults(),
		base:     base,
		cancel:   cancel,
		timers:   make(map[string]*timerEntry),
	}
}

// GetOrCreateTimer returns the single timer for a channel, loading its
// stored state on first access. The registry lock is held only to claim
// the map slot; the load itself runs outside it.
func (k *Timekeeper) GetOrCreateTimer(ctx context.Context, channelID string) (*AdvanceTimer, error) {
	if channelID == "" {
		return nil, ErrEmptyChannel
	}

	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil, ErrManagerClosed
	}
	entry, ok := k.timers[channelID]
	if !ok {
		entry = &timerEntry{ready: make(chan struct{})}
		k.timers[channelID] = entry
	}
	k.mu.Unlock()

	if ok {
		select {
		case <-entry.ready:
			if entry.err != nil {
				return nil, entry.err
			}
			return entry.timer, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	entry.timer, entry.err = k.loadTimer(ctx, channelID)
	if entry.err != nil {
		k.mu.Lock()
		delete(k.timers, channelID)
		k.mu.Unlock()
	}
	close(entry.ready)

	return entry.timer, entry.err
}

func (k *Timekeeper) loadTimer(ctx context.Context, channelID string) (*AdvanceTimer, error) {
	storeCtx, cancel := context.WithTimeout(ctx, k.opts.StoreTimeout)
	defer cancel()

	state, err := k.dm.Timer().Get(storeCtx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load timer: %w", err)
	}
	if state == nil {
		state = entity.NewTimerState(channelID)
	}

	t := newAdvanceTimer(k.base, state, k.dm, k.notifier, k.logger, k.opts)

	// a stored countdown Recover did not pick up still gets its loop.
	// The timer is not published yet, so nothing else holds its lock.
	t.resumeLocked()
	if state.Active() {
		k.logger.Info().
			Str("channel_id", channelID).
			Time("deadline", state.Countdown.Deadline).
			Msg("countdown resumed on first access")
	}

	return t, nil
}

// Start begins or replaces the countdown for a channel
func (k *Timekeeper) Start(ctx context.Context, channelID string, duration time.Duration) (entity.Status, error) {
	if duration <= 0 || duration > domain.MaxCountdown {
		return entity.Status{}, ErrInvalidDuration
	}

	t, err := k.GetOrCreateTimer(ctx, channelID)
	if err != nil {
		return entity.Status{}, err
	}

	return t.start(ctx, duration)
}

// Stop cancels the countdown for a channel
func (k *Timekeeper) Stop(ctx context.Context, channelID string) error {
	t, err := k.GetOrCreateTimer(ctx, channelID)
	if err != nil {
		return err
	}

	return t.stop(ctx)
}

// Status reports the countdown and current week of a channel
func (k *Timekeeper) Status(ctx context.Context, channelID string) (entity.Status, error) {
	t, err := k.GetOrCreateTimer(ctx, channelID)
	if err != nil {
		return entity.Status{}, err
	}

	return t.status(ctx)
}

// Peek reports the status of a channel without registering a timer for
// it. Channels that were never loaded are read straight from the store.
func (k *Timekeeper) Peek(ctx context.Context, channelID string) (entity.Status, error) {
	if channelID == "" {
		return entity.Status{}, ErrEmptyChannel
	}

	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return entity.Status{}, ErrManagerClosed
	}
	entry, ok := k.timers[channelID]
	k.mu.Unlock()

	if ok {
		select {
		case <-entry.ready:
		case <-ctx.Done():
			return entity.Status{}, ctx.Err()
		}
		if entry.err == nil {
			return entry.timer.status(ctx)
		}
	}

	storeCtx, cancel := context.WithTimeout(ctx, k.opts.StoreTimeout)
	defer cancel()

	state, err := k.dm.Timer().Get(storeCtx, channelID)
	if err != nil {
		return entity.Status{}, fmt.Errorf("failed to load timer: %w", err)
	}
	if state == nil {
		return entity.Status{}, ErrTimerNotFound
	}
	return statusOf(state, k.opts.Now()), nil
}

// AdvanceNow advances the week immediately, consuming any pending
// deadline. It returns nil without error when a racing trigger already
// advanced past the week this call observed.
func (k *Timekeeper) AdvanceNow(ctx context.Context, channelID string) (*entity.Advancement, error) {
	t, err := k.GetOrCreateTimer(ctx, channelID)
	if err != nil {
		return nil, err
	}

	seen, err := t.ref(ctx)
	if err != nil {
		return nil, err
	}

	return t.advance(ctx, &seen, domain.SourceManual)
}

// SetSeasonWeek sets the league calendar directly, without advancing
func (k *Timekeeper) SetSeasonWeek(ctx context.Context, channelID string, season, week int) (entity.Status, error) {
	if err := validateWeek(season, week); err != nil {
		return entity.Status{}, err
	}

	t, err := k.GetOrCreateTimer(ctx, channelID)
	if err != nil {
		return entity.Status{}, err
	}

	return t.setWeek(ctx, season, week)
}

// History returns the most recent advancements of a channel, newest first
func (k *Timekeeper) History(ctx context.Context, channelID string, limit int) ([]*entity.Advancement, error) {
	if channelID == "" {
		return nil, ErrEmptyChannel
	}
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	storeCtx, cancel := context.WithTimeout(ctx, k.opts.StoreTimeout)
	defer cancel()

	advancements, err := k.dm.Advancement().ListByChannel(storeCtx, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list advancements: %w", err)
	}
	return advancements, nil
}

// Recover resumes every countdown that was active when the process
// stopped, from its stored deadline and reminders.
func (k *Timekeeper) Recover(ctx context.Context) (int, error) {
	storeCtx, cancel := context.WithTimeout(ctx, k.opts.StoreTimeout)
	states, err := k.dm.Timer().GetActive(storeCtx)
	cancel()
	if err != nil {
		return 0, fmt.Errorf("failed to load active timers: %w", err)
	}

	recovered := 0
	for _, state := range states {
		t, err := k.adopt(state)
		if err != nil {
			return recovered, err
		}
		if err := t.resume(ctx); err != nil {
			return recovered, err
		}
		recovered++

		k.logger.Info().
			Str("channel_id", state.ChannelID).
			Time("deadline", state.Countdown.Deadline).
			Msg("countdown recovered")
	}

	return recovered, nil
}

// adopt registers a timer built from an already loaded state, keeping any timer that exists
func (k *Timekeeper) adopt(state *entity.TimerState) (*AdvanceTimer, error) {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil, ErrManagerClosed
	}
	entry, ok := k.timers[state.ChannelID]
	if !ok {
		entry = &timerEntry{
			ready: make(chan struct{}),
			timer: newAdvanceTimer(k.base, state, k.dm, k.notifier, k.logger, k.opts),
		}
		close(entry.ready)
		k.timers[state.ChannelID] = entry
	}
	k.mu.Unlock()

	<-entry.ready
	if entry.err != nil {
		return nil, entry.err
	}
	return entry.timer, nil
}

// Shutdown stops every loop and writes the last known state. New
// operations fail with ErrManagerClosed afterwards.
func (k *Timekeeper) Shutdown(ctx context.Context) error {
	k.mu.Lock()
	k.closed = true
	entries := make([]*timerEntry, 0, len(k.timers))
	for _, entry := range k.timers {
		entries = append(entries, entry)
	}
	k.mu.Unlock()

	var firstErr error
	for _, entry := range entries {
		select {
		case <-entry.ready:
		case <-ctx.Done():
			return ctx.Err()
		}
		if entry.timer == nil {
			continue
		}
		if err := entry.timer.shutdown(ctx); err != nil {
			k.logger.Error().Err(err).Str("channel_id", entry.timer.ChannelID()).Msg("failed to persist timer on shutdown")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	k.cancel()
	k.logger.Info().Int("timers", len(entries)).Msg("timekeeper stopped")

	return firstErr
}
