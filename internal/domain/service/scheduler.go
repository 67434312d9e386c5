package service

import (
	"context"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
)

// launchLocked starts a monitor loop for the current countdown.
// The caller must have stopped any previous loop.
func (t *AdvanceTimer) launchLocked() {
	if t.state.Countdown == nil {
		return
	}

	ctx, cancel := context.WithCancel(t.base)
	done := make(chan struct{})

	t.gen++
	t.cancel = cancel
	t.done = done

	go t.monitor(ctx, cancel, done, t.gen, t.state.Countdown.Clone())
}

// stopLoopLocked cancels the running loop and waits for it to exit. The
// loop never blocks while we hold the lock: it is sleeping, sending a
// reminder or waiting for the lock, and all three end on cancellation.
func (t *AdvanceTimer) stopLoopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done

	t.cancel = nil
	t.done = nil
}

// resumeLocked relaunches the loop when the state is counting but nothing is running
func (t *AdvanceTimer) resumeLocked() {
	if t.state.Active() && t.cancel == nil {
		t.launchLocked()
	}
}

// detachLocked forgets the loop identified by gen; the loop is about to exit on its own
func (t *AdvanceTimer) detachLocked(gen uint64) {
	if t.gen != gen {
		return
	}
	t.cancel = nil
	t.done = nil
}

// failLocked ends a loop that could not persist. The countdown is dropped
// in memory only; the stored row still says active so a restart resumes it.
func (t *AdvanceTimer) failLocked(gen uint64, err error) {
	t.detachLocked(gen)

	next := t.state.Clone()
	next.Countdown = nil
	t.state = next
	t.stale = true

	t.logger.Error().Err(err).Msg("countdown is no longer running, restart it with the start command")
}

func (t *AdvanceTimer) monitor(ctx context.Context, cancel context.CancelFunc, done chan struct{}, gen uint64, cd *entity.Countdown) {
	defer close(done)
	defer cancel()

	for {
		wake := cd.Deadline
		if th, at, ok := nextReminder(cd, t.opts.Thresholds); ok && at.Before(wake) {
			t.logger.Debug().Str("threshold", th.Label).Time("at", at).Msg("next reminder scheduled")
			wake = at
		}

		if !t.sleepUntil(ctx, wake) {
			return
		}

		if err := t.lock(ctx); err != nil {
			return
		}
		if ctx.Err() != nil || t.gen != gen {
			t.unlock()
			return
		}

		finished, due := t.tickLocked(ctx, gen, cd)
		t.unlock()

		if finished {
			return
		}

		// outside the lock. Cancelling ctx aborts the send and stopLoopLocked
		// waits for it, so it cannot land after a later advancement.
		if due != nil {
			t.notifyReminder(ctx, due.threshold, due.remaining)
		}
	}
}

type dueReminder struct {
	threshold domain.Threshold
	remaining time.Duration
}

// sleepUntil waits for the given instant. It returns false when cancelled first.
func (t *AdvanceTimer) sleepUntil(ctx context.Context, at time.Time) bool {
	wait := at.Sub(t.opts.Now())
	if wait <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(wait)
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		timer.Stop()
		return false
	}
}

// tickLocked acts on a wake-up. It reports whether the loop is finished
// and the reminder to send, if one was recorded.
func (t *AdvanceTimer) tickLocked(ctx context.Context, gen uint64, cd *entity.Countdown) (bool, *dueReminder) {
	if t.state.Countdown == nil {
		t.detachLocked(gen)
		return true, nil
	}

	now := t.opts.Now()
	if !now.Before(cd.Deadline) {
		t.expireLocked(ctx, gen)
		return true, nil
	}

	due, skipped := dueReminders(cd, t.opts.Thresholds, now)
	if due == nil {
		return false, nil
	}

	next := t.state.Clone()
	next.Countdown.RemindersSent[due.Label] = true
	for _, label := range skipped {
		next.Countdown.RemindersSent[label] = true
	}
	next.UpdatedAt = now

	err := t.retryStore(ctx, func(ctx context.Context) error {
		return t.dm.Timer().Save(ctx, next)
	})
	if err != nil {
		if ctx.Err() == nil {
			t.failLocked(gen, err)
		}
		return true, nil
	}

	t.state = next
	cd.RemindersSent = next.Countdown.Clone().RemindersSent

	if len(skipped) > 0 {
		t.logger.Info().Strs("skipped", skipped).Msg("elapsed reminders skipped")
	}
	t.logger.Info().Str("threshold", due.Label).Msg("reminder due")

	return false, &dueReminder{threshold: *due, remaining: cd.Deadline.Sub(now)}
}

// expireLocked consumes the deadline through the shared advancement path
func (t *AdvanceTimer) expireLocked(ctx context.Context, gen uint64) {
	next, adv := t.nextAdvancementLocked(domain.SourceDeadline)

	err := t.retryStore(ctx, func(ctx context.Context) error {
		return t.commit(ctx, next, adv)
	})
	if err != nil {
		if ctx.Err() == nil {
			t.failLocked(gen, err)
		}
		return
	}

	t.detachLocked(gen)
	t.applyAdvancementLocked(next, adv)
}
