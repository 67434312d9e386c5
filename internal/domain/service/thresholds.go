package service

import (
	"sort"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
)

// sortThresholds returns a copy ordered most distant first
func sortThresholds(in []domain.Threshold) []domain.Threshold {
	out := make([]domain.Threshold, 0, len(in))
	for _, th := range in {
		if th.Before > 0 && th.Label != "" {
			out = append(out, th)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Before > out[j].Before
	})
	return out
}

// newCountdown builds a fresh countdown of length d. Thresholds a
// countdown this short never crosses are marked as already sent.
func newCountdown(now time.Time, d time.Duration, thresholds []domain.Threshold) *entity.Countdown {
	cd := &entity.Countdown{
		StartedAt:     now,
		Deadline:      now.Add(d),
		RemindersSent: make(map[string]bool),
	}
	for _, th := range thresholds {
		if th.Before >= d {
			cd.RemindersSent[th.Label] = true
		}
	}
	return cd
}

// nextReminder returns the earliest threshold not yet sent and the instant it is due
func nextReminder(cd *entity.Countdown, thresholds []domain.Threshold) (domain.Threshold, time.Time, bool) {
	for _, th := range thresholds {
		if cd.Sent(th.Label) {
			continue
		}
		return th, cd.Deadline.Add(-th.Before), true
	}
	return domain.Threshold{}, time.Time{}, false
}

// dueReminders returns the threshold to announce at now and the older
// elapsed ones that are skipped. Only the most urgent elapsed threshold is
// announced, so a loop resuming after downtime sends at most one reminder.
func dueReminders(cd *entity.Countdown, thresholds []domain.Threshold, now time.Time) (*domain.Threshold, []string) {
	var (
		due     *domain.Threshold
		skipped []string
	)
	for i := range thresholds {
		th := thresholds[i]
		if cd.Sent(th.Label) {
			continue
		}
		if now.Before(cd.Deadline.Add(-th.Before)) {
			break
		}
		if due != nil {
			skipped = append(skipped, due.Label)
		}
		due = &th
	}
	return due, skipped
}
