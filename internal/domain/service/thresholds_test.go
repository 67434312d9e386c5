package service

import (
	"testing"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_sortThresholds(t *testing.T) {
	in := []domain.Threshold{
		{Label: "1h", Before: time.Hour},
		{Label: "24h", Before: 24 * time.Hour},
		{Label: "", Before: 2 * time.Hour},
		{Label: "6h", Before: 6 * time.Hour},
		{Label: "zero", Before: 0},
	}

	got := sortThresholds(in)

	require.Len(t, got, 3)
	assert.Equal(t, "24h", got[0].Label)
	assert.Equal(t, "6h", got[1].Label)
	assert.Equal(t, "1h", got[2].Label)
	assert.Equal(t, "1h", in[0].Label, "input must not be reordered")
}

func Test_newCountdown(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	thresholds := sortThresholds(domain.DefaultThresholds)

	tests := []struct {
		name     string
		duration time.Duration
		wantSent []string
	}{
		{name: "Should keep every threshold for a long countdown", duration: 48 * time.Hour},
		{name: "Should keep every threshold for a 25 hour countdown", duration: 25 * time.Hour},
		{name: "Should skip thresholds a 10 hour countdown never reaches", duration: 10 * time.Hour, wantSent: []string{"24h", "12h"}},
		{name: "Should skip a threshold equal to the duration", duration: 6 * time.Hour, wantSent: []string{"24h", "12h", "6h"}},
		{name: "Should skip all thresholds for a short countdown", duration: 30 * time.Minute, wantSent: []string{"24h", "12h", "6h", "1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := newCountdown(now, tt.duration, thresholds)

			assert.Equal(t, now, cd.StartedAt)
			assert.Equal(t, now.Add(tt.duration), cd.Deadline)
			assert.Len(t, cd.RemindersSent, len(tt.wantSent))
			for _, label := range tt.wantSent {
				assert.True(t, cd.Sent(label), label)
			}
		})
	}
}

func Test_nextReminder(t *testing.T) {
	deadline := time.Date(2024, 9, 3, 12, 0, 0, 0, time.UTC)
	thresholds := sortThresholds(domain.DefaultThresholds)

	cd := &entity.Countdown{Deadline: deadline, RemindersSent: map[string]bool{"24h": true}}

	th, at, ok := nextReminder(cd, thresholds)
	require.True(t, ok)
	assert.Equal(t, "12h", th.Label)
	assert.Equal(t, deadline.Add(-12*time.Hour), at)

	cd.RemindersSent = map[string]bool{"24h": true, "12h": true, "6h": true, "1h": true}
	_, _, ok = nextReminder(cd, thresholds)
	assert.False(t, ok)
}

func Test_dueReminders(t *testing.T) {
	deadline := time.Date(2024, 9, 3, 12, 0, 0, 0, time.UTC)
	thresholds := sortThresholds(domain.DefaultThresholds)

	tests := []struct {
		name        string
		sent        map[string]bool
		now         time.Time
		wantDue     string
		wantSkipped []string
	}{
		{
			name: "Should return nothing before the first threshold",
			now:  deadline.Add(-30 * time.Hour),
		},
		{
			name:    "Should return the first threshold when it is reached",
			now:     deadline.Add(-24 * time.Hour),
			wantDue: "24h",
		},
		{
			name:    "Should ignore thresholds already sent",
			sent:    map[string]bool{"24h": true},
			now:     deadline.Add(-11 * time.Hour),
			wantDue: "12h",
		},
		{
			name:        "Should announce only the most urgent elapsed threshold",
			now:         deadline.Add(-30 * time.Minute),
			wantDue:     "1h",
			wantSkipped: []string{"24h", "12h", "6h"},
		},
		{
			name:        "Should skip older unsent thresholds after downtime",
			sent:        map[string]bool{"24h": true},
			now:         deadline.Add(-5 * time.Hour),
			wantDue:     "6h",
			wantSkipped: []string{"12h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sent := tt.sent
			if sent == nil {
				sent = map[string]bool{}
			}
			cd := &entity.Countdown{Deadline: deadline, RemindersSent: sent}

			due, skipped := dueReminders(cd, thresholds, tt.now)

			if tt.wantDue == "" {
				assert.Nil(t, due)
				assert.Empty(t, skipped)
				return
			}
			require.NotNil(t, due)
			assert.Equal(t, tt.wantDue, due.Label)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}
