package entity

import (
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
)

// WeekRef identifies a point in the league calendar
type WeekRef struct {
	Season int
	Week   int
}

// Countdown is the counting half of a timer. A TimerState without a
// Countdown is inactive.
type Countdown struct {
	StartedAt     time.Time
	Deadline      time.Time
	RemindersSent map[string]bool
}

// Sent reports whether the reminder with the given label was delivered for this deadline
func (c *Countdown) Sent(label string) bool {
	return c.RemindersSent[label]
}

// Clone returns a deep copy so callers can build the next state without touching the current one
func (c *Countdown) Clone() *Countdown {
	if c == nil {
		return nil
	}
	sent := make(map[string]bool, len(c.RemindersSent))
	for k, v := range c.RemindersSent {
		sent[k] = v
	}
	return &Countdown{
		StartedAt:     c.StartedAt,
		Deadline:      c.Deadline,
		RemindersSent: sent,
	}
}

// TimerState is the durable record of one channel's countdown
type TimerState struct {
	ChannelID string
	Season    int
	Week      int
	Countdown *Countdown
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimerState returns the state used the first time a channel is seen
func NewTimerState(channelID string) *TimerState {
	return &TimerState{
		ChannelID: channelID,
		Season:    1,
		Week:      domain.MinWeek,
	}
}

// Active reports whether a countdown is running
func (s *TimerState) Active() bool {
	return s.Countdown != nil
}

// Ref returns the current season/week
func (s *TimerState) Ref() WeekRef {
	return WeekRef{Season: s.Season, Week: s.Week}
}

// Remaining returns the time left until the deadline, zero when inactive or past due
func (s *TimerState) Remaining(now time.Time) time.Duration {
	if s.Countdown == nil {
		return 0
	}
	left := s.Countdown.Deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Clone returns a deep copy of the state
func (s *TimerState) Clone() *TimerState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Countdown = s.Countdown.Clone()
	return &cp
}
