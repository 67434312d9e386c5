package entity

import (
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
)

// Advancement records one season/week transition
type Advancement struct {
	ID         int64
	ChannelID  string
	FromSeason int
	FromWeek   int
	ToSeason   int
	ToWeek     int
	Source     domain.AdvanceSource
	AdvancedAt time.Time
}

// Status is a read-only snapshot of a channel's timer
type Status struct {
	ChannelID string
	Season    int
	Week      int
	Active    bool
	Deadline  time.Time
	Remaining time.Duration
}
