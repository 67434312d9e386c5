package models

import "time"

type TimerStatus struct {
	ChannelID        string     `json:"channel_id"`
	Season           int        `json:"season"`
	Week             int        `json:"week"`
	WeekLabel        string     `json:"week_label"`
	IsActive         bool       `json:"is_active"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}

type Advancement struct {
	ID         int64     `json:"id"`
	FromSeason int       `json:"from_season"`
	FromWeek   int       `json:"from_week"`
	ToSeason   int       `json:"to_season"`
	ToWeek     int       `json:"to_week"`
	Source     string    `json:"source"`
	AdvancedAt time.Time `json:"advanced_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
