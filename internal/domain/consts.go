package domain

import "time"

// League calendar bounds. A season runs from week 0 to MaxWeek inclusive.
const (
	MinWeek = 0
	MaxWeek = 14
)

// Threshold is a reminder point measured as time remaining before the deadline
type Threshold struct {
	Label  string
	Before time.Duration
}

// DefaultThresholds are the reminder escalation points, most distant first
var DefaultThresholds = []Threshold{
	{Label: "24h", Before: 24 * time.Hour},
	{Label: "12h", Before: 12 * time.Hour},
	{Label: "6h", Before: 6 * time.Hour},
	{Label: "1h", Before: 1 * time.Hour},
}

// AdvanceSource identifies what consumed a deadline
type AdvanceSource string

const (
	SourceDeadline AdvanceSource = "deadline"
	SourceManual   AdvanceSource = "manual"
)

// Default timeouts applied to collaborator calls made by the timekeeper
const (
	DefaultStoreTimeout  = 10 * time.Second
	DefaultNotifyTimeout = 15 * time.Second
	DefaultStoreRetries  = 3
)

// MaxCountdown is the longest countdown a channel can run
const MaxCountdown = 30 * 24 * time.Hour

// DefaultHistoryLimit is how many advancements the history command shows
const DefaultHistoryLimit = 10
