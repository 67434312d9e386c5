package notifier

import (
	"fmt"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/service"
)

func reminderText(threshold domain.Threshold, remaining time.Duration) string {
	return fmt.Sprintf("⏰ *%s left* to finish this week's games (%s remaining).",
		threshold.Label, FormatRemaining(remaining))
}

func advancementText(season, week int) string {
	return fmt.Sprintf("🏈 The league has advanced to *Season %d, %s*. Good luck!",
		season, service.WeekLabel(week))
}

// FormatRemaining renders a duration as days, hours and minutes
func FormatRemaining(d time.Duration) string {
	if d < time.Minute {
		return "less than a minute"
	}

	d = d.Round(time.Minute)
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
