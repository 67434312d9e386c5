package service

import (
	"fmt"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
)

// AdvanceWeek returns the week that follows (season, week). The last week
// of a season rolls over to week 0 of the next one.
func AdvanceWeek(season, week int) (int, int) {
	if week >= domain.MaxWeek {
		return season + 1, domain.MinWeek
	}
	return season, week + 1
}

// WeekLabel renders a week for announcements
func WeekLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}

func validateWeek(season, week int) error {
	if season < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSeason, season)
	}
	if week < domain.MinWeek || week > domain.MaxWeek {
		return fmt.Errorf("%w: %d (expected %d-%d)", ErrInvalidWeek, week, domain.MinWeek, domain.MaxWeek)
	}
	return nil
}
