package slack

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
)

// ErrHoursOutOfRange is returned for a countdown outside (0, MaxHours]
var ErrHoursOutOfRange = errors.New("hours out of range")

// MaxHours is the longest countdown a start command accepts
var MaxHours = domain.MaxCountdown.Hours()

type CommandType string

const (
	CmdStart   CommandType = "start"
	CmdStop    CommandType = "stop"
	CmdStatus  CommandType = "status"
	CmdAdvance CommandType = "advance"
	CmdSet     CommandType = "set"
	CmdHistory CommandType = "history"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch parts[0] {
	case "start":
		cmd.Type = CmdStart
	case "stop", "cancel":
		cmd.Type = CmdStop
	case "status":
		cmd.Type = CmdStatus
	case "advance", "adv", "next":
		cmd.Type = CmdAdvance
	case "set":
		cmd.Type = CmdSet
	case "history":
		cmd.Type = CmdHistory
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// Duration parses the countdown length of a start command, given in
// hours. Fractions are allowed.
func (c *Command) Duration() (time.Duration, error) {
	if len(c.Args) == 0 {
		return 0, fmt.Errorf("missing hours")
	}
	hours, err := strconv.ParseFloat(c.Args[0], 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("invalid hours: %s", c.Args[0])
	}
	if hours <= 0 || hours > MaxHours {
		return 0, fmt.Errorf("%w: %s", ErrHoursOutOfRange, c.Args[0])
	}

	d := time.Duration(hours * float64(time.Hour))
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrHoursOutOfRange, c.Args[0])
	}
	return d, nil
}

// SeasonWeek parses the arguments of a set command
func (c *Command) SeasonWeek() (season, week int, err error) {
	if len(c.Args) < 2 {
		return 0, 0, fmt.Errorf("missing season or week")
	}
	season, err = strconv.Atoi(c.Args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid season: %s", c.Args[0])
	}
	week, err = strconv.Atoi(c.Args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week: %s", c.Args[1])
	}
	return season, week, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Countdown:*
• ` + "`/timekeeper start <hours>`" + ` - Start (or restart) the advance countdown
• ` + "`/timekeeper status`" + ` - Show time left and the current week
• ` + "`/timekeeper stop`" + ` - Cancel the countdown

*League calendar:*
• ` + "`/timekeeper advance`" + ` - Advance to the next week now
• ` + "`/timekeeper set <season> <week>`" + ` - Set the current season and week
• ` + "`/timekeeper history`" + ` - Show recent advancements

Saying "advance" or "we advanced" in the channel also advances the week.`
}
