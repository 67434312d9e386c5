package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
)

type timerRepo struct {
	db dbConn
}

func newTimerRepo(db dbConn) contract.TimerRepo {
	return &timerRepo{db: db}
}

const timerColumns = `
	channel_id, season, week, is_active, started_at, deadline,
	reminders_sent, created_at, updated_at
`

func (r *timerRepo) Get(ctx context.Context, channelID string) (*entity.TimerState, error) {
	query := `SELECT ` + timerColumns + ` FROM timers WHERE channel_id = ?`

	state, err := scanTimer(r.db.QueryRowContext(ctx, query, channelID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get timer: %w", err)
	}

	return state, nil
}

// Save writes the full state of a channel, creating the row on first save
func (r *timerRepo) Save(ctx context.Context, state *entity.TimerState) error {
	query := `
		INSERT INTO timers (channel_id, season, week, is_active, started_at,
			deadline, reminders_sent, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(channel_id) DO UPDATE SET
			season = excluded.season,
			week = excluded.week,
			is_active = excluded.is_active,
			started_at = excluded.started_at,
			deadline = excluded.deadline,
			reminders_sent = excluded.reminders_sent,
			updated_at = excluded.updated_at
	`

	var (
		startedAt sql.NullTime
		deadline  sql.NullTime
		sent      = map[string]bool{}
	)
	if cd := state.Countdown; cd != nil {
		startedAt = sql.NullTime{Time: cd.StartedAt, Valid: true}
		deadline = sql.NullTime{Time: cd.Deadline, Valid: true}
		if cd.RemindersSent != nil {
			sent = cd.RemindersSent
		}
	}

	// Convert RemindersSent to JSON for storage
	sentJSON, err := json.Marshal(sent)
	if err != nil {
		return fmt.Errorf("failed to marshal reminders sent: %w", err)
	}

	updatedAt := state.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx, query,
		state.ChannelID,
		state.Season,
		state.Week,
		state.Active(),
		startedAt,
		deadline,
		string(sentJSON),
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save timer: %w", err)
	}

	return nil
}

func (r *timerRepo) GetActive(ctx context.Context) ([]*entity.TimerState, error) {
	query := `SELECT ` + timerColumns + ` FROM timers WHERE is_active = 1 ORDER BY deadline`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active timers: %w", err)
	}
	defer rows.Close()

	var states []*entity.TimerState
	for rows.Next() {
		state, err := scanTimer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timer: %w", err)
		}
		states = append(states, state)
	}

	return states, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTimer(row rowScanner) (*entity.TimerState, error) {
	var (
		state     entity.TimerState
		isActive  bool
		startedAt sql.NullTime
		deadline  sql.NullTime
		sentJSON  string
	)

	err := row.Scan(
		&state.ChannelID,
		&state.Season,
		&state.Week,
		&isActive,
		&startedAt,
		&deadline,
		&sentJSON,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if !isActive || !deadline.Valid {
		return &state, nil
	}

	cd := &entity.Countdown{
		StartedAt: startedAt.Time,
		Deadline:  deadline.Time,
	}
	// Convert JSON to RemindersSent map
	if err := json.Unmarshal([]byte(sentJSON), &cd.RemindersSent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reminders sent: %w", err)
	}
	if cd.RemindersSent == nil {
		cd.RemindersSent = map[string]bool{}
	}
	state.Countdown = cd

	return &state, nil
}
