package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
)

type advancementRepo struct {
	db dbConn
}

func newAdvancementRepo(db dbConn) contract.AdvancementRepo {
	return &advancementRepo{db: db}
}

func (r *advancementRepo) Create(ctx context.Context, advancement *entity.Advancement) error {
	query := `
		INSERT INTO advancements (channel_id, from_season, from_week,
			to_season, to_week, source, advanced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		advancement.ChannelID,
		advancement.FromSeason,
		advancement.FromWeek,
		advancement.ToSeason,
		advancement.ToWeek,
		string(advancement.Source),
		advancement.AdvancedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create advancement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	advancement.ID = id
	return nil
}

// ListByChannel returns the latest advancements of a channel, newest first
func (r *advancementRepo) ListByChannel(ctx context.Context, channelID string, limit int) ([]*entity.Advancement, error) {
	query := `
		SELECT id, channel_id, from_season, from_week, to_season, to_week,
			source, advanced_at
		FROM advancements
		WHERE channel_id = ?
		ORDER BY advanced_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list advancements: %w", err)
	}
	defer rows.Close()

	var advancements []*entity.Advancement
	for rows.Next() {
		var (
			adv    entity.Advancement
			source string
		)
		err := rows.Scan(
			&adv.ID,
			&adv.ChannelID,
			&adv.FromSeason,
			&adv.FromWeek,
			&adv.ToSeason,
			&adv.ToWeek,
			&source,
			&adv.AdvancedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advancement: %w", err)
		}
		adv.Source = domain.AdvanceSource(source)
		advancements = append(advancements, &adv)
	}

	return advancements, rows.Err()
}
