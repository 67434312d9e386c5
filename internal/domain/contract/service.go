package contract

import (
	"context"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
)

// TimekeeperService is what the command layer calls into
type TimekeeperService interface {
	Start(ctx context.Context, channelID string, duration time.Duration) (entity.Status, error)
	Stop(ctx context.Context, channelID string) error
	Status(ctx context.Context, channelID string) (entity.Status, error)
	Peek(ctx context.Context, channelID string) (entity.Status, error)
	AdvanceNow(ctx context.Context, channelID string) (*entity.Advancement, error)
	SetSeasonWeek(ctx context.Context, channelID string, season, week int) (entity.Status, error)
	History(ctx context.Context, channelID string, limit int) ([]*entity.Advancement, error)
}
