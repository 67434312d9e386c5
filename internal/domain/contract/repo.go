package contract

import (
	"context"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Timer() TimerRepo
	Advancement() AdvancementRepo
}

// TimerRepo defines the contract for timer state persistence.
// Calls for different channels may run concurrently.
type TimerRepo interface {
	// Get returns nil, nil when the channel has no stored state
	Get(ctx context.Context, channelID string) (*entity.TimerState, error)
	Save(ctx context.Context, state *entity.TimerState) error
	GetActive(ctx context.Context) ([]*entity.TimerState, error)
}

// AdvancementRepo defines the contract for the advancement history
type AdvancementRepo interface {
	Create(ctx context.Context, advancement *entity.Advancement) error
	ListByChannel(ctx context.Context, channelID string, limit int) ([]*entity.Advancement, error)
}
