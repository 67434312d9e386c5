package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	timerRepo       contract.TimerRepo
	advancementRepo contract.AdvancementRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.timerRepo = newTimerRepo(i.db.conn)
	i.advancementRepo = newAdvancementRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		timerRepo:       newTimerRepo(db),
		advancementRepo: newAdvancementRepo(db),
	}
}

// Timer returns the timer state repository
func (i *instance) Timer() contract.TimerRepo {
	return i.timerRepo
}

// Advancement returns the advancement history repository
func (i *instance) Advancement() contract.AdvancementRepo {
	return i.advancementRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
