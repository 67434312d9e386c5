package service

import (
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

type Instance struct {
	Timekeeper *Timekeeper
}

func NewInstance(dm contract.DataManager, notifier contract.Notifier, logger zerolog.Logger, opts Options) *Instance {
	return &Instance{
		Timekeeper: newTimekeeper(dm, notifier, logger, opts),
	}
}
