package roulette

import (
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"
	servModel "roulette_backend/internal/service/roulette/model"
	"sync"

	"go.uber.org/zap"
)

type serv struct {
	// mtx держится на всё время операции: между выпадением номера
	// и очисткой ставок никто не видит и не меняет state.
	mtx   sync.Mutex
	state model.TableState
	// seq номер следующего раунда
	seq int64

	wheel     Wheel
	roundRepo repository.RoundRepository
	statsRepo repository.StatsRepository
	log       *zap.Logger
}

// NewRouletteService Создать новый стол рулетки с начальным балансом
func NewRouletteService(
	wheel Wheel,
	roundRepo repository.RoundRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.RouletteService {
	if log == nil {
		log = zap.NewNop()
	}
	return &serv{
		state: model.TableState{
			Balance: servModel.InitialBalance,
			Stake:   servModel.InitialStake,
		},
		wheel:     wheel,
		roundRepo: roundRepo,
		statsRepo: statsRepo,
		log:       log,
	}
}
