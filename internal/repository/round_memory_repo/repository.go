package round_memory_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"sync"
)

// defaultRetention сколько раундов хранится, если не задано
const defaultRetention = 1000

// repo история раундов в памяти процесса, используется без PG_DSN.
// Хранит не больше retention последних раундов.
type repo struct {
	mtx       sync.RWMutex
	rounds    []model.Round
	retention int
}

func NewRoundRepository(retention int) repository.RoundRepository {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &repo{
		rounds:    make([]model.Round, 0, retention),
		retention: retention,
	}
}

func (r *repo) SaveRound(_ context.Context, round *model.Round) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	cp := *round
	cp.Wagers = append([]model.SettledWager(nil), round.Wagers...)
	r.rounds = append(r.rounds, cp)
	if len(r.rounds) > r.retention {
		r.rounds = append(r.rounds[:0], r.rounds[len(r.rounds)-r.retention:]...)
	}
	return nil
}

func (r *repo) ListRounds(_ context.Context, limit int) ([]model.Round, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if limit <= 0 || limit > len(r.rounds) {
		limit = len(r.rounds)
	}
	res := make([]model.Round, 0, limit)
	for i := len(r.rounds) - 1; i >= 0 && len(res) < limit; i-- {
		res = append(res, r.rounds[i])
	}
	return res, nil
}
