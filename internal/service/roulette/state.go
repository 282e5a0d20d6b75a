package roulette

import (
	"context"
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"
)

const defaultHistoryLimit = 50

// Reset возвращает баланс к начальному и снимает все ставки.
// Размер ставки и история раундов не сбрасываются.
func (s *serv) Reset(_ context.Context) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.state.Balance = servModel.InitialBalance
	s.state.Wagers = nil
	s.state.LastResult = nil
	s.log.Info("table reset")
}

func (s *serv) Balance(_ context.Context) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state.Balance
}

// State копия состояния стола для слоя отображения
func (s *serv) State(_ context.Context) *model.TableState {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return &model.TableState{
		Balance:    s.state.Balance,
		Stake:      s.state.Stake,
		Wagers:     append([]model.Wager(nil), s.state.Wagers...),
		LastResult: copySpinResult(s.state.LastResult),
	}
}

func (s *serv) History(ctx context.Context, limit int) ([]model.Round, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.roundRepo.ListRounds(ctx, limit)
}

func (s *serv) Stats(_ context.Context) model.TableStats {
	return s.statsRepo.TableStats()
}
