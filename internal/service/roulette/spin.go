package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spin крутит колесо и рассчитывает все активные ставки за один шаг.
// Без ставок колесо не крутится вообще.
func (s *serv) Spin(ctx context.Context) (*model.SpinResult, error) {
	res, round, err := s.settle()
	if err != nil {
		return res, err
	}

	// Статистика и история пишутся уже после расчёта: баланс к этому
	// моменту начислен, ошибка записи раунд не отменяет.
	s.statsRepo.UpdateState(round)
	if err := s.roundRepo.SaveRound(ctx, round); err != nil {
		s.log.Error("failed to save round", zap.Int64("seq", round.Seq), zap.Error(err))
	}

	s.log.Info("round settled",
		zap.Int64("seq", round.Seq),
		zap.String("outcome", string(round.Outcome)),
		zap.Int("wagers", len(round.Wagers)),
		zap.Int("staked", round.TotalStaked),
		zap.Int("winnings", round.TotalWinnings),
		zap.Int("balance", round.BalanceAfter),
	)

	return res, nil
}

// settle критическая секция спина: выпадение, расчёт, начисление, очистка
func (s *serv) settle() (*model.SpinResult, *model.Round, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(s.state.Wagers) == 0 {
		return &model.SpinResult{
			Message: servModel.MsgPlaceBetFirst,
			Balance: s.state.Balance,
		}, nil, model.ErrNoActiveBets
	}

	outcome := s.wheel.Draw()
	color := outcome.Color()
	settled, staked, winnings := Settle(s.state.Wagers, outcome)

	// Начисление выигрыша (0 если ничего не сыграло) и очистка ставок
	s.state.Balance += winnings
	s.state.Wagers = nil

	msg := fmt.Sprintf(servModel.MsgLose, outcome, color)
	if winnings > 0 {
		msg = fmt.Sprintf(servModel.MsgWin, outcome, color, winnings)
	}

	res := &model.SpinResult{
		Outcome:       &outcome,
		Color:         color,
		Parity:        outcome.Parity(),
		Wagers:        settled,
		TotalStaked:   staked,
		TotalWinnings: winnings,
		DidWin:        winnings > 0,
		Balance:       s.state.Balance,
		Message:       msg,
	}
	s.state.LastResult = copySpinResult(res)

	s.seq++
	round := &model.Round{
		ID:            uuid.New(),
		Seq:           s.seq,
		Outcome:       outcome,
		Color:         color,
		Wagers:        settled,
		TotalStaked:   staked,
		TotalWinnings: winnings,
		BalanceAfter:  s.state.Balance,
		CreatedAt:     time.Now().UTC(),
	}

	return res, round, nil
}

func copySpinResult(res *model.SpinResult) *model.SpinResult {
	if res == nil {
		return nil
	}
	cp := *res
	if res.Outcome != nil {
		o := *res.Outcome
		cp.Outcome = &o
	}
	cp.Wagers = append([]model.SettledWager(nil), res.Wagers...)
	return &cp
}
