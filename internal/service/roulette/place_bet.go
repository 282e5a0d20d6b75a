package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"

	"go.uber.org/zap"
)

// PlaceBetLabel разбирает подпись ячейки стола и ставит на неё.
// Неизвестная подпись отклоняется сразу, а не превращается в ставку,
// которая никогда не выиграет.
func (s *serv) PlaceBetLabel(ctx context.Context, label string) (*model.BetResult, error) {
	target, err := model.ParseTarget(label)
	if err != nil {
		s.log.Debug("bet rejected", zap.String("label", label), zap.Error(err))
		return &model.BetResult{
			OK:      false,
			Message: fmt.Sprintf(servModel.MsgUnrecognizedLabel, label),
			Balance: s.Balance(ctx),
		}, err
	}
	return s.PlaceBet(ctx, target)
}

// PlaceBet списывает текущую ставку с баланса и добавляет её в активные.
// При ошибке баланс и активные ставки не меняются.
func (s *serv) PlaceBet(_ context.Context, target model.WagerTarget) (*model.BetResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !target.Valid() {
		return &model.BetResult{
			OK:      false,
			Message: fmt.Sprintf(servModel.MsgUnrecognizedLabel, target.String()),
			Balance: s.state.Balance,
		}, model.ErrUnrecognizedTarget
	}

	stake := s.state.Stake
	if s.state.Balance < stake {
		s.log.Debug("bet rejected",
			zap.Stringer("target", target),
			zap.Int("stake", stake),
			zap.Int("balance", s.state.Balance),
		)
		return &model.BetResult{
			OK:      false,
			Message: servModel.MsgInsufficient,
			Balance: s.state.Balance,
		}, model.ErrInsufficientBalance
	}

	// Списание ставки
	wager := model.Wager{Target: target, Amount: stake}
	s.state.Balance -= stake
	s.state.Wagers = append(s.state.Wagers, wager)

	return &model.BetResult{
		OK:      true,
		Message: fmt.Sprintf(servModel.MsgBetPlaced, stake, target),
		Wager:   wager,
		Balance: s.state.Balance,
	}, nil
}
