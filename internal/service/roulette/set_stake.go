package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"

	"go.uber.org/zap"
)

// SetStake меняет размер ставки для всех следующих PlaceBet.
// Неположительная ставка отклоняется, текущая остаётся.
func (s *serv) SetStake(_ context.Context, amount int) (*model.StakeResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if amount <= 0 {
		s.log.Debug("stake rejected", zap.Int("amount", amount))
		return &model.StakeResult{
			OK:      false,
			Message: servModel.MsgInvalidStake,
			Stake:   s.state.Stake,
		}, model.ErrInvalidStake
	}

	s.state.Stake = amount
	return &model.StakeResult{
		OK:      true,
		Message: fmt.Sprintf(servModel.MsgStakeSet, amount),
		Stake:   amount,
	}, nil
}
