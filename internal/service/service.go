package service

import (
	"context"
	"roulette_backend/internal/model"
)

type RouletteService interface {
	SetStake(ctx context.Context, amount int) (*model.StakeResult, error)
	PlaceBet(ctx context.Context, target model.WagerTarget) (*model.BetResult, error)
	PlaceBetLabel(ctx context.Context, label string) (*model.BetResult, error)
	Spin(ctx context.Context) (*model.SpinResult, error)
	Reset(ctx context.Context)
	Balance(ctx context.Context) int
	State(ctx context.Context) *model.TableState
	History(ctx context.Context, limit int) ([]model.Round, error)
	Stats(ctx context.Context) model.TableStats
}

type SeatService interface {
	Claim(ctx context.Context) (*model.Seat, error)
	Verify(ctx context.Context, accessToken string) (seatID string, err error)
}
