package repository

import (
	"context"
	"roulette_backend/internal/model"
)

type RoundRepository interface {
	SaveRound(ctx context.Context, round *model.Round) error
	// ListRounds newest first
	ListRounds(ctx context.Context, limit int) ([]model.Round, error)
}

type StatsRepository interface {
	TableStats() model.TableStats
	UpdateState(round *model.Round)
}
