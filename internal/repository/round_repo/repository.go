package round_repo

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	roundsTable      = "roulette_rounds"
	colID            = "id"
	colSeq           = "seq"
	colOutcome       = "outcome"
	colColor         = "color"
	colTotalStaked   = "total_staked"
	colTotalWinnings = "total_winnings"
	colBalanceAfter  = "balance_after"
	colCreatedAt     = "created_at"

	wagersTable = "roulette_wagers"
	colRoundID  = "round_id"
	colPosition = "position"
	colTarget   = "target"
	colAmount   = "amount"
	colPayout   = "payout"
)

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.RoundRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// SaveRound - сохраняет раунд и все его ставки в одной транзакции
func (r *repo) SaveRound(ctx context.Context, round *model.Round) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		tr := r.getter.DefaultTrOrDB(txCtx, r.dbc)

		// Формируем запрос
		query := sq.Insert(roundsTable).
			Columns(colID, colSeq, colOutcome, colColor, colTotalStaked, colTotalWinnings, colBalanceAfter, colCreatedAt).
			Values(round.ID, round.Seq, string(round.Outcome), string(round.Color),
				round.TotalStaked, round.TotalWinnings, round.BalanceAfter, round.CreatedAt).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err = tr.Exec(txCtx, sqlStr, args...); err != nil {
			return fmt.Errorf("insert round %d: %w", round.Seq, err)
		}

		if len(round.Wagers) == 0 {
			return nil
		}

		wagersQuery := sq.Insert(wagersTable).
			Columns(colRoundID, colPosition, colTarget, colAmount, colPayout).
			PlaceholderFormat(sq.Dollar)
		for i, w := range round.Wagers {
			wagersQuery = wagersQuery.Values(round.ID, i, w.Target.String(), w.Amount, w.Payout)
		}

		sqlStr, args, err = wagersQuery.ToSql()
		if err != nil {
			return err
		}
		if _, err = tr.Exec(txCtx, sqlStr, args...); err != nil {
			return fmt.Errorf("insert wagers of round %d: %w", round.Seq, err)
		}
		return nil
	})
}

// ListRounds - последние limit раундов, новые первыми, вместе со ставками
func (r *repo) ListRounds(ctx context.Context, limit int) ([]model.Round, error) {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	query := sq.Select(colID, colSeq, colOutcome, colColor, colTotalStaked, colTotalWinnings, colBalanceAfter, colCreatedAt).
		From(roundsTable).
		OrderBy(colCreatedAt+" DESC", colSeq+" DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tr.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select rounds: %w", err)
	}
	defer rows.Close()

	var (
		rounds []model.Round
		ids    []uuid.UUID
	)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			round   model.Round
			outcome string
			color   string
		)
		err = rows.Scan(&round.ID, &round.Seq, &outcome, &color,
			&round.TotalStaked, &round.TotalWinnings, &round.BalanceAfter, &round.CreatedAt)
		if err != nil {
			return nil, err
		}
		round.Outcome = model.Outcome(outcome)
		round.Color = model.Color(color)

		index[round.ID] = len(rounds)
		ids = append(ids, round.ID)
		rounds = append(rounds, round)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return rounds, nil
	}

	if err = r.attachWagers(ctx, tr, ids, index, rounds); err != nil {
		return nil, err
	}
	return rounds, nil
}

// attachWagers - подгружает ставки для уже выбранных раундов
func (r *repo) attachWagers(ctx context.Context, tr trmpgx.Tr, ids []uuid.UUID, index map[uuid.UUID]int, rounds []model.Round) error {
	query := sq.Select(colRoundID, colTarget, colAmount, colPayout).
		From(wagersTable).
		Where(sq.Eq{colRoundID: ids}).
		OrderBy(colRoundID, colPosition).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	rows, err := tr.Query(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("select wagers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			roundID uuid.UUID
			label   string
			w       model.SettledWager
		)
		if err = rows.Scan(&roundID, &label, &w.Amount, &w.Payout); err != nil {
			return err
		}
		w.Target, err = model.ParseTarget(label)
		if err != nil {
			return fmt.Errorf("round %s: stored target %q: %w", roundID, label, err)
		}
		i, ok := index[roundID]
		if !ok {
			continue
		}
		rounds[i].Wagers = append(rounds[i].Wagers, w)
	}
	return rows.Err()
}
