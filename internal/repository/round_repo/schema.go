package round_repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS roulette_rounds (
	id             UUID PRIMARY KEY,
	seq            BIGINT      NOT NULL,
	outcome        TEXT        NOT NULL,
	color          TEXT        NOT NULL,
	total_staked   INTEGER     NOT NULL,
	total_winnings INTEGER     NOT NULL,
	balance_after  INTEGER     NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS roulette_rounds_created_at_idx ON roulette_rounds (created_at DESC);

CREATE TABLE IF NOT EXISTS roulette_wagers (
	round_id UUID    NOT NULL REFERENCES roulette_rounds (id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	target   TEXT    NOT NULL,
	amount   INTEGER NOT NULL,
	payout   INTEGER NOT NULL,
	PRIMARY KEY (round_id, position)
);
`

// EnsureSchema создаёт таблицы истории, если их ещё нет
func EnsureSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}
