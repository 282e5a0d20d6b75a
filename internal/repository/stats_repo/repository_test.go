package stats_repo

import (
	"testing"

	"roulette_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func round(outcome model.Outcome, staked, paid int) *model.Round {
	return &model.Round{
		Outcome:       outcome,
		Color:         outcome.Color(),
		TotalStaked:   staked,
		TotalWinnings: paid,
	}
}

func TestStatsEmpty(t *testing.T) {
	r := NewStatsRepository(0)
	stats := r.TableStats()

	assert.Zero(t, stats.TotalSpins)
	assert.Zero(t, stats.CurrentRTP)
	assert.Equal(t, defaultWindowSize, stats.WindowSize)
	assert.Empty(t, stats.OutcomeHits)
}

func TestStatsUpdate(t *testing.T) {
	r := NewStatsRepository(2)

	r.UpdateState(round("17", 10, 360))
	r.UpdateState(round("0", 100, 0))
	r.UpdateState(round("1", 50, 100))
	r.UpdateState(nil)

	stats := r.TableStats()
	assert.Equal(t, 3, stats.TotalSpins)
	assert.Equal(t, 160, stats.TotalStaked)
	assert.Equal(t, 460, stats.TotalPaid)
	assert.InDelta(t, 287.5, stats.CurrentRTP, 1e-9)
	assert.Equal(t, 360, stats.BiggestPayout)

	// window keeps the last two rounds only: 100/150
	assert.InDelta(t, 66.666, stats.WindowRTP, 1e-2)

	assert.Equal(t, 1, stats.OutcomeHits["17"])
	assert.Equal(t, 1, stats.ColorHits[model.ColorGreen])
	assert.Equal(t, 1, stats.ColorHits[model.ColorRed])
	assert.Equal(t, 1, stats.ColorHits[model.ColorBlack])
}

func TestStatsReturnsCopy(t *testing.T) {
	r := NewStatsRepository(10)
	r.UpdateState(round("5", 10, 20))

	stats := r.TableStats()
	stats.OutcomeHits["5"] = 100
	stats.ColorHits[model.ColorRed] = 100

	fresh := r.TableStats()
	assert.Equal(t, 1, fresh.OutcomeHits["5"])
	assert.Equal(t, 1, fresh.ColorHits[model.ColorRed])
}
