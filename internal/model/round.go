package model

import (
	"time"

	"github.com/google/uuid"
)

// Round a settled spin as recorded in the history
type Round struct {
	ID            uuid.UUID
	Seq           int64
	Outcome       Outcome
	Color         Color
	Wagers        []SettledWager
	TotalStaked   int
	TotalWinnings int
	BalanceAfter  int
	CreatedAt     time.Time
}

// TableStats aggregate over every settled round since start
type TableStats struct {
	TotalSpins    int
	TotalStaked   int
	TotalPaid     int
	CurrentRTP    float64 // TotalPaid/TotalStaked*100
	WindowRTP     float64 // RTP over the last WindowSize rounds
	WindowSize    int
	BiggestPayout int
	OutcomeHits   map[Outcome]int
	ColorHits     map[Color]int
}
