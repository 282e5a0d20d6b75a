package roulette

import "time"

type StakeRequest struct {
	Amount int `json:"amount"` // Размер ставки (положительное целое)
}

type StakeResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Stake   int    `json:"stake"`
}

type BetRequest struct {
	Target string `json:"target"` // "17", "0", "00", "RED", "BLACK", "ODD", "EVEN"
}

type BetResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Wager   *Wager `json:"wager,omitempty"`
	Balance int    `json:"balance"`
}

type Wager struct {
	Target string `json:"target"`
	Kind   string `json:"kind"` // number, color, parity
	Amount int    `json:"amount"`
}

type SettledWager struct {
	Target string `json:"target"`
	Kind   string `json:"kind"`
	Amount int    `json:"amount"`
	Payout int    `json:"payout"`
}

type SpinResponse struct {
	Outcome       *string        `json:"outcome"` // null если ставок не было
	Color         string         `json:"color,omitempty"`
	Parity        string         `json:"parity,omitempty"`
	Wagers        []SettledWager `json:"wagers"`
	TotalStaked   int            `json:"total_staked"`
	TotalWinnings int            `json:"total_winnings"`
	DidWin        bool           `json:"did_win"`
	Balance       int            `json:"balance"`
	Message       string         `json:"message"`
}

type StateResponse struct {
	Balance    int           `json:"balance"`
	Stake      int           `json:"stake"`
	Wagers     []Wager       `json:"wagers"`
	Pending    bool          `json:"pending"` // есть неразыгранные ставки
	LastResult *SpinResponse `json:"last_result"`
}

type BalanceResponse struct {
	Balance int `json:"balance"`
}

type ChipsResponse struct {
	Chips []int `json:"chips"`
}

type RoundResponse struct {
	ID            string         `json:"id"`
	Seq           int64          `json:"seq"`
	Outcome       string         `json:"outcome"`
	Color         string         `json:"color"`
	Wagers        []SettledWager `json:"wagers"`
	TotalStaked   int            `json:"total_staked"`
	TotalWinnings int            `json:"total_winnings"`
	BalanceAfter  int            `json:"balance_after"`
	CreatedAt     time.Time      `json:"created_at"`
}

type HistoryResponse struct {
	Rounds []RoundResponse `json:"rounds"`
}

type StatsResponse struct {
	TotalSpins    int            `json:"total_spins"`
	TotalStaked   int            `json:"total_staked"`
	TotalPaid     int            `json:"total_paid"`
	CurrentRTP    float64        `json:"current_rtp"`
	WindowRTP     float64        `json:"window_rtp"`
	WindowSize    int            `json:"window_size"`
	BiggestPayout int            `json:"biggest_payout"`
	OutcomeHits   map[string]int `json:"outcome_hits"`
	ColorHits     map[string]int `json:"color_hits"`
}

type SeatResponse struct {
	SeatID      string    `json:"seat_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
